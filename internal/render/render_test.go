package render

import (
	"github.com/zoobzio/searchql/internal/parse"
	"github.com/zoobzio/searchql/internal/scan"
	"github.com/zoobzio/searchql/internal/types"
)

func photoRegistry() *types.Registry {
	return types.NewRegistry([]*types.Field{
		{Name: "title", Column: "title", Aliases: []string{"title,t"}, Default: true, Kinds: []types.Kind{types.KindText}},
		{Name: "artist", Column: "artist", Aliases: []string{"artist,by"}, Kinds: []types.Kind{types.KindText}},
		{Name: "rating", Column: "rating", Aliases: []string{"rating,r"}, Kinds: []types.Kind{types.KindInteger}},
		{Name: "taken", Column: "taken_at", Aliases: []string{"taken"}, Kinds: []types.Kind{types.KindDate}},
		{Name: "size", Column: "size_bytes", Aliases: []string{"size"}, Kinds: []types.Kind{types.KindFileSize}},
		{Name: "tag", Column: "tag", Aliases: []string{"tag"}, Kinds: []types.Kind{types.KindText, types.KindEmpty}},
	}, []*types.Order{
		{Name: "newest", SQL: "taken_at DESC", Aliases: []string{"newest"}},
		{Name: "blank", SQL: " "},
	})
}

func parseText(reg *types.Registry, input string) types.Node {
	return parse.New(reg).Parse(scan.NewString(input))
}
