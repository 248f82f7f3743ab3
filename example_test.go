package searchql_test

import (
	"fmt"

	"github.com/zoobzio/searchql"
	"github.com/zoobzio/searchql/mssql"
	"github.com/zoobzio/searchql/postgres"
	"github.com/zoobzio/searchql/sqlite"
)

func exampleCatalog() *searchql.Catalog {
	catalog, err := searchql.New(
		[]*searchql.Field{
			{Name: "title", Column: "title", Aliases: []string{"title,t"}, Default: true},
			{Name: "rating", Column: "rating", Aliases: []string{"rating,r"}, Kinds: []searchql.Kind{searchql.KindInteger}},
		},
		[]*searchql.Order{
			{Name: "best", SQL: "rating DESC, title", Aliases: []string{"best"}},
		},
	)
	if err != nil {
		panic(err)
	}
	return catalog
}

func Example() {
	catalog := exampleCatalog()

	q := catalog.Parse("rating>=4 sunset")
	fmt.Println(q.SQL(postgres.New()))
	fmt.Println(q.String())
	// Output:
	// ((rating IS NOT NULL AND rating >= 4) AND ((title IS NOT NULL AND title ILIKE '%sunset%' ESCAPE '\')))
	// rating>=4 sunset
}

func ExampleQuery_SQL() {
	catalog := exampleCatalog()

	q := catalog.Parse(`"[draft]" or r<2`)
	fmt.Println(q.SQL(sqlite.New()))
	fmt.Println(q.SQL(mssql.New()))
	// Output:
	// (((title IS NOT NULL AND title LIKE '%[draft]%' ESCAPE '\')) OR (rating IS NOT NULL AND rating < 2))
	// (((title IS NOT NULL AND title LIKE '%\[draft]%' ESCAPE '\')) OR (rating IS NOT NULL AND rating < 2))
}

func ExampleQuery_Markup() {
	catalog := exampleCatalog()

	fmt.Println(catalog.Parse("r<3 -t:draft").Markup())
	// Output:
	// <request><query version="1"><and><lessThan><field name="rating"></field><int>3</int></lessThan><not><contains><field name="title"></field><text>draft</text></contains></not></and></query></request>
}

func ExampleCatalog_ParseWithDiagnostics() {
	catalog := exampleCatalog()

	q, diags := catalog.ParseWithDiagnostics("rating>lots beach")
	for _, d := range diags {
		fmt.Println(d)
	}
	fmt.Println(q.String())
	// Output:
	// line 1: "rating>lots": no operator and value for field "rating", searching as text
	// rating>lots beach
}

func ExampleCatalog_OrderBy() {
	catalog := exampleCatalog()

	sql, ok := catalog.OrderBy("best")
	fmt.Println(sql, ok)
	// Output:
	// ORDER BY rating DESC, title true
}

func ExampleFormatFileSize() {
	fmt.Println(searchql.FormatFileSize(1000))
	fmt.Println(searchql.FormatFileSize(1536))
	fmt.Println(searchql.FormatFileSize(1 << 20))
	// Output:
	// 1000
	// 1.5 KB
	// 1 MB
}
