// Package testing provides test utilities for searchql.
package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/searchql"
)

// PhotoProject returns a DBML project with a photos table.
func PhotoProject() *dbml.Project {
	project := dbml.NewProject("test")

	photos := dbml.NewTable("photos")
	photos.AddColumn(dbml.NewColumn("id", "bigint"))
	photos.AddColumn(dbml.NewColumn("title", "varchar"))
	photos.AddColumn(dbml.NewColumn("artist", "varchar"))
	photos.AddColumn(dbml.NewColumn("rating", "int"))
	photos.AddColumn(dbml.NewColumn("taken_at", "timestamp"))
	photos.AddColumn(dbml.NewColumn("size_bytes", "bigint"))
	photos.AddColumn(dbml.NewColumn("tag", "varchar"))
	photos.AddColumn(dbml.NewColumn("exif", "jsonb"))
	project.AddTable(photos)

	return project
}

// TestCatalog creates a catalog over the photos table.
//
//	title (t)      text, default
//	artist (by)    text, default
//	rating (r)     integer
//	taken_at       date, alias taken
//	size_bytes     file size, alias size
//	tag            text or empty
func TestCatalog(t testing.TB) *searchql.Catalog {
	t.Helper()

	catalog, err := searchql.NewFromDBML(PhotoProject(), "photos",
		searchql.WithoutColumns("id"),
		searchql.WithAliases("title", "title,t"),
		searchql.WithAliases("artist", "artist,by"),
		searchql.WithAliases("rating", "rating,r"),
		searchql.WithAliases("taken_at", "taken"),
		searchql.WithAliases("size_bytes", "size"),
		searchql.WithAliases("tag", "tag"),
		searchql.WithKinds("size_bytes", searchql.KindFileSize),
		searchql.WithKinds("tag", searchql.KindText, searchql.KindEmpty),
		searchql.WithDefault("title", "artist"),
	)
	if err != nil {
		t.Fatalf("Failed to create test catalog: %v", err)
	}
	return catalog
}

// Photo is one fixture row.
type Photo struct {
	Title     *string
	Artist    *string
	Rating    *int
	Tag       *string
	TakenAt   string
	ID        int
	SizeBytes int64
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

// Photos is the fixture data matched by PhotoCases.
var Photos = []Photo{
	{ID: 1, Title: str("Sunset over the bay"), Artist: str("Ann"), Rating: num(5), TakenAt: "2020-05-03 18:30:00", SizeBytes: 2 << 20},
	{ID: 2, Title: str("Beach day"), Artist: str("Bob"), Rating: num(3), TakenAt: "2019-07-14 12:00:00", SizeBytes: 512 << 10, Tag: str("summer")},
	{ID: 3, Title: str("50% off sale"), TakenAt: "2021-01-01 00:00:00", SizeBytes: 1 << 20, Tag: str("promo")},
	{ID: 4, Title: str("snow_field"), Artist: str("Ann"), Rating: num(4), TakenAt: "2020-12-31 23:59:59", SizeBytes: 3 << 20},
}

// PhotoCase pairs a query with the fixture rows it matches.
type PhotoCase struct {
	Query string
	IDs   []int
}

// PhotoCases hold for every dialect. Text matching is case-insensitive in
// all of them for the fixture's ASCII data.
var PhotoCases = []PhotoCase{
	{"sunset", []int{1}},
	{"ann", []int{1, 4}},
	{"rating>=4", []int{1, 4}},
	{"rating!=5", []int{2, 3, 4}},
	{"tag!", []int{1, 4}},
	{"-tag!", []int{2, 3}},
	{"taken=2020", []int{1, 4}},
	{"taken=2020-05-03", []int{1}},
	{"taken<2020", []int{2}},
	{"taken>2020-05", []int{3, 4}},
	{"size>1mb", []int{1, 4}},
	{`"50%"`, []int{3}},
	{`"w_f"`, []int{4}},
	{"by:ann or rating<4", []int{1, 2, 4}},
	{"(beach or snow) -by:bob", []int{4}},
	{`title=="Beach day"`, []int{2}},
	{"title=snow", []int{4}},
	{"title:=bay", []int{1}},
	{"tag!:summer", []int{1, 3, 4}},
}

// PhotoTableDDL returns CREATE TABLE for the fixture using the dialect's
// timestamp type.
func PhotoTableDDL(timestampType string) string {
	return fmt.Sprintf(`CREATE TABLE photos (
	id INTEGER PRIMARY KEY,
	title VARCHAR(200),
	artist VARCHAR(200),
	rating INTEGER,
	taken_at %s,
	size_bytes BIGINT,
	tag VARCHAR(50)
)`, timestampType)
}

// PhotoInserts returns one INSERT statement per fixture row.
func PhotoInserts() []string {
	out := make([]string, 0, len(Photos))
	for _, p := range Photos {
		out = append(out, fmt.Sprintf(
			"INSERT INTO photos (id, title, artist, rating, taken_at, size_bytes, tag) VALUES (%d, %s, %s, %s, '%s', %d, %s)",
			p.ID, sqlString(p.Title), sqlString(p.Artist), sqlInt(p.Rating), p.TakenAt, p.SizeBytes, sqlString(p.Tag),
		))
	}
	return out
}

func sqlString(s *string) string {
	if s == nil {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(*s, "'", "''") + "'"
}

func sqlInt(n *int) string {
	if n == nil {
		return "NULL"
	}
	return fmt.Sprint(*n)
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertDump compares a query's structural form.
func AssertDump(t testing.TB, expected string, q *searchql.Query) {
	t.Helper()
	if got := q.Dump(); got != expected {
		t.Errorf("Tree mismatch:\nExpected: %s\nActual:   %s", expected, got)
	}
}

// AssertRoundTrip checks that a query's user text and markup both parse
// back to an equal query.
func AssertRoundTrip(t testing.TB, c *searchql.Catalog, text string) {
	t.Helper()

	q := c.Parse(text)
	if back := c.Parse(q.String()); !q.Equal(back) {
		t.Errorf("User text round trip of %q via %q:\nExpected: %s\nActual:   %s", text, q.String(), q.Dump(), back.Dump())
	}
	if back := c.ParseMarkup(q.Markup()); !q.Equal(back) {
		t.Errorf("Markup round trip of %q:\nExpected: %s\nActual:   %s", text, q.Dump(), back.Dump())
	}
}

// AssertIDs compares matched row ids in order.
func AssertIDs(t testing.TB, expected, actual []int) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Row mismatch:\nExpected: %v\nActual:   %v", expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Row mismatch:\nExpected: %v\nActual:   %v", expected, actual)
			return
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}
