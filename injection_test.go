package searchql_test

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/searchql"
	"github.com/zoobzio/searchql/sqlite"
)

// TestSQLInjectionProtection executes hostile input against a live database.
// Every payload must render valid SQL, match nothing and leave the table intact.
func TestSQLInjectionProtection(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	setup := []string{
		"CREATE TABLE notes (id INTEGER PRIMARY KEY, title TEXT, body TEXT)",
		"INSERT INTO notes (id, title, body) VALUES (1, 'alpha', 'first')",
		"INSERT INTO notes (id, title, body) VALUES (2, 'beta', 'second')",
		"INSERT INTO notes (id, title, body) VALUES (3, 'gamma', 'third')",
	}
	for _, stmt := range setup {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	catalog, err := searchql.New([]*searchql.Field{
		{Name: "title", Column: "title", Aliases: []string{"title"}, Default: true},
		{Name: "body", Column: "body", Aliases: []string{"body,b"}, Default: true},
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r := sqlite.New()

	attempts := []struct {
		name  string
		input string
	}{
		{"Stacked DROP", `"'; DROP TABLE notes; --"`},
		{"OR tautology", `"x' OR '1'='1"`},
		{"Backslash quote", `"\' OR 1=1 --"`},
		{"Closing paren", `"x') OR 1=1 --"`},
		{"Stacked DELETE", `"1; DELETE FROM notes"`},
		{"Percent wildcard", `"%"`},
		{"Underscore wildcard", `"_"`},
		{"Equals operator", `title=="' OR ''='"`},
		{"Starts with operator", `title="%' OR 1=1 --"`},
		{"Union", `b:"a' UNION SELECT name FROM sqlite_master --"`},
		{"Comment", `"*/ OR 1=1 /*"`},
		{"Negated", `-"' OR 1=1 --" "x' --"`},
	}

	for _, attempt := range attempts {
		t.Run(attempt.name, func(t *testing.T) {
			where := catalog.Parse(attempt.input).SQL(r)
			if where == "" {
				t.Fatalf("Parse(%q) rendered no SQL", attempt.input)
			}

			var matched int
			if err := db.QueryRow("SELECT COUNT(*) FROM notes WHERE " + where).Scan(&matched); err != nil {
				t.Fatalf("Query failed: %v\nSQL: %s", err, where)
			}
			if matched != 0 {
				t.Errorf("Payload matched %d rows\nSQL: %s", matched, where)
			}

			var total int
			if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&total); err != nil {
				t.Fatalf("Table damaged: %v", err)
			}
			if total != 3 {
				t.Errorf("Table has %d rows, want 3", total)
			}
		})
	}
}
