package integration

import (
	"testing"

	"github.com/zoobzio/searchql"
	sqtest "github.com/zoobzio/searchql/testing"
)

// injectionPayloads must render valid SQL that matches no fixture row.
var injectionPayloads = []string{
	`"'; DROP TABLE photos; --"`,
	`"x' OR '1'='1"`,
	`"\' OR 1=1 --"`,
	`"\\' OR 1=1 --"`,
	`"x') OR 1=1 --"`,
	`"1; DELETE FROM photos"`,
	`title=="' OR ''='"`,
	`title="%' OR 1=1 --"`,
	`by:"a' UNION SELECT title FROM photos --"`,
	`"*/ OR 1=1 /*"`,
}

func photoSQL(t *testing.T, catalog *searchql.Catalog, r searchql.Renderer, query string) string {
	t.Helper()
	where := catalog.Parse(query).SQL(r)
	if where == "" {
		t.Fatalf("Parse(%q) rendered no SQL", query)
	}
	return where
}

// runPhotoCases checks every shared fixture query against a dialect.
func runPhotoCases(t *testing.T, r searchql.Renderer, e *engine) {
	t.Helper()
	catalog := sqtest.TestCatalog(t)

	for _, tc := range sqtest.PhotoCases {
		t.Run(tc.Query, func(t *testing.T) {
			where := photoSQL(t, catalog, r, tc.Query)
			got := e.where(t, where)
			if len(got) != len(tc.IDs) {
				t.Errorf("SQL: %s", where)
			}
			sqtest.AssertIDs(t, tc.IDs, got)
		})
	}
}

// runInjection checks that hostile input matches nothing and leaves the
// table intact.
func runInjection(t *testing.T, r searchql.Renderer, e *engine) {
	t.Helper()
	catalog := sqtest.TestCatalog(t)

	for _, payload := range injectionPayloads {
		t.Run(payload, func(t *testing.T) {
			where := photoSQL(t, catalog, r, payload)
			if got := e.where(t, where); len(got) != 0 {
				t.Errorf("Payload matched rows %v\nSQL: %s", got, where)
			}
			if all := e.where(t, "1=1"); len(all) != len(sqtest.Photos) {
				t.Errorf("Table has %d rows after payload, want %d", len(all), len(sqtest.Photos))
			}
		})
	}
}
