package searchql

import (
	"testing"

	"github.com/zoobzio/dbml"
)

func testProject() *dbml.Project {
	project := dbml.NewProject("test")

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar(200)"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	posts.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	posts.AddColumn(dbml.NewColumn("metadata", "jsonb"))
	project.AddTable(posts)

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	project.AddTable(users)

	return project
}

func TestNewFromDBML(t *testing.T) {
	c, err := NewFromDBML(testProject(), "posts",
		WithAliases("created_at", "created,date"),
		WithDefault("title", "body"),
	)
	if err != nil {
		t.Fatalf("NewFromDBML() error = %v", err)
	}

	tests := []struct {
		alias string
		name  string
		kind  Kind
	}{
		{"id", "id", KindInteger},
		{"title", "title", KindText},
		{"body", "body", KindText},
		{"views", "views", KindInteger},
		{"created", "created_at", KindDate},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			f, ok := c.Field(tt.alias)
			if !ok {
				t.Fatalf("Field(%q) not found", tt.alias)
			}
			if f.Name != tt.name || f.Kind() != tt.kind {
				t.Errorf("Field(%q) = %s/%v, want %s/%v", tt.alias, f.Name, f.Kind(), tt.name, tt.kind)
			}
		})
	}

	for _, skipped := range []string{"published", "metadata"} {
		if _, ok := c.Field(skipped); ok {
			t.Errorf("Field(%q) should not be searchable", skipped)
		}
	}
	if n := len(c.DefaultFields()); n != 2 {
		t.Errorf("DefaultFields() = %d, want 2", n)
	}

	got := c.Parse("created=2024-02").SQL(nil)
	want := "(created_at IS NOT NULL AND created_at BETWEEN '2024-02-01 00:00:00' AND '2024-02-29 23:59:59')"
	if got != want {
		t.Errorf("SQL() = %s, want %s", got, want)
	}
}

func TestNewFromDBML_Options(t *testing.T) {
	c, err := NewFromDBML(testProject(), "posts",
		WithoutColumns("id", "body"),
		WithKinds("published", KindText, KindEmpty),
		WithKinds("views", KindFileSize),
		WithCatalogOptions(WithLogger(nil)),
	)
	if err != nil {
		t.Fatalf("NewFromDBML() error = %v", err)
	}

	if _, ok := c.Field("id"); ok {
		t.Error("id should be excluded")
	}
	if f, ok := c.Field("published"); !ok || !f.Accepts(KindEmpty) {
		t.Error("published should be searchable with overridden kinds")
	}
	if f, _ := c.Field("views"); f.Kind() != KindFileSize {
		t.Errorf("views kind = %v, want fileSize", f.Kind())
	}
}

func TestNewFromDBML_Errors(t *testing.T) {
	if _, err := NewFromDBML(nil, "posts"); err == nil {
		t.Error("nil project should fail")
	}
	if _, err := NewFromDBML(testProject(), "comments"); err == nil {
		t.Error("missing table should fail")
	}

	empty := dbml.NewProject("empty")
	flags := dbml.NewTable("flags")
	flags.AddColumn(dbml.NewColumn("enabled", "boolean"))
	empty.AddTable(flags)
	if _, err := NewFromDBML(empty, "flags"); err == nil {
		t.Error("table without searchable columns should fail")
	}
}

func TestKindForColumnType(t *testing.T) {
	tests := []struct {
		sqlType    string
		kind       Kind
		searchable bool
	}{
		{"varchar", KindText, true},
		{"VARCHAR(255)", KindText, true},
		{"text", KindText, true},
		{"bigint", KindInteger, true},
		{"int", KindInteger, true},
		{"timestamp", KindDate, true},
		{"datetime", KindDate, true},
		{"date", KindDate, true},
		{"boolean", KindText, false},
		{"numeric", KindText, false},
		{"vector", KindText, false},
	}

	for _, tt := range tests {
		t.Run(tt.sqlType, func(t *testing.T) {
			kind, ok := kindForColumnType(tt.sqlType)
			if ok != tt.searchable || (ok && kind != tt.kind) {
				t.Errorf("kindForColumnType(%q) = (%v, %v), want (%v, %v)", tt.sqlType, kind, ok, tt.kind, tt.searchable)
			}
		})
	}
}
