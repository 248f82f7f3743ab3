package types

import "testing"

func text(s string) *TermNode {
	contains, _ := TextOperators().Get(OpContains)
	return NewTerm(nil, contains, TextValue(s))
}

func TestListNode_AddSetsParent(t *testing.T) {
	a := text("a")
	list := NewList(And, a)

	if a.Parent() != list {
		t.Error("Add() should set the parent")
	}

	other := NewList(Or)
	other.Add(a)
	if list.Len() != 0 {
		t.Errorf("re-adding should detach from the old parent, Len() = %d", list.Len())
	}
	if a.Parent() != other {
		t.Error("parent not updated after move")
	}
}

func TestListNode_InsertAndRemove(t *testing.T) {
	a, b, c := text("a"), text("b"), text("c")
	list := NewList(And, a, c)
	list.Insert(1, b)

	if list.IndexOf(b) != 1 || list.IndexOf(c) != 2 {
		t.Fatalf("Insert() order wrong: %s", Dump(list))
	}
	if !list.Remove(b) {
		t.Fatal("Remove() should report true")
	}
	if b.Parent() != nil {
		t.Error("Remove() should clear the parent")
	}
	if list.Remove(b) {
		t.Error("second Remove() should report false")
	}
}

func TestListNode_Replace(t *testing.T) {
	a, b, c := text("a"), text("b"), text("c")
	list := NewList(And, a, b, c)

	// Replacing with an earlier sibling shifts positions.
	list.Replace(c, a)
	if got := Dump(list); got != `And[contains("b"), contains("a")]` {
		t.Errorf("Replace() = %s", got)
	}
	if c.Parent() != nil {
		t.Error("replaced node should be detached")
	}
}

func TestListNode_TakeChildren(t *testing.T) {
	src := NewList(And, text("a"), text("b"))
	dst := NewList(Or, text("x"))
	src.TakeChildren(dst)

	if src.Len() != 0 {
		t.Errorf("source Len() = %d, want 0", src.Len())
	}
	if got := Dump(dst); got != `Or[contains("x"), contains("a"), contains("b")]` {
		t.Errorf("TakeChildren() = %s", got)
	}
	for _, child := range dst.Children() {
		if child.Parent() != dst {
			t.Error("moved child has the wrong parent")
		}
	}
}

// =============================================================================
// Trim
// =============================================================================

func TestTrim(t *testing.T) {
	rating := &Field{Name: "rating", Kinds: []Kind{KindInteger}}
	equals, _ := NumericOperators().Get(OpEquals)

	tests := []struct {
		name  string
		build func() Node
		want  string
	}{
		{
			name:  "single child and collapses",
			build: func() Node { return NewList(And, text("a")) },
			want:  `contains("a")`,
		},
		{
			name:  "empty list vanishes",
			build: func() Node { return NewList(Or) },
			want:  `<nil>`,
		},
		{
			name:  "unset term dropped",
			build: func() Node { return NewList(And, text("a"), NewTerm(nil, nil, TextValue(""))) },
			want:  `contains("a")`,
		},
		{
			name:  "field term without operator dropped",
			build: func() Node { return NewList(And, text("a"), NewTerm(rating, nil, IntegerValue(4))) },
			want:  `contains("a")`,
		},
		{
			name:  "not with two children dropped",
			build: func() Node { return NewList(And, text("a"), NewList(Not, text("b"), text("c"))) },
			want:  `contains("a")`,
		},
		{
			name:  "not survives with one child",
			build: func() Node { return NewList(And, NewList(Not, text("b"))) },
			want:  `Not[contains("b")]`,
		},
		{
			name: "nested degenerate lists flatten in place",
			build: func() Node {
				return NewList(Or, text("a"), NewList(And, NewList(And, text("b"))), NewTerm(rating, equals, IntegerValue(4)))
			},
			want: `Or[contains("a"), contains("b"), rating.equals(4)]`,
		},
		{
			name:  "not emptied by trimming is removed",
			build: func() Node { return NewList(And, text("a"), NewList(Not, NewList(And))) },
			want:  `contains("a")`,
		},
		{
			name:  "zero integer survives",
			build: func() Node { return NewList(And, NewTerm(rating, equals, IntegerValue(0))) },
			want:  `rating.equals(0)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trim(tt.build())
			if s := Dump(got); s != tt.want {
				t.Errorf("Trim() = %s, want %s", s, tt.want)
			}
			if got != nil && got.Parent() != nil {
				t.Error("trimmed root should have no parent")
			}
		})
	}
}

func TestTrim_Idempotent(t *testing.T) {
	tree := NewList(Or, text("a"), NewList(And, text("b"), NewList(Not, text("c"))))
	once := Trim(tree)
	want := Dump(once)
	if got := Dump(Trim(once)); got != want {
		t.Errorf("Trim(Trim(x)) = %s, want %s", got, want)
	}
}

// =============================================================================
// Equal
// =============================================================================

func TestEqual(t *testing.T) {
	build := func(last string) Node {
		return NewList(Or, text("a"), NewList(Not, text(last)))
	}

	if !Equal(build("b"), build("b")) {
		t.Error("identical trees should be equal")
	}
	if Equal(build("b"), build("c")) {
		t.Error("trees with different values should differ")
	}
	if Equal(NewList(And, text("a"), text("b")), NewList(Or, text("a"), text("b"))) {
		t.Error("combinators must match")
	}
	if !Equal(nil, nil) {
		t.Error("nil trees should be equal")
	}
	if Equal(text("a"), nil) {
		t.Error("term and nil should differ")
	}

	// Fields compare by name, not identity.
	f1 := &Field{Name: "title"}
	f2 := &Field{Name: "title"}
	contains, _ := TextOperators().Get(OpContains)
	if !Equal(NewTerm(f1, contains, TextValue("x")), NewTerm(f2, contains, TextValue("x"))) {
		t.Error("fields should compare by name")
	}
}
