package domain

import "testing"

func TestResolveCategory(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"puzzles", "Puzzles"},
		{"vehicles", "Vehicles & RC"},
		{"board-games", "Board Games"},
		// Unknown identifiers pass through as-is.
		{"Handmade Toys", "Handmade Toys"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ResolveCategory(tc.id); got != tc.want {
			t.Fatalf("ResolveCategory(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestCategoryNameByID(t *testing.T) {
	name, ok := CategoryNameByID("building-blocks")
	if !ok || name != "Building Blocks" {
		t.Fatalf("expected Building Blocks, got %q (%v)", name, ok)
	}

	if _, ok := CategoryNameByID("not-a-category"); ok {
		t.Fatalf("unknown id must not resolve")
	}
}

func TestCondition_IsValid(t *testing.T) {
	for _, c := range []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor} {
		if !c.IsValid() {
			t.Fatalf("condition %q should be valid", c)
		}
	}
	for _, c := range []Condition{"", "mint", "NEW"} {
		if c.IsValid() {
			t.Fatalf("condition %q should be invalid", c)
		}
	}
}
