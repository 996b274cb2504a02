package domain

import (
	"reflect"
	"testing"
)

func TestCleanTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, []string{}},
		{"trims and drops blanks", []string{" a ", "", "  "}, []string{"a"}},
		{"keeps first occurrence", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"case sensitive", []string{"Work", "work"}, []string{"Work", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTags(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CleanTags(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTagList(t *testing.T) {
	got := ParseTagList("go, reading,, go ,")
	want := []string{"go", "reading"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTagList() = %v, want %v", got, want)
	}
}

func TestWithCategory(t *testing.T) {
	if got := WithCategory(" Work ", []string{"urgent", "Work"}); !reflect.DeepEqual(got, []string{"Work", "urgent"}) {
		t.Errorf("WithCategory() = %v", got)
	}
	if got := WithCategory("", []string{"urgent"}); !reflect.DeepEqual(got, []string{"urgent"}) {
		t.Errorf("WithCategory() without category = %v", got)
	}
}

func TestMoveToCategory(t *testing.T) {
	known := map[string]bool{"Work": true, "Home": true}

	tests := []struct {
		name   string
		tags   []string
		target string
		want   []string
	}{
		{"replaces the old category", []string{"Work", "urgent"}, "Home", []string{"Home", "urgent"}},
		{"strips several categories", []string{"Work", "Home", "x"}, "Home", []string{"Home", "x"}},
		{"adds to an uncategorized resource", []string{"x"}, "Work", []string{"Work", "x"}},
		{"idempotent", []string{"Home", "x"}, "Home", []string{"Home", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveToCategory(tt.tags, known, tt.target); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MoveToCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}
