package validation

import (
	"errors"
	"strings"
	"testing"
)

type line struct {
	Name  string  `json:"name" validate:"required"`
	Ratio float64 `json:"ratio" validate:"gte=0"`
}

type form struct {
	Title string `json:"title" validate:"required,min=3"`
	Kind  string `json:"kind" validate:"oneof=A B"`
	Lines []line `json:"lines" validate:"required,min=1,dive"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(form{Title: "abc", Kind: "A", Lines: []line{{Name: "x"}}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStruct_ReportsJSONPaths(t *testing.T) {
	err := Struct(form{Title: "ab", Kind: "C", Lines: []line{{Ratio: -1}}})

	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}

	want := []string{
		"title must be at least 3 characters",
		"kind must be one of: A B",
		"lines[0].name is required",
		"lines[0].ratio must be at least 0",
	}
	if len(ve.Problems) != len(want) {
		t.Fatalf("expected %d problems, got %v", len(want), ve.Problems)
	}
	for i, w := range want {
		if ve.Problems[i] != w {
			t.Errorf("problem %d: expected %q, got %q", i, w, ve.Problems[i])
		}
	}
}

func TestStruct_EmptySlice(t *testing.T) {
	err := Struct(form{Title: "abc", Kind: "B", Lines: []line{}})
	if err == nil || !strings.Contains(err.Error(), "lines must contain at least 1 item(s)") {
		t.Fatalf("unexpected error: %v", err)
	}
}
