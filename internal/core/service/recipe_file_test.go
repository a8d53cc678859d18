package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

const validFamily = `{
  "name": "Country Loaf",
  "type": "MAIN",
  "category": "Bread",
  "versions": [{
    "notes": "v1",
    "targetTemp": 26,
    "ingredients": [{"name": "Flour", "ratio": 100, "isFlour": true}, {"name": "Water", "ratio": 72, "waterContent": 100}],
    "products": [{"name": "Loaf 800g", "weight": 800}]
  }]
}`

func TestParseRecipeFile_ArrayAndObject(t *testing.T) {
	records, err := ParseRecipeFile([]byte("[" + validFamily + "," + validFamily + "]"))
	if err != nil {
		t.Fatalf("array: unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].Versions[0].Ingredients[1].Name != "Water" {
		t.Fatalf("array: unexpected records: %+v", records)
	}

	records, err = ParseRecipeFile([]byte(validFamily))
	if err != nil {
		t.Fatalf("object: unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Type != domain.RecipeMain {
		t.Fatalf("object: unexpected records: %+v", records)
	}
}

func TestParseRecipeFile_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "[{", "not json"} {
		if _, err := ParseRecipeFile([]byte(in)); !errors.Is(err, domain.ErrMalformedRecipeFile) {
			t.Fatalf("%q: expected ErrMalformedRecipeFile, got %v", in, err)
		}
	}
	if _, err := ParseRecipeFile([]byte("[]")); !errors.Is(err, domain.ErrNoRecipes) {
		t.Fatalf("expected ErrNoRecipes for empty array, got %v", err)
	}
}

func TestParseRecipeFile_ReportsEveryProblem(t *testing.T) {
	bad := `[` + validFamily + `,
	  {"name": "Croissant", "type": "PASTRY", "versions": [{"ingredients": [{"ratio": 50}], "products": [{"name": "Mini", "weight": 0}]}]}
	]`

	_, err := ParseRecipeFile([]byte(bad))
	if !errors.Is(err, domain.ErrInvalidRecipeFile) {
		t.Fatalf("expected ErrInvalidRecipeFile, got %v", err)
	}

	problems := RecipeProblems(err)
	want := []string{
		"recipes[1].type must be one of: MAIN PRE_DOUGH EXTRA",
		"recipes[1].versions[0].ingredients[0].name is required",
		"recipes[1].versions[0].products[0].weight must be greater than 0",
	}
	for _, w := range want {
		found := false
		for _, p := range problems {
			if p == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing problem %q in %q", w, problems)
		}
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Fatalf("expected problems joined in the message, got %q", err.Error())
	}
}
