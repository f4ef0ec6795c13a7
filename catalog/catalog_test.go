package catalog

import (
	"reflect"
	"testing"

	"pondilore/models"
)

func TestPlacesByCategoryIsPure(t *testing.T) {
	first := PlacesByCategory("beaches")
	second := PlacesByCategory("beaches")

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two calls with the same category returned different sequences")
	}
	if len(first) == 0 {
		t.Fatal("expected beaches in the catalog")
	}
	for _, p := range first {
		if p.Category != models.CategoryBeaches {
			t.Fatalf("got %q in the beaches result", p.Category)
		}
	}
}

func TestPlacesByCategoryAll(t *testing.T) {
	all := PlacesByCategory("all")
	alias := PlacesByCategory("places")

	if len(all) != len(places) {
		t.Fatalf("all returned %d places, catalog has %d", len(all), len(places))
	}
	if !reflect.DeepEqual(all, alias) {
		t.Fatal(`"all" and "places" should return the same sequence`)
	}
}

func TestPlacesByCategoryCaseInsensitive(t *testing.T) {
	lower := PlacesByCategory("beaches")
	mixed := PlacesByCategory("  Beaches ")

	if !reflect.DeepEqual(lower, mixed) {
		t.Fatal("category match should be case-insensitive and trimmed")
	}
}

func TestSpiritualUnion(t *testing.T) {
	got := PlacesByCategory("spiritual")

	want := map[string]bool{
		models.CategorySpiritual: true,
		models.CategoryTemples:   true,
		models.CategoryChurches:  true,
	}

	seen := make(map[string]bool)
	for _, p := range got {
		if !want[p.Category] {
			t.Fatalf("unexpected category %q in spiritual union", p.Category)
		}
		if seen[p.PlaceID] {
			t.Fatalf("duplicate place %q in union result", p.PlaceID)
		}
		seen[p.PlaceID] = true
	}

	// every member category must be represented
	for _, p := range places {
		if want[p.Category] && !seen[p.PlaceID] {
			t.Fatalf("place %q (%s) missing from spiritual union", p.PlaceID, p.Category)
		}
	}

	// catalog order: each result must appear after the previous one in the
	// source array
	idx := -1
	for _, p := range got {
		pos := indexOf(p.PlaceID)
		if pos <= idx {
			t.Fatalf("union result out of catalog order at %q", p.PlaceID)
		}
		idx = pos
	}
}

func TestUnknownCategoryIsEmpty(t *testing.T) {
	got := PlacesByCategory("volcanoes")
	if got == nil || len(got) != 0 {
		t.Fatalf("unknown category should yield an empty slice, got %v", got)
	}
}

func TestPlaceByID(t *testing.T) {
	p, ok := PlaceByID("b1")
	if !ok {
		t.Fatal("b1 should exist")
	}
	if p.Name != "Promenade Beach" {
		t.Fatalf("b1 is %q, want Promenade Beach", p.Name)
	}

	if _, ok := PlaceByID("zzz"); ok {
		t.Fatal("zzz should not be found")
	}
}

func indexOf(id string) int {
	for i, p := range places {
		if p.PlaceID == id {
			return i
		}
	}
	return -1
}
