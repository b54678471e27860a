package catalog

import (
	"testing"

	"bizmatch/internal/domain"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() < 20 {
		t.Fatalf("catalog has %d entries, expected a full library", cat.Len())
	}
	if cat.Len() != len(cat.All()) {
		t.Fatalf("Len() = %d but All() returns %d entries", cat.Len(), len(cat.All()))
	}
}

func TestLoadStableOrder(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cat.All()[0].ID; got != "affiliate-marketing" {
		t.Fatalf("first catalog entry is %s, order is not stable", got)
	}
}

func TestByID(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := cat.ByID("freelance-writing")
	if def == nil {
		t.Fatal("known id not found")
	}
	if def.Name == "" || def.Category == "" {
		t.Fatalf("definition %s is missing display fields: %+v", def.ID, def)
	}
	if cat.ByID("no-such-model") != nil {
		t.Fatal("unknown id returned a definition")
	}
}

func TestDefinitionsComplete(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	known := map[domain.TraitName]bool{}
	for _, trait := range domain.TraitOrder {
		known[trait] = true
	}
	for _, def := range cat.All() {
		if def.ID == "" || def.Name == "" || def.Description == "" {
			t.Fatalf("definition %q is missing identity fields", def.ID)
		}
		if len(def.Pros) == 0 || len(def.Cons) == 0 {
			t.Fatalf("definition %s has no pros or cons", def.ID)
		}
		if len(def.ActionPlan) == 0 {
			t.Fatalf("definition %s has no action plan", def.ID)
		}
		if len(def.Ideal.Targets) == 0 {
			t.Fatalf("definition %s has an empty ideal profile", def.ID)
		}
		for trait, target := range def.Ideal.Targets {
			if !known[trait] {
				t.Fatalf("definition %s targets unknown trait %s", def.ID, trait)
			}
			if target < 1.0 || target > 5.0 {
				t.Fatalf("definition %s target for %s = %v, out of [1.0, 5.0]", def.ID, trait, target)
			}
			if def.Ideal.Weights[trait] <= 0 {
				t.Fatalf("definition %s target for %s has no positive weight", def.ID, trait)
			}
		}
	}
}
