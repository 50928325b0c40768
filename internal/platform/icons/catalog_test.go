package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreUniqueAndNamed(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}

	seen := make(map[ID]struct{})
	for _, def := range defs {
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon id in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", def.ID)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Fatal("Catalog() exposed internal storage")
	}
}

func TestResolveKnownKeys(t *testing.T) {
	for _, key := range []string{"BookOpen", "Calculator", "FileText", "TrendingUp", "Search", "PieChart", "Monitor", "Users", "ShieldCheck"} {
		if got := Resolve(key); string(got) != key {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, key)
		}
	}
}

func TestResolveFallsBackForUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "  ", "bookopen", "Rocket"} {
		if got := Resolve(key); got != Fallback {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, Fallback)
		}
	}
}

func TestDefinitionOrDefault(t *testing.T) {
	if got := DefinitionOrDefault(ID("missing")).ID; got != ArrowRight {
		t.Fatalf("DefinitionOrDefault(missing).ID = %q, want %q", got, ArrowRight)
	}
	if got := DefinitionOrDefault(Mail).Lucide; got != "mail" {
		t.Fatalf("DefinitionOrDefault(Mail).Lucide = %q, want %q", got, "mail")
	}
}
