package concepts

import (
	"os"
	"path/filepath"
	"testing"

	"xbrl_fundamentals/pkg/models"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFilesKeepsDefaults(t *testing.T) {
	store, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if res := store.Lookup("us-gaap:AccountsPayableCurrent"); res.Kind != KindResolved {
		t.Errorf("builtin mapping lost: kind = %s", res.Kind)
	}
}

func TestLoadLayersOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "concept_mappings.yaml", `
mappings:
  - tag: us-gaap:AccountsPayableCurrent
    concepts: [OtherCurrentLiabilities]
  - tag: custom:NewTag
    concepts: [TradePayables]
`)
	writeConfig(t, dir, "concept_labels.yaml", `
labels:
  TradePayables: "Trade payables (overridden)"
`)
	writeConfig(t, dir, "excluded_tags.yaml", `
excluded:
  - custom:Noise
`)

	store, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	// File entry replaces the builtin for the same tag.
	res := store.Lookup("us-gaap:AccountsPayableCurrent")
	if res.Kind != KindResolved || res.Concept != "OtherCurrentLiabilities" {
		t.Errorf("override not applied: %+v", res)
	}
	// New tag from file.
	if res := store.Lookup("custom:NewTag"); res.Kind != KindResolved || res.Concept != "TradePayables" {
		t.Errorf("new file mapping not applied: %+v", res)
	}
	// Label override.
	if got := store.Label("TradePayables"); got != "Trade payables (overridden)" {
		t.Errorf("label override not applied: %q", got)
	}
	// Exclusion from file.
	if !store.Excluded("custom:Noise") {
		t.Error("file exclusion not applied")
	}
	// Untouched builtins survive.
	if res := store.Lookup("us-gaap:InventoryNet"); res.Kind != KindResolved {
		t.Errorf("unrelated builtin lost: %+v", res)
	}
}

func TestLoadHJSONOverridesWinLast(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "concept_mappings.yaml", `
mappings:
  - tag: custom:Disputed
    concepts: [TradePayables]
`)
	writeConfig(t, dir, "mapping_overrides.hjson", `{
  // analyst note: this belongs with accrued liabilities
  mappings: [
    {
      tag: custom:Disputed
      concepts: [AccruedLiabilities]
    }
  ]
  excluded: [
    dei:AuditorName
  ]
}`)

	store, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	res := store.Lookup("custom:Disputed")
	if res.Kind != KindResolved || res.Concept != "AccruedLiabilities" {
		t.Errorf("hjson override should win: %+v", res)
	}
	if !store.Excluded("dei:AuditorName") {
		t.Error("hjson exclusion not applied")
	}
}

func TestLoadRejectsUnknownConceptReference(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "concept_mappings.yaml", `
mappings:
  - tag: custom:Bad
    concepts: [NoSuchConcept]
`)
	if _, err := Load(dir); err == nil {
		t.Error("expected error for unknown concept reference")
	}
}

func TestLoadShippedConfigs(t *testing.T) {
	// The reference data shipped in configs/ must always load.
	store, err := Load(filepath.Join("..", "..", "..", "configs"))
	if err != nil {
		t.Fatal(err)
	}
	if res := store.Lookup("us-gaap:ContractWithCustomerLiabilityCurrent"); res.Kind != KindResolved {
		t.Errorf("shipped mapping missing: %+v", res)
	}
	if res := store.Lookup(models.Tag("nflx:ContentAssetsNoncurrent")); res.Kind != KindResolved {
		t.Errorf("shipped hjson override missing: %+v", res)
	}
}
