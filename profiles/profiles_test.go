package profiles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_ContainsStrict(t *testing.T) {
	set := Default()
	p, err := set.Lookup("strict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Granularity != 10 {
		t.Fatalf("granularity = %d, want 10", p.Granularity)
	}
}

func TestLookup_UnknownProfile(t *testing.T) {
	set := Default()
	if _, err := set.Lookup("nonexistent"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}

func TestLoadFromFile_OverridesAndMerges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")
	const body = `[{"name":"strict","epsilon":0.5,"granularity":12},{"name":"custom","rho":0.25,"granularity":6}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	set, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	strict, err := set.Lookup("strict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict.Granularity != 12 {
		t.Fatalf("overridden strict.granularity = %d, want 12", strict.Granularity)
	}
	custom, err := set.Lookup("custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom.Granularity != 6 {
		t.Fatalf("custom.granularity = %d, want 6", custom.Granularity)
	}
	if _, err := set.Lookup("standard"); err != nil {
		t.Fatalf("expected default profile 'standard' to survive merge: %v", err)
	}
}

func TestLoadFromFile_MissingFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
