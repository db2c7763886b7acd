package profile

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
name: demo-dataset
description: small demo corpus
out_dir: ./demo_output
target_mb: 256
extensions: [txt, json, png]
ranges:
  txt:
    min_kb: 8
    max_kb: 128
approx_files: 500
seed: 42
dry_run: true
`

func TestFromYAML(t *testing.T) {
	prof, err := FromYAML(sampleYAML)
	if err != nil {
		t.Fatalf("failed to parse profile: %v", err)
	}

	if prof.Name != "demo-dataset" {
		t.Fatalf("unexpected name %q", prof.Name)
	}
	if prof.TargetMB != 256 {
		t.Fatalf("unexpected target %d", prof.TargetMB)
	}
	if len(prof.Extensions) != 3 || prof.Extensions[0] != "txt" {
		t.Fatalf("unexpected extensions %v", prof.Extensions)
	}
	r, ok := prof.Ranges["txt"]
	if !ok || r.MinKB != 8 || r.MaxKB != 128 {
		t.Fatalf("unexpected txt range %+v", r)
	}
	if prof.Seed == nil || *prof.Seed != 42 {
		t.Fatalf("expected seed 42, got %v", prof.Seed)
	}
	if prof.DryRun == nil || !*prof.DryRun {
		t.Fatalf("expected dry_run true")
	}
}

func TestFromYAMLRequiresName(t *testing.T) {
	if _, err := FromYAML("target_mb: 100\n"); err == nil {
		t.Fatalf("expected error for profile without a name")
	}
}

func TestFromYAMLEmpty(t *testing.T) {
	if _, err := FromYAML("  \n "); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	prof, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if prof.Source != path {
		t.Fatalf("expected source %q, got %q", path, prof.Source)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing profile file")
	}
}

func TestLoadEmbeddedBase64(t *testing.T) {
	old := EmbeddedProfileYAML
	defer func() { EmbeddedProfileYAML = old }()

	EmbeddedProfileYAML = base64.StdEncoding.EncodeToString([]byte(sampleYAML))
	prof, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded profile: %v", err)
	}
	if prof.Name != "demo-dataset" || prof.Source != "embedded" {
		t.Fatalf("unexpected embedded profile %+v", prof)
	}
}

func TestHasEmbedded(t *testing.T) {
	old := EmbeddedProfileYAML
	defer func() { EmbeddedProfileYAML = old }()

	EmbeddedProfileYAML = ""
	if HasEmbedded() {
		t.Fatalf("expected no embedded profile")
	}
	EmbeddedProfileYAML = "name: x"
	if !HasEmbedded() {
		t.Fatalf("expected embedded profile")
	}
}
