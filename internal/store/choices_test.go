package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	tu "panelinput/internal/testutil"
)

func TestNormalizeKeepsOrder(t *testing.T) {
	got := Normalize([]string{" b", "a", "", "b", "c ", "a"})
	if diff := cmp.Diff([]string{"b", "a", "c"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestChoices_SaveLoad_AddRemove(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty choices, got %v", got)
	}

	if err := Save([]string{"zeta", "alpha", "zeta"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	added, existed, err := Add([]string{"beta", "alpha", "beta"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if diff := cmp.Diff([]string{"beta"}, added); diff != "" {
		t.Fatalf("added (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, existed); diff != "" {
		t.Fatalf("existed (-want +got):\n%s", diff)
	}

	removed, missing, err := Remove([]string{"zeta", "gamma"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta"}, removed); diff != "" {
		t.Fatalf("removed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"gamma"}, missing); diff != "" {
		t.Fatalf("missing (-want +got):\n%s", diff)
	}

	final, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, final); diff != "" {
		t.Fatalf("final (-want +got):\n%s", diff)
	}
}

func TestLoadFile_BadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "choices.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected error for bad JSON")
	}
	if err := SaveFile(" ", nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
