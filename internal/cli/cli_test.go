package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"panelinput/internal/config"
	"panelinput/internal/store"
	tu "panelinput/internal/testutil"
	"panelinput/pkg/panelinput"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestStaticChoicesPrecedence(t *testing.T) {
	tu.ConfigHome(t)
	cfg := config.Default()

	got, err := staticChoices(cfg, []string{" b ", "a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Fatalf("args (-want +got):\n%s", diff)
	}

	cfg.Choices = []string{"from-config"}
	got, _ = staticChoices(cfg, nil)
	if diff := cmp.Diff([]string{"from-config"}, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}

	if err := store.Save([]string{"saved"}); err != nil {
		t.Fatal(err)
	}
	got, _ = staticChoices(cfg, nil)
	if diff := cmp.Diff([]string{"saved"}, got); diff != "" {
		t.Fatalf("choices.json (-want +got):\n%s", diff)
	}

	cfg.Choices = nil
	if err := store.Save(nil); err != nil {
		t.Fatal(err)
	}
	got, _ = staticChoices(cfg, nil)
	if diff := cmp.Diff(panelinput.DefaultChoices(), got); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
}

func TestChoicesCommands(t *testing.T) {
	tu.ConfigHome(t)
	if out := run(t, "choices", "ls"); strings.TrimSpace(out) != "(empty)" {
		t.Fatalf("ls empty = %q", out)
	}
	out := run(t, "choices", "add", "alpha", "beta", "alpha")
	if !strings.Contains(out, "added: alpha") || !strings.Contains(out, "exists: alpha") {
		t.Fatalf("add = %q", out)
	}
	out = run(t, "choices", "rm", "alpha", "gamma")
	if !strings.Contains(out, "removed: alpha") || !strings.Contains(out, "not found: gamma") {
		t.Fatalf("rm = %q", out)
	}
	if out := run(t, "choices", "ls"); out != "beta\n" {
		t.Fatalf("ls = %q", out)
	}
}

func TestConfigCommands(t *testing.T) {
	tu.ConfigHome(t)
	p, _ := config.Path()
	if out := run(t, "config"); strings.TrimSpace(out) != p {
		t.Fatalf("config = %q, want %q", out, p)
	}
	if out := run(t, "config", "schema"); !strings.Contains(out, `"max_rows"`) {
		t.Fatalf("schema missing max_rows:\n%s", out)
	}
	if out := run(t, "config", "show"); !strings.Contains(out, "width: 46") {
		t.Fatalf("show:\n%s", out)
	}
}

func TestNewInputRejectsBadStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Style = map[string]string{"footer": "ansinotacolor"}
	if _, err := newInput(cfg, nil); err == nil {
		t.Fatalf("expected style error")
	}
	cfg = config.Default()
	cfg.Source = config.SourceStatic
	in, err := newInput(cfg, []string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, in.Choices()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
