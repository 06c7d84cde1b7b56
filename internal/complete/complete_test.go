package complete

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in           string
		lead, suffix string
	}{
		{"", "", ""},
		{"foo ", "foo ", ""},
		{"foo bar", "foo ", "bar"},
		{"foo", "", "foo"},
		{"git commit -m", "git commit ", "-m"},
		{" ", " ", ""},
		{"a  b", "a  ", "b"},
	}
	for _, tt := range tests {
		lead, frag := Split(tt.in)
		if lead != tt.lead || frag != tt.suffix {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.in, lead, frag, tt.lead, tt.suffix)
		}
		if lead+frag != tt.in {
			t.Errorf("Split(%q) does not reassemble: %q + %q", tt.in, lead, frag)
		}
	}
}

func TestStatic_Substring(t *testing.T) {
	s := NewStatic([]string{"com.whatsapp", "com.spotify.music"})
	if diff := cmp.Diff([]string{"com.spotify.music"}, s.Candidates("spot")); diff != "" {
		t.Fatalf("spot (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"com.whatsapp", "com.spotify.music"}, s.Candidates("COM.")); diff != "" {
		t.Fatalf("case-insensitive, order kept (-want +got):\n%s", diff)
	}
	if got := s.Candidates("xyz-no-match"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestStatic_BlankBuffer(t *testing.T) {
	s := NewStatic(DefaultChoices)
	for _, q := range []string{"", " ", "\t  "} {
		if got := s.Candidates(q); len(got) != 0 {
			t.Errorf("Candidates(%q) = %v, want empty", q, got)
		}
	}
}

func TestStatic_DoesNotSplit(t *testing.T) {
	s := NewStatic([]string{"open spotify", "spotify"})
	// the raw buffer, including the space, is the needle
	if diff := cmp.Diff([]string{"open spotify"}, s.Candidates("n sp")); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestStatic_ItemsIsACopy(t *testing.T) {
	src := []string{"a", "b"}
	s := NewStatic(src)
	src[0] = "z"
	items := s.Items()
	items[1] = "y"
	if diff := cmp.Diff([]string{"a", "b"}, s.Items()); diff != "" {
		t.Fatalf("static items leaked (-want +got):\n%s", diff)
	}
}

func TestStatic_Fuzzy(t *testing.T) {
	s := NewStatic(DefaultChoices, WithFuzzy())
	got := s.Candidates("spmu")
	if len(got) == 0 || got[0] != "com.spotify.music" {
		t.Fatalf("fuzzy spmu = %v, want com.spotify.music first", got)
	}
	if got := s.Candidates("   "); len(got) != 0 {
		t.Fatalf("fuzzy blank = %v, want empty", got)
	}
}

func TestExternal_LeadAndDedupe(t *testing.T) {
	var asked []string
	e := NewExternal(func(fragment string) ([]string, error) {
		asked = append(asked, fragment)
		return []string{"status", "", "stash", "status"}, nil
	})
	got := e.Candidates("git st")
	want := []string{"git status", "git stash"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"st"}, asked); diff != "" {
		t.Fatalf("fragment passed to completer (-want +got):\n%s", diff)
	}
}

func TestExternal_TrailingSpaceAsksForEmptyFragment(t *testing.T) {
	var asked string
	e := NewExternal(func(fragment string) ([]string, error) {
		asked = fragment
		return []string{"x"}, nil
	})
	got := e.Candidates("ls ")
	if asked != "" {
		t.Fatalf("expected empty fragment, got %q", asked)
	}
	if diff := cmp.Diff([]string{"ls x"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExternal_FailuresYieldEmpty(t *testing.T) {
	tests := map[string]FragmentFunc{
		"error": func(string) ([]string, error) { return []string{"partial"}, errors.New("boom") },
		"panic": func(string) ([]string, error) { panic("kaboom") },
		"nil":   nil,
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewExternal(fn).Candidates("abc"); len(got) != 0 {
				t.Fatalf("expected empty, got %v", got)
			}
		})
	}
}

func TestExternal_BlankBufferSkipsCompleter(t *testing.T) {
	called := false
	e := NewExternal(func(string) ([]string, error) {
		called = true
		return []string{"x"}, nil
	})
	if got := e.Candidates("  "); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if called {
		t.Fatalf("completer must not run for a blank buffer")
	}
}

func TestCompgen_Script(t *testing.T) {
	c := DefaultCompgen()
	tests := []struct {
		fragment string
		want     string
	}{
		{"ls", "compgen -cdfa -- ls"},
		{"", "compgen -cdfa -- ''"},
		{"a b", "compgen -cdfa -- 'a b'"},
		{"$(rm -rf)", "compgen -cdfa -- '$(rm -rf)'"},
	}
	for _, tt := range tests {
		if got := c.Script(tt.fragment); got != tt.want {
			t.Errorf("Script(%q) = %q, want %q", tt.fragment, got, tt.want)
		}
	}
	if got := (Compgen{Flags: "-c"}).Script("x"); got != "compgen -c -- x" {
		t.Errorf("custom flags: %q", got)
	}
}

func TestCompgen_MissingShell(t *testing.T) {
	c := Compgen{Shell: "/nonexistent/panelinput-shell", Timeout: time.Second}
	if _, err := c.Complete("ls"); err == nil {
		t.Fatalf("expected launch error")
	}
	if got := NewExternal(c.Complete).Candidates("ls"); len(got) != 0 {
		t.Fatalf("expected empty candidates, got %v", got)
	}
}

func TestCompgen_Bash(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	c := Compgen{Shell: "bash", Flags: "-c", Timeout: 5 * time.Second}
	got := NewExternal(c.Complete).Candidates("command ech")
	found := false
	for _, g := range got {
		if !strings.HasPrefix(g, "command ") {
			t.Fatalf("candidate %q lost its lead", g)
		}
		if g == "command echo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected builtin echo among %v", got)
	}
}

func TestCompgen_TimeoutWithBackgroundedChild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	cases := []struct {
		name, body string
	}{
		{"shell exits", "(sleep 6) &\necho ls\nexit 0\n"},
		{"shell hangs", "(sleep 6) &\necho ls\nsleep 6\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sh := filepath.Join(t.TempDir(), "fakesh")
			if err := os.WriteFile(sh, []byte("#!/bin/sh\n"+tc.body), 0o755); err != nil {
				t.Fatal(err)
			}
			c := Compgen{Shell: sh, Timeout: time.Second}
			start := time.Now()
			_, _ = c.Complete("ls")
			if elapsed := time.Since(start); elapsed > 2*time.Second {
				t.Fatalf("completer blocked %v with a 1s timeout", elapsed)
			}
		})
	}
}
