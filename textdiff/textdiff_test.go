package textdiff

import (
	"strings"
	"testing"
)

func TestUnifiedEqual(t *testing.T) {
	s := "a\nb\nc\n"
	if d := Unified(s, s); d != "" {
		t.Fatalf("expected empty diff, got %q", d)
	}
}

func TestUnifiedChange(t *testing.T) {
	from := "[OBJECT:ITEM]\n[ITEM_WEAPON:SWORD]\n[NAME:sword]\n"
	to := "[OBJECT:ITEM]\n[ITEM_WEAPON:SWORD]\n[NAME:blade]\n"
	d := Unified(from, to)
	if !strings.Contains(d, "-[NAME:sword]\n") {
		t.Errorf("missing deletion in %q", d)
	}
	if !strings.Contains(d, "+[NAME:blade]\n") {
		t.Errorf("missing insertion in %q", d)
	}
	if !strings.Contains(d, " [OBJECT:ITEM]\n") {
		t.Errorf("missing context in %q", d)
	}
}

func TestUnifiedNoTrailingNewline(t *testing.T) {
	d := Unified("a", "b")
	if !strings.HasSuffix(d, "\n") {
		t.Errorf("diff should end in newline, got %q", d)
	}
	if !strings.Contains(d, "-a\n") || !strings.Contains(d, "+b\n") {
		t.Errorf("unexpected diff %q", d)
	}
}
