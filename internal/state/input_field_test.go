package state

import "testing"

func TestInputFieldEditing(t *testing.T) {
	var f InputField
	f.Set("*.go")

	f.MoveCursor("home")
	f.Insert('x')
	if f.Value != "x*.go" || f.Cursor != 1 {
		t.Fatalf("after insert got %q cursor %d", f.Value, f.Cursor)
	}

	f.Delete()
	if f.Value != "x.go" {
		t.Fatalf("after delete got %q", f.Value)
	}

	f.Backspace()
	if f.Value != ".go" || f.Cursor != 0 {
		t.Fatalf("after backspace got %q cursor %d", f.Value, f.Cursor)
	}

	f.Backspace()
	if f.Value != ".go" {
		t.Fatalf("backspace at start should be a no-op, got %q", f.Value)
	}

	f.MoveCursor("end")
	f.MoveCursor("right")
	if f.Cursor != 3 {
		t.Fatalf("cursor should clamp at end, got %d", f.Cursor)
	}
}

func TestInputFieldMultiByteRunes(t *testing.T) {
	var f InputField
	f.Set("zażółć")
	f.Backspace()
	if f.Value != "zażół" {
		t.Fatalf("expected rune-aware backspace, got %q", f.Value)
	}
}

func TestInputFieldDeleteWord(t *testing.T) {
	var f InputField
	f.Set("hello big world  ")
	f.DeleteWord()
	if f.Value != "hello big " {
		t.Fatalf("got %q", f.Value)
	}
	f.DeleteWord()
	f.DeleteWord()
	f.DeleteWord()
	if f.Value != "" || f.Cursor != 0 {
		t.Fatalf("expected empty field, got %q cursor %d", f.Value, f.Cursor)
	}
}

func TestInputFieldHistory(t *testing.T) {
	var f InputField
	f.Remember("one")
	f.Remember("two")
	f.Remember("one")
	f.Remember("")

	if len(f.History) != 2 || f.History[0] != "one" || f.History[1] != "two" {
		t.Fatalf("unexpected history %v", f.History)
	}

	f.Set("draft")
	f.Recall("older")
	if f.Value != "one" {
		t.Fatalf("expected newest history entry, got %q", f.Value)
	}
	f.Recall("older")
	f.Recall("older")
	if f.Value != "two" {
		t.Fatalf("expected oldest entry to stick, got %q", f.Value)
	}
	f.Recall("newer")
	f.Recall("newer")
	if f.Value != "draft" {
		t.Fatalf("expected draft restored, got %q", f.Value)
	}
}

func TestInputFieldHistoryIsCapped(t *testing.T) {
	var f InputField
	for i := 0; i < maxFieldHistory+5; i++ {
		f.Remember(string(rune('a' + i)))
	}
	if len(f.History) != maxFieldHistory {
		t.Fatalf("expected %d entries, got %d", maxFieldHistory, len(f.History))
	}
}
