package blocks

import "testing"

func TestStats_RecordRemoval(t *testing.T) {
	s := NewStats()
	s.RecordRemoval("SCRIPT")
	s.RecordRemoval("script")
	s.RecordRemoval("style")

	if s.Removed["script"] != 2 {
		t.Errorf("script = %d, want 2", s.Removed["script"])
	}
	if s.TotalRemoved() != 3 {
		t.Errorf("TotalRemoved() = %d, want 3", s.TotalRemoved())
	}
}

func TestStats_String(t *testing.T) {
	s := NewStats()
	if s.String() != "none" {
		t.Errorf("empty String() = %q", s.String())
	}

	s.RecordRemoval("style")
	s.RecordRemoval("script")
	s.RecordRemoval("script")
	if got := s.String(); got != "script=2, style=1" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsRawTextTag(t *testing.T) {
	for _, tag := range []string{"script", "STYLE", "noscript", "title"} {
		if !IsRawTextTag(tag) {
			t.Errorf("IsRawTextTag(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "body", "plaintext", ""} {
		if IsRawTextTag(tag) {
			t.Errorf("IsRawTextTag(%q) = true", tag)
		}
	}
}
