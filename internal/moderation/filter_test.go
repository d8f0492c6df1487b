package moderation

import "testing"

func TestContainsBannedContentCaseInsensitive(t *testing.T) {
	f := NewFilter([]string{"badword1", "badword2"}, nil)

	cases := []struct {
		text string
		want bool
	}{
		{"this contains badword1 right here", true},
		{"BADWORD1", true},
		{"BaDwOrD2 in mixed case", true},
		{"embedded: xbadword1x", true},
		{"perfectly fine message", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := f.ContainsBannedContent(tc.text); got != tc.want {
			t.Errorf("ContainsBannedContent(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsHostileTowardBot(t *testing.T) {
	f := NewFilter(nil, []string{"stupid", "shut up"})

	if !f.IsHostileTowardBot("you are SO STUPID") {
		t.Error("expected hostile match regardless of casing")
	}
	if !f.IsHostileTowardBot("oh just Shut Up already") {
		t.Error("expected multi-word hostile term to match")
	}
	if f.IsHostileTowardBot("hello friend") {
		t.Error("friendly text flagged as hostile")
	}
}

func TestNewFilterNormalizesTerms(t *testing.T) {
	f := NewFilter([]string{"  MiXeD  ", "", "ok"}, nil)

	if !f.ContainsBannedContent("a mixed bag") {
		t.Error("term should be trimmed and lowercased at construction")
	}
	if f.ContainsBannedContent("harmless") {
		t.Error("empty list entries must be dropped, not match everything")
	}
}
