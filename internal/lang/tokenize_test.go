package lang

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "words and period",
			text: "Mosadi o apea dijo.",
			want: []string{"Mosadi", "o", "apea", "dijo", "."},
		},
		{
			name: "punctuation as single tokens",
			text: "uma, kodwa!",
			want: []string{"uma", ",", "kodwa", "!"},
		},
		{
			name: "hyphenated compound splits",
			text: "mosadi-ngaka",
			want: []string{"mosadi", "ngaka"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStemmer_LongestPrefixFirst(t *testing.T) {
	// "izin-" must win over "izi-" and "in-" on izinkomo.
	s := NewStemmer([]string{"in-", "izi-", "izin-"})

	prefix, remainder := s.IdentifyPrefix("izinkomo")
	if prefix != "izin" {
		t.Errorf("Expected prefix 'izin', got %q", prefix)
	}
	if remainder != "komo" {
		t.Errorf("Expected remainder 'komo', got %q", remainder)
	}
}

func TestStemmer_NeverStripsToEmpty(t *testing.T) {
	s := NewStemmer([]string{"mo-", "ba-"})

	// A token equal to a prefix stays whole.
	prefix, remainder := s.IdentifyPrefix("mo")
	if prefix != "" {
		t.Errorf("Expected no prefix for bare 'mo', got %q", prefix)
	}
	if remainder != "mo" {
		t.Errorf("Expected remainder 'mo', got %q", remainder)
	}
}

func TestStemmer_LowercasesRemainder(t *testing.T) {
	s := NewStemmer([]string{"mo-"})

	stem, original := s.Stem("Mosadi")
	if stem != "sadi" {
		t.Errorf("Expected stem 'sadi', got %q", stem)
	}
	if original != "Mosadi" {
		t.Errorf("Expected original 'Mosadi', got %q", original)
	}
}

func TestStemmer_UnknownPrefixPassesThrough(t *testing.T) {
	s := NewStemmer([]string{"mo-", "ba-"})

	stem, _ := s.Stem("ngaka")
	if stem != "ngaka" {
		t.Errorf("Expected unknown token to pass through, got %q", stem)
	}
}
