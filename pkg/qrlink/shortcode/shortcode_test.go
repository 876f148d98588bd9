package shortcode

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	code, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(code) != Length {
		t.Errorf("Expected %d characters, got %d (%s)", Length, len(code), code)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	code, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, c := range code {
		if !strings.ContainsRune(Alphabet, c) {
			t.Errorf("Character %q not in alphabet", c)
		}
	}
}

func TestGenerateNoAmbiguousChars(t *testing.T) {
	// Generate many codes to increase confidence
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, c := range "0Oo1lI" {
			if strings.ContainsRune(code, c) {
				t.Errorf("Code %s contains ambiguous character %q", code, c)
			}
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	code1, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	code2, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	// Extremely unlikely to collide in a 56^7 keyspace
	if code1 == code2 {
		t.Errorf("Expected distinct codes, got %s twice", code1)
	}
}

func TestAlphabetSize(t *testing.T) {
	if len(Alphabet) != 56 {
		t.Errorf("Expected 56 symbols, got %d", len(Alphabet))
	}
}
