package stackpp

import (
	"reflect"
	"testing"
)

func TestTokenizeSimple(t *testing.T) {
	tokens := Tokenize("3 4 add")
	want := []string{"3", "4", "add"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeWhitespaceKinds(t *testing.T) {
	// Space, tab, newline, carriage return and full-width space all split
	tokens := Tokenize("1\t2\n3\r4　5")
	want := []string{"1", "2", "3", "4", "5"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeNestedBraces(t *testing.T) {
	tokens := Tokenize("{1 {2 3} 4} add")
	want := []string{"{1 {2 3} 4}", "add"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeDeeplyNestedSingleToken(t *testing.T) {
	// A span with internally balanced braces is exactly one token
	tokens := Tokenize("{{{1} 2} {3}}")
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0] != "{{{1} 2} {3}}" {
		t.Errorf("Expected whole span, got %q", tokens[0])
	}
}

func TestTokenizeQuotedString(t *testing.T) {
	tokens := Tokenize(`"hello world" print`)
	want := []string{`"hello world"`, "print"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeQuotePreservesAllWhitespace(t *testing.T) {
	tokens := Tokenize("\"a\tb\nc\"")
	if len(tokens) != 1 || tokens[0] != "\"a\tb\nc\"" {
		t.Errorf("Expected one token with whitespace intact, got %v", tokens)
	}
}

func TestTokenizeBraceInsideQuote(t *testing.T) {
	// Braces inside a quoted span are ordinary text
	tokens := Tokenize(`"a{b}c"`)
	want := []string{`"a{b}c"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeQuoteInsideBlock(t *testing.T) {
	// Quoting does not toggle inside an open block; the quotes ride along
	tokens := Tokenize(`{"hi" print}`)
	want := []string{`{"hi" print}`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeUnterminatedBraceDropped(t *testing.T) {
	tokens := Tokenize("1 {2 3")
	want := []string{"1"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected unterminated block to vanish, got %v", tokens)
	}
}

func TestTokenizeUnterminatedQuoteDropped(t *testing.T) {
	tokens := Tokenize(`1 "abc`)
	want := []string{"1"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected unterminated string to vanish, got %v", tokens)
	}
}

func TestTokenizeStrayCloseBrace(t *testing.T) {
	// A close brace at depth zero disappears without error
	tokens := Tokenize("} 5")
	want := []string{"5"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens, got %v", tokens)
	}
	if tokens := Tokenize("  \n\t "); len(tokens) != 0 {
		t.Errorf("Expected no tokens from whitespace, got %v", tokens)
	}
}
