package arith

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizer(t *testing.T) {
	type TokenInfo struct {
		Kind  TokenKind
		Value int64
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "",
			tokens: []TokenInfo{
				{TokenEOF, 0},
			},
		},
		{
			input: "42",
			tokens: []TokenInfo{
				{TokenNumber, 42},
				{TokenEOF, 0},
			},
		},
		{
			input: "  1 +\t23\n* (4-5)/6 ",
			tokens: []TokenInfo{
				{TokenNumber, 1},
				{TokenPlus, 0},
				{TokenNumber, 23},
				{TokenStar, 0},
				{TokenLParen, 0},
				{TokenNumber, 4},
				{TokenMinus, 0},
				{TokenNumber, 5},
				{TokenRParen, 0},
				{TokenSlash, 0},
				{TokenNumber, 6},
				{TokenEOF, 0},
			},
		},
		{
			input: "007",
			tokens: []TokenInfo{
				{TokenNumber, 7},
				{TokenEOF, 0},
			},
		},
		{
			input: "1 2",
			tokens: []TokenInfo{
				{TokenNumber, 1},
				{TokenNumber, 2},
				{TokenEOF, 0},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokenizer := NewTokenizer(NewSource("", test.input), OverflowFail)
			for i, expected := range test.tokens {
				token, err := tokenizer.Next()
				if err != nil {
					t.Fatalf("step %d: unexpected error: %v", i, err)
				}
				if token.Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v", i, expected.Kind, token.Kind)
				}
				if token.Value != expected.Value {
					t.Errorf("step %d: expected value %d, got %d", i, expected.Value, token.Value)
				}
			}
		})
	}
}

func TestTokenizerEOFRepeats(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("", " 1 "), OverflowFail)
	if _, err := tokenizer.Next(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		token, err := tokenizer.Next()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != TokenEOF {
			t.Fatalf("got %v", token)
		}
		if token.Pos.Offset != 3 {
			t.Fatalf("got %v", token.Pos.Offset)
		}
	}
}

func TestTokenizerInvalidCharacter(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("", "1 @ 2"), OverflowFail)
	if _, err := tokenizer.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := tokenizer.Next()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Kind != InvalidCharacter || e.Char != '@' {
		t.Fatalf("got %+v", e)
	}
	if e.Pos.Offset != 2 || e.Pos.Column != 3 {
		t.Fatalf("got %+v", e.Pos)
	}
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatal()
	}

	// sticky
	_, err2 := tokenizer.Next()
	if err2 != err {
		t.Fatalf("got %v", err2)
	}
}

func TestTokenizerNonASCII(t *testing.T) {
	_, err := Tokenize("1 + ３", OverflowFail)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Char != '３' {
		t.Fatalf("got %q", e.Char)
	}
}

func TestTokenizerPositions(t *testing.T) {
	tokens, err := Tokenize("1 +\n  (2)", OverflowFail)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Pos{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 6, Line: 2, Column: 3},
		{Offset: 7, Line: 2, Column: 4},
		{Offset: 8, Line: 2, Column: 5},
		{Offset: 9, Line: 2, Column: 6},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, token := range tokens {
		pos := token.Pos
		pos.Source = nil
		if pos != expected[i] {
			t.Errorf("token %d: got %+v", i, pos)
		}
	}
}

func TestTokenizerIdempotent(t *testing.T) {
	input := "3 + 4 * (10 - 2) / 7"
	a, err := Tokenize(input, OverflowFail)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Tokenize(input, OverflowFail)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("token sequences differ:\n%s", diff)
	}
}

func TestTokenizerNumberOverflow(t *testing.T) {
	input := "99999999999999999999"

	_, err := Tokenize(input, OverflowFail)
	if !errors.Is(err, ErrNumberOverflow) {
		t.Fatalf("got %v", err)
	}
	if KindOf(err) != NumberOverflow {
		t.Fatalf("got %v", KindOf(err))
	}

	tokens, err := Tokenize(input, OverflowSaturate)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Value != math.MaxInt64 {
		t.Fatalf("got %d", tokens[0].Value)
	}

	tokens, err = Tokenize(input, OverflowWrap)
	if err != nil {
		t.Fatal(err)
	}
	// 99999999999999999999 mod 2^64
	if uint64(tokens[0].Value) != 7766279631452241919 {
		t.Fatalf("got %d", tokens[0].Value)
	}

	tokens, err = Tokenize("9223372036854775807", OverflowFail)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Value != math.MaxInt64 {
		t.Fatalf("got %d", tokens[0].Value)
	}
}
