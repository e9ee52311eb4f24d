package arith

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer produces tokens from an in-memory source. The cursor only moves
// forward and always rests on a token boundary.
type Tokenizer struct {
	source   *Source
	input    string
	overflow OverflowPolicy

	cursor int
	line   int
	column int

	err error
}

var _ TokenStream = new(Tokenizer)

func NewTokenizer(source *Source, overflow OverflowPolicy) *Tokenizer {
	return &Tokenizer{
		source:   source,
		input:    source.Content,
		overflow: overflow,
		line:     1,
		column:   1,
	}
}

func (t *Tokenizer) pos() Pos {
	return Pos{
		Source: t.source,
		Offset: t.cursor,
		Line:   t.line,
		Column: t.column,
	}
}

func (t *Tokenizer) peekRune() (rune, int) {
	if t.cursor >= len(t.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(t.input[t.cursor:])
}

func (t *Tokenizer) advance(r rune, size int) {
	t.cursor += size
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// Next returns the next token. At end of input it keeps returning TokenEOF;
// after a lexical error it keeps returning that error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}

	t.skipWhitespace()
	startPos := t.pos()

	r, size := t.peekRune()
	if size == 0 {
		return Token{Kind: TokenEOF, Pos: startPos}, nil
	}

	if isDigit(r) {
		return t.parseNumber(startPos)
	}

	kind, ok := symbolKinds[r]
	if !ok {
		t.err = &Error{
			Kind: InvalidCharacter,
			Pos:  startPos,
			Char: r,
		}
		return Token{}, t.err
	}
	t.advance(r, size)

	return Token{
		Kind: kind,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, size := t.peekRune()
		if size == 0 || !unicode.IsSpace(r) {
			return
		}
		t.advance(r, size)
	}
}

func (t *Tokenizer) parseNumber(startPos Pos) (Token, error) {
	start := t.cursor
	end := start
	for end < len(t.input) && isDigit(rune(t.input[end])) {
		end++
	}

	var value int64
	for i := start; i < end; i++ {
		var ok bool
		value, ok = t.overflow.appendDigit(value, int64(t.input[i]-'0'))
		if !ok {
			t.err = &Error{
				Kind: NumberOverflow,
				Pos:  startPos,
				Text: t.input[start:end],
			}
			return Token{}, t.err
		}
	}

	t.cursor = end
	t.column += end - start

	return Token{
		Kind:  TokenNumber,
		Value: value,
		Pos:   startPos,
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize collects every token of content, ending with TokenEOF.
func Tokenize(content string, overflow OverflowPolicy) ([]Token, error) {
	tokenizer := NewTokenizer(NewSource("", content), overflow)
	var tokens []Token
	for {
		token, err := tokenizer.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
