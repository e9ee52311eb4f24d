package arith

import "strconv"

type Token struct {
	Kind  TokenKind
	Value int64
	Pos   Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenEOF
)

var kindTexts = [...]string{
	TokenInvalid: "invalid",
	TokenNumber:  "number",
	TokenPlus:    "+",
	TokenMinus:   "-",
	TokenStar:    "*",
	TokenSlash:   "/",
	TokenLParen:  "(",
	TokenRParen:  ")",
	TokenEOF:     "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(kindTexts) {
		return kindTexts[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

var symbolKinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
}

// Is reports whether the token has the given kind. Values are not compared.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// Equal compares kind and, for numbers, value. Positions are ignored.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == TokenNumber {
		return t.Value == other.Value
	}
	return true
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Kind.String()
}
