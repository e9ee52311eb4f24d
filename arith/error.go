package arith

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	InvalidCharacter ErrorKind = iota + 1
	UnexpectedToken
	TokenMismatch
	DivisionByZero
	NumberOverflow
	ArithmeticOverflow
	TrailingInput
)

var (
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrTokenMismatch      = errors.New("token mismatch")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNumberOverflow     = errors.New("number overflow")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrTrailingInput      = errors.New("trailing input")
)

var kindErrors = map[ErrorKind]error{
	InvalidCharacter:   ErrInvalidCharacter,
	UnexpectedToken:    ErrUnexpectedToken,
	TokenMismatch:      ErrTokenMismatch,
	DivisionByZero:     ErrDivisionByZero,
	NumberOverflow:     ErrNumberOverflow,
	ArithmeticOverflow: ErrArithmeticOverflow,
	TrailingInput:      ErrTrailingInput,
}

func (k ErrorKind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is the failure result of an evaluation. Every Error is terminal.
type Error struct {
	Kind     ErrorKind
	Pos      Pos
	Char     rune   // InvalidCharacter
	Text     string // NumberOverflow
	Expected Token  // TokenMismatch
	Found    Token  // UnexpectedToken, TokenMismatch, TrailingInput
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character: %q", e.Char)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token: %v", e.Found)
	case TokenMismatch:
		return fmt.Sprintf("expected token %v, found %v", e.Expected.Kind, e.Found)
	case NumberOverflow:
		return fmt.Sprintf("number overflow: %s", e.Text)
	case TrailingInput:
		return fmt.Sprintf("trailing input: %v", e.Found)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return kindErrors[e.Kind]
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil || p.Pos.Source.Name == "" {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Pos.Source.Lines) {
		line := p.Pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithPos attaches the position of an *Error for rendering.
func WithPos(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return PosError{
		Err: err,
		Pos: e.Pos,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
