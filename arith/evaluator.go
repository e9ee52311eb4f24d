package arith

// Evaluator parses and reduces in one pass, holding exactly one token of
// lookahead. It is the only reader of its stream.
type Evaluator struct {
	stream   TokenStream
	overflow OverflowPolicy
	current  Token
}

// NewEvaluator reads the first token, so a malformed first character fails here.
func NewEvaluator(stream TokenStream, overflow OverflowPolicy) (*Evaluator, error) {
	first, err := stream.Next()
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		stream:   stream,
		overflow: overflow,
		current:  first,
	}, nil
}

// Current returns the lookahead token.
func (e *Evaluator) Current() Token {
	return e.current
}

// Evaluate reduces one expression starting at the lookahead. Tokens after a
// complete expression are left unread.
func (e *Evaluator) Evaluate() (int64, error) {
	return e.expression()
}

// EvaluateAll is like Evaluate but requires the input to be exhausted.
func (e *Evaluator) EvaluateAll() (int64, error) {
	result, err := e.expression()
	if err != nil {
		return 0, err
	}
	if !e.current.Is(TokenEOF) {
		return 0, &Error{
			Kind:  TrailingInput,
			Pos:   e.current.Pos,
			Found: e.current,
		}
	}
	return result, nil
}

func (e *Evaluator) eat(kind TokenKind) error {
	if !e.current.Is(kind) {
		return &Error{
			Kind:     TokenMismatch,
			Pos:      e.current.Pos,
			Expected: Token{Kind: kind},
			Found:    e.current,
		}
	}
	next, err := e.stream.Next()
	if err != nil {
		return err
	}
	e.current = next
	return nil
}

// expression := term (('+' | '-') term)*
func (e *Evaluator) expression() (int64, error) {
	result, err := e.term()
	if err != nil {
		return 0, err
	}

	for {
		op := e.current
		if !op.Is(TokenPlus) && !op.Is(TokenMinus) {
			return result, nil
		}
		if err := e.eat(op.Kind); err != nil {
			return 0, err
		}
		rhs, err := e.term()
		if err != nil {
			return 0, err
		}

		var ok bool
		if op.Is(TokenPlus) {
			result, ok = e.overflow.add(result, rhs)
		} else {
			result, ok = e.overflow.sub(result, rhs)
		}
		if !ok {
			return 0, &Error{
				Kind: ArithmeticOverflow,
				Pos:  op.Pos,
			}
		}
	}
}

// term := factor (('*' | '/') factor)*
func (e *Evaluator) term() (int64, error) {
	result, err := e.factor()
	if err != nil {
		return 0, err
	}

	for {
		op := e.current
		if !op.Is(TokenStar) && !op.Is(TokenSlash) {
			return result, nil
		}
		if err := e.eat(op.Kind); err != nil {
			return 0, err
		}
		rhs, err := e.factor()
		if err != nil {
			return 0, err
		}

		var ok bool
		if op.Is(TokenStar) {
			result, ok = e.overflow.mul(result, rhs)
		} else {
			if rhs == 0 {
				return 0, &Error{
					Kind: DivisionByZero,
					Pos:  op.Pos,
				}
			}
			result, ok = e.overflow.div(result, rhs)
		}
		if !ok {
			return 0, &Error{
				Kind: ArithmeticOverflow,
				Pos:  op.Pos,
			}
		}
	}
}

// factor := Number | '(' expression ')'
func (e *Evaluator) factor() (int64, error) {
	t := e.current

	switch t.Kind {
	case TokenNumber:
		if err := e.eat(TokenNumber); err != nil {
			return 0, err
		}
		return t.Value, nil

	case TokenLParen:
		if err := e.eat(TokenLParen); err != nil {
			return 0, err
		}
		result, err := e.expression()
		if err != nil {
			return 0, err
		}
		if err := e.eat(TokenRParen); err != nil {
			return 0, err
		}
		return result, nil
	}

	return 0, &Error{
		Kind:  UnexpectedToken,
		Pos:   t.Pos,
		Found: t,
	}
}
