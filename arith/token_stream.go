package arith

type TokenStream interface {
	Next() (Token, error)
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Next() (Token, error) {
	if s.idx >= len(s.tokens) {
		return Token{Kind: TokenEOF}, nil
	}
	token := s.tokens[s.idx]
	s.idx++
	return token, nil
}
