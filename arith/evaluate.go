package arith

type Options struct {
	Name     string // source name used when rendering error positions
	Overflow OverflowPolicy
	Strict   bool        // reject input left after a complete expression
	OnToken  func(Token) // called with every token the evaluator reads
}

// Evaluate runs a fresh tokenizer and evaluator over content.
func Evaluate(content string, options Options) (int64, error) {
	source := NewSource(options.Name, content)

	var stream TokenStream = NewTokenizer(source, options.Overflow)
	if options.OnToken != nil {
		stream = tapStream{
			upstream: stream,
			fn:       options.OnToken,
		}
	}

	evaluator, err := NewEvaluator(stream, options.Overflow)
	if err != nil {
		return 0, WithPos(err)
	}

	var result int64
	if options.Strict {
		result, err = evaluator.EvaluateAll()
	} else {
		result, err = evaluator.Evaluate()
	}
	if err != nil {
		return 0, WithPos(err)
	}
	return result, nil
}

type tapStream struct {
	upstream TokenStream
	fn       func(Token)
}

func (t tapStream) Next() (Token, error) {
	token, err := t.upstream.Next()
	if err == nil {
		t.fn(token)
	}
	return token, err
}
