package logs

import "context"

type Span string

type spanKey struct{}

// SpanKey is the context key of the current Span.
var SpanKey spanKey

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}
