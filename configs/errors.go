package configs

import (
	"errors"

	"github.com/reusee/e5"
)

var ErrValueNotFound = errors.New("value not found")

var wrap = e5.Wrap.With(e5.WrapStacktrace)
