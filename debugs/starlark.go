package debugs

import (
	"errors"
	"fmt"

	"github.com/reusee/arith/arith"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)

	case arith.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("text"), starlark.String(v.String()))
		d.SetKey(starlark.String("offset"), starlark.MakeInt(v.Pos.Offset))
		if v.Kind == arith.TokenNumber {
			d.SetKey(starlark.String("value"), starlark.MakeInt64(v.Value))
		}
		return d

	case []arith.Token:
		elems := make([]starlark.Value, len(v))
		for i, token := range v {
			elems[i] = toStarlarkValue(token)
		}
		return starlark.NewList(elems)

	case arith.Pos:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("offset"), starlark.MakeInt(v.Offset))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(v.Column))
		return d

	case error:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("message"), starlark.String(v.Error()))
		var e *arith.Error
		if errors.As(v, &e) {
			d.SetKey(starlark.String("kind"), starlark.String(e.Kind.String()))
			d.SetKey(starlark.String("pos"), toStarlarkValue(e.Pos))
		}
		return d

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
