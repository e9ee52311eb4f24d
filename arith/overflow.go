package arith

import (
	"fmt"
	"math"
	"math/bits"
)

type OverflowPolicy uint8

const (
	// OverflowFail reports NumberOverflow or ArithmeticOverflow.
	OverflowFail OverflowPolicy = iota
	// OverflowWrap uses two's complement wrapping.
	OverflowWrap
	// OverflowSaturate clamps to the nearest int64 bound.
	OverflowSaturate
)

var overflowPolicyNames = map[OverflowPolicy]string{
	OverflowFail:     "fail",
	OverflowWrap:     "wrap",
	OverflowSaturate: "saturate",
}

func (p OverflowPolicy) String() string {
	if name, ok := overflowPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
}

func ParseOverflowPolicy(str string) (OverflowPolicy, error) {
	for policy, name := range overflowPolicyNames {
		if name == str {
			return policy, nil
		}
	}
	return OverflowFail, fmt.Errorf("unknown overflow policy: %q", str)
}

// appendDigit computes acc*10+digit for a non-negative accumulator.
func (p OverflowPolicy) appendDigit(acc int64, digit int64) (int64, bool) {
	if acc > (math.MaxInt64-digit)/10 {
		switch p {
		case OverflowWrap:
			return int64(uint64(acc)*10 + uint64(digit)), true
		case OverflowSaturate:
			return math.MaxInt64, true
		}
		return 0, false
	}
	return acc*10 + digit, true
}

func (p OverflowPolicy) add(a, b int64) (int64, bool) {
	sum := a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return p.overflowed(sum, a >= 0)
	}
	return sum, true
}

func (p OverflowPolicy) sub(a, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
		return p.overflowed(diff, a >= 0)
	}
	return diff, true
}

func (p OverflowPolicy) mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	positive := (a > 0) == (b > 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	limit := uint64(math.MaxInt64)
	if !positive {
		limit++
	}
	if hi != 0 || lo > limit {
		return p.overflowed(a*b, positive)
	}
	return a * b, true
}

// div assumes b != 0.
func (p OverflowPolicy) div(a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return p.overflowed(math.MinInt64, true)
	}
	return a / b, true
}

func (p OverflowPolicy) overflowed(wrapped int64, positive bool) (int64, bool) {
	switch p {
	case OverflowWrap:
		return wrapped, true
	case OverflowSaturate:
		if positive {
			return math.MaxInt64, true
		}
		return math.MinInt64, true
	}
	return 0, false
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
