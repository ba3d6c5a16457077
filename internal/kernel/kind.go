// Package kernel holds the two inverse square root approximations used to
// normalize vectors and the tag that selects between them.
package kernel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kernel name cannot be parsed.
var ErrUnknownKind = errors.New("unknown kernel")

// Kind selects the inverse square root kernel.
type Kind uint8

const (
	FISR Kind = iota // bit-cast seed + two Newton-Raphson steps
	ISR              // exponent seed + mantissa bit search, reciprocal
)

// InvSqrt approximates 1/sqrt(x) with the selected kernel.
func (k Kind) InvSqrt(x float64) float64 {
	if k == ISR {
		return BitSqrt(x, true)
	}
	return FastInvSqrt(x, true)
}

// Bound is the relative error bound of InvSqrt for this kind.
func (k Kind) Bound() float64 {
	if k == ISR {
		return BitSqrtBound
	}
	return TwoStepBound
}

func (k Kind) String() string {
	switch k {
	case FISR:
		return "fisr"
	case ISR:
		return "isr"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind accepts "fisr" or "isr", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fisr", "":
		return FISR, nil
	case "isr":
		return ISR, nil
	}
	return FISR, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != FISR && k != ISR {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
