package ability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Resolver errors. Depot lookup errors live in model.
var (
	ErrMalformedReference = errors.New("malformed parameter reference")
	ErrIndexOutOfRange    = errors.New("parameter index out of range")
)

type paramKind int8

const (
	paramAbsent paramKind = iota
	paramLiteral
	paramIndexed
)

// ParamSpec is a tri-state configuration value used by talent modifiers:
// absent, a literal number, or an indexed reference ("%2") into the
// parameter list of the current proud-skill level.
// The zero value is the absent state.
type ParamSpec struct {
	kind    paramKind
	literal float64
	ref     string
}

// Literal returns a ParamSpec carrying a literal number.
func Literal(v float64) ParamSpec {
	return ParamSpec{kind: paramLiteral, literal: v}
}

// IndexRef returns a ParamSpec carrying an indexed-reference string ("%0").
// The string is validated lazily, at Resolve time.
func IndexRef(s string) ParamSpec {
	return ParamSpec{kind: paramIndexed, ref: s}
}

// IsAbsent reports whether no value was configured.
func (p ParamSpec) IsAbsent() bool {
	return p.kind == paramAbsent
}

// IsZeroLiteral reports whether the value is the literal number 0.
// The engine suppresses ratio application for literal zero only;
// an indexed reference that resolves to zero is applied as-is.
func (p ParamSpec) IsZeroLiteral() bool {
	return p.kind == paramLiteral && p.literal == 0
}

// Resolve interprets a ParamSpec against a parameter list.
// Returns (value, true, nil) for a resolved value and (0, false, nil) for an
// absent spec. Indexed references strip every '%' from the raw string and
// parse the remainder as a decimal index; the encoding comes from the client
// data, so stripping must stay exactly this permissive.
func Resolve(spec ParamSpec, params []float64) (float64, bool, error) {
	switch spec.kind {
	case paramAbsent:
		return 0, false, nil
	case paramLiteral:
		return spec.literal, true, nil
	case paramIndexed:
		raw := strings.ReplaceAll(spec.ref, "%", "")
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrMalformedReference, spec.ref)
		}
		if idx < 0 || idx >= len(params) {
			return 0, false, fmt.Errorf("%w: index %d, params %d", ErrIndexOutOfRange, idx, len(params))
		}
		return params[idx], true, nil
	default:
		return 0, false, fmt.Errorf("%w: unknown param kind %d", ErrMalformedReference, spec.kind)
	}
}
