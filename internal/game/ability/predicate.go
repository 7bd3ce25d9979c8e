package ability

// CompareOp is the comparison operator a predicate applies between the
// contextual quantity and its reference value.
type CompareOp int8

const (
	// OpNone means the config carried no logic operator.
	// Treated as always-true; observed client data never gates on it.
	OpNone CompareOp = iota
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
)

// ParseCompareOp maps the config string to an operator.
// Empty or unrecognized input yields OpNone.
func ParseCompareOp(s string) CompareOp {
	switch s {
	case "Equal":
		return OpEqual
	case "NotEqual":
		return OpNotEqual
	case "MoreThan":
		return OpGreater
	case "MoreThanEqual":
		return OpGreaterEqual
	case "LessThan":
		return OpLess
	case "LessThanEqual":
		return OpLessEqual
	default:
		return OpNone
	}
}

// Test applies the operator to (actual, reference).
func (op CompareOp) Test(actual, reference float64) bool {
	switch op {
	case OpEqual:
		return actual == reference
	case OpNotEqual:
		return actual != reference
	case OpGreater:
		return actual > reference
	case OpGreaterEqual:
		return actual >= reference
	case OpLess:
		return actual < reference
	case OpLessEqual:
		return actual <= reference
	default:
		return true
	}
}

// PredicateKind selects which contextual quantity a predicate inspects.
type PredicateKind int8

const (
	PredNone PredicateKind = iota
	PredTargetAltitude
	PredTargetHPRatio
)

// ParsePredicateKind maps the config tag to a kind.
func ParsePredicateKind(s string) PredicateKind {
	switch s {
	case "ByTargetAltitude":
		return PredTargetAltitude
	case "ByTargetHPRatio":
		return PredTargetHPRatio
	default:
		return PredNone
	}
}

// Predicate gates whether a modifier or effect applies.
// Pure data; evaluation has no side effects and is safe to run
// concurrently from any goroutine.
type Predicate struct {
	Kind  PredicateKind
	Logic CompareOp
	Value float64
}

// Context carries the world/character quantities predicates compare against.
// Filled by the caller from the current combat state.
type Context struct {
	TargetAltitude float64
	TargetHPRatio  float64
}

// EvaluatePredicate evaluates a predicate against a context.
// Unknown kinds evaluate to true so that new client data cannot silently
// disable whole talent branches.
func EvaluatePredicate(p Predicate, ctx Context) bool {
	switch p.Kind {
	case PredTargetAltitude:
		return p.Logic.Test(ctx.TargetAltitude, p.Value)
	case PredTargetHPRatio:
		return p.Logic.Test(ctx.TargetHPRatio, p.Value)
	default:
		return true
	}
}
