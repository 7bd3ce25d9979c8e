package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareOp_Test(t *testing.T) {
	tests := []struct {
		op   CompareOp
		a, b float64
		want bool
	}{
		{OpEqual, 5, 5, true},
		{OpEqual, 5, 4, false},
		{OpNotEqual, 5, 4, true},
		{OpNotEqual, 5, 5, false},
		{OpGreater, 5, 5, false},
		{OpGreater, 5.001, 5, true},
		{OpGreaterEqual, 5, 5, true},
		{OpGreaterEqual, 4.999, 5, false},
		{OpLess, 4.999, 5, true},
		{OpLess, 5, 5, false},
		{OpLessEqual, 5, 5, true},
		{OpLessEqual, 5.001, 5, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Test(tt.a, tt.b), "op=%d a=%v b=%v", tt.op, tt.a, tt.b)
	}
}

func TestCompareOp_NoneIsAlwaysTrue(t *testing.T) {
	// configs may omit the logic operator entirely
	assert.True(t, OpNone.Test(0, 100))
	assert.True(t, OpNone.Test(100, 0))
}

func TestEvaluatePredicate_TargetAltitude(t *testing.T) {
	p := Predicate{Kind: PredTargetAltitude, Logic: OpGreaterEqual, Value: 5.0}

	assert.True(t, EvaluatePredicate(p, Context{TargetAltitude: 5.0}))
	assert.True(t, EvaluatePredicate(p, Context{TargetAltitude: 12.0}))
	assert.False(t, EvaluatePredicate(p, Context{TargetAltitude: 4.999}))
}

func TestEvaluatePredicate_TargetHPRatio(t *testing.T) {
	p := Predicate{Kind: PredTargetHPRatio, Logic: OpLess, Value: 0.5}

	assert.True(t, EvaluatePredicate(p, Context{TargetHPRatio: 0.3}))
	assert.False(t, EvaluatePredicate(p, Context{TargetHPRatio: 0.5}))
}

func TestEvaluatePredicate_AbsentLogic(t *testing.T) {
	p := Predicate{Kind: PredTargetAltitude, Logic: OpNone, Value: 99}
	assert.True(t, EvaluatePredicate(p, Context{TargetAltitude: 0}))
}

func TestEvaluatePredicate_UnknownKind(t *testing.T) {
	assert.True(t, EvaluatePredicate(Predicate{}, Context{}))
}

func TestParseCompareOp(t *testing.T) {
	assert.Equal(t, OpGreaterEqual, ParseCompareOp("MoreThanEqual"))
	assert.Equal(t, OpLessEqual, ParseCompareOp("LessThanEqual"))
	assert.Equal(t, OpNone, ParseCompareOp(""))
	assert.Equal(t, OpNone, ParseCompareOp("Bogus"))
}

func TestParsePredicateKind(t *testing.T) {
	assert.Equal(t, PredTargetAltitude, ParsePredicateKind("ByTargetAltitude"))
	assert.Equal(t, PredTargetHPRatio, ParsePredicateKind("ByTargetHPRatio"))
	assert.Equal(t, PredNone, ParsePredicateKind("ByWeather"))
}
