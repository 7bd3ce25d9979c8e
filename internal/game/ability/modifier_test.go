package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gi2go/internal/model"
)

// fakeTemplates is a TemplateSource over a fixed table.
type fakeTemplates map[string]map[string]float64

func (f fakeTemplates) BaseSpecials(name string) (map[string]float64, bool) {
	base, ok := f[name]
	return base, ok
}

func newTestDepot(t *testing.T) *model.SkillDepot {
	t.Helper()
	depot := model.NewSkillDepot()
	depot.EnsureAbility("Fire_DMG", map[string]float64{
		"damage":   10.0,
		"duration": 7.0,
	})
	return depot
}

func newTestEngine() *Engine {
	return NewEngine(fakeTemplates{
		"Ice_DMG": {"damage": 3.0, "slow": 0.2},
	})
}

func mustSpecial(t *testing.T, depot *model.SkillDepot, ability, special string) float64 {
	t.Helper()
	v, err := depot.AbilitySpecial(ability, special)
	require.NoError(t, err)
	return v
}

func TestApplyModifier_DeltaOnly(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        Literal(5),
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, nil))
	assert.Equal(t, 15.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_ZeroDeltaStillApplies(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        Literal(0),
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, nil))
	assert.Equal(t, 10.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_LiteralZeroRatioSuppressed(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "duration",
		Ratio:        Literal(0),
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, nil))
	assert.Equal(t, 7.0, mustSpecial(t, depot, "Fire_DMG", "duration"))
}

func TestApplyModifier_IndexedZeroRatioApplies(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "duration",
		Ratio:        IndexRef("%0"),
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, []float64{0.0}))
	assert.Equal(t, 0.0, mustSpecial(t, depot, "Fire_DMG", "duration"))
}

func TestApplyModifier_DeltaThenRatio(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        IndexRef("%0"),
		Ratio:        IndexRef("%1"),
	}

	// (10 + 2) * 1.5
	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, []float64{2, 1.5}))
	assert.Equal(t, 18.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_Compounds(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        Literal(5),
	}
	engine := newTestEngine()

	require.NoError(t, engine.ApplyModifier(mod, depot, nil))
	require.NoError(t, engine.ApplyModifier(mod, depot, nil))
	assert.Equal(t, 20.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_UnknownAbility(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Water_DMG",
		ParamSpecial: "damage",
		Delta:        Literal(5),
	}

	err := newTestEngine().ApplyModifier(mod, depot, nil)
	assert.ErrorIs(t, err, model.ErrUnknownAbility)
	// depot untouched
	assert.Equal(t, 10.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_UnknownSpecial(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "radius",
		Delta:        Literal(5),
	}

	err := newTestEngine().ApplyModifier(mod, depot, nil)
	assert.ErrorIs(t, err, model.ErrUnknownSpecial)
}

func TestApplyModifier_ResolveErrorLeavesDepotUnmodified(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModModifyAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        Literal(5),
		Ratio:        IndexRef("%7"), // out of range after the delta resolved
	}

	err := newTestEngine().ApplyModifier(mod, depot, []float64{1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 10.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_SetAbility(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModSetAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
		Delta:        IndexRef("%0"),
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, []float64{42}))
	assert.Equal(t, 42.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_SetAbilityAbsentIsNoop(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:         ModSetAbility,
		AbilityName:  "Fire_DMG",
		ParamSpecial: "damage",
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, nil))
	assert.Equal(t, 10.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyModifier_AddAbility(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:        ModAddAbility,
		AbilityName: "Ice_DMG",
	}

	require.NoError(t, newTestEngine().ApplyModifier(mod, depot, nil))
	assert.Equal(t, 3.0, mustSpecial(t, depot, "Ice_DMG", "damage"))
	assert.Equal(t, 0.2, mustSpecial(t, depot, "Ice_DMG", "slow"))
}

func TestApplyModifier_AddAbilityUnknownTemplate(t *testing.T) {
	depot := newTestDepot(t)
	mod := TalentModifier{
		Kind:        ModAddAbility,
		AbilityName: "Void_DMG",
	}

	err := newTestEngine().ApplyModifier(mod, depot, nil)
	assert.ErrorIs(t, err, model.ErrUnknownAbility)
}

func TestApplyAll_OrderSignificant(t *testing.T) {
	depot := newTestDepot(t)
	mods := []TalentModifier{
		{Kind: ModModifyAbility, AbilityName: "Fire_DMG", ParamSpecial: "damage", Delta: Literal(5)},
		{Kind: ModModifyAbility, AbilityName: "Fire_DMG", ParamSpecial: "damage", Ratio: Literal(2)},
	}

	errs := newTestEngine().ApplyAll(mods, depot, nil, Context{})
	assert.Empty(t, errs)
	// (10 + 5) * 2, not (10 * 2) + 5
	assert.Equal(t, 30.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyAll_SiblingsSurviveFailure(t *testing.T) {
	depot := newTestDepot(t)
	mods := []TalentModifier{
		{Kind: ModModifyAbility, AbilityName: "Water_DMG", ParamSpecial: "damage", Delta: Literal(5)},
		{Kind: ModModifyAbility, AbilityName: "Fire_DMG", ParamSpecial: "damage", Delta: Literal(5)},
	}

	errs := newTestEngine().ApplyAll(mods, depot, nil, Context{})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], model.ErrUnknownAbility)
	assert.Equal(t, 15.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}

func TestApplyAll_PredicateGates(t *testing.T) {
	depot := newTestDepot(t)
	cond := &Predicate{Kind: PredTargetAltitude, Logic: OpLessEqual, Value: 2.0}
	mods := []TalentModifier{
		{Kind: ModModifyAbility, AbilityName: "Fire_DMG", ParamSpecial: "damage", Delta: Literal(5), Cond: cond},
	}
	engine := newTestEngine()

	// grounded target: applies
	errs := engine.ApplyAll(mods, depot, nil, Context{TargetAltitude: 0.5})
	assert.Empty(t, errs)
	assert.Equal(t, 15.0, mustSpecial(t, depot, "Fire_DMG", "damage"))

	// airborne target: skipped without error
	errs = engine.ApplyAll(mods, depot, nil, Context{TargetAltitude: 8})
	assert.Empty(t, errs)
	assert.Equal(t, 15.0, mustSpecial(t, depot, "Fire_DMG", "damage"))
}
