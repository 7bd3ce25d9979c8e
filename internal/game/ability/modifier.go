package ability

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gi2go/internal/model"
)

// ModifierKind selects the talent modifier variant.
type ModifierKind int8

const (
	ModNone ModifierKind = iota

	// ModModifyAbility adds a resolved delta to an existing ability special,
	// then multiplies by a resolved ratio.
	ModModifyAbility

	// ModSetAbility overwrites an ability special with a resolved value.
	ModSetAbility

	// ModAddAbility registers a new ability in the depot, seeded from the
	// ability's base specials table.
	ModAddAbility
)

// ParseModifierKind maps the config tag to a kind.
func ParseModifierKind(s string) ModifierKind {
	switch s {
	case "ModifyAbility":
		return ModModifyAbility
	case "SetAbility":
		return ModSetAbility
	case "AddAbility":
		return ModAddAbility
	default:
		return ModNone
	}
}

// TalentModifier is one compiled talent/proud-skill modifier record.
// Delta and Ratio are independent tri-state values (see ParamSpec); which
// of them a kind reads is fixed per kind.
type TalentModifier struct {
	Kind         ModifierKind
	AbilityName  string
	ParamSpecial string
	Delta        ParamSpec
	Ratio        ParamSpec

	// Cond optionally gates the modifier. Checked by ApplyAll; a false
	// predicate skips the modifier without error.
	Cond *Predicate
}

// TemplateSource resolves ability names to their base specials table.
// Implemented by the data package over the loaded ability configs.
type TemplateSource interface {
	BaseSpecials(ability string) (map[string]float64, bool)
}

// Engine applies talent modifiers to skill depots.
// Stateless beyond its template source; safe for concurrent use as long as
// each depot keeps its single-writer discipline.
type Engine struct {
	templates TemplateSource
}

// NewEngine creates an Engine over the given template source.
func NewEngine(templates TemplateSource) *Engine {
	return &Engine{templates: templates}
}

// ApplyModifier applies one modifier to a depot, resolving its delta/ratio
// against params. Any error leaves the depot unmodified by this modifier.
// Predicates are not checked here; gating belongs to ApplyAll so that a
// caller replaying persisted state can re-evaluate conditions itself.
func (e *Engine) ApplyModifier(mod TalentModifier, depot *model.SkillDepot, params []float64) error {
	switch mod.Kind {
	case ModModifyAbility:
		return e.applyModify(mod, depot, params)
	case ModSetAbility:
		return e.applySet(mod, depot, params)
	case ModAddAbility:
		return e.applyAdd(mod, depot)
	default:
		return fmt.Errorf("unknown modifier kind %d for ability %q", mod.Kind, mod.AbilityName)
	}
}

// applyModify implements the add-delta-then-multiply-ratio variant.
func (e *Engine) applyModify(mod TalentModifier, depot *model.SkillDepot, params []float64) error {
	cur, err := depot.AbilitySpecial(mod.AbilityName, mod.ParamSpecial)
	if err != nil {
		return fmt.Errorf("modify %s/%s: %w", mod.AbilityName, mod.ParamSpecial, err)
	}

	delta, ok, err := Resolve(mod.Delta, params)
	if err != nil {
		return fmt.Errorf("modify %s/%s delta: %w", mod.AbilityName, mod.ParamSpecial, err)
	}
	if ok {
		cur += delta
	}

	// A literal zero ratio is suppressed instead of zeroing the special.
	// An indexed reference resolving to zero is NOT suppressed: the special
	// multiplies to zero. Both behaviors match the client data's expectations.
	if !mod.Ratio.IsZeroLiteral() {
		ratio, ok, err := Resolve(mod.Ratio, params)
		if err != nil {
			return fmt.Errorf("modify %s/%s ratio: %w", mod.AbilityName, mod.ParamSpecial, err)
		}
		if ok {
			cur *= ratio
		}
	}

	if err := depot.SetAbilitySpecial(mod.AbilityName, mod.ParamSpecial, cur); err != nil {
		return fmt.Errorf("modify %s/%s: %w", mod.AbilityName, mod.ParamSpecial, err)
	}
	return nil
}

// applySet overwrites the target special with the resolved Delta value.
// An absent Delta makes the modifier a no-op.
func (e *Engine) applySet(mod TalentModifier, depot *model.SkillDepot, params []float64) error {
	v, ok, err := Resolve(mod.Delta, params)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", mod.AbilityName, mod.ParamSpecial, err)
	}
	if !ok {
		return nil
	}
	if err := depot.SetAbilitySpecial(mod.AbilityName, mod.ParamSpecial, v); err != nil {
		return fmt.Errorf("set %s/%s: %w", mod.AbilityName, mod.ParamSpecial, err)
	}
	return nil
}

// applyAdd registers the target ability in the depot with its template's
// base specials. Adding an already-present ability keeps existing values.
func (e *Engine) applyAdd(mod TalentModifier, depot *model.SkillDepot) error {
	base, ok := e.templates.BaseSpecials(mod.AbilityName)
	if !ok {
		return fmt.Errorf("add ability %q: %w", mod.AbilityName, model.ErrUnknownAbility)
	}
	depot.EnsureAbility(mod.AbilityName, base)
	return nil
}

// ApplyAll applies modifiers in declaration order, evaluating each
// modifier's predicate against ctx. A failing modifier is logged, skipped
// and collected; siblings always run. Order is significant and preserved —
// the same special may be targeted more than once.
func (e *Engine) ApplyAll(mods []TalentModifier, depot *model.SkillDepot, params []float64, ctx Context) []error {
	var errs []error
	for i, mod := range mods {
		if mod.Cond != nil && !EvaluatePredicate(*mod.Cond, ctx) {
			continue
		}
		if err := e.ApplyModifier(mod, depot, params); err != nil {
			slog.Warn("talent modifier skipped",
				"index", i,
				"ability", mod.AbilityName,
				"special", mod.ParamSpecial,
				"error", err)
			errs = append(errs, err)
		}
	}
	return errs
}
