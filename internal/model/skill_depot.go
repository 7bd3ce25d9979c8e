package model

import (
	"errors"
	"maps"
	"slices"
)

// Depot lookup errors.
var (
	ErrUnknownAbility = errors.New("ability not present in skill depot")
	ErrUnknownSpecial = errors.New("ability special not present")
)

// SkillDepot — мутируемое хранилище ability specials одного аватара:
// ability name → special name → value.
//
// Прототип строится один раз на определение аватара, живые аватары получают
// Clone(). Депо принадлежит ровно одному аватару: один писатель, без мьютекса.
//
// Phase 2.1: Ability Specials.
type SkillDepot struct {
	specials map[string]map[string]float64
}

// NewSkillDepot returns an empty depot.
func NewSkillDepot() *SkillDepot {
	return &SkillDepot{specials: make(map[string]map[string]float64)}
}

// EnsureAbility registers an ability with a copy of the given base specials.
// An already-present ability keeps its current values.
func (d *SkillDepot) EnsureAbility(ability string, base map[string]float64) {
	if _, ok := d.specials[ability]; ok {
		return
	}
	d.specials[ability] = maps.Clone(base)
	if d.specials[ability] == nil {
		d.specials[ability] = make(map[string]float64)
	}
}

// HasAbility reports whether the ability is registered.
func (d *SkillDepot) HasAbility(ability string) bool {
	_, ok := d.specials[ability]
	return ok
}

// AbilitySpecial returns the current value of one special.
func (d *SkillDepot) AbilitySpecial(ability, special string) (float64, error) {
	table, ok := d.specials[ability]
	if !ok {
		return 0, ErrUnknownAbility
	}
	v, ok := table[special]
	if !ok {
		return 0, ErrUnknownSpecial
	}
	return v, nil
}

// SetAbilitySpecial overwrites one special. The ability must exist;
// the special is created if absent.
func (d *SkillDepot) SetAbilitySpecial(ability, special string, v float64) error {
	table, ok := d.specials[ability]
	if !ok {
		return ErrUnknownAbility
	}
	table[special] = v
	return nil
}

// Abilities returns the registered ability names, sorted for deterministic
// persistence and iteration.
func (d *SkillDepot) Abilities() []string {
	names := slices.Collect(maps.Keys(d.specials))
	slices.Sort(names)
	return names
}

// Specials returns a copy of one ability's specials table.
func (d *SkillDepot) Specials(ability string) (map[string]float64, error) {
	table, ok := d.specials[ability]
	if !ok {
		return nil, ErrUnknownAbility
	}
	return maps.Clone(table), nil
}

// Snapshot returns a deep copy of the whole depot contents,
// used by persistence and by Clone.
func (d *SkillDepot) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(d.specials))
	for ability, table := range d.specials {
		out[ability] = maps.Clone(table)
	}
	return out
}

// Restore replaces the depot contents with a deep copy of the snapshot.
func (d *SkillDepot) Restore(snapshot map[string]map[string]float64) {
	d.specials = make(map[string]map[string]float64, len(snapshot))
	for ability, table := range snapshot {
		d.specials[ability] = maps.Clone(table)
	}
}

// Clone returns an independent copy of the depot.
func (d *SkillDepot) Clone() *SkillDepot {
	return &SkillDepot{specials: d.Snapshot()}
}
