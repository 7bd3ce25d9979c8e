package data

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/gi2go/internal/game/ability"
)

// ProudSkill — скомпилированный уровень proud skill.
type ProudSkill struct {
	ID         int32
	Level      int32
	OpenConfig string
	ParamList  []float64
}

// proudSkillTable — map[proudSkillID]map[level]*ProudSkill.
var proudSkillTable map[int32]map[int32]*ProudSkill

// openConfigTable — имя open config → скомпилированные модификаторы
// в порядке объявления.
var openConfigTable map[string][]ability.TalentModifier

// LoadTalents компилирует proud skills и open configs.
// Требует предварительного LoadAbilities() для валидации целей.
func LoadTalents() error {
	if abilityTable == nil {
		return fmt.Errorf("abilities must be loaded before talents")
	}

	openConfigTable = make(map[string][]ability.TalentModifier, len(openConfigDefs))
	for i := range openConfigDefs {
		def := &openConfigDefs[i]
		if _, ok := openConfigTable[def.name]; ok {
			return fmt.Errorf("duplicate open config %q", def.name)
		}

		mods := make([]ability.TalentModifier, 0, len(def.modifiers))
		for j := range def.modifiers {
			mod, err := compileModifier(&def.modifiers[j])
			if err != nil {
				return fmt.Errorf("open config %q modifier %d: %w", def.name, j, err)
			}
			mods = append(mods, mod)
		}
		openConfigTable[def.name] = mods
	}

	proudSkillTable = make(map[int32]map[int32]*ProudSkill)
	var total int
	for i := range proudSkillDefs {
		def := &proudSkillDefs[i]
		if _, ok := openConfigTable[def.openConfig]; !ok {
			return fmt.Errorf("proud skill %d lv%d: unknown open config %q", def.id, def.level, def.openConfig)
		}
		if proudSkillTable[def.id] == nil {
			proudSkillTable[def.id] = make(map[int32]*ProudSkill)
		}
		proudSkillTable[def.id][def.level] = &ProudSkill{
			ID:         def.id,
			Level:      def.level,
			OpenConfig: def.openConfig,
			ParamList:  slices.Clone(def.paramList),
		}
		total++
	}

	slog.Info("loaded talents", "open_configs", len(openConfigTable), "proud_skill_entries", total)
	return nil
}

// compileModifier переводит сырую запись в tagged-вариант движка.
func compileModifier(def *modifierDef) (ability.TalentModifier, error) {
	kind := ability.ParseModifierKind(def.kind)
	if kind == ability.ModNone {
		return ability.TalentModifier{}, fmt.Errorf("unknown modifier kind %q", def.kind)
	}
	if GetAbilityConfig(def.ability) == nil {
		return ability.TalentModifier{}, fmt.Errorf("unknown target ability %q", def.ability)
	}

	delta, err := compileParam(def.delta)
	if err != nil {
		return ability.TalentModifier{}, fmt.Errorf("delta: %w", err)
	}
	ratio, err := compileParam(def.ratio)
	if err != nil {
		return ability.TalentModifier{}, fmt.Errorf("ratio: %w", err)
	}

	mod := ability.TalentModifier{
		Kind:         kind,
		AbilityName:  def.ability,
		ParamSpecial: def.special,
		Delta:        delta,
		Ratio:        ratio,
	}
	if def.cond != nil {
		mod.Cond = &ability.Predicate{
			Kind:  ability.ParsePredicateKind(def.cond.kind),
			Logic: ability.ParseCompareOp(def.cond.logic),
			Value: def.cond.value,
		}
	}
	return mod, nil
}

// compileParam различает отсутствие, литерал и индексную ссылку.
// Строки с '%' остаются сырыми: их разбирает ability.Resolve.
func compileParam(raw string) (ability.ParamSpec, error) {
	if raw == "" {
		return ability.ParamSpec{}, nil
	}
	if strings.Contains(raw, "%") {
		return ability.IndexRef(raw), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ability.ParamSpec{}, fmt.Errorf("not a number or reference: %q", raw)
	}
	return ability.Literal(v), nil
}

// GetProudSkill возвращает скомпилированный proud skill, nil если не найден.
func GetProudSkill(id, level int32) *ProudSkill {
	if proudSkillTable == nil {
		return nil
	}
	return proudSkillTable[id][level]
}

// GetOpenConfig возвращает модификаторы open config в порядке объявления.
func GetOpenConfig(name string) ([]ability.TalentModifier, bool) {
	mods, ok := openConfigTable[name]
	return mods, ok
}
