package data

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/gi2go/internal/game/ability"
)

// abilityTable — глобальный registry всех ability-конфигов.
// Загружается через LoadAbilities() при старте сервера.
var abilityTable map[string]*ability.Config

// LoadAbilities строит abilityTable из Go-литералов (abilityDefs).
// Вызывается при старте сервера.
func LoadAbilities() error {
	abilityTable = make(map[string]*ability.Config, len(abilityDefs))

	for i := range abilityDefs {
		def := &abilityDefs[i]
		if def.name == "" {
			return fmt.Errorf("ability def %d has empty name", i)
		}
		if _, ok := abilityTable[def.name]; ok {
			return fmt.Errorf("duplicate ability def %q", def.name)
		}
		abilityTable[def.name] = &ability.Config{
			Name:      def.name,
			Specials:  maps.Clone(def.specials),
			Modifiers: slices.Clone(def.modifiers),
		}
	}

	slog.Info("loaded abilities", "count", len(abilityTable))
	return nil
}

// GetAbilityConfig возвращает конфиг по имени ability.
// Returns nil если не найден.
func GetAbilityConfig(name string) *ability.Config {
	if abilityTable == nil {
		return nil
	}
	return abilityTable[name]
}

// AllAbilityConfigs returns every loaded config, sorted by name.
// Input for ability.BuildHashIndex at startup.
func AllAbilityConfigs() []ability.Config {
	names := slices.Collect(maps.Keys(abilityTable))
	slices.Sort(names)

	out := make([]ability.Config, 0, len(names))
	for _, name := range names {
		out = append(out, *abilityTable[name])
	}
	return out
}

// Templates adapts the loaded ability table to ability.TemplateSource.
type Templates struct{}

// BaseSpecials returns a copy of the named ability's base specials table.
func (Templates) BaseSpecials(name string) (map[string]float64, bool) {
	cfg := GetAbilityConfig(name)
	if cfg == nil {
		return nil, false
	}
	return maps.Clone(cfg.Specials), true
}
