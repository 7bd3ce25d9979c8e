package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gi2go/internal/model"
)

// avatarDepotProtos — прототипы депо по avatarID.
// Живые аватары получают Clone() прототипа.
var avatarDepotProtos map[int32]*model.SkillDepot

// avatarNames — avatarID → имя.
var avatarNames map[int32]string

// LoadAvatars компилирует avatarDefs в прототипы SkillDepot.
// Требует предварительного LoadAbilities().
func LoadAvatars() error {
	if abilityTable == nil {
		return fmt.Errorf("abilities must be loaded before avatars")
	}

	avatarDepotProtos = make(map[int32]*model.SkillDepot, len(avatarDefs))
	avatarNames = make(map[int32]string, len(avatarDefs))

	for i := range avatarDefs {
		def := &avatarDefs[i]
		if _, ok := avatarDepotProtos[def.id]; ok {
			return fmt.Errorf("duplicate avatar def %d", def.id)
		}

		depot := model.NewSkillDepot()
		for _, abilityName := range def.abilities {
			cfg := GetAbilityConfig(abilityName)
			if cfg == nil {
				return fmt.Errorf("avatar %d (%s): unknown ability %q", def.id, def.name, abilityName)
			}
			depot.EnsureAbility(cfg.Name, cfg.Specials)
		}

		avatarDepotProtos[def.id] = depot
		avatarNames[def.id] = def.name
	}

	slog.Info("loaded avatars", "count", len(avatarDepotProtos))
	return nil
}

// NewSkillDepotFor возвращает независимую копию прототипа депо аватара.
func NewSkillDepotFor(avatarID int32) (*model.SkillDepot, error) {
	proto, ok := avatarDepotProtos[avatarID]
	if !ok {
		return nil, fmt.Errorf("unknown avatar id %d", avatarID)
	}
	return proto.Clone(), nil
}

// GetAvatarName возвращает имя аватара, "" если не найден.
func GetAvatarName(avatarID int32) string {
	return avatarNames[avatarID]
}

// AvatarIDs returns all known avatar definition ids.
func AvatarIDs() []int32 {
	ids := make([]int32, 0, len(avatarDepotProtos))
	for id := range avatarDepotProtos {
		ids = append(ids, id)
	}
	return ids
}
