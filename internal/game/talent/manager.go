package talent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/gi2go/internal/data"
	"github.com/udisondev/gi2go/internal/game/ability"
	"github.com/udisondev/gi2go/internal/model"
)

// AvatarStore persists avatar state after depot mutations.
// Implemented by db.AvatarRepository; tests supply fakes.
type AvatarStore interface {
	SaveAvatar(ctx context.Context, uid int64, avatar *model.Avatar) error
}

// Manager orchestrates talent/proud-skill unlocks: fetches the open
// config's modifiers and param list from data, applies them through the
// engine and persists the resulting depot.
//
// Phase 3.4: Talent Orchestration.
type Manager struct {
	engine *ability.Engine
	store  AvatarStore
}

// NewManager creates a talent manager.
func NewManager(engine *ability.Engine, store AvatarStore) *Manager {
	return &Manager{engine: engine, store: store}
}

// UnlockProudSkill applies one proud-skill level to the avatar's depot and
// persists the avatar. Individual modifier failures are logged by the
// engine and do not abort the unlock; they indicate data problems, not
// player-visible errors.
func (m *Manager) UnlockProudSkill(ctx context.Context, uid int64, avatar *model.Avatar, proudSkillID, level int32, evalCtx ability.Context) error {
	if avatar.HasProudSkill(proudSkillID, level) {
		return fmt.Errorf("avatar %d: proud skill %d lv%d already unlocked", avatar.AvatarID, proudSkillID, level)
	}

	ps := data.GetProudSkill(proudSkillID, level)
	if ps == nil {
		return fmt.Errorf("unknown proud skill %d lv%d", proudSkillID, level)
	}
	mods, ok := data.GetOpenConfig(ps.OpenConfig)
	if !ok {
		return fmt.Errorf("proud skill %d lv%d: missing open config %q", proudSkillID, level, ps.OpenConfig)
	}

	if errs := m.engine.ApplyAll(mods, avatar.Depot, ps.ParamList, evalCtx); len(errs) > 0 {
		slog.Warn("proud skill applied with errors",
			"avatar", avatar.AvatarID,
			"proudSkill", proudSkillID,
			"level", level,
			"failed", len(errs))
	}

	avatar.OpenedProudSkills = append(avatar.OpenedProudSkills, model.ProudSkillRef{
		ProudSkillID: proudSkillID,
		Level:        level,
	})

	if err := m.store.SaveAvatar(ctx, uid, avatar); err != nil {
		return fmt.Errorf("saving avatar %d: %w", avatar.AvatarID, err)
	}
	return nil
}

// RebuildDepot resets the avatar's depot to its definition prototype and
// re-applies every unlocked proud skill in unlock order. Used on login so
// that recomputed values never depend on a stale persisted snapshot.
func (m *Manager) RebuildDepot(avatar *model.Avatar, evalCtx ability.Context) error {
	depot, err := data.NewSkillDepotFor(avatar.AvatarID)
	if err != nil {
		return fmt.Errorf("rebuilding depot: %w", err)
	}

	for _, ref := range avatar.OpenedProudSkills {
		ps := data.GetProudSkill(ref.ProudSkillID, ref.Level)
		if ps == nil {
			slog.Warn("skipping unknown persisted proud skill",
				"avatar", avatar.AvatarID,
				"proudSkill", ref.ProudSkillID,
				"level", ref.Level)
			continue
		}
		mods, ok := data.GetOpenConfig(ps.OpenConfig)
		if !ok {
			slog.Warn("skipping proud skill with missing open config",
				"avatar", avatar.AvatarID,
				"openConfig", ps.OpenConfig)
			continue
		}
		if errs := m.engine.ApplyAll(mods, depot, ps.ParamList, evalCtx); len(errs) > 0 {
			slog.Warn("depot rebuild applied with errors",
				"avatar", avatar.AvatarID,
				"proudSkill", ref.ProudSkillID,
				"failed", len(errs))
		}
	}

	avatar.Depot = depot
	return nil
}
