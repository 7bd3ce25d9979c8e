package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/gi2go/internal/model"
)

// AvatarRepository управляет аватарами игроков в БД.
// Ability specials хранятся снапшотом в JSONB; на логине депо
// пересобирается из прототипа, снапшот — диагностический резерв.
//
// Phase 5.2: Avatar Persistence.
type AvatarRepository struct {
	db *pgxpool.Pool
}

// NewAvatarRepository создаёт новый AvatarRepository.
func NewAvatarRepository(db *pgxpool.Pool) *AvatarRepository {
	return &AvatarRepository{db: db}
}

// proudSkillRow — JSON-форма model.ProudSkillRef.
type proudSkillRow struct {
	ID    int32 `json:"id"`
	Level int32 `json:"level"`
}

// LoadByPlayer загружает все аватары игрока.
func (r *AvatarRepository) LoadByPlayer(ctx context.Context, uid int64) ([]*model.Avatar, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, avatar_id, name, level, ability_specials, opened_proud_skills
		FROM avatars
		WHERE player_uid = $1
		ORDER BY avatar_id
	`, uid)
	if err != nil {
		return nil, fmt.Errorf("querying avatars for player %d: %w", uid, err)
	}
	defer rows.Close()

	avatars := make([]*model.Avatar, 0, 8)
	for rows.Next() {
		var (
			a            model.Avatar
			specialsJSON []byte
			openedJSON   []byte
		)
		if err := rows.Scan(&a.ID, &a.AvatarID, &a.Name, &a.Level, &specialsJSON, &openedJSON); err != nil {
			return nil, fmt.Errorf("scanning avatar row: %w", err)
		}

		var specials map[string]map[string]float64
		if err := json.Unmarshal(specialsJSON, &specials); err != nil {
			return nil, fmt.Errorf("decoding specials for avatar %d: %w", a.AvatarID, err)
		}
		a.Depot = model.NewSkillDepot()
		a.Depot.Restore(specials)

		var opened []proudSkillRow
		if err := json.Unmarshal(openedJSON, &opened); err != nil {
			return nil, fmt.Errorf("decoding proud skills for avatar %d: %w", a.AvatarID, err)
		}
		for _, row := range opened {
			a.OpenedProudSkills = append(a.OpenedProudSkills, model.ProudSkillRef{
				ProudSkillID: row.ID,
				Level:        row.Level,
			})
		}

		avatars = append(avatars, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating avatar rows: %w", err)
	}
	return avatars, nil
}

// SaveAvatar сохраняет один аватар (UPSERT по player_uid+avatar_id).
func (r *AvatarRepository) SaveAvatar(ctx context.Context, uid int64, a *model.Avatar) error {
	specialsJSON, err := json.Marshal(a.Depot.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding specials for avatar %d: %w", a.AvatarID, err)
	}

	opened := make([]proudSkillRow, 0, len(a.OpenedProudSkills))
	for _, ref := range a.OpenedProudSkills {
		opened = append(opened, proudSkillRow{ID: ref.ProudSkillID, Level: ref.Level})
	}
	openedJSON, err := json.Marshal(opened)
	if err != nil {
		return fmt.Errorf("encoding proud skills for avatar %d: %w", a.AvatarID, err)
	}

	query := `
		INSERT INTO avatars (player_uid, avatar_id, name, level, ability_specials, opened_proud_skills)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (player_uid, avatar_id)
		DO UPDATE SET name = $3, level = $4, ability_specials = $5, opened_proud_skills = $6
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, uid, a.AvatarID, a.Name, a.Level, specialsJSON, openedJSON).Scan(&a.ID); err != nil {
		return fmt.Errorf("upserting avatar %d for player %d: %w", a.AvatarID, uid, err)
	}
	return nil
}

// SaveAll сохраняет все аватары игрока в одной транзакции.
func (r *AvatarRepository) SaveAll(ctx context.Context, uid int64, avatars []*model.Avatar) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // rollback after commit is a no-op failure
	}()

	for _, a := range avatars {
		specialsJSON, err := json.Marshal(a.Depot.Snapshot())
		if err != nil {
			return fmt.Errorf("encoding specials for avatar %d: %w", a.AvatarID, err)
		}
		opened := make([]proudSkillRow, 0, len(a.OpenedProudSkills))
		for _, ref := range a.OpenedProudSkills {
			opened = append(opened, proudSkillRow{ID: ref.ProudSkillID, Level: ref.Level})
		}
		openedJSON, err := json.Marshal(opened)
		if err != nil {
			return fmt.Errorf("encoding proud skills for avatar %d: %w", a.AvatarID, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO avatars (player_uid, avatar_id, name, level, ability_specials, opened_proud_skills)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (player_uid, avatar_id)
			DO UPDATE SET name = $3, level = $4, ability_specials = $5, opened_proud_skills = $6
		`, uid, a.AvatarID, a.Name, a.Level, specialsJSON, openedJSON); err != nil {
			return fmt.Errorf("upserting avatar %d: %w", a.AvatarID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing avatar save: %w", err)
	}
	return nil
}
