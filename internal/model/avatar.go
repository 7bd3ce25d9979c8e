package model

// ProudSkillRef identifies one unlocked proud-skill level on an avatar.
// The order of unlocks is preserved: talent modifiers re-apply in exactly
// this order when the depot is rebuilt on login.
type ProudSkillRef struct {
	ProudSkillID int32
	Level        int32
}

// Avatar — живой экземпляр персонажа игрока.
//
// Phase 2.2: Avatars & Depots.
type Avatar struct {
	ID       int64 // database row id, 0 until first save
	AvatarID int32 // definition id from data
	Name     string
	Level    int32
	Depot    *SkillDepot

	// OpenedProudSkills lists unlocked proud-skill levels in unlock order.
	OpenedProudSkills []ProudSkillRef
}

// HasProudSkill reports whether the given proud-skill level is unlocked.
func (a *Avatar) HasProudSkill(proudSkillID, level int32) bool {
	for _, ref := range a.OpenedProudSkills {
		if ref.ProudSkillID == proudSkillID && ref.Level == level {
			return true
		}
	}
	return false
}
