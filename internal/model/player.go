package model

import (
	"fmt"
	"time"
)

// Player — подключённый игрок со своими аватарами.
// Аватары и их депо мутируются только из горутины мира (single writer).
type Player struct {
	UID          int64
	AccountLogin string
	Name         string

	avatars map[int32]*Avatar

	onlineFor time.Duration
}

// NewPlayer creates a player with no avatars.
func NewPlayer(uid int64, accountLogin, name string) *Player {
	return &Player{
		UID:          uid,
		AccountLogin: accountLogin,
		Name:         name,
		avatars:      make(map[int32]*Avatar),
	}
}

// AddAvatar registers an avatar. Duplicate definition ids are rejected.
func (p *Player) AddAvatar(a *Avatar) error {
	if _, ok := p.avatars[a.AvatarID]; ok {
		return fmt.Errorf("player %d already owns avatar %d", p.UID, a.AvatarID)
	}
	p.avatars[a.AvatarID] = a
	return nil
}

// Avatar returns an owned avatar by definition id, nil if absent.
func (p *Player) Avatar(avatarID int32) *Avatar {
	return p.avatars[avatarID]
}

// AvatarCount returns the number of owned avatars.
func (p *Player) AvatarCount() int {
	return len(p.avatars)
}

// Avatars returns the owned avatars in arbitrary order.
func (p *Player) Avatars() []*Avatar {
	out := make([]*Avatar, 0, len(p.avatars))
	for _, a := range p.avatars {
		out = append(out, a)
	}
	return out
}

// Tick advances per-player bookkeeping by delta.
func (p *Player) Tick(delta time.Duration) {
	p.onlineFor += delta
}

// OnlineFor returns accumulated online time since login.
func (p *Player) OnlineFor() time.Duration {
	return p.onlineFor
}
