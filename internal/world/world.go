package world

import (
	"fmt"
	"sync"

	"github.com/udisondev/gi2go/internal/game/ability"
	"github.com/udisondev/gi2go/internal/game/talent"
	"github.com/udisondev/gi2go/internal/game/team"
	"github.com/udisondev/gi2go/internal/model"
)

// entry binds a player to its team bookkeeping.
type entry struct {
	player *model.Player
	team   *team.Team
}

// World holds the online players and routes client ability events to their
// avatars. Player/avatar state is mutated only from the world goroutine;
// the registry map itself is guarded for concurrent Add/Remove from
// session handlers.
type World struct {
	mu      sync.RWMutex
	players map[int64]*entry

	hashes  *ability.NameHashIndex
	talents *talent.Manager
}

// New creates a world over a built name hash index.
func New(hashes *ability.NameHashIndex, talents *talent.Manager) *World {
	return &World{
		players: make(map[int64]*entry),
		hashes:  hashes,
		talents: talents,
	}
}

// AddPlayer registers a player and its fresh team.
func (w *World) AddPlayer(p *model.Player) *team.Team {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := team.New()
	w.players[p.UID] = &entry{player: p, team: t}
	return t
}

// LoginPlayer attaches loaded avatars to the player, rebuilds every depot
// from its prototype (re-applying unlocked proud skills in unlock order)
// and registers the player. The first avatars fill the team slots.
func (w *World) LoginPlayer(p *model.Player, avatars []*model.Avatar) (*team.Team, error) {
	for _, a := range avatars {
		if err := w.talents.RebuildDepot(a, ability.Context{}); err != nil {
			return nil, fmt.Errorf("login player %d: %w", p.UID, err)
		}
		if err := p.AddAvatar(a); err != nil {
			return nil, fmt.Errorf("login player %d: %w", p.UID, err)
		}
	}

	t := w.AddPlayer(p)
	for i, a := range avatars {
		if i >= team.MaxSlots {
			break
		}
		if err := t.SetSlot(i, a); err != nil {
			return nil, fmt.Errorf("login player %d: %w", p.UID, err)
		}
	}
	return t, nil
}

// RemovePlayer unregisters a player.
func (w *World) RemovePlayer(uid int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.players, uid)
}

// Player returns an online player, nil if absent.
func (w *World) Player(uid int64) *model.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if e, ok := w.players[uid]; ok {
		return e.player
	}
	return nil
}

// Team returns a player's team, nil if the player is offline.
func (w *World) Team(uid int64) *team.Team {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if e, ok := w.players[uid]; ok {
		return e.team
	}
	return nil
}

// PlayerCount returns the number of online players.
func (w *World) PlayerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.players)
}

// HandleAbilityInvoke resolves a client-sent ability name hash against the
// index and checks it against the player's active avatar depot. Returns
// the recovered ability name. Client events carry only the hash; the
// configuration keys on the server side are strings.
func (w *World) HandleAbilityInvoke(uid int64, nameHash uint32) (string, error) {
	w.mu.RLock()
	e, ok := w.players[uid]
	w.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("player %d is not online", uid)
	}

	name, ok := w.hashes.Lookup(nameHash)
	if !ok {
		return "", fmt.Errorf("player %d: unknown ability hash %d", uid, nameHash)
	}

	active := e.team.ActiveAvatar()
	if active == nil {
		return "", fmt.Errorf("player %d: no active avatar", uid)
	}
	if !active.Depot.HasAbility(name) {
		return "", fmt.Errorf("player %d: avatar %d does not own ability %q", uid, active.AvatarID, name)
	}
	return name, nil
}

// forEachPlayer runs fn for every online player under the read lock.
// fn must not call back into the registry.
func (w *World) forEachPlayer(fn func(*entry)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, e := range w.players {
		fn(e)
	}
}
