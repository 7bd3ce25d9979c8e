package team

import (
	"errors"
	"fmt"

	"github.com/udisondev/gi2go/internal/model"
)

// MaxSlots — максимум аватаров в активной команде.
const MaxSlots = 4

var (
	ErrSlotOutOfRange = errors.New("team slot out of range")
	ErrEmptySlot      = errors.New("team slot is empty")
)

// Team — слоты активной команды игрока.
// Мутируется только горутиной мира вместе с владельцем.
type Team struct {
	slots  [MaxSlots]*model.Avatar
	active int
}

// New returns an empty team with slot 0 active.
func New() *Team {
	return &Team{}
}

// SetSlot places an avatar into a slot. A nil avatar clears the slot.
func (t *Team) SetSlot(i int, a *model.Avatar) error {
	if i < 0 || i >= MaxSlots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	t.slots[i] = a
	return nil
}

// Slot returns the avatar in a slot, nil if empty or out of range.
func (t *Team) Slot(i int) *model.Avatar {
	if i < 0 || i >= MaxSlots {
		return nil
	}
	return t.slots[i]
}

// Swap exchanges two slots.
func (t *Team) Swap(i, j int) error {
	if i < 0 || i >= MaxSlots || j < 0 || j >= MaxSlots {
		return fmt.Errorf("%w: %d,%d", ErrSlotOutOfRange, i, j)
	}
	t.slots[i], t.slots[j] = t.slots[j], t.slots[i]
	return nil
}

// SetActive switches the active slot. The slot must be occupied.
func (t *Team) SetActive(i int) error {
	if i < 0 || i >= MaxSlots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	if t.slots[i] == nil {
		return fmt.Errorf("%w: %d", ErrEmptySlot, i)
	}
	t.active = i
	return nil
}

// ActiveAvatar returns the avatar in the active slot, nil if empty.
func (t *Team) ActiveAvatar() *model.Avatar {
	return t.slots[t.active]
}

// ActiveIndex returns the active slot index.
func (t *Team) ActiveIndex() int {
	return t.active
}

// Size returns the number of occupied slots.
func (t *Team) Size() int {
	n := 0
	for _, a := range t.slots {
		if a != nil {
			n++
		}
	}
	return n
}
