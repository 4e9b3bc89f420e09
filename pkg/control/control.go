// Package control tracks which widget element owns each property.
//
// A parent widget takes control of the properties it drives on its children
// (a slider sets its handle button's size, label and position every tick).
// Other writers, such as an inspector or a preset loader, must check
// [Table.CanWrite] before touching a controlled property. Ownership is a flat
// table from property key to owner id; nothing is inherited or chained.
//
//	var t control.Table
//	t.Set(control.KeySizeX, slider.ID)
//	t.CanWrite(control.KeySizeX, inspector) // false
//	t.CanWrite(control.KeyAlpha, inspector) // true
package control

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Key names a controllable property.
type Key string

// Property keys. Slider-level keys (SizeX through FillStartingPoint, ShowEdge
// and Text) are held by a parent controller; the rest are driven by the slider
// on its children.
const (
	KeySizeX             Key = "SizeX"
	KeySizeY             Key = "SizeY"
	KeyAlpha             Key = "Alpha"
	KeyZeroValue         Key = "ZeroValue"
	KeyHandleValue       Key = "HandleValue"
	KeyJumpValue         Key = "JumpValue"
	KeyAllowJump         Key = "AllowJump"
	KeyFillStartingPoint Key = "FillStartingPoint"
	KeyLocalPosition     Key = "Transform.localPosition"
	KeyActive            Key = "GameObject.activeSelf"
	KeyText              Key = "Text.text"
	KeyIconType          Key = "IconType"
	KeyHighlightProgress Key = "HighlightProgress"
	KeySelectionProgress Key = "SelectionProgress"
	KeyShowEdge          Key = "ShowEdge"
	KeySegments          Key = "Segments"
)

// Table maps property keys to their owners. The zero value is an empty table
// ready to use, safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	owners map[Key]uuid.UUID
}

// Set records owner as the controller of key, replacing any previous owner.
// Setting the nil UUID removes the key.
func (t *Table) Set(key Key, owner uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if owner == uuid.Nil {
		delete(t.owners, key)
		return
	}
	if t.owners == nil {
		t.owners = make(map[Key]uuid.UUID)
	}
	t.owners[key] = owner
}

// SetAll records owner as the controller of every key.
func (t *Table) SetAll(owner uuid.UUID, keys ...Key) {
	for _, k := range keys {
		t.Set(k, owner)
	}
}

// Owner returns the controller of key.
func (t *Table) Owner(key Key) (uuid.UUID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.owners[key]
	return id, ok
}

// IsControlled reports whether any owner controls key.
func (t *Table) IsControlled(key Key) bool {
	_, ok := t.Owner(key)
	return ok
}

// IsControlledBy reports whether owner controls key.
func (t *Table) IsControlledBy(key Key, owner uuid.UUID) bool {
	id, ok := t.Owner(key)
	return ok && id == owner
}

// CanWrite reports whether writer may set key: either nobody controls it or
// writer does.
func (t *Table) CanWrite(key Key, writer uuid.UUID) bool {
	id, ok := t.Owner(key)
	return !ok || id == writer
}

// Unset releases key.
func (t *Table) Unset(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.owners, key)
}

// Release removes every key controlled by owner and returns how many were
// released.
func (t *Table) Release(owner uuid.UUID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for k, id := range t.owners {
		if id == owner {
			delete(t.owners, k)
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.owners)
}

// Keys returns the controlled keys in sorted order.
func (t *Table) Keys() []Key {
	t.mu.RLock()
	keys := make([]Key, 0, len(t.owners))
	for k := range t.owners {
		keys = append(keys, k)
	}
	t.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Len returns the number of controlled keys.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.owners)
}
