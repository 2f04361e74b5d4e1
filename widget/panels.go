// Package widget keeps the open/closed and selection state of the custom
// dropdowns and date pickers. At most one panel is open at a time.
//
// None of the types here are safe for concurrent use; they are driven from
// the UI event loop.
package widget

import "github.com/kinko/pms/internal/id"

// ID names a panel.
type ID string

// NewID returns a fresh unique panel ID.
func NewID() ID { return ID(id.New()) }

// Panels tracks which dropdown or date picker is open.
type Panels struct {
	active ID
	open   bool
}

// Toggle opens panel p, closing any other one. Toggling the open panel
// closes it.
func (ps *Panels) Toggle(p ID) {
	if ps.open && ps.active == p {
		ps.CloseAll()
		return
	}
	ps.active, ps.open = p, true
}

// Close closes p if it is the open panel.
func (ps *Panels) Close(p ID) {
	if ps.open && ps.active == p {
		ps.CloseAll()
	}
}

// CloseAll closes whatever is open. It handles clicks outside any panel.
func (ps *Panels) CloseAll() {
	ps.active, ps.open = "", false
}

// Active returns the open panel, if any.
func (ps *Panels) Active() (ID, bool) { return ps.active, ps.open }

// IsOpen reports whether p is the open panel.
func (ps *Panels) IsOpen(p ID) bool { return ps.open && ps.active == p }
