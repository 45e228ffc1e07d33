// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import "sync"

// Focus: only one view owns keyboard focus at a time. Clicking inside a view
// gives it focus; RequestFocus assigns it without clicking.
var (
	focusOwner   *View
	focusOwnerMu sync.Mutex
)

func getFocusOwner() *View {
	focusOwnerMu.Lock()
	defer focusOwnerMu.Unlock()
	return focusOwner
}

// setFocusOwner makes v the owner and returns the previous one.
func setFocusOwner(v *View) *View {
	focusOwnerMu.Lock()
	defer focusOwnerMu.Unlock()
	prev := focusOwner
	focusOwner = v
	return prev
}

// clearFocusOwner drops ownership if v holds it.
func clearFocusOwner(v *View) bool {
	focusOwnerMu.Lock()
	defer focusOwnerMu.Unlock()
	if focusOwner != v {
		return false
	}
	focusOwner = nil
	return true
}
