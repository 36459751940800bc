package domain

import "time"

// Statistics is the single platform-wide row of derived counts. It is always
// rebuilt from fresh tallies of the underlying tables, never patched
// incrementally.
type Statistics struct {
	ID            uint      `json:"id"`
	Creators      int       `json:"creators"`
	Ambassadors   int       `json:"ambassadors"`
	ContentPieces int       `json:"content_pieces"`
	EventsHosted  int       `json:"events_hosted"`
	UpdatedAt     time.Time `json:"updated_at"`
}
