package types

import "time"

// PublishedSnapshot is the blob published for anonymous read access
// after a successful bulk import. It lives at a fixed storage key; its
// absence means "not yet synced", which is not an error state.
type PublishedSnapshot struct {
	BatchID      string        `json:"batchId"`
	Quests       []Quest       `json:"quests"`
	Roles        []Role        `json:"roles"`
	Dreamers     []Dreamer     `json:"dreamers"`
	Events       []Event       `json:"events"`
	Announcement *Announcement `json:"announcement,omitempty"`
	LastSynced   time.Time     `json:"lastSynced"`
}
