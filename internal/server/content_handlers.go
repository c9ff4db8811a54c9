package server

import (
	"errors"
	"net/http"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"
)

type contentResponse struct {
	Loading      bool                   `json:"loading"`
	Quests       []types.Quest          `json:"quests"`
	Events       []types.Event          `json:"events"`
	Roles        []types.Role           `json:"roles"`
	Dreamers     []types.Dreamer        `json:"dreamers"`
	Sponsors     []types.Sponsor        `json:"sponsors"`
	Announcement *types.Announcement    `json:"announcement,omitempty"`
	Donations    []types.Donation       `json:"donations"`
	Students     []types.AcademyStudent `json:"academyStudents"`
}

func (s *Service) handleContent(w http.ResponseWriter, _ *http.Request) {
	snap := s.content.Snapshot()

	s.writeJSON(w, http.StatusOK, contentResponse{
		Loading:      s.content.Loading(),
		Quests:       snap.Quests,
		Events:       snap.Events,
		Roles:        snap.Roles,
		Dreamers:     snap.Dreamers,
		Sponsors:     snap.Sponsors,
		Announcement: snap.Announcement,
		Donations:    snap.Donations,
		Students:     snap.Students,
	})
}

func (s *Service) handleSponsorships(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"sponsorships": s.content.Sponsorships(),
	})
}

// handlePublishedSnapshot serves the anonymous-read blob written by the
// last successful bulk import. "Never synced" is a defined state, not
// an error.
func (s *Service) handlePublishedSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshots.Fetch(r.Context())
	if err != nil {
		if errors.Is(err, types.ErrNotSynced) {
			s.writeJSON(w, http.StatusOK, map[string]any{"synced": false})
			return
		}
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"synced":   true,
		"snapshot": snap,
	})
}

func (s *Service) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.content.Refresh(r.Context()); err != nil {
		// Partial refreshes still install what they fetched.
		s.writeJSON(w, http.StatusOK, map[string]any{
			"ok":      false,
			"warning": err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
