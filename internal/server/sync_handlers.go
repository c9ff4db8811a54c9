package server

import (
	"encoding/json"
	"net/http"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/importer"
)

// handleSync is the bulk admin import: a JSON body with one sheet per
// collection. The importer rejects the whole payload if any sheet is
// malformed, so there is never a partial import to report.
func (s *Service) handleSync(w http.ResponseWriter, r *http.Request) {
	var payload importer.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed sync payload")
		return
	}

	result, err := s.importer.Import(r.Context(), payload)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}
