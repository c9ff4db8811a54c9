package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"
)

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// writeOperationError maps the error taxonomy onto status codes:
// validation problems are the caller's, missing records are 404s, and
// anything from the remote store is a 502 because the snapshot is left
// at its last-known-good state.
func (s *Service) writeOperationError(w http.ResponseWriter, err error) {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		s.writeError(w, http.StatusBadRequest, validation.Error())
		return
	}

	switch {
	case errors.Is(err, types.ErrQuestNotFound),
		errors.Is(err, types.ErrEventNotFound),
		errors.Is(err, types.ErrRoleNotFound),
		errors.Is(err, types.ErrDreamerNotFound),
		errors.Is(err, types.ErrSponsorNotFound),
		errors.Is(err, types.ErrDonationNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var storeErr *types.StoreError
	if errors.As(err, &storeErr) {
		s.logger.WithError(err).Error("remote store operation failed")
		s.writeError(w, http.StatusBadGateway, storeErr.Error())
		return
	}

	s.logger.WithError(err).Error("operation failed")
	s.writeError(w, http.StatusInternalServerError, err.Error())
}
