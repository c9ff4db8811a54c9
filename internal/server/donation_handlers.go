package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/payments"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/alexedwards/flow"
)

// handleConfirmDonation receives the terminal result of a checkout
// flow. When a provider session id is supplied, the outcome is verified
// against the provider rather than trusted from the redirect; without
// one (cancellations, init failures) the reported outcome is recorded
// as a failed donation for audit.
func (s *Service) handleConfirmDonation(w http.ResponseWriter, r *http.Request) {
	var input types.DonationConfirmForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	var (
		outcome payments.Outcome
		err     error
	)

	if input.SessionID != "" {
		outcome, err = s.payments.VerifySession(r.Context(), input.SessionID)
		if err != nil {
			s.writeOperationError(w, err)
			return
		}
		if input.Name != "" {
			outcome.Name = input.Name
		}
		if input.Message != "" {
			outcome.Message = input.Message
		}
	} else {
		outcome = payments.Outcome{
			Status:          input.Outcome,
			Amount:          input.Amount,
			Name:            input.Name,
			Email:           input.Email,
			Message:         input.Message,
			Type:            types.DonationType(input.Type),
			SponsorshipType: types.SponsorshipType(input.SponsorshipType),
			SponsorshipID:   input.SponsorshipID,
		}
	}

	donation, err := s.payments.Confirm(r.Context(), outcome)
	if err != nil {
		var gap *types.ReconciliationGap
		if errors.As(err, &gap) {
			// The donation is committed; only the balance update is
			// outstanding and the reconciler will retry it.
			s.writeJSON(w, http.StatusCreated, map[string]any{
				"donation": donation,
				"warning":  gap.Error(),
			})
			return
		}
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"donation": donation})
}

func (s *Service) handleDeleteDonation(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	if err := s.ledger.DeleteDonation(r.Context(), id); err != nil {
		var gap *types.ReconciliationGap
		if errors.As(err, &gap) {
			s.writeJSON(w, http.StatusOK, map[string]any{
				"ok":      true,
				"warning": gap.Error(),
			})
			return
		}
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func splitFormLines(raw string) []string {
	return splitForm(raw, "\n")
}

func splitFormCommas(raw string) []string {
	return splitForm(raw, ",")
}

func splitForm(raw, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
