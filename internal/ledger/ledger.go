// Package ledger implements the donation-recording and reversal
// protocols, the one place that needs multi-step consistency: write the
// donation, then reconcile the referenced goal's running balance.
package ledger

import (
	"context"
	"fmt"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/mapper"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
)

type donationStore interface {
	Donation(ctx context.Context, id string) (*store.DonationRecord, error)
	Insert(ctx context.Context, rec *store.DonationRecord) (*store.DonationRecord, error)
	Delete(ctx context.Context, id string) error
	ListPendingReconcile(ctx context.Context) ([]store.DonationRecord, error)
	MarkReconciled(ctx context.Context, id string) error
}

// goalBalances is the balance slice of a quest or event repository.
type goalBalances interface {
	AmountRaised(ctx context.Context, id string) (*string, error)
	SetAmountRaised(ctx context.Context, id string, amount string) error
}

type refresher interface {
	Refresh(ctx context.Context) error
}

type Ledger struct {
	logger    *logrus.Logger
	donations donationStore
	quests    goalBalances
	events    goalBalances
	content   refresher
}

func New(logger *logrus.Logger, donations donationStore, quests, events goalBalances, content refresher) *Ledger {
	return &Ledger{
		logger:    logger,
		donations: donations,
		quests:    quests,
		events:    events,
		content:   content,
	}
}

func (l *Ledger) goals(sponsorshipType types.SponsorshipType) (goalBalances, error) {
	switch sponsorshipType {
	case types.SponsorshipQuest:
		return l.quests, nil
	case types.SponsorshipEvent:
		return l.events, nil
	default:
		return nil, fmt.Errorf("no goal collection for sponsorship type %q", sponsorshipType)
	}
}

// applyDelta performs the read-modify-write on a goal's running total.
// The result is floored at zero so reversals can never drive a balance
// negative, even on duplicate or oversized reversals.
func (l *Ledger) applyDelta(ctx context.Context, sponsorshipType types.SponsorshipType, goalID string, delta float64) error {
	goals, err := l.goals(sponsorshipType)
	if err != nil {
		return err
	}

	raw, err := goals.AmountRaised(ctx, goalID)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "read goal balance")
	}

	current := mapper.ParseAmount(raw)
	next := utils.RoundFloat64(current+delta, 2)
	if next < 0 {
		next = 0
	}

	return utils.ErrorWrapOrNil(
		goals.SetAmountRaised(ctx, goalID, mapper.FormatAmount(next)),
		"write goal balance",
	)
}

// RecordDonation writes the donation, then adds its amount to the
// referenced goal. The caller validates the amount before this call.
// If the balance update fails the donation stays committed with a
// pending reconcile marker and the error returned is a
// *types.ReconciliationGap; the returned donation is still valid.
func (l *Ledger) RecordDonation(ctx context.Context, in types.DonationInput) (*types.Donation, error) {
	if in.Status == types.DonationStatusSuccess && in.Amount <= 0 {
		return nil, &types.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	rec := mapper.DonationInputToRecord(in)

	// Failed and general-fund donations are audit rows: nothing to
	// reconcile. Only a successful targeted donation moves a balance.
	moveBalance := in.Targeted() && in.Status == types.DonationStatusSuccess
	if moveBalance {
		rec.ReconcileStatus = store.ReconcilePending
	}

	inserted, err := l.donations.Insert(ctx, &rec)
	if err != nil {
		return nil, err
	}

	donation := mapper.DonationToApp(*inserted)

	if moveBalance {
		if err := l.applyDelta(ctx, in.SponsorshipType, in.SponsorshipID, donation.Amount); err != nil {
			l.logger.WithError(err).WithFields(logrus.Fields{
				"donation_id":    donation.ID,
				"sponsorship_id": in.SponsorshipID,
			}).Error("balance update failed, donation left pending reconcile")

			l.refresh(ctx)
			return &donation, &types.ReconciliationGap{
				DonationID:    donation.ID,
				SponsorshipID: in.SponsorshipID,
				Err:           err,
			}
		}

		if err := l.donations.MarkReconciled(ctx, donation.ID); err != nil {
			// Balance already moved; the reconciler must not retry this
			// one blindly, so surface loudly instead of leaving pending.
			l.logger.WithError(err).WithField("donation_id", donation.ID).
				Error("failed to clear reconcile marker after balance update")
		}
	}

	l.refresh(ctx)

	return &donation, nil
}

// DeleteDonation removes a donation and reverses its effect on the goal
// it funded, flooring the balance at zero. Deleting an id that no
// longer exists is an error, not a no-op.
func (l *Ledger) DeleteDonation(ctx context.Context, donationID string) error {
	rec, err := l.donations.Donation(ctx, donationID)
	if err != nil {
		return err
	}

	donation := mapper.DonationToApp(*rec)

	if err := l.donations.Delete(ctx, donationID); err != nil {
		return err
	}

	reverse := donation.SponsorshipID != "" &&
		donation.SponsorshipType != types.SponsorshipGeneral &&
		donation.Status == types.DonationStatusSuccess

	if reverse {
		if err := l.applyDelta(ctx, donation.SponsorshipType, donation.SponsorshipID, -donation.Amount); err != nil {
			l.logger.WithError(err).WithFields(logrus.Fields{
				"donation_id":    donationID,
				"sponsorship_id": donation.SponsorshipID,
			}).Error("balance reversal failed after donation delete")

			l.refresh(ctx)
			return &types.ReconciliationGap{
				DonationID:    donationID,
				SponsorshipID: donation.SponsorshipID,
				Err:           err,
			}
		}
	}

	l.refresh(ctx)

	return nil
}

func (l *Ledger) refresh(ctx context.Context) {
	if l.content == nil {
		return
	}
	if err := l.content.Refresh(ctx); err != nil {
		l.logger.WithError(err).Warn("post-ledger refresh incomplete")
	}
}
