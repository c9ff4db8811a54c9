package ledger

import (
	"context"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/mapper"

	"github.com/robfig/cron/v3"
)

// Reconciler retries donations whose goal balance update never landed.
// It runs on a cron schedule and is the durable side of the two-phase
// record protocol: a pending marker survives a crash between the
// donation insert and the balance write.
type Reconciler struct {
	ledger *Ledger
	cron   *cron.Cron
}

func NewReconciler(ledger *Ledger) *Reconciler {
	return &Reconciler{
		ledger: ledger,
		cron:   cron.New(),
	}
}

func (r *Reconciler) Start(ctx context.Context, schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		if n, err := r.ledger.ReconcilePending(ctx); err != nil {
			r.ledger.logger.WithError(err).Warn("reconcile pass incomplete")
		} else if n > 0 {
			r.ledger.logger.WithField("reconciled", n).Info("reconciled pending donations")
		}
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

// ReconcilePending applies the balance delta for every donation still
// marked pending and clears the marker. Returns how many were settled;
// a failure on one donation does not block the rest.
func (l *Ledger) ReconcilePending(ctx context.Context) (int, error) {
	pending, err := l.donations.ListPendingReconcile(ctx)
	if err != nil {
		return 0, err
	}

	settled := 0
	var lastErr error

	for _, rec := range pending {
		donation := mapper.DonationToApp(rec)

		if err := l.applyDelta(ctx, donation.SponsorshipType, donation.SponsorshipID, donation.Amount); err != nil {
			l.logger.WithError(err).WithField("donation_id", donation.ID).
				Warn("pending donation still not reconciled")
			lastErr = err
			continue
		}

		if err := l.donations.MarkReconciled(ctx, donation.ID); err != nil {
			l.logger.WithError(err).WithField("donation_id", donation.ID).
				Error("balance applied but reconcile marker not cleared")
			lastErr = err
			continue
		}

		settled++
	}

	if settled > 0 {
		l.refresh(ctx)
	}

	return settled, lastErr
}
