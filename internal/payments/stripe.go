// Package payments is the boundary to the external checkout provider.
// Every terminal checkout state (paid, cancelled, failed to start)
// produces exactly one donation record; cancellations and failures are
// recorded as failed donations with no transaction id so the ledger
// keeps an audit trail without moving any balance.
package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
	stripe "github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/client"
)

// Outcome is the provider-issued terminal result of a checkout flow.
type Outcome struct {
	Status          string // success | cancelled | failed
	TransactionID   string
	PaymentMethod   string
	Amount          float64
	Name            string
	Email           string
	Message         string
	Type            types.DonationType
	SponsorshipType types.SponsorshipType
	SponsorshipID   string
}

type recorder interface {
	RecordDonation(ctx context.Context, in types.DonationInput) (*types.Donation, error)
}

type Adapter struct {
	logger *logrus.Logger
	ledger recorder
	api    *client.API
}

func NewAdapter(logger *logrus.Logger, ledger recorder, apiKey string) *Adapter {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &Adapter{
		logger: logger,
		ledger: ledger,
		api:    api,
	}
}

// Confirm turns a terminal checkout outcome into the one donation
// record it owes the ledger.
func (a *Adapter) Confirm(ctx context.Context, out Outcome) (*types.Donation, error) {
	in := types.DonationInput{
		Name:            out.Name,
		Email:           out.Email,
		Amount:          out.Amount,
		Type:            out.Type,
		Message:         out.Message,
		Date:            time.Now().Format("2006-01-02"),
		PaymentMethod:   out.PaymentMethod,
		SponsorshipType: out.SponsorshipType,
		SponsorshipID:   out.SponsorshipID,
	}

	switch out.Status {
	case "success":
		if out.TransactionID == "" {
			return nil, &types.ValidationError{Field: "transactionId", Reason: "required for a successful payment"}
		}
		in.Status = types.DonationStatusSuccess
		in.TransactionID = out.TransactionID
	case "cancelled", "failed":
		in.Status = types.DonationStatusFailed
		in.TransactionID = ""
	default:
		return nil, &types.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown outcome %q", out.Status)}
	}

	a.logger.WithFields(logrus.Fields{
		"status":           in.Status,
		"sponsorship_type": in.SponsorshipType,
		"sponsorship_id":   in.SponsorshipID,
	}).Info("recording payment outcome")

	return a.ledger.RecordDonation(ctx, in)
}

// VerifySession resolves a checkout session against the provider
// instead of trusting redirect parameters.
func (a *Adapter) VerifySession(ctx context.Context, sessionID string) (Outcome, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	sess, err := a.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return Outcome{}, fmt.Errorf("retrieve checkout session: %w", err)
	}

	out := Outcome{
		Amount:          float64(sess.AmountTotal) / 100,
		PaymentMethod:   "card",
		Type:            types.DonationTypeOneTime,
		SponsorshipType: types.SponsorshipGeneral,
	}

	if len(sess.PaymentMethodTypes) > 0 {
		out.PaymentMethod = string(sess.PaymentMethodTypes[0])
	}

	if sess.Mode == stripe.CheckoutSessionModeSubscription {
		out.Type = types.DonationTypeMonthly
	}

	if sess.CustomerDetails != nil {
		out.Name = sess.CustomerDetails.Name
		out.Email = sess.CustomerDetails.Email
	}

	if v, ok := sess.Metadata["sponsorship_type"]; ok {
		out.SponsorshipType = types.SponsorshipType(v)
	}
	if v, ok := sess.Metadata["sponsorship_id"]; ok {
		out.SponsorshipID = v
	}
	if v, ok := sess.Metadata["message"]; ok {
		out.Message = v
	}

	if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		out.Status = "success"
		if sess.PaymentIntent != nil {
			out.TransactionID = sess.PaymentIntent.ID
		} else {
			out.TransactionID = sess.ID
		}
	} else {
		out.Status = "failed"
	}

	return out, nil
}
