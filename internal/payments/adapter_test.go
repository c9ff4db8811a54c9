package payments

import (
	"context"
	"io"
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	inputs []types.DonationInput
}

func (m *memRecorder) RecordDonation(_ context.Context, in types.DonationInput) (*types.Donation, error) {
	m.inputs = append(m.inputs, in)
	return &types.Donation{
		ID:            "don1",
		Amount:        in.Amount,
		Status:        in.Status,
		TransactionID: in.TransactionID,
	}, nil
}

func newTestAdapter(rec *memRecorder) *Adapter {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAdapter(logger, rec, "sk_test_fake")
}

func TestConfirmSuccessRecordsOneDonation(t *testing.T) {
	rec := &memRecorder{}
	a := newTestAdapter(rec)

	donation, err := a.Confirm(context.Background(), Outcome{
		Status:          "success",
		TransactionID:   "pi_123",
		Amount:          25.5,
		Name:            "Aria",
		Type:            types.DonationTypeOneTime,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	require.NoError(t, err)
	require.NotNil(t, donation)
	require.Len(t, rec.inputs, 1)
	assert.Equal(t, types.DonationStatusSuccess, rec.inputs[0].Status)
	assert.Equal(t, "pi_123", rec.inputs[0].TransactionID)
	assert.Equal(t, "q1", rec.inputs[0].SponsorshipID)
	assert.NotEmpty(t, rec.inputs[0].Date)
}

func TestConfirmSuccessRequiresTransactionID(t *testing.T) {
	rec := &memRecorder{}
	a := newTestAdapter(rec)

	_, err := a.Confirm(context.Background(), Outcome{
		Status: "success",
		Amount: 25.5,
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, rec.inputs)
}

func TestConfirmCancellationRecordsFailedDonation(t *testing.T) {
	rec := &memRecorder{}
	a := newTestAdapter(rec)

	donation, err := a.Confirm(context.Background(), Outcome{
		Status:        "cancelled",
		TransactionID: "pi_should_be_discarded",
		Amount:        25.5,
	})

	require.NoError(t, err)
	require.NotNil(t, donation)
	require.Len(t, rec.inputs, 1)
	assert.Equal(t, types.DonationStatusFailed, rec.inputs[0].Status)
	// A checkout that never completed has no transaction to reference.
	assert.Empty(t, rec.inputs[0].TransactionID)
}

func TestConfirmFailureRecordsFailedDonation(t *testing.T) {
	rec := &memRecorder{}
	a := newTestAdapter(rec)

	_, err := a.Confirm(context.Background(), Outcome{
		Status: "failed",
		Amount: 10,
	})

	require.NoError(t, err)
	require.Len(t, rec.inputs, 1)
	assert.Equal(t, types.DonationStatusFailed, rec.inputs[0].Status)
}

func TestConfirmRejectsUnknownOutcome(t *testing.T) {
	rec := &memRecorder{}
	a := newTestAdapter(rec)

	_, err := a.Confirm(context.Background(), Outcome{Status: "maybe"})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, rec.inputs)
}
