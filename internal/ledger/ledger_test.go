package ledger

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDonations struct {
	seq  int
	recs map[string]*store.DonationRecord
}

func newMemDonations() *memDonations {
	return &memDonations{recs: make(map[string]*store.DonationRecord)}
}

func (m *memDonations) Donation(_ context.Context, id string) (*store.DonationRecord, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, types.ErrDonationNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *memDonations) Insert(_ context.Context, rec *store.DonationRecord) (*store.DonationRecord, error) {
	m.seq++
	cp := *rec
	cp.ID = "don" + strconv.Itoa(m.seq)
	m.recs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memDonations) Delete(_ context.Context, id string) error {
	if _, ok := m.recs[id]; !ok {
		return types.ErrDonationNotFound
	}
	delete(m.recs, id)
	return nil
}

func (m *memDonations) ListPendingReconcile(_ context.Context) ([]store.DonationRecord, error) {
	var out []store.DonationRecord
	for _, rec := range m.recs {
		if rec.ReconcileStatus == store.ReconcilePending {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *memDonations) MarkReconciled(_ context.Context, id string) error {
	rec, ok := m.recs[id]
	if !ok {
		return types.ErrDonationNotFound
	}
	rec.ReconcileStatus = store.ReconcileDone
	return nil
}

type memGoals struct {
	balances map[string]string
	writeErr error
}

func newMemGoals(balances map[string]string) *memGoals {
	return &memGoals{balances: balances}
}

func (m *memGoals) AmountRaised(_ context.Context, id string) (*string, error) {
	raw, ok := m.balances[id]
	if !ok {
		return nil, types.ErrQuestNotFound
	}
	return utils.StringPtr(raw), nil
}

func (m *memGoals) SetAmountRaised(_ context.Context, id string, amount string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.balances[id] = amount
	return nil
}

type countingRefresher struct{ calls int }

func (c *countingRefresher) Refresh(context.Context) error {
	c.calls++
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestLedger(donations *memDonations, quests, events *memGoals) (*Ledger, *countingRefresher) {
	refresher := &countingRefresher{}
	return New(quietLogger(), donations, quests, events, refresher), refresher
}

func TestRecordDonationMovesQuestBalance(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	l, refresher := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Name:            "Aria",
		Amount:          25.5,
		Type:            types.DonationTypeOneTime,
		Status:          types.DonationStatusSuccess,
		TransactionID:   "pi_123",
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	require.NoError(t, err)
	require.NotNil(t, donation)
	assert.Equal(t, 25.5, donation.Amount)
	assert.Equal(t, "125.5", quests.balances["q1"])
	assert.Equal(t, store.ReconcileDone, donations.recs[donation.ID].ReconcileStatus)
	assert.Equal(t, 1, refresher.calls)
}

func TestRecordDonationRoundsToCents(t *testing.T) {
	quests := newMemGoals(map[string]string{"q1": "0.1"})
	l, _ := newTestLedger(newMemDonations(), quests, newMemGoals(nil))

	_, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          0.2,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	require.NoError(t, err)
	assert.Equal(t, "0.3", quests.balances["q1"])
}

func TestRecordFailedDonationLeavesBalanceAlone(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          40,
		Status:          types.DonationStatusFailed,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	require.NoError(t, err)
	assert.Equal(t, "100", quests.balances["q1"])
	// The failed attempt is still an audit row.
	assert.Len(t, donations.recs, 1)
	assert.Equal(t, store.ReconcileNone, donations.recs[donation.ID].ReconcileStatus)
}

func TestRecordGeneralDonationMovesNothing(t *testing.T) {
	quests := newMemGoals(map[string]string{"q1": "100"})
	events := newMemGoals(map[string]string{"e1": "10"})
	l, _ := newTestLedger(newMemDonations(), quests, events)

	_, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount: 60,
		Status: types.DonationStatusSuccess,
	})

	require.NoError(t, err)
	assert.Equal(t, "100", quests.balances["q1"])
	assert.Equal(t, "10", events.balances["e1"])
}

func TestRecordDonationRejectsNonPositiveAmount(t *testing.T) {
	donations := newMemDonations()
	l, _ := newTestLedger(donations, newMemGoals(nil), newMemGoals(nil))

	_, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount: 0,
		Status: types.DonationStatusSuccess,
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, donations.recs)
}

func TestRecordDonationBalanceFailureLeavesPendingMarker(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	quests.writeErr = errors.New("connection reset")
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          25,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	var gap *types.ReconciliationGap
	require.ErrorAs(t, err, &gap)
	require.NotNil(t, donation)
	assert.Equal(t, donation.ID, gap.DonationID)

	// Donation committed, balance untouched, marker pending.
	assert.Equal(t, "100", quests.balances["q1"])
	assert.Equal(t, store.ReconcilePending, donations.recs[donation.ID].ReconcileStatus)
}

func TestReconcilePendingSettlesLeftoverDonations(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	quests.writeErr = errors.New("connection reset")
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          25,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})
	var gap *types.ReconciliationGap
	require.ErrorAs(t, err, &gap)

	// Store recovers; the next reconcile pass settles the donation.
	quests.writeErr = nil

	settled, err := l.ReconcilePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, settled)
	assert.Equal(t, "125", quests.balances["q1"])
	assert.Equal(t, store.ReconcileDone, donations.recs[donation.ID].ReconcileStatus)

	// A second pass finds nothing left.
	settled, err = l.ReconcilePending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, settled)
	assert.Equal(t, "125", quests.balances["q1"])
}

func TestDeleteDonationReversesBalance(t *testing.T) {
	donations := newMemDonations()
	events := newMemGoals(map[string]string{"e1": "80"})
	l, _ := newTestLedger(donations, newMemGoals(nil), events)

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          30,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipEvent,
		SponsorshipID:   "e1",
	})
	require.NoError(t, err)
	require.Equal(t, "110", events.balances["e1"])

	require.NoError(t, l.DeleteDonation(context.Background(), donation.ID))
	assert.Equal(t, "80", events.balances["e1"])
	assert.Empty(t, donations.recs)
}

func TestDeleteDonationFloorsBalanceAtZero(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          30,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})
	require.NoError(t, err)

	// Something else drained the balance below the reversal amount.
	quests.balances["q1"] = "10"

	require.NoError(t, l.DeleteDonation(context.Background(), donation.ID))
	assert.Equal(t, "0", quests.balances["q1"])
}

func TestDeleteDonationTwiceErrors(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          30,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})
	require.NoError(t, err)

	require.NoError(t, l.DeleteDonation(context.Background(), donation.ID))

	err = l.DeleteDonation(context.Background(), donation.ID)
	require.ErrorIs(t, err, types.ErrDonationNotFound)
	// The balance is only reversed once.
	assert.Equal(t, "100", quests.balances["q1"])
}

func TestDeleteFailedDonationSkipsReversal(t *testing.T) {
	donations := newMemDonations()
	quests := newMemGoals(map[string]string{"q1": "100"})
	l, _ := newTestLedger(donations, quests, newMemGoals(nil))

	donation, err := l.RecordDonation(context.Background(), types.DonationInput{
		Amount:          30,
		Status:          types.DonationStatusFailed,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})
	require.NoError(t, err)

	require.NoError(t, l.DeleteDonation(context.Background(), donation.ID))
	assert.Equal(t, "100", quests.balances["q1"])
}
