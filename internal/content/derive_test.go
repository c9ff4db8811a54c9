package content

import (
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSponsorshipsExcludesUnfundedRecords(t *testing.T) {
	quests := []types.Quest{
		{ContentRecord: types.ContentRecord{ID: "q1", Title: "Plant the grove", AmountNeeded: 500, AmountRaised: 120, FundingStatus: types.FundingStatusActive}, Purpose: "Reforest"},
		{ContentRecord: types.ContentRecord{ID: "q2", Title: "No target"}},
	}
	events := []types.Event{
		{ContentRecord: types.ContentRecord{ID: "e1", Title: "Harvest Festival", AmountNeeded: 1200}, Description: "Annual gathering"},
	}

	sponsorships := DeriveSponsorships(quests, events)

	require.Len(t, sponsorships, 2)

	assert.Equal(t, "q1", sponsorships[0].ID)
	assert.Equal(t, types.SponsorshipQuest, sponsorships[0].Type)
	assert.Equal(t, "Reforest", sponsorships[0].Description)
	assert.Equal(t, 120.0, sponsorships[0].AmountRaised)

	assert.Equal(t, "e1", sponsorships[1].ID)
	assert.Equal(t, types.SponsorshipEvent, sponsorships[1].Type)
	assert.Equal(t, "Annual gathering", sponsorships[1].Description)
}

func TestDeriveSponsorshipsEmptyInput(t *testing.T) {
	sponsorships := DeriveSponsorships(nil, nil)
	require.NotNil(t, sponsorships)
	assert.Empty(t, sponsorships)
}
