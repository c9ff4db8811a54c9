package mapper

import (
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 0.0, ParseAmount(nil))
	assert.Equal(t, 0.0, ParseAmount(utils.StringPtr("")))
	assert.Equal(t, 0.0, ParseAmount(utils.StringPtr("not-a-number")))
	assert.Equal(t, 0.0, ParseAmount(utils.StringPtr("-12.50")))
	assert.Equal(t, 25.5, ParseAmount(utils.StringPtr("25.5")))
	assert.Equal(t, 100.0, ParseAmount(utils.StringPtr(" 100 ")))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "25.5", FormatAmount(25.5))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "0", FormatAmount(-3))
}

func TestQuestToAppDefaults(t *testing.T) {
	// A record with nothing but a title maps to zeroed app fields, never
	// nil slices or a panic.
	quest := QuestToApp(store.QuestRecord{ID: "q1", Title: "Plant the grove"})

	assert.Equal(t, 0.0, quest.AmountNeeded)
	assert.Equal(t, 0.0, quest.AmountRaised)
	assert.Equal(t, types.FundingStatusNotFunded, quest.FundingStatus)
	assert.NotNil(t, quest.GalleryImages)
	assert.Empty(t, quest.GalleryImages)
	assert.NotNil(t, quest.CompletionImages)
	assert.Empty(t, quest.Steps)
	assert.Equal(t, "", quest.DateCompleted)
}

func TestQuestToAppMalformedJSONBDegrades(t *testing.T) {
	quest := QuestToApp(store.QuestRecord{
		ID:               "q1",
		Title:            "Plant the grove",
		GalleryImages:    []byte(`{"error":"quota exceeded"}`),
		CompletionImages: []byte(`null`),
	})

	assert.Empty(t, quest.GalleryImages)
	assert.Empty(t, quest.CompletionImages)
}

func TestQuestRoundTrip(t *testing.T) {
	in := types.Quest{
		ContentRecord: types.ContentRecord{
			ID:               "q1",
			Title:            "Plant the grove",
			AmountNeeded:     500,
			AmountRaised:     125.5,
			FundingStatus:    types.FundingStatusActive,
			GalleryImages:    []string{"a.jpg", "b.jpg"},
			CompletionImages: []string{},
			DateCompleted:    "",
		},
		Purpose:    "Reforest the hill",
		Difficulty: types.DifficultyMedium,
		TimeNeeded: "2 weekends",
		Steps:      []string{"Gather saplings", "Dig", "Plant"},
		Impact:     "300 trees",
	}

	out := QuestToApp(QuestToRecord(in))
	assert.Equal(t, in, out)
}

func TestEventRoundTrip(t *testing.T) {
	in := types.Event{
		ContentRecord: types.ContentRecord{
			ID:               "e1",
			Title:            "Harvest Festival",
			AmountNeeded:     1200,
			AmountRaised:     0,
			FundingStatus:    types.FundingStatusNotFunded,
			GalleryImages:    []string{},
			CompletionImages: []string{},
		},
		Host:        "The Wardens",
		Type:        types.EventTypeOffline,
		Date:        "2026-10-01",
		Location:    "Village square",
		Description: "Annual gathering",
	}

	out := EventToApp(EventToRecord(in))
	assert.Equal(t, in, out)
}

func TestUnknownFundingStatusNormalizes(t *testing.T) {
	raised := "10"
	quest := QuestToApp(store.QuestRecord{
		ID:            "q1",
		Title:         "Plant the grove",
		FundingStatus: "funded???",
		AmountRaised:  &raised,
	})

	assert.Equal(t, types.FundingStatusNotFunded, quest.FundingStatus)
}

func TestStepsSplitAndJoin(t *testing.T) {
	rec := store.QuestRecord{
		ID:    "q1",
		Title: "Plant the grove",
		Steps: "Gather saplings\n\n  Dig  \nPlant",
	}

	quest := QuestToApp(rec)
	require.Equal(t, []string{"Gather saplings", "Dig", "Plant"}, quest.Steps)

	back := QuestToRecord(quest)
	assert.Equal(t, "Gather saplings\nDig\nPlant", back.Steps)
}

func TestDreamerSocialsAndLevel(t *testing.T) {
	points := "250"
	dreamer := DreamerToApp(store.DreamerRecord{
		ID:            "d1",
		Name:          "Aria",
		RoleID:        "r1",
		Themes:        "music, forest ,",
		SocialYoutube: "https://youtube.com/@aria",
		Points:        &points,
	})

	assert.Equal(t, 250, dreamer.Points)
	assert.Equal(t, 2, dreamer.Level)
	assert.Equal(t, []string{"music", "forest"}, dreamer.Themes)
	require.Len(t, dreamer.Socials, 1)
	assert.Equal(t, "https://youtube.com/@aria", dreamer.Socials["youtube"])
}

func TestDreamerPointsDefaults(t *testing.T) {
	assert.Equal(t, 0, DreamerToApp(store.DreamerRecord{ID: "d1", Name: "Aria"}).Points)

	bad := "many"
	assert.Equal(t, 0, DreamerToApp(store.DreamerRecord{ID: "d1", Points: &bad}).Points)

	neg := "-40"
	assert.Equal(t, 0, DreamerToApp(store.DreamerRecord{ID: "d1", Points: &neg}).Points)
}

func TestDreamerToRecordFlattensSocials(t *testing.T) {
	rec := DreamerToRecord(types.Dreamer{
		ID:   "d1",
		Name: "Aria",
		Socials: map[string]string{
			"youtube":  "yt",
			"facebook": "fb",
		},
		Points: -10,
	})

	assert.Equal(t, "yt", rec.SocialYoutube)
	assert.Equal(t, "fb", rec.SocialFacebook)
	assert.Equal(t, "", rec.SocialTwitter)
	require.NotNil(t, rec.Points)
	assert.Equal(t, "0", *rec.Points)
}

func TestDonationToAppDefaultsSponsorshipType(t *testing.T) {
	amount := "25"
	donation := DonationToApp(store.DonationRecord{
		ID:     "don1",
		Amount: &amount,
		Status: "success",
	})

	assert.Equal(t, types.SponsorshipGeneral, donation.SponsorshipType)
	assert.Equal(t, 25.0, donation.Amount)
}

func TestDonationInputToRecordStartsUnreconciled(t *testing.T) {
	rec := DonationInputToRecord(types.DonationInput{
		Amount:          25.5,
		Status:          types.DonationStatusSuccess,
		SponsorshipType: types.SponsorshipQuest,
		SponsorshipID:   "q1",
	})

	assert.Equal(t, store.ReconcileNone, rec.ReconcileStatus)
	require.NotNil(t, rec.Amount)
	assert.Equal(t, "25.5", *rec.Amount)
	assert.Equal(t, "quest", rec.SponsorshipType)
}
