package store

import (
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSuffixSkipsKeyAndCreationColumns(t *testing.T) {
	suffix := upsertSuffix(map[string]any{
		"id":            "q1",
		"created_at":    nil,
		"title":         "Plant the grove",
		"amount_raised": nil,
	})

	assert.Equal(t, "ON CONFLICT (id) DO UPDATE SET amount_raised = EXCLUDED.amount_raised, title = EXCLUDED.title", suffix)
}

func TestQuestColumnsMatchRecordTags(t *testing.T) {
	cols := utils.StructTagValues(QuestRecord{})

	require.NotEmpty(t, cols)
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "amount_raised")
	assert.Contains(t, cols, "date_completed")
	assert.NotContains(t, cols, "")
}

func TestDonationRecordCarriesReconcileColumn(t *testing.T) {
	cols := utils.StructTagValues(DonationRecord{})
	assert.Contains(t, cols, "reconcile_status")
}
