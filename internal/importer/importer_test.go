package importer

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUpserts struct {
	quests        []store.QuestRecord
	roles         []store.RoleRecord
	dreamers      []store.DreamerRecord
	events        []store.EventRecord
	announcements []store.AnnouncementRecord
}

type questFn func(ctx context.Context, rec *store.QuestRecord) error

func (f questFn) Upsert(ctx context.Context, rec *store.QuestRecord) error { return f(ctx, rec) }

type roleFn func(ctx context.Context, rec *store.RoleRecord) error

func (f roleFn) Upsert(ctx context.Context, rec *store.RoleRecord) error { return f(ctx, rec) }

type dreamerFn func(ctx context.Context, rec *store.DreamerRecord) error

func (f dreamerFn) Upsert(ctx context.Context, rec *store.DreamerRecord) error { return f(ctx, rec) }

type eventFn func(ctx context.Context, rec *store.EventRecord) error

func (f eventFn) Upsert(ctx context.Context, rec *store.EventRecord) error { return f(ctx, rec) }

type announcementFn func(ctx context.Context, rec *store.AnnouncementRecord) error

func (f announcementFn) Upsert(ctx context.Context, rec *store.AnnouncementRecord) error {
	return f(ctx, rec)
}

type memPublisher struct {
	published *types.PublishedSnapshot
}

func (m *memPublisher) Publish(_ context.Context, snap *types.PublishedSnapshot) error {
	m.published = snap
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestImporter(sink *memUpserts, publisher *memPublisher) *Importer {
	return New(
		quietLogger(),
		questFn(func(_ context.Context, rec *store.QuestRecord) error {
			sink.quests = append(sink.quests, *rec)
			return nil
		}),
		roleFn(func(_ context.Context, rec *store.RoleRecord) error {
			sink.roles = append(sink.roles, *rec)
			return nil
		}),
		dreamerFn(func(_ context.Context, rec *store.DreamerRecord) error {
			sink.dreamers = append(sink.dreamers, *rec)
			return nil
		}),
		eventFn(func(_ context.Context, rec *store.EventRecord) error {
			sink.events = append(sink.events, *rec)
			return nil
		}),
		announcementFn(func(_ context.Context, rec *store.AnnouncementRecord) error {
			sink.announcements = append(sink.announcements, *rec)
			return nil
		}),
		publisher,
		nil,
	)
}

func TestImportWritesRowsAndPublishes(t *testing.T) {
	sink := &memUpserts{}
	publisher := &memPublisher{}
	imp := newTestImporter(sink, publisher)

	result, err := imp.Import(context.Background(), Payload{
		Quests: json.RawMessage(`[
			{"id":"q1","title":"Plant the grove","amount_needed":500,"steps":"Gather\nDig"},
			{"id":"q2","title":"Repair the well"}
		]`),
		Roles: json.RawMessage(`[
			{"id":"r1","name":"Weavers","is_exclusive":true}
		]`),
		Events: json.RawMessage(`[
			{"id":"e1","title":"Harvest Festival","type":"offline"}
		]`),
		Announcements: json.RawMessage(`[
			{"id":"a1","title":"Welcome"},
			{"id":"a2","title":"Second, ignored"}
		]`),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 2, result.Quests)
	assert.Equal(t, 1, result.Roles)
	assert.Equal(t, 1, result.Events)
	assert.True(t, result.Synced)

	require.Len(t, sink.quests, 2)
	require.NotNil(t, sink.quests[0].AmountNeeded)
	assert.Equal(t, "500", *sink.quests[0].AmountNeeded)
	require.Len(t, sink.roles, 1)
	assert.True(t, sink.roles[0].IsExclusive)

	// Announcement is a singleton: first valid row wins.
	require.Len(t, sink.announcements, 1)
	assert.Equal(t, "Welcome", sink.announcements[0].Title)

	require.NotNil(t, publisher.published)
	assert.Equal(t, result.BatchID, publisher.published.BatchID)
	require.Len(t, publisher.published.Quests, 2)
	assert.Equal(t, 500.0, publisher.published.Quests[0].AmountNeeded)
	require.NotNil(t, publisher.published.Announcement)
	assert.False(t, publisher.published.LastSynced.IsZero())
}

func TestImportRejectsMalformedSheetsBeforeWriting(t *testing.T) {
	sink := &memUpserts{}
	publisher := &memPublisher{}
	imp := newTestImporter(sink, publisher)

	// The sheet source reports errors as objects instead of row arrays.
	_, err := imp.Import(context.Background(), Payload{
		Quests: json.RawMessage(`{"error":"quota exceeded"}`),
		Roles:  json.RawMessage(`[{"id":"r1","name":"Weavers"}]`),
		Events: json.RawMessage(`{"error":"quota exceeded"}`),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quests")
	assert.Contains(t, err.Error(), "events")
	assert.NotContains(t, err.Error(), "roles")

	// Nothing was written or published.
	assert.Empty(t, sink.quests)
	assert.Empty(t, sink.roles)
	assert.Nil(t, publisher.published)
}

func TestImportNormalizesHeaderKeys(t *testing.T) {
	sink := &memUpserts{}
	imp := newTestImporter(sink, &memPublisher{})

	_, err := imp.Import(context.Background(), Payload{
		Dreamers: json.RawMessage(`[
			{" Name ":"Aria","ROLE":"r1","Points":250}
		]`),
	})

	require.NoError(t, err)
	require.Len(t, sink.dreamers, 1)
	assert.Equal(t, "Aria", sink.dreamers[0].Name)
	assert.Equal(t, "r1", sink.dreamers[0].RoleID)
	require.NotNil(t, sink.dreamers[0].Points)
	assert.Equal(t, "250", *sink.dreamers[0].Points)
}

func TestImportDropsRowsMissingRequiredFields(t *testing.T) {
	sink := &memUpserts{}
	imp := newTestImporter(sink, &memPublisher{})

	result, err := imp.Import(context.Background(), Payload{
		Quests: json.RawMessage(`[
			{"id":"q1","title":"Plant the grove"},
			{"id":"q2","purpose":"no title, dropped"}
		]`),
		Roles: json.RawMessage(`[
			{"id":"r1"}
		]`),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Quests)
	assert.Zero(t, result.Roles)
	require.Len(t, sink.quests, 1)
	assert.Empty(t, sink.roles)
}

func TestImportEmptySheetsStillPublish(t *testing.T) {
	publisher := &memPublisher{}
	imp := newTestImporter(&memUpserts{}, publisher)

	result, err := imp.Import(context.Background(), Payload{})

	require.NoError(t, err)
	assert.True(t, result.Synced)
	require.NotNil(t, publisher.published)
	assert.NotNil(t, publisher.published.Quests)
	assert.Empty(t, publisher.published.Quests)
	assert.Nil(t, publisher.published.Announcement)
}
