// Package importer is the bulk admin sync boundary. A payload carries
// one sheet per collection; every sheet must be array-shaped or the
// whole import is rejected as one unit with a single aggregated error.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/mapper"
	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Payload holds the raw sheets of a bulk sync. Keys in each row are
// normalized (lowercased, trimmed) before merging; rows missing their
// title/name key are dropped silently.
type Payload struct {
	Quests        json.RawMessage `json:"quests"`
	Roles         json.RawMessage `json:"roles"`
	Dreamers      json.RawMessage `json:"dreamers"`
	Events        json.RawMessage `json:"events"`
	Announcements json.RawMessage `json:"announcements"`
}

type Result struct {
	BatchID  string `json:"batchId"`
	Quests   int    `json:"quests"`
	Roles    int    `json:"roles"`
	Dreamers int    `json:"dreamers"`
	Events   int    `json:"events"`
	Synced   bool   `json:"synced"`
}

type questUpserter interface {
	Upsert(ctx context.Context, rec *store.QuestRecord) error
}

type roleUpserter interface {
	Upsert(ctx context.Context, rec *store.RoleRecord) error
}

type dreamerUpserter interface {
	Upsert(ctx context.Context, rec *store.DreamerRecord) error
}

type eventUpserter interface {
	Upsert(ctx context.Context, rec *store.EventRecord) error
}

type announcementUpserter interface {
	Upsert(ctx context.Context, rec *store.AnnouncementRecord) error
}

type publisher interface {
	Publish(ctx context.Context, snap *types.PublishedSnapshot) error
}

type refresher interface {
	Refresh(ctx context.Context) error
}

type Importer struct {
	logger        *logrus.Logger
	quests        questUpserter
	roles         roleUpserter
	dreamers      dreamerUpserter
	events        eventUpserter
	announcements announcementUpserter
	publisher     publisher
	content       refresher
}

func New(
	logger *logrus.Logger,
	quests questUpserter,
	roles roleUpserter,
	dreamers dreamerUpserter,
	events eventUpserter,
	announcements announcementUpserter,
	publisher publisher,
	content refresher,
) *Importer {
	return &Importer{
		logger:        logger,
		quests:        quests,
		roles:         roles,
		dreamers:      dreamers,
		events:        events,
		announcements: announcements,
		publisher:     publisher,
		content:       content,
	}
}

type row map[string]any

// parseSheet decodes one sheet into normalized rows. A sheet that is
// not a JSON array (typically an {"error": ...} payload from the sheet
// source) is a hard failure for the whole import.
func parseSheet(name string, raw json.RawMessage) ([]row, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("sheet %q is not array-shaped", name)
	}

	out := make([]row, 0, len(rows))
	for _, r := range rows {
		normalized := make(row, len(r))
		for k, v := range r {
			normalized[strings.ToLower(strings.TrimSpace(k))] = v
		}
		out = append(out, normalized)
	}

	return out, nil
}

func (r row) str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (r row) strPtr(key string) *string {
	if _, ok := r[key]; !ok {
		return nil
	}
	s := r.str(key)
	return &s
}

func (r row) boolVal(key string) bool {
	v, ok := r[key].(bool)
	return ok && v
}

// Import validates every sheet, writes all rows, then publishes the
// anonymous-read snapshot. Any malformed sheet rejects the import
// before a single row is written.
func (i *Importer) Import(ctx context.Context, payload Payload) (*Result, error) {
	sheets := []struct {
		name string
		raw  json.RawMessage
	}{
		{"quests", payload.Quests},
		{"roles", payload.Roles},
		{"dreamers", payload.Dreamers},
		{"events", payload.Events},
		{"announcements", payload.Announcements},
	}

	parsed := make(map[string][]row, len(sheets))
	var bad []string

	for _, sheet := range sheets {
		rows, err := parseSheet(sheet.name, sheet.raw)
		if err != nil {
			bad = append(bad, sheet.name)
			continue
		}
		parsed[sheet.name] = rows
	}

	if len(bad) > 0 {
		return nil, fmt.Errorf("import rejected, malformed sheets: %s", strings.Join(bad, ", "))
	}

	result := &Result{BatchID: uuid.NewString()}
	snap := &types.PublishedSnapshot{
		BatchID:  result.BatchID,
		Quests:   make([]types.Quest, 0),
		Roles:    make([]types.Role, 0),
		Dreamers: make([]types.Dreamer, 0),
		Events:   make([]types.Event, 0),
	}

	for _, r := range parsed["quests"] {
		if r.str("title") == "" {
			continue
		}
		rec := questRecordFromRow(r)
		if err := i.quests.Upsert(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import quest %q: %w", rec.Title, err)
		}
		snap.Quests = append(snap.Quests, mapper.QuestToApp(rec))
		result.Quests++
	}

	for _, r := range parsed["roles"] {
		if r.str("name") == "" {
			continue
		}
		rec := roleRecordFromRow(r)
		if err := i.roles.Upsert(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import role %q: %w", rec.Name, err)
		}
		snap.Roles = append(snap.Roles, mapper.RoleToApp(rec))
		result.Roles++
	}

	for _, r := range parsed["dreamers"] {
		if r.str("name") == "" {
			continue
		}
		rec := dreamerRecordFromRow(r)
		if err := i.dreamers.Upsert(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import dreamer %q: %w", rec.Name, err)
		}
		snap.Dreamers = append(snap.Dreamers, mapper.DreamerToApp(rec))
		result.Dreamers++
	}

	for _, r := range parsed["events"] {
		if r.str("title") == "" {
			continue
		}
		rec := eventRecordFromRow(r)
		if err := i.events.Upsert(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import event %q: %w", rec.Title, err)
		}
		snap.Events = append(snap.Events, mapper.EventToApp(rec))
		result.Events++
	}

	for _, r := range parsed["announcements"] {
		if r.str("title") == "" {
			continue
		}
		rec := announcementRecordFromRow(r)
		if err := i.announcements.Upsert(ctx, &rec); err != nil {
			return nil, fmt.Errorf("import announcement %q: %w", rec.Title, err)
		}
		announcement := mapper.AnnouncementToApp(rec)
		snap.Announcement = &announcement
		break // singleton, first valid row wins
	}

	snap.LastSynced = time.Now()

	if err := i.publisher.Publish(ctx, snap); err != nil {
		return nil, fmt.Errorf("publish snapshot: %w", err)
	}
	result.Synced = true

	if i.content != nil {
		if err := i.content.Refresh(ctx); err != nil {
			i.logger.WithError(err).Warn("post-import refresh incomplete")
		}
	}

	i.logger.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"quests":   result.Quests,
		"roles":    result.Roles,
		"dreamers": result.Dreamers,
		"events":   result.Events,
	}).Info("bulk import complete")

	return result, nil
}

func questRecordFromRow(r row) store.QuestRecord {
	return store.QuestRecord{
		ID:             r.str("id"),
		Title:          r.str("title"),
		AmountNeeded:   r.strPtr("amount_needed"),
		AmountRaised:   r.strPtr("amount_raised"),
		FundingStatus:  r.str("funding_status"),
		CompletionNote: r.str("completion_note"),
		DateCompleted:  r.strPtr("date_completed"),
		Purpose:        r.str("purpose"),
		Difficulty:     r.str("difficulty"),
		TimeNeeded:     r.str("time_needed"),
		Steps:          r.str("steps"),
		Impact:         r.str("impact"),
		SharePrompt:    r.str("share_prompt"),
	}
}

func roleRecordFromRow(r row) store.RoleRecord {
	return store.RoleRecord{
		ID:          r.str("id"),
		Name:        r.str("name"),
		Singular:    r.str("singular"),
		Description: r.str("description"),
		Color:       r.str("color"),
		Traits:      r.str("traits"),
		Philosophy:  r.str("philosophy"),
		IsExclusive: r.boolVal("is_exclusive"),
		Image:       r.str("image"),
	}
}

func dreamerRecordFromRow(r row) store.DreamerRecord {
	return store.DreamerRecord{
		ID:              r.str("id"),
		Name:            r.str("name"),
		RoleID:          r.str("role"),
		Title:           r.str("title"),
		Avatar:          r.str("avatar"),
		CoverImage:      r.str("cover_image"),
		Bio:             r.str("bio"),
		Themes:          r.str("themes"),
		SocialYoutube:   r.str("youtube"),
		SocialInstagram: r.str("instagram"),
		SocialFacebook:  r.str("facebook"),
		SocialTwitter:   r.str("twitter"),
		Points:          r.strPtr("points"),
	}
}

func eventRecordFromRow(r row) store.EventRecord {
	return store.EventRecord{
		ID:               r.str("id"),
		Title:            r.str("title"),
		AmountNeeded:     r.strPtr("amount_needed"),
		AmountRaised:     r.strPtr("amount_raised"),
		FundingStatus:    r.str("funding_status"),
		Host:             r.str("host"),
		EventType:        r.str("type"),
		Date:             r.str("date"),
		Location:         r.str("location"),
		Description:      r.str("description"),
		RegistrationLink: r.str("registration_link"),
	}
}

func announcementRecordFromRow(r row) store.AnnouncementRecord {
	return store.AnnouncementRecord{
		ID:       r.str("id"),
		Title:    r.str("title"),
		Date:     r.str("date"),
		Content:  r.str("content"),
		LinkText: r.str("link_text"),
		LinkTo:   r.str("link_to"),
	}
}
