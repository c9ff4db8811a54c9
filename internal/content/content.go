// Package content holds the process-wide snapshot of all application
// records. The snapshot is an immutable value replaced atomically;
// readers never observe a half-mapped collection.
package content

import (
	"context"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"
)

// Narrow repository views, satisfied by the internal/store repositories
// and by in-memory fakes in tests.

type QuestRepository interface {
	List(ctx context.Context) ([]store.QuestRecord, error)
	Create(ctx context.Context, rec *store.QuestRecord) error
	Update(ctx context.Context, id string, rec *store.QuestRecord) error
	Delete(ctx context.Context, id string) error
}

type EventRepository interface {
	List(ctx context.Context) ([]store.EventRecord, error)
	Create(ctx context.Context, rec *store.EventRecord) error
	Update(ctx context.Context, id string, rec *store.EventRecord) error
	Delete(ctx context.Context, id string) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]store.RoleRecord, error)
	Create(ctx context.Context, rec *store.RoleRecord) error
	Update(ctx context.Context, id string, rec *store.RoleRecord) error
	Delete(ctx context.Context, id string) error
}

type DreamerRepository interface {
	List(ctx context.Context) ([]store.DreamerRecord, error)
	Create(ctx context.Context, rec *store.DreamerRecord) error
	Update(ctx context.Context, id string, rec *store.DreamerRecord) error
	Delete(ctx context.Context, id string) error
}

type SponsorRepository interface {
	List(ctx context.Context) ([]store.SponsorRecord, error)
	Create(ctx context.Context, rec *store.SponsorRecord) error
	Update(ctx context.Context, id string, rec *store.SponsorRecord) error
	Delete(ctx context.Context, id string) error
}

type AnnouncementRepository interface {
	Latest(ctx context.Context) (*store.AnnouncementRecord, error)
	Upsert(ctx context.Context, rec *store.AnnouncementRecord) error
}

type DonationRepository interface {
	List(ctx context.Context) ([]store.DonationRecord, error)
}

type AcademyRepository interface {
	List(ctx context.Context) ([]store.AcademyStudentRecord, error)
}

type Repositories struct {
	Quests        QuestRepository
	Events        EventRepository
	Roles         RoleRepository
	Dreamers      DreamerRepository
	Sponsors      SponsorRepository
	Announcements AnnouncementRepository
	Donations     DonationRepository
	Academy       AcademyRepository
}

// Snapshot is the last fully-settled view of all eight collections,
// already in application shape, plus the derived sponsorships view.
type Snapshot struct {
	Quests       []types.Quest
	Events       []types.Event
	Roles        []types.Role
	Dreamers     []types.Dreamer
	Sponsors     []types.Sponsor
	Announcement *types.Announcement
	Donations    []types.Donation
	Students     []types.AcademyStudent

	Sponsorships []types.Sponsorship

	FetchedAt time.Time
}
