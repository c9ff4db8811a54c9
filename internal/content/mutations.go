package content

import (
	"context"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/mapper"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"
)

// Mutations write remotely first and refresh on success; a failed write
// leaves both the remote store and the snapshot untouched. There is no
// optimistic local update.

func (s *Store) refreshAfterWrite(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.WithError(err).Warn("post-write refresh incomplete")
	}
}

func (s *Store) AddQuest(ctx context.Context, q types.Quest) error {
	rec := mapper.QuestToRecord(q)
	if err := s.repos.Quests.Create(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) UpdateQuest(ctx context.Context, id string, q types.Quest) error {
	rec := mapper.QuestToRecord(q)
	if err := s.repos.Quests.Update(ctx, id, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) DeleteQuest(ctx context.Context, id string) error {
	if err := s.repos.Quests.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) AddEvent(ctx context.Context, e types.Event) error {
	rec := mapper.EventToRecord(e)
	if err := s.repos.Events.Create(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) UpdateEvent(ctx context.Context, id string, e types.Event) error {
	rec := mapper.EventToRecord(e)
	if err := s.repos.Events.Update(ctx, id, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repos.Events.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) AddRole(ctx context.Context, role types.Role) error {
	rec := mapper.RoleToRecord(role)
	if err := s.repos.Roles.Create(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) UpdateRole(ctx context.Context, id string, role types.Role) error {
	rec := mapper.RoleToRecord(role)
	if err := s.repos.Roles.Update(ctx, id, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) DeleteRole(ctx context.Context, id string) error {
	if err := s.repos.Roles.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) AddDreamer(ctx context.Context, d types.Dreamer) error {
	rec := mapper.DreamerToRecord(d)
	if err := s.repos.Dreamers.Create(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) UpdateDreamer(ctx context.Context, id string, d types.Dreamer) error {
	rec := mapper.DreamerToRecord(d)
	if err := s.repos.Dreamers.Update(ctx, id, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) DeleteDreamer(ctx context.Context, id string) error {
	if err := s.repos.Dreamers.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) AddSponsor(ctx context.Context, sp types.Sponsor) error {
	rec := mapper.SponsorToRecord(sp)
	if err := s.repos.Sponsors.Create(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) UpdateSponsor(ctx context.Context, id string, sp types.Sponsor) error {
	rec := mapper.SponsorToRecord(sp)
	if err := s.repos.Sponsors.Update(ctx, id, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *Store) DeleteSponsor(ctx context.Context, id string) error {
	if err := s.repos.Sponsors.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}

// UpdateAnnouncement keeps singleton semantics: the one row is upserted
// in place, carrying the current announcement id when one exists.
func (s *Store) UpdateAnnouncement(ctx context.Context, a types.Announcement) error {
	if a.ID == "" {
		if current := s.Snapshot().Announcement; current != nil {
			a.ID = current.ID
		}
	}

	rec := mapper.AnnouncementToRecord(a)
	if err := s.repos.Announcements.Upsert(ctx, &rec); err != nil {
		return err
	}
	s.refreshAfterWrite(ctx)
	return nil
}
