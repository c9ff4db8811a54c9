package content

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/mapper"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
)

type Store struct {
	logger *logrus.Logger
	repos  Repositories

	// refreshSeq tags each in-flight refresh; installMu serializes the
	// install step so a refresh that finished out of order cannot
	// overwrite a newer snapshot.
	refreshSeq   atomic.Uint64
	installedSeq uint64
	installMu    sync.Mutex

	snapshot atomic.Pointer[Snapshot]
	loading  atomic.Bool
}

func NewStore(logger *logrus.Logger, repos Repositories) *Store {
	s := &Store{logger: logger, repos: repos}
	s.snapshot.Store(&Snapshot{})
	s.loading.Store(true)
	return s
}

// Loading reports whether the first refresh has settled yet.
func (s *Store) Loading() bool {
	return s.loading.Load()
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Store) Sponsorships() []types.Sponsorship {
	return s.Snapshot().Sponsorships
}

// Refresh fetches all eight collections concurrently and installs a new
// snapshot once every fetch has settled. A failed collection keeps its
// previous data while the others advance; the per-collection errors are
// joined into the return value. Completions of older overlapping
// refreshes are discarded rather than letting the last one to finish
// win.
func (s *Store) Refresh(ctx context.Context) error {
	seq := s.refreshSeq.Add(1)
	prev := s.Snapshot()

	next := &Snapshot{
		Quests:       prev.Quests,
		Events:       prev.Events,
		Roles:        prev.Roles,
		Dreamers:     prev.Dreamers,
		Sponsors:     prev.Sponsors,
		Announcement: prev.Announcement,
		Donations:    prev.Donations,
		Students:     prev.Students,
		FetchedAt:    time.Now(),
	}

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)

	fetch := func(collection string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.logger.WithError(err).WithField("collection", collection).
					Warn("collection fetch failed, keeping previous data")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	fetch("quests", func() error {
		recs, err := s.repos.Quests.List(ctx)
		if err != nil {
			return err
		}
		quests := make([]types.Quest, 0, len(recs))
		for _, rec := range recs {
			quests = append(quests, mapper.QuestToApp(rec))
		}
		mu.Lock()
		next.Quests = quests
		mu.Unlock()
		return nil
	})

	fetch("events", func() error {
		recs, err := s.repos.Events.List(ctx)
		if err != nil {
			return err
		}
		events := make([]types.Event, 0, len(recs))
		for _, rec := range recs {
			events = append(events, mapper.EventToApp(rec))
		}
		mu.Lock()
		next.Events = events
		mu.Unlock()
		return nil
	})

	fetch("roles", func() error {
		recs, err := s.repos.Roles.List(ctx)
		if err != nil {
			return err
		}
		roles := make([]types.Role, 0, len(recs))
		for _, rec := range recs {
			roles = append(roles, mapper.RoleToApp(rec))
		}
		mu.Lock()
		next.Roles = roles
		mu.Unlock()
		return nil
	})

	fetch("dreamers", func() error {
		recs, err := s.repos.Dreamers.List(ctx)
		if err != nil {
			return err
		}
		dreamers := make([]types.Dreamer, 0, len(recs))
		for _, rec := range recs {
			dreamers = append(dreamers, mapper.DreamerToApp(rec))
		}
		mu.Lock()
		next.Dreamers = dreamers
		mu.Unlock()
		return nil
	})

	fetch("sponsors", func() error {
		recs, err := s.repos.Sponsors.List(ctx)
		if err != nil {
			return err
		}
		sponsors := make([]types.Sponsor, 0, len(recs))
		for _, rec := range recs {
			sponsors = append(sponsors, mapper.SponsorToApp(rec))
		}
		mu.Lock()
		next.Sponsors = sponsors
		mu.Unlock()
		return nil
	})

	fetch("announcements", func() error {
		rec, err := s.repos.Announcements.Latest(ctx)
		if err != nil {
			if errors.Is(err, types.ErrNoAnnouncement) {
				mu.Lock()
				next.Announcement = nil
				mu.Unlock()
				return nil
			}
			return err
		}
		announcement := mapper.AnnouncementToApp(*rec)
		mu.Lock()
		next.Announcement = &announcement
		mu.Unlock()
		return nil
	})

	fetch("donations", func() error {
		recs, err := s.repos.Donations.List(ctx)
		if err != nil {
			return err
		}
		donations := make([]types.Donation, 0, len(recs))
		for _, rec := range recs {
			donations = append(donations, mapper.DonationToApp(rec))
		}
		mu.Lock()
		next.Donations = donations
		mu.Unlock()
		return nil
	})

	fetch("academy-students", func() error {
		recs, err := s.repos.Academy.List(ctx)
		if err != nil {
			return err
		}
		students := make([]types.AcademyStudent, 0, len(recs))
		for _, rec := range recs {
			students = append(students, mapper.StudentToApp(rec))
		}
		mu.Lock()
		next.Students = students
		mu.Unlock()
		return nil
	})

	wg.Wait()

	next.Sponsorships = DeriveSponsorships(next.Quests, next.Events)

	s.installMu.Lock()
	if seq > s.installedSeq {
		s.snapshot.Store(next)
		s.installedSeq = seq
	} else {
		s.logger.WithField("seq", seq).Debug("discarding stale refresh result")
	}
	s.installMu.Unlock()

	s.loading.Store(false)

	return errors.Join(errs...)
}
