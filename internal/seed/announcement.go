package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
)

type announcementUpserter interface {
	Upsert(ctx context.Context, rec *store.AnnouncementRecord) error
}

func SeedAnnouncement(ctx context.Context, repo announcementUpserter) error {
	announcement := store.AnnouncementRecord{
		Title:    "Welcome to DreamWorld",
		Date:     time.Now().Format("2006-01-02"),
		Content:  "The community site is live. Browse quests, meet the dreamers, and join the academy.",
		LinkText: "Explore quests",
		LinkTo:   "/quests",
	}

	if err := repo.Upsert(ctx, &announcement); err != nil {
		return fmt.Errorf("seed announcement: %w", err)
	}

	return nil
}
