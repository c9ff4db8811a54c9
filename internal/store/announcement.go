package store

import (
	"context"
	"fmt"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const announcementTableName = "dreamworld.announcements"
const announcementCollection = "announcements"

var announcementColumns = utils.StructTagValues(AnnouncementRecord{})

// AnnouncementRepository has singleton semantics: reads always take the
// newest row, writes always upsert that one row.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func (r *AnnouncementRepository) Latest(ctx context.Context) (*AnnouncementRecord, error) {

	query, args, err := psql().Select(announcementColumns...).From(announcementTableName).
		OrderBy("created_at desc").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate announcement query: %w", err)
	}

	var announcement = new(AnnouncementRecord)
	err = pgxscan.Get(ctx, r.pool, announcement, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(announcementCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrNoAnnouncement
	}

	return announcement, nil
}

func (r *AnnouncementRepository) Upsert(ctx context.Context, announcement *AnnouncementRecord) error {

	now := time.Now()
	if announcement.ID == "" {
		announcement.ID = utils.NanoID()
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = now
	}
	announcement.UpdatedAt = now

	announcementMap := utils.StructToMap(announcement)

	query, args, err := psql().Insert(announcementTableName).SetMap(announcementMap).
		Suffix(upsertSuffix(announcementMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert announcement query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(announcementCollection, "upsert", err)
	}

	return nil
}
