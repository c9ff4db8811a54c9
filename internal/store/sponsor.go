package store

import (
	"context"
	"fmt"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/utils"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sponsorTableName = "dreamworld.sponsors"
const sponsorCollection = "sponsors"

var sponsorColumns = utils.StructTagValues(SponsorRecord{})

type SponsorRepository struct {
	pool *pgxpool.Pool
}

func NewSponsorRepository(pool *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{pool: pool}
}

func (r *SponsorRepository) List(ctx context.Context) ([]SponsorRecord, error) {

	query, args, err := psql().Select(sponsorColumns...).From(sponsorTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sponsor list query: %w", err)
	}

	var sponsors = make([]SponsorRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &sponsors, query, args...)
	if err != nil {
		return nil, types.NewStoreError(sponsorCollection, "list", err)
	}

	return sponsors, nil
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *SponsorRecord) error {

	now := time.Now()
	if sponsor.ID == "" {
		sponsor.ID = utils.NanoID()
	}
	sponsor.CreatedAt = now
	sponsor.UpdatedAt = now

	query, args, err := psql().Insert(sponsorTableName).SetMap(utils.StructToMap(sponsor)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert sponsor query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(sponsorCollection, "insert", err)
	}

	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, sponsorID string, sponsor *SponsorRecord) error {

	sponsor.ID = sponsorID
	sponsor.UpdatedAt = time.Now()

	sponsorMap := utils.StructToMap(sponsor)
	delete(sponsorMap, "created_at")

	query, args, err := psql().Update(sponsorTableName).SetMap(sponsorMap).Where(sq.Eq{"id": sponsorID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update sponsor query for sponsor %s: %w", sponsorID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(sponsorCollection, "update", err)
	}

	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, sponsorID string) error {

	query, args, err := psql().Delete(sponsorTableName).Where(sq.Eq{"id": sponsorID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete sponsor query for sponsor %s: %w", sponsorID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(sponsorCollection, "delete", err)
	}

	return nil
}
