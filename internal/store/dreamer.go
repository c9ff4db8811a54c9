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

const dreamerTableName = "dreamworld.dreamers"
const dreamerCollection = "dreamers"

var dreamerColumns = utils.StructTagValues(DreamerRecord{})

type DreamerRepository struct {
	pool *pgxpool.Pool
}

func NewDreamerRepository(pool *pgxpool.Pool) *DreamerRepository {
	return &DreamerRepository{pool: pool}
}

func (r *DreamerRepository) List(ctx context.Context) ([]DreamerRecord, error) {

	query, args, err := psql().Select(dreamerColumns...).From(dreamerTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dreamer list query: %w", err)
	}

	var dreamers = make([]DreamerRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &dreamers, query, args...)
	if err != nil {
		return nil, types.NewStoreError(dreamerCollection, "list", err)
	}

	return dreamers, nil
}

func (r *DreamerRepository) Create(ctx context.Context, dreamer *DreamerRecord) error {

	now := time.Now()
	if dreamer.ID == "" {
		dreamer.ID = utils.NanoID()
	}
	dreamer.CreatedAt = now
	dreamer.UpdatedAt = now

	query, args, err := psql().Insert(dreamerTableName).SetMap(utils.StructToMap(dreamer)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert dreamer query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(dreamerCollection, "insert", err)
	}

	return nil
}

func (r *DreamerRepository) Update(ctx context.Context, dreamerID string, dreamer *DreamerRecord) error {

	dreamer.ID = dreamerID
	dreamer.UpdatedAt = time.Now()

	dreamerMap := utils.StructToMap(dreamer)
	delete(dreamerMap, "created_at")

	query, args, err := psql().Update(dreamerTableName).SetMap(dreamerMap).Where(sq.Eq{"id": dreamerID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update dreamer query for dreamer %s: %w", dreamerID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(dreamerCollection, "update", err)
	}

	return nil
}

func (r *DreamerRepository) Upsert(ctx context.Context, dreamer *DreamerRecord) error {

	now := time.Now()
	if dreamer.ID == "" {
		dreamer.ID = utils.NanoID()
	}
	if dreamer.CreatedAt.IsZero() {
		dreamer.CreatedAt = now
	}
	dreamer.UpdatedAt = now

	dreamerMap := utils.StructToMap(dreamer)

	query, args, err := psql().Insert(dreamerTableName).SetMap(dreamerMap).
		Suffix(upsertSuffix(dreamerMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert dreamer query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(dreamerCollection, "upsert", err)
	}

	return nil
}

func (r *DreamerRepository) Delete(ctx context.Context, dreamerID string) error {

	query, args, err := psql().Delete(dreamerTableName).Where(sq.Eq{"id": dreamerID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete dreamer query for dreamer %s: %w", dreamerID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(dreamerCollection, "delete", err)
	}

	return nil
}
