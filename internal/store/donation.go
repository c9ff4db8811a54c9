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

const donationTableName = "dreamworld.donations"
const donationCollection = "donations"

var donationColumns = utils.StructTagValues(DonationRecord{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

func (r *DonationRepository) List(ctx context.Context) ([]DonationRecord, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation list query: %w", err)
	}

	var donations = make([]DonationRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &donations, query, args...)
	if err != nil {
		return nil, types.NewStoreError(donationCollection, "list", err)
	}

	return donations, nil
}

func (r *DonationRepository) Donation(ctx context.Context, donationID string) (*DonationRecord, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		Where(sq.Eq{"id": donationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation query: %w", err)
	}

	var donation = new(DonationRecord)
	err = pgxscan.Get(ctx, r.pool, donation, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(donationCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrDonationNotFound
	}

	return donation, nil
}

// Insert assigns the id and returns the stored record. Donations are
// immutable after this point; Delete is the only other write.
func (r *DonationRepository) Insert(ctx context.Context, donation *DonationRecord) (*DonationRecord, error) {

	donation.ID = utils.NanoID()
	donation.CreatedAt = time.Now()

	query, args, err := psql().Insert(donationTableName).SetMap(utils.StructToMap(donation)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, types.NewStoreError(donationCollection, "insert", err)
	}

	return donation, nil
}

func (r *DonationRepository) Delete(ctx context.Context, donationID string) error {

	query, args, err := psql().Delete(donationTableName).Where(sq.Eq{"id": donationID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete donation query for donation %s: %w", donationID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(donationCollection, "delete", err)
	}

	return nil
}

func (r *DonationRepository) ListPendingReconcile(ctx context.Context) ([]DonationRecord, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		Where(sq.Eq{"reconcile_status": ReconcilePending}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pending reconcile query: %w", err)
	}

	var donations = make([]DonationRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &donations, query, args...)
	if err != nil {
		return nil, types.NewStoreError(donationCollection, "list", err)
	}

	return donations, nil
}

func (r *DonationRepository) MarkReconciled(ctx context.Context, donationID string) error {

	query, args, err := psql().Update(donationTableName).
		Set("reconcile_status", ReconcileDone).
		Where(sq.Eq{"id": donationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate reconcile update query for donation %s: %w", donationID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(donationCollection, "update", err)
	}

	return nil
}
