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

const eventTableName = "dreamworld.events"
const eventCollection = "events"

var eventColumns = utils.StructTagValues(EventRecord{})

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) List(ctx context.Context) ([]EventRecord, error) {

	query, args, err := psql().Select(eventColumns...).From(eventTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event list query: %w", err)
	}

	var events = make([]EventRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &events, query, args...)
	if err != nil {
		return nil, types.NewStoreError(eventCollection, "list", err)
	}

	return events, nil
}

func (r *EventRepository) Event(ctx context.Context, eventID string) (*EventRecord, error) {

	query, args, err := psql().Select(eventColumns...).From(eventTableName).
		Where(sq.Eq{"id": eventID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event query: %w", err)
	}

	var event = new(EventRecord)
	err = pgxscan.Get(ctx, r.pool, event, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(eventCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrEventNotFound
	}

	return event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *EventRecord) error {

	now := time.Now()
	if event.ID == "" {
		event.ID = utils.NanoID()
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	query, args, err := psql().Insert(eventTableName).SetMap(utils.StructToMap(event)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert event query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(eventCollection, "insert", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, eventID string, event *EventRecord) error {

	event.ID = eventID
	event.UpdatedAt = time.Now()

	eventMap := utils.StructToMap(event)
	delete(eventMap, "created_at")

	query, args, err := psql().Update(eventTableName).SetMap(eventMap).Where(sq.Eq{"id": eventID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update event query for event %s: %w", eventID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(eventCollection, "update", err)
	}

	return nil
}

func (r *EventRepository) Upsert(ctx context.Context, event *EventRecord) error {

	now := time.Now()
	if event.ID == "" {
		event.ID = utils.NanoID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	eventMap := utils.StructToMap(event)

	query, args, err := psql().Insert(eventTableName).SetMap(eventMap).
		Suffix(upsertSuffix(eventMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert event query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(eventCollection, "upsert", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {

	query, args, err := psql().Delete(eventTableName).Where(sq.Eq{"id": eventID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete event query for event %s: %w", eventID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(eventCollection, "delete", err)
	}

	return nil
}

func (r *EventRepository) AmountRaised(ctx context.Context, eventID string) (*string, error) {

	query, args, err := psql().Select("amount_raised").From(eventTableName).
		Where(sq.Eq{"id": eventID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event balance query: %w", err)
	}

	var amount *string
	err = pgxscan.Get(ctx, r.pool, &amount, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(eventCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrEventNotFound
	}

	return amount, nil
}

func (r *EventRepository) SetAmountRaised(ctx context.Context, eventID string, amount string) error {

	query, args, err := psql().Update(eventTableName).
		Set("amount_raised", amount).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate event balance update query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(eventCollection, "update", err)
	}

	return nil
}
