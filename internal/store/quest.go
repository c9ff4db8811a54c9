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

const questTableName = "dreamworld.quests"
const questCollection = "quests"

var questColumns = utils.StructTagValues(QuestRecord{})

type QuestRepository struct {
	pool *pgxpool.Pool
}

func NewQuestRepository(pool *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{pool: pool}
}

func (r *QuestRepository) List(ctx context.Context) ([]QuestRecord, error) {

	query, args, err := psql().Select(questColumns...).From(questTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quest list query: %w", err)
	}

	var quests = make([]QuestRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &quests, query, args...)
	if err != nil {
		return nil, types.NewStoreError(questCollection, "list", err)
	}

	return quests, nil
}

func (r *QuestRepository) Quest(ctx context.Context, questID string) (*QuestRecord, error) {

	query, args, err := psql().Select(questColumns...).From(questTableName).
		Where(sq.Eq{"id": questID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quest query: %w", err)
	}

	var quest = new(QuestRecord)
	err = pgxscan.Get(ctx, r.pool, quest, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(questCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrQuestNotFound
	}

	return quest, nil
}

func (r *QuestRepository) Create(ctx context.Context, quest *QuestRecord) error {

	now := time.Now()
	if quest.ID == "" {
		quest.ID = utils.NanoID()
	}
	quest.CreatedAt = now
	quest.UpdatedAt = now

	query, args, err := psql().Insert(questTableName).SetMap(utils.StructToMap(quest)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert quest query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(questCollection, "insert", err)
	}

	return nil
}

func (r *QuestRepository) Update(ctx context.Context, questID string, quest *QuestRecord) error {

	quest.ID = questID
	quest.UpdatedAt = time.Now()

	questMap := utils.StructToMap(quest)
	delete(questMap, "created_at")

	query, args, err := psql().Update(questTableName).SetMap(questMap).Where(sq.Eq{"id": questID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update quest query for quest %s: %w", questID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(questCollection, "update", err)
	}

	return nil
}

// Upsert is the bulk-import write path: imported rows carry their own
// ids and replace any existing row wholesale.
func (r *QuestRepository) Upsert(ctx context.Context, quest *QuestRecord) error {

	now := time.Now()
	if quest.ID == "" {
		quest.ID = utils.NanoID()
	}
	if quest.CreatedAt.IsZero() {
		quest.CreatedAt = now
	}
	quest.UpdatedAt = now

	questMap := utils.StructToMap(quest)

	query, args, err := psql().Insert(questTableName).SetMap(questMap).
		Suffix(upsertSuffix(questMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert quest query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(questCollection, "upsert", err)
	}

	return nil
}

func (r *QuestRepository) Delete(ctx context.Context, questID string) error {

	query, args, err := psql().Delete(questTableName).Where(sq.Eq{"id": questID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete quest query for quest %s: %w", questID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(questCollection, "delete", err)
	}

	return nil
}

// AmountRaised reads the raw stored balance of one quest. The ledger
// parses and rewrites it; this layer does not interpret the value.
func (r *QuestRepository) AmountRaised(ctx context.Context, questID string) (*string, error) {

	query, args, err := psql().Select("amount_raised").From(questTableName).
		Where(sq.Eq{"id": questID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quest balance query: %w", err)
	}

	var amount *string
	err = pgxscan.Get(ctx, r.pool, &amount, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, types.NewStoreError(questCollection, "get", err)
	}

	if err != nil {
		return nil, types.ErrQuestNotFound
	}

	return amount, nil
}

func (r *QuestRepository) SetAmountRaised(ctx context.Context, questID string, amount string) error {

	query, args, err := psql().Update(questTableName).
		Set("amount_raised", amount).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": questID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate quest balance update query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(questCollection, "update", err)
	}

	return nil
}
