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

const roleTableName = "dreamworld.roles"
const roleCollection = "roles"

var roleColumns = utils.StructTagValues(RoleRecord{})

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) List(ctx context.Context) ([]RoleRecord, error) {

	query, args, err := psql().Select(roleColumns...).From(roleTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role list query: %w", err)
	}

	var roles = make([]RoleRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &roles, query, args...)
	if err != nil {
		return nil, types.NewStoreError(roleCollection, "list", err)
	}

	return roles, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *RoleRecord) error {

	now := time.Now()
	if role.ID == "" {
		role.ID = utils.NanoID()
	}
	role.CreatedAt = now
	role.UpdatedAt = now

	query, args, err := psql().Insert(roleTableName).SetMap(utils.StructToMap(role)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert role query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(roleCollection, "insert", err)
	}

	return nil
}

func (r *RoleRepository) Update(ctx context.Context, roleID string, role *RoleRecord) error {

	role.ID = roleID
	role.UpdatedAt = time.Now()

	roleMap := utils.StructToMap(role)
	delete(roleMap, "created_at")

	query, args, err := psql().Update(roleTableName).SetMap(roleMap).Where(sq.Eq{"id": roleID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update role query for role %s: %w", roleID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(roleCollection, "update", err)
	}

	return nil
}

func (r *RoleRepository) Upsert(ctx context.Context, role *RoleRecord) error {

	now := time.Now()
	if role.ID == "" {
		role.ID = utils.NanoID()
	}
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	role.UpdatedAt = now

	roleMap := utils.StructToMap(role)

	query, args, err := psql().Insert(roleTableName).SetMap(roleMap).
		Suffix(upsertSuffix(roleMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert role query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(roleCollection, "upsert", err)
	}

	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, roleID string) error {

	query, args, err := psql().Delete(roleTableName).Where(sq.Eq{"id": roleID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete role query for role %s: %w", roleID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(roleCollection, "delete", err)
	}

	return nil
}
