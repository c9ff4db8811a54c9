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

const academyTableName = "dreamworld.academy_students"
const academyCollection = "academy-students"

var academyColumns = utils.StructTagValues(AcademyStudentRecord{})

type AcademyRepository struct {
	pool *pgxpool.Pool
}

func NewAcademyRepository(pool *pgxpool.Pool) *AcademyRepository {
	return &AcademyRepository{pool: pool}
}

func (r *AcademyRepository) List(ctx context.Context) ([]AcademyStudentRecord, error) {

	query, args, err := psql().Select(academyColumns...).From(academyTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate academy list query: %w", err)
	}

	var students = make([]AcademyStudentRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &students, query, args...)
	if err != nil {
		return nil, types.NewStoreError(academyCollection, "list", err)
	}

	return students, nil
}

func (r *AcademyRepository) Upsert(ctx context.Context, student *AcademyStudentRecord) error {

	now := time.Now()
	if student.ID == "" {
		student.ID = utils.NanoID()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	studentMap := utils.StructToMap(student)

	query, args, err := psql().Insert(academyTableName).SetMap(studentMap).
		Suffix(upsertSuffix(studentMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert academy student query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return types.NewStoreError(academyCollection, "upsert", err)
	}

	return nil
}
