package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mlflow-registry/internal/domain"
)

type modelVersionRepo struct {
	pool *pgxpool.Pool
}

func NewModelVersionRepository(pool *pgxpool.Pool) domain.ModelVersionRepository {
	return &modelVersionRepo{pool: pool}
}

func (r *modelVersionRepo) Create(ctx context.Context, version *domain.ModelVersion) error {
	tagsJSON, err := json.Marshal(version.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create version: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the parent row so concurrent creates cannot take the same
	// version number.
	var modelName string
	err = tx.QueryRow(ctx,
		`SELECT name FROM model_registry_registered_model WHERE id = $1 FOR UPDATE`,
		version.RegisteredModelID,
	).Scan(&modelName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrModelNotFound
		}
		return fmt.Errorf("lock registered model: %w", err)
	}

	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM model_registry_model_version WHERE registered_model_id = $1`,
		version.RegisteredModelID,
	).Scan(&version.Version)
	if err != nil {
		return fmt.Errorf("next version number: %w", err)
	}

	query := `
		INSERT INTO model_registry_model_version
			(id, created_at, updated_at, registered_model_id, version,
			 description, user_id, current_stage, source, run_id, run_link,
			 status, status_message, storage_location, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`
	_, err = tx.Exec(ctx, query,
		version.ID, version.CreatedAt, version.UpdatedAt,
		version.RegisteredModelID, version.Version,
		version.Description, version.UserID, string(version.CurrentStage),
		version.Source, version.RunID, version.RunLink,
		string(version.Status), version.StatusMessage, version.StorageLocation,
		tagsJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrVersionConflict
		}
		return fmt.Errorf("create model version: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create version: %w", err)
	}

	version.ModelName = modelName
	return nil
}

func (r *modelVersionRepo) GetByModelAndVersion(ctx context.Context, modelID uuid.UUID, number int) (*domain.ModelVersion, error) {
	query := `
		SELECT
			mv.id, mv.created_at, mv.updated_at, mv.registered_model_id, mv.version,
			mv.description, mv.user_id, mv.current_stage, mv.source, mv.run_id,
			mv.run_link, mv.status, mv.status_message, mv.storage_location, mv.tags,
			rm.name AS model_name
		FROM model_registry_model_version mv
		JOIN model_registry_registered_model rm ON rm.id = mv.registered_model_id
		WHERE mv.registered_model_id = $1 AND mv.version = $2
	`

	version, err := scanVersion(r.pool.QueryRow(ctx, query, modelID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("get model version: %w", err)
	}
	return version, nil
}

func (r *modelVersionRepo) Update(ctx context.Context, version *domain.ModelVersion) error {
	tagsJSON, err := json.Marshal(version.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		UPDATE model_registry_model_version
		SET description=$1, user_id=$2, current_stage=$3, source=$4, run_id=$5,
			run_link=$6, status=$7, status_message=$8, storage_location=$9,
			tags=$10, updated_at=NOW()
		WHERE id=$11
	`
	result, err := r.pool.Exec(ctx, query,
		version.Description, version.UserID, string(version.CurrentStage),
		version.Source, version.RunID, version.RunLink,
		string(version.Status), version.StatusMessage, version.StorageLocation,
		tagsJSON, version.ID,
	)
	if err != nil {
		return fmt.Errorf("update model version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVersionNotFound
	}
	return nil
}

func (r *modelVersionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM model_registry_model_version WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete model version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVersionNotFound
	}
	return nil
}

func (r *modelVersionRepo) List(ctx context.Context, filter domain.VersionListFilter) ([]*domain.ModelVersion, int, error) {
	conditions := []string{"mv.registered_model_id = $1"}
	args := []interface{}{filter.RegisteredModelID}
	argPos := 2

	if filter.Stage != "" {
		conditions = append(conditions, fmt.Sprintf("mv.current_stage = $%d", argPos))
		args = append(args, filter.Stage)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("mv.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM model_registry_model_version mv WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count model versions: %w", err)
	}

	// Order
	orderBy := "mv.version DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("mv.%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT
			mv.id, mv.created_at, mv.updated_at, mv.registered_model_id, mv.version,
			mv.description, mv.user_id, mv.current_stage, mv.source, mv.run_id,
			mv.run_link, mv.status, mv.status_message, mv.storage_location, mv.tags,
			rm.name AS model_name
		FROM model_registry_model_version mv
		JOIN model_registry_registered_model rm ON rm.id = mv.registered_model_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list model versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.ModelVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan model version row: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate model version rows: %w", err)
	}

	return versions, total, nil
}

func (r *modelVersionRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelVersion, error) {
	query := `
		SELECT
			mv.id, mv.created_at, mv.updated_at, mv.registered_model_id, mv.version,
			mv.description, mv.user_id, mv.current_stage, mv.source, mv.run_id,
			mv.run_link, mv.status, mv.status_message, mv.storage_location, mv.tags,
			rm.name AS model_name
		FROM model_registry_model_version mv
		JOIN model_registry_registered_model rm ON rm.id = mv.registered_model_id
		WHERE mv.registered_model_id = $1
		ORDER BY mv.version ASC
	`

	rows, err := r.pool.Query(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("list versions by model: %w", err)
	}
	defer rows.Close()

	var versions []*domain.ModelVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan model version row: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate model version rows: %w", err)
	}

	return versions, nil
}

func (r *modelVersionRepo) TransitionStage(ctx context.Context, modelID uuid.UUID, number int, target domain.Stage, archiveExisting bool) (*domain.ModelVersion, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin stage transition: %w", err)
	}
	defer tx.Rollback(ctx)

	if archiveExisting {
		_, err = tx.Exec(ctx, `
			UPDATE model_registry_model_version
			SET current_stage = $1, updated_at = NOW()
			WHERE registered_model_id = $2 AND current_stage = $3 AND version <> $4
		`, string(domain.StageArchived), modelID, string(target), number)
		if err != nil {
			return nil, fmt.Errorf("archive existing versions: %w", err)
		}
	}

	result, err := tx.Exec(ctx, `
		UPDATE model_registry_model_version
		SET current_stage = $1, updated_at = NOW()
		WHERE registered_model_id = $2 AND version = $3
	`, string(target), modelID, number)
	if err != nil {
		return nil, fmt.Errorf("transition stage: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrVersionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit stage transition: %w", err)
	}

	return r.GetByModelAndVersion(ctx, modelID, number)
}

// scanVersion scans a ModelVersion from a pgx.Row or pgx.Rows.
func scanVersion(row pgx.Row) (*domain.ModelVersion, error) {
	v := &domain.ModelVersion{}
	var tagsJSON []byte

	err := row.Scan(
		&v.ID, &v.CreatedAt, &v.UpdatedAt, &v.RegisteredModelID, &v.Version,
		&v.Description, &v.UserID, &v.CurrentStage, &v.Source, &v.RunID,
		&v.RunLink, &v.Status, &v.StatusMessage, &v.StorageLocation,
		&tagsJSON, &v.ModelName,
	)
	if err != nil {
		return nil, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &v.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}

	return v, nil
}
