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

type registeredModelRepo struct {
	pool *pgxpool.Pool
}

func NewRegisteredModelRepository(pool *pgxpool.Pool) domain.RegisteredModelRepository {
	return &registeredModelRepo{pool: pool}
}

func (r *registeredModelRepo) Create(ctx context.Context, model *domain.RegisteredModel) error {
	tagsJSON, err := json.Marshal(model.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		INSERT INTO model_registry_registered_model
			(id, created_at, updated_at, name, description, owner, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`

	_, err = r.pool.Exec(ctx, query,
		model.ID, model.CreatedAt, model.UpdatedAt,
		model.Name, model.Description, model.Owner, tagsJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrModelNameConflict
		}
		return fmt.Errorf("create registered model: %w", err)
	}
	return nil
}

func (r *registeredModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegisteredModel, error) {
	query := `
		SELECT
			rm.id, rm.created_at, rm.updated_at, rm.name, rm.description,
			rm.owner, rm.tags,
			(SELECT COUNT(*) FROM model_registry_model_version mv WHERE mv.registered_model_id = rm.id) AS version_count
		FROM model_registry_registered_model rm
		WHERE rm.id = $1
	`

	model, err := scanModel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get registered model by id: %w", err)
	}

	if err := r.loadLatestVersion(ctx, model); err != nil {
		return nil, err
	}

	return model, nil
}

func (r *registeredModelRepo) GetByName(ctx context.Context, name string) (*domain.RegisteredModel, error) {
	query := `
		SELECT
			rm.id, rm.created_at, rm.updated_at, rm.name, rm.description,
			rm.owner, rm.tags,
			(SELECT COUNT(*) FROM model_registry_model_version mv WHERE mv.registered_model_id = rm.id) AS version_count
		FROM model_registry_registered_model rm
		WHERE rm.name = $1
	`

	model, err := scanModel(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get registered model by name: %w", err)
	}

	if err := r.loadLatestVersion(ctx, model); err != nil {
		return nil, err
	}

	return model, nil
}

func (r *registeredModelRepo) Update(ctx context.Context, model *domain.RegisteredModel) error {
	tagsJSON, err := json.Marshal(model.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query := `
		UPDATE model_registry_registered_model
		SET name=$1, description=$2, owner=$3, tags=$4, updated_at=NOW()
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		model.Name, model.Description, model.Owner, tagsJSON, model.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrModelNameConflict
		}
		return fmt.Errorf("update registered model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *registeredModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM model_registry_registered_model WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete registered model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *registeredModelRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.RegisteredModel, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("rm.name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM model_registry_registered_model rm WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count registered models: %w", err)
	}

	// Order
	orderBy := "rm.name ASC"
	if filter.SortBy != "" {
		dir := "ASC"
		if filter.Order == "desc" {
			dir = "DESC"
		}
		orderBy = fmt.Sprintf("rm.%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT
			rm.id, rm.created_at, rm.updated_at, rm.name, rm.description,
			rm.owner, rm.tags,
			(SELECT COUNT(*) FROM model_registry_model_version mv WHERE mv.registered_model_id = rm.id) AS version_count
		FROM model_registry_registered_model rm
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list registered models: %w", err)
	}
	defer rows.Close()

	var models []*domain.RegisteredModel
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan registered model row: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate registered model rows: %w", err)
	}

	return models, total, nil
}

// scanModel scans a RegisteredModel from a pgx.Row or pgx.Rows.
func scanModel(row pgx.Row) (*domain.RegisteredModel, error) {
	m := &domain.RegisteredModel{}
	var tagsJSON []byte

	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Name, &m.Description,
		&m.Owner, &tagsJSON, &m.VersionCount,
	)
	if err != nil {
		return nil, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &m.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}

	return m, nil
}

// loadLatestVersion fills the highest-numbered version for a model.
func (r *registeredModelRepo) loadLatestVersion(ctx context.Context, model *domain.RegisteredModel) error {
	query := `
		SELECT
			mv.id, mv.created_at, mv.updated_at, mv.registered_model_id, mv.version,
			mv.description, mv.user_id, mv.current_stage, mv.source, mv.run_id,
			mv.run_link, mv.status, mv.status_message, mv.storage_location, mv.tags,
			rm.name AS model_name
		FROM model_registry_model_version mv
		JOIN model_registry_registered_model rm ON rm.id = mv.registered_model_id
		WHERE mv.registered_model_id = $1
		ORDER BY mv.version DESC
		LIMIT 1
	`
	latest, err := scanVersion(r.pool.QueryRow(ctx, query, model.ID))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("load latest version: %w", err)
	}
	if err == nil {
		model.LatestVersion = latest
	}

	return nil
}
