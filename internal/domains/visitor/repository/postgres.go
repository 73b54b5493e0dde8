package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"parking-backend/internal/domains/visitor/model"
	"parking-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool with a
// Redis cache in front of the hot reads (visitor-by-id, stats counts).
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	visitorCacheKeyPrefix = "visitor:"
	statsCacheKey         = "visitors:stats"

	visitorCacheTTL = 15 * time.Minute
	// Stats drift fast while the gate is busy, keep the TTL short.
	statsCacheTTL = 30 * time.Second
)

const visitorColumns = "id, name, ic_number, license_plate, unit_number, status, created_at, last_updated"

func scanVisitor(row pgx.Row) (*model.Visitor, error) {
	var v model.Visitor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.ICNumber,
		&v.LicensePlate,
		&v.UnitNumber,
		&v.Status,
		&v.CreatedAt,
		&v.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// translateUniqueViolation maps the 23505 constraint to the field-specific
// duplicate error. IC takes precedence when the constraint name is unclear.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "license_plate"):
			return model.ErrDuplicatePlate
		case strings.Contains(pgErr.ConstraintName, "ic_number"):
			return model.ErrDuplicateIC
		default:
			return model.ErrDuplicateIC
		}
	}
	return nil
}

// Create inserts a new visitor record relying on the unique indexes as the
// last line of defense against concurrent registrations.
func (r *postgresRepository) Create(ctx context.Context, v *model.Visitor) (*model.Visitor, error) {
	query := `
        INSERT INTO visitors (name, ic_number, license_plate, unit_number, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + visitorColumns

	created, err := scanVisitor(r.pool.QueryRow(
		ctx,
		query,
		v.Name,
		v.ICNumber,
		v.LicensePlate,
		v.UnitNumber,
		v.Status,
	))
	if err != nil {
		if dupErr := translateUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to create visitor: %w", err)
	}

	r.invalidateStats(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Visitor, error) {
	cacheKey := visitorCacheKeyPrefix + id.String()

	var cachedVisitor model.Visitor
	if found, err := r.cache.Get(ctx, cacheKey, &cachedVisitor); err == nil && found {
		return &cachedVisitor, nil
	}

	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`

	v, err := scanVisitor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to get visitor by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, v, visitorCacheTTL)
	return v, nil
}

func (r *postgresRepository) FindByICOrPlate(ctx context.Context, icNumber, licensePlate string) (*model.Visitor, error) {
	query := `
        SELECT ` + visitorColumns + `
        FROM visitors
        WHERE ic_number = $1 OR license_plate = $2
        LIMIT 1`

	v, err := scanVisitor(r.pool.QueryRow(ctx, query, icNumber, licensePlate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}
	return v, nil
}

func (r *postgresRepository) FindByICOrPlateExcluding(ctx context.Context, icNumber, licensePlate string, exclude uuid.UUID) (*model.Visitor, error) {
	query := `
        SELECT ` + visitorColumns + `
        FROM visitors
        WHERE (ic_number = $1 OR license_plate = $2) AND id <> $3
        LIMIT 1`

	v, err := scanVisitor(r.pool.QueryRow(ctx, query, icNumber, licensePlate, exclude))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}
	return v, nil
}

// GetAll retrieves the register newest-first with optional filters.
func (r *postgresRepository) GetAll(ctx context.Context, filter model.VisitorFilter) ([]model.Visitor, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		where.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR ic_number ILIKE $%d OR license_plate ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.Status != "" {
		where.WriteString(fmt.Sprintf(" AND status = $%d", argPos))
		args = append(args, strings.ToLower(filter.Status))
		argPos++
	}
	if filter.Unit != "" {
		where.WriteString(fmt.Sprintf(" AND unit_number = $%d", argPos))
		args = append(args, filter.Unit)
		argPos++
	}

	countQuery := "SELECT COUNT(*) FROM visitors" + where.String()

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count visitors: %w", err)
	}

	query := "SELECT " + visitorColumns + " FROM visitors" + where.String() +
		" ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visitors: %w", err)
	}
	defer rows.Close()

	visitors := []model.Visitor{}
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan visitor: %w", err)
		}
		visitors = append(visitors, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read visitors: %w", err)
	}

	return visitors, total, nil
}

func (r *postgresRepository) SearchByName(ctx context.Context, name string) (*model.Visitor, error) {
	query := `
        SELECT ` + visitorColumns + `
        FROM visitors
        WHERE name ILIKE $1
        ORDER BY created_at DESC
        LIMIT 1`

	v, err := scanVisitor(r.pool.QueryRow(ctx, query, "%"+name+"%"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to search visitor by name: %w", err)
	}
	return v, nil
}

func (r *postgresRepository) GetByUnit(ctx context.Context, unitNumber string) ([]model.Visitor, error) {
	query := `
        SELECT ` + visitorColumns + `
        FROM visitors
        WHERE unit_number = $1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, unitNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get visitors by unit: %w", err)
	}
	defer rows.Close()

	visitors := []model.Visitor{}
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visitor: %w", err)
		}
		visitors = append(visitors, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visitors: %w", err)
	}

	return visitors, nil
}

// UpdateStatus bumps last_updated unconditionally but reports whether the
// status actually flipped: the old status is captured in the same statement
// so a same-status update comes back as changed=false, not as not-found.
func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (bool, error) {
	query := `
        UPDATE visitors v
        SET status = $2, last_updated = now()
        FROM (SELECT id, status AS old_status FROM visitors WHERE id = $1 FOR UPDATE) o
        WHERE v.id = o.id
        RETURNING o.old_status`

	var oldStatus model.Status
	err := r.pool.QueryRow(ctx, query, id, status).Scan(&oldStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, model.ErrVisitorNotFound
		}
		return false, fmt.Errorf("failed to update visitor status: %w", err)
	}

	r.cache.Delete(ctx, visitorCacheKeyPrefix+id.String())
	r.invalidateStats(ctx)

	return oldStatus != status, nil
}

func (r *postgresRepository) Update(ctx context.Context, v *model.Visitor) (*model.Visitor, error) {
	query := `
        UPDATE visitors
        SET name = $2, ic_number = $3, license_plate = $4, unit_number = $5, last_updated = now()
        WHERE id = $1
        RETURNING ` + visitorColumns

	updated, err := scanVisitor(r.pool.QueryRow(
		ctx,
		query,
		v.ID,
		v.Name,
		v.ICNumber,
		v.LicensePlate,
		v.UnitNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVisitorNotFound
		}
		if dupErr := translateUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to update visitor: %w", err)
	}

	r.cache.Delete(ctx, visitorCacheKeyPrefix+v.ID.String())
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM visitors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete visitor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVisitorNotFound
	}

	r.cache.Delete(ctx, visitorCacheKeyPrefix+id.String())
	r.invalidateStats(ctx)
	return nil
}

type statusCounts struct {
	Active int64 `json:"active"`
	Left   int64 `json:"left"`
	Total  int64 `json:"total"`
}

func (r *postgresRepository) CountByStatus(ctx context.Context) (int64, int64, int64, error) {
	var cached statusCounts
	if found, err := r.cache.Get(ctx, statsCacheKey, &cached); err == nil && found {
		return cached.Active, cached.Left, cached.Total, nil
	}

	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'active'),
            COUNT(*) FILTER (WHERE status = 'left'),
            COUNT(*)
        FROM visitors`

	var counts statusCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Active, &counts.Left, &counts.Total); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count visitors: %w", err)
	}

	r.cache.Set(ctx, statsCacheKey, counts, statsCacheTTL)
	return counts.Active, counts.Left, counts.Total, nil
}

func (r *postgresRepository) invalidateStats(ctx context.Context) {
	r.cache.Delete(ctx, statsCacheKey)
}
