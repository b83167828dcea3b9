package robots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListFilter selects listings by status and, optionally, by membership of
// a category tag in the services set. Skip/Limit are applied after the
// filter; the total count is computed on the filtered set.
type ListFilter struct {
	Status   string
	Category string
	Skip     int
	Limit    int
}

// Store is the persistence boundary of the listing service. PgStore is
// the Postgres implementation; tests substitute an in-memory fake.
type Store interface {
	List(ctx context.Context, f ListFilter) ([]Robot, int, error)
	Get(ctx context.Context, id uuid.UUID) (*Robot, error)
	Insert(ctx context.Context, r *Robot) error
	Update(ctx context.Context, r *Robot, expectedVersion int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

const robotColumns = `id, owner_id, name, COALESCE(description, ''), price, currency,
    wallet_address, services, endpoint, status, execution_count, total_revenue,
    avg_response_time, success_rate, version, created_at`

func scanRobot(row pgx.Row) (*Robot, error) {
	var r Robot
	err := row.Scan(
		&r.ID, &r.OwnerID, &r.Name, &r.Description, &r.Price, &r.Currency,
		&r.WalletAddress, &r.Services, &r.Endpoint, &r.Status, &r.ExecutionCount,
		&r.TotalRevenue, &r.AvgResponseTime, &r.SuccessRate, &r.Version, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PgStore) List(ctx context.Context, f ListFilter) ([]Robot, int, error) {
	where := []string{"status = $1"}
	args := []any{f.Status}

	if f.Category != "" {
		where = append(where, fmt.Sprintf("services @> ARRAY[$%d]::text[]", len(args)+1))
		args = append(args, f.Category)
	}
	cond := strings.Join(where, " AND ")

	// Count the filtered set independently of the page slice
	var total int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM robots WHERE `+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count robots: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM robots WHERE %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		robotColumns, cond, len(args)+1, len(args)+2,
	)
	args = append(args, f.Skip, f.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list robots: %w", err)
	}
	defer rows.Close()

	var items []Robot
	for rows.Next() {
		r, err := scanRobot(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan robot: %w", err)
		}
		items = append(items, *r)
	}
	return items, total, rows.Err()
}

func (s *PgStore) Get(ctx context.Context, id uuid.UUID) (*Robot, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+robotColumns+` FROM robots WHERE id = $1`, id)
	r, err := scanRobot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get robot: %w", err)
	}
	return r, nil
}

func (s *PgStore) Insert(ctx context.Context, r *Robot) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO robots (id, owner_id, name, description, price, currency,
            wallet_address, services, endpoint, status, version, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11)`,
		r.ID, r.OwnerID, r.Name, r.Description, r.Price, r.Currency,
		r.WalletAddress, r.Services, r.Endpoint, r.Status, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert robot: %w", err)
	}
	return nil
}

// Update writes the mutable columns of r, guarded by the version the
// caller read. A zero row count means either the row is gone or another
// writer got there first.
func (s *PgStore) Update(ctx context.Context, r *Robot, expectedVersion int64) error {
	ct, err := s.pool.Exec(ctx, `
        UPDATE robots
        SET name = $1, description = $2, price = $3, currency = $4,
            wallet_address = $5, services = $6, endpoint = $7, status = $8,
            version = version + 1
        WHERE id = $9 AND version = $10`,
		r.Name, r.Description, r.Price, r.Currency,
		r.WalletAddress, r.Services, r.Endpoint, r.Status,
		r.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update robot: %w", err)
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM robots WHERE id = $1)`, r.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("update robot: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflict
	}
	r.Version = expectedVersion + 1
	return nil
}

func (s *PgStore) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM robots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete robot: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
