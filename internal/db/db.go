package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Conn *pgxpool.Pool

// Init connects to Postgres
func Init() {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	Conn, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err = Conn.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}

	log.Println("Connected to Postgres successfully")

	// Ensure users table exists with the role/is_active columns auth depends on
	ensureUsersTable()

	// Ensure robots table and its indexes exist
	ensureRobotsTable()

	// Ensure robots.version exists for optimistic locking on PATCH
	ensureRobotsVersionColumn()
}

// ensureUsersTable creates the users table if missing and keeps its
// role constraint in sync with the roles the middleware understands
func ensureUsersTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            wallet_address TEXT,
            total_spent NUMERIC(20,6) DEFAULT 0,
            is_active BOOLEAN DEFAULT TRUE,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
    `)
	if err != nil {
		log.Printf("failed to ensure users table: %v", err)
		return
	}

	// Refresh the role CHECK constraint so older databases pick up robot_owner
	_, _ = Conn.Exec(ctx, `ALTER TABLE users DROP CONSTRAINT IF EXISTS users_role_check`)
	_, err = Conn.Exec(ctx, `
        ALTER TABLE users
        ADD CONSTRAINT users_role_check
        CHECK (role IN ('user', 'robot_owner', 'admin'))`)
	if err != nil {
		log.Printf("failed to update users role constraint: %v", err)
	}

	// Backfill any NULLs (in case default didn't apply retroactively)
	_, _ = Conn.Exec(ctx, `UPDATE users SET is_active = TRUE WHERE is_active IS NULL`)
}

// ensureRobotsTable creates the robots table and the indexes the listing
// queries rely on (status filter, category containment, newest-first order)
func ensureRobotsTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS robots (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            owner_id UUID NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            description TEXT,
            price NUMERIC(20,6) NOT NULL,
            currency TEXT NOT NULL DEFAULT 'USDC',
            wallet_address TEXT NOT NULL,
            services TEXT[] NOT NULL DEFAULT '{}',
            endpoint TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'active'
                CHECK (status IN ('active', 'inactive', 'maintenance')),
            execution_count BIGINT NOT NULL DEFAULT 0,
            total_revenue NUMERIC(20,6) NOT NULL DEFAULT 0,
            avg_response_time DOUBLE PRECISION NOT NULL DEFAULT 0,
            success_rate DOUBLE PRECISION NOT NULL DEFAULT 1,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_robots_status ON robots(status);
        CREATE INDEX IF NOT EXISTS idx_robots_owner ON robots(owner_id);
        CREATE INDEX IF NOT EXISTS idx_robots_created ON robots(created_at DESC);
        CREATE INDEX IF NOT EXISTS idx_robots_services ON robots USING GIN (services);
    `)
	if err != nil {
		log.Printf("failed to ensure robots table: %v", err)
	}
}

// ensureRobotsVersionColumn adds robots.version if missing
func ensureRobotsVersionColumn() {
	ctx := context.Background()
	var exists bool
	err := Conn.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM information_schema.columns
            WHERE table_schema = 'public' AND table_name = 'robots' AND column_name = 'version'
        )`).Scan(&exists)
	if err != nil {
		log.Printf("schema check failed: %v", err)
		return
	}
	if exists {
		return
	}
	_, err = Conn.Exec(ctx, `ALTER TABLE robots ADD COLUMN IF NOT EXISTS version BIGINT NOT NULL DEFAULT 0`)
	if err != nil {
		log.Printf("failed to add robots.version column: %v", err)
		return
	}
	log.Printf("robots.version column ensured")
}
