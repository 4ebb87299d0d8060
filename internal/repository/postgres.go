package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rishimulani16/QR-Code/internal/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("PostgreSQL repository initialized successfully")

	return &PostgresRepository{pool: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, nil
}

func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database for migrations: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver,
	)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Println("Migrations applied successfully")
	return nil
}

func (p *PostgresRepository) Create(ctx context.Context, rec *models.QRCode) (*models.QRCode, error) {
	created := *rec
	created.ID = uuid.New().String()
	created.GeneratedAt = time.Now().UTC()

	query, args, err := p.sb.
		Insert("qr_codes").
		Columns("id", "owner_id", "text", "image_url", "is_url", "generated_at").
		Values(created.ID, created.OwnerID, created.Text, created.ImageURL, created.IsURL, created.GeneratedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("id collision: %w", err)
		}
		return nil, fmt.Errorf("execute query: %w", err)
	}

	return &created, nil
}

func (p *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int, from, to *time.Time) ([]models.QRCode, int, error) {
	where := squirrel.And{squirrel.Eq{"owner_id": ownerID}}
	if from != nil && to != nil {
		where = append(where,
			squirrel.GtOrEq{"generated_at": *from},
			squirrel.LtOrEq{"generated_at": *to},
		)
	}

	countQuery, countArgs, err := p.sb.
		Select("COUNT(*)").
		From("qr_codes").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := p.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	query, args, err := p.sb.
		Select("id", "owner_id", "text", "image_url", "is_url", "generated_at").
		From("qr_codes").
		Where(where).
		OrderBy("generated_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]models.QRCode, 0, pageSize)
	for rows.Next() {
		var rec models.QRCode
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Text, &rec.ImageURL, &rec.IsURL, &rec.GeneratedAt); err != nil {
			return nil, 0, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return records, total, nil
}

func (p *PostgresRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*models.QRCode, error) {
	query, args, err := p.sb.
		Select("id", "owner_id", "text", "image_url", "is_url", "generated_at").
		From("qr_codes").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rec models.QRCode
	err = p.pool.QueryRow(ctx, query, args...).
		Scan(&rec.ID, &rec.OwnerID, &rec.Text, &rec.ImageURL, &rec.IsURL, &rec.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query row: %w", err)
	}

	return &rec, nil
}

func (p *PostgresRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error) {
	// Ownership lives in the WHERE clause: another owner's id never matches.
	query, args, err := p.sb.
		Delete("qr_codes").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	cmdTag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("execute query: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (p *PostgresRepository) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresRepository) Close() error {
	p.pool.Close()
	return nil
}
