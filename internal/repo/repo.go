package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Design is a saved stair flight owned by a user. Flight holds the calc
// request body as submitted.
type Design struct {
	ID        int             `json:"id"`
	UserID    int             `json:"-"`
	Name      string          `json:"name"`
	Flight    json.RawMessage `json:"flight"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveDesign(ctx context.Context, d Design) (int, error)
	GetDesign(ctx context.Context, userID, id int) (Design, error)
	ListDesigns(ctx context.Context, userID int) ([]Design, error)
	DeleteDesign(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InitDB opens and pings the database.
func InitDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       SERIAL PRIMARY KEY,
	login    TEXT NOT NULL UNIQUE,
	email    TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS designs (
	id         SERIAL PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	flight     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS designs_user_id_idx ON designs (user_id);
`

// Migrate creates the tables the service needs if they are missing.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	if isUniqueViolation(err) {
		return 0, ErrDuplicate
	}
	return id, err
}

// GetBylogin returns the user id and password hash. An unknown login yields
// a zero id and an empty hash.
func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, d Design) (int, error) {
	var id int
	query := "INSERT INTO designs (user_id, name, flight) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, d.UserID, d.Name, []byte(d.Flight)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, id int) (Design, error) {
	d := Design{ID: id, UserID: userID}
	var flight []byte
	query := "SELECT name, flight, created_at FROM designs WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&d.Name, &flight, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Design{}, ErrNotFound
	}
	if err != nil {
		return Design{}, err
	}
	d.Flight = flight
	return d, nil
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]Design, error) {
	query := "SELECT id, name, flight, created_at FROM designs WHERE user_id=$1 ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Design
	for rows.Next() {
		d := Design{UserID: userID}
		var flight []byte
		if err := rows.Scan(&d.ID, &d.Name, &flight, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Flight = flight
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) DeleteDesign(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM designs WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
