// Package postgres is the direct-SQL backend for a self-managed
// PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

//go:embed schema.sql
var schema string

// Store implements gateway.Backend on PostgreSQL
type Store struct {
	db  *sqlx.DB
	log hclog.Logger
}

// Open connects, pings and applies the schema
func Open(ctx context.Context, dsn string, log hclog.Logger) (*Store, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return New(db, log), nil
}

// New wraps an existing connection
func New(db *sqlx.DB, log hclog.Logger) *Store {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Store{db: db, log: log}
}

// Name identifies the backend
func (s *Store) Name() string {
	return "postgres"
}

// Close closes the pool
func (s *Store) Close() error {
	return s.db.Close()
}

const insertBrewSQL = `
	INSERT INTO brews (
		user_id, brewed_at, bean_name, roaster, roast_level, method, grind_size,
		dose_g, water_ml, water_temp_c, drip_count, total_time_sec, rating, notes
	) VALUES (
		:user_id, :brewed_at, :bean_name, :roaster, :roast_level, :method, :grind_size,
		:dose_g, :water_ml, :water_temp_c, :drip_count, :total_time_sec, :rating, :notes
	)
	RETURNING id, created_at`

// Insert stores one brew row and returns it with the generated id
func (s *Store) Insert(ctx context.Context, user models.User, record models.Brew) (models.Brew, error) {
	if user.ID == "" || record.UserID != user.ID {
		return models.Brew{}, errors.New("insert brew: record does not belong to the signed-in user")
	}

	query, args, err := sqlx.Named(insertBrewSQL, record)
	if err != nil {
		return models.Brew{}, fmt.Errorf("bind brew insert: %w", err)
	}
	query = s.db.Rebind(query)

	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt); err != nil {
		return models.Brew{}, fmt.Errorf("insert brew: %w", mapError(err))
	}

	s.log.Debug("brew inserted", "id", record.ID, "user", user.ID)
	return record, nil
}

// SignIn checks the password against brew_users
func (s *Store) SignIn(ctx context.Context, email, password string) (models.User, error) {
	var account models.Account
	err := s.db.GetContext(ctx, &account, `
		SELECT id, email, password_hash, created_at
		FROM brew_users
		WHERE email = $1
	`, gateway.NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, gateway.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.User{}, gateway.ErrInvalidCredentials
	}
	return account.User(), nil
}

// SignUp creates a brew_users row
func (s *Store) SignUp(ctx context.Context, email, password string) (models.User, error) {
	if err := gateway.ValidateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Email:        gateway.NormalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	_, err = s.db.NamedExecContext(ctx, `
		INSERT INTO brew_users (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)
	`, account)
	if err != nil {
		return models.User{}, mapError(err)
	}
	return account.User(), nil
}

// SignOut has no server session to invalidate
func (s *Store) SignOut(ctx context.Context, user models.User) error {
	return nil
}

// mapError turns pq constraint errors into gateway sentinels
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch {
	case pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "email"):
		return gateway.ErrEmailTaken
	case pqErr.Code.Class() == "23":
		return fmt.Errorf("%s: %w", pqErr.Message, gateway.ErrConstraint)
	default:
		return err
	}
}
