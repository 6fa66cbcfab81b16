package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// ActorRepository implements usecase.ActorRepository on PostgreSQL.
type ActorRepository struct {
	pool *pgxpool.Pool
}

// NewActorRepository creates a new ActorRepository.
func NewActorRepository(pool *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{pool: pool}
}

// Create inserts a new actor profile.
func (r *ActorRepository) Create(ctx context.Context, actor *domain.ActorProfile) error {
	query := `
		INSERT INTO actors (id, name, email, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.Email,
		actor.HashedPassword,
		actor.CreatedAt,
	)

	return err
}

// GetByID retrieves an actor by ID.
func (r *ActorRepository) GetByID(ctx context.Context, id string) (*domain.ActorProfile, error) {
	query := `
		SELECT id, name, email, hashed_password, created_at
		FROM actors
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves an actor by email.
func (r *ActorRepository) GetByEmail(ctx context.Context, email string) (*domain.ActorProfile, error) {
	query := `
		SELECT id, name, email, hashed_password, created_at
		FROM actors
		WHERE email = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// SearchByName finds actors whose name contains the fragment.
func (r *ActorRepository) SearchByName(ctx context.Context, fragment string, limit int) ([]*domain.ActorProfile, error) {
	query := `
		SELECT id, name, email, hashed_password, created_at
		FROM actors
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, fragment, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actors []*domain.ActorProfile
	for rows.Next() {
		var actor domain.ActorProfile
		err := rows.Scan(&actor.ID, &actor.Name, &actor.Email, &actor.HashedPassword, &actor.CreatedAt)
		if err != nil {
			return nil, err
		}
		actors = append(actors, &actor)
	}

	return actors, rows.Err()
}

func (r *ActorRepository) scanOne(row pgx.Row) (*domain.ActorProfile, error) {
	var actor domain.ActorProfile
	err := row.Scan(&actor.ID, &actor.Name, &actor.Email, &actor.HashedPassword, &actor.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrActorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}
