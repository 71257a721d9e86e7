package postgres

import (
	"context"
	"errors"

	"go-candidate-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, first_name, last_name, email) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Email)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email FROM users WHERE id = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) FindByIdentity(ctx context.Context, identity domain.UserIdentity) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email FROM users
		WHERE first_name = $1 AND last_name = $2 AND email = $3
		LIMIT 1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, identity.FirstName, identity.LastName, identity.Email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Replace(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name = $2, last_name = $3, email = $4 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, u.ID, u.FirstName, u.LastName, u.Email)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
