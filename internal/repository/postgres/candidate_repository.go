package postgres

import (
	"context"
	"errors"

	"go-candidate-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const candidateColumns = `
	id, first_name, last_name, email, career_level, job_major,
	years_of_experience, degree_type, skills, nationality, city, salary, gender`

// Every declared field, the generated id included, takes part in the search.
// Non-text columns are coerced to their textual form so the case-insensitive
// substring match behaves the same across all field types.
const candidateSearchClause = `
	first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
	OR career_level ILIKE $1 OR job_major ILIKE $1
	OR years_of_experience::text ILIKE $1 OR degree_type ILIKE $1
	OR array_to_string(skills, ',') ILIKE $1 OR nationality ILIKE $1
	OR city ILIKE $1 OR salary::text ILIKE $1 OR gender ILIKE $1
	OR id::text ILIKE $1`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Insert(ctx context.Context, c *domain.Candidate) error {
	query := `
		INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.CareerLevel, c.JobMajor,
		c.YearsOfExperience, c.DegreeType, pq.Array(c.Skills),
		c.Nationality, c.City, c.Salary, c.Gender,
	)
	return err
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	// No ORDER BY on purpose: callers get whatever order the store returns.
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	return r.queryCandidates(ctx, query)
}

func (r *candidateRepository) Search(ctx context.Context, term string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE ` + candidateSearchClause
	return r.queryCandidates(ctx, query, likePattern(term))
}

func (r *candidateRepository) Replace(ctx context.Context, c *domain.Candidate) error {
	query := `
		UPDATE candidates SET
			first_name = $2, last_name = $3, email = $4, career_level = $5,
			job_major = $6, years_of_experience = $7, degree_type = $8,
			skills = $9, nationality = $10, city = $11, salary = $12, gender = $13
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.CareerLevel, c.JobMajor,
		c.YearsOfExperience, c.DegreeType, pq.Array(c.Skills),
		c.Nationality, c.City, c.Salary, c.Gender,
	)
	return err
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	return err
}

func (r *candidateRepository) queryCandidates(ctx context.Context, query string, args ...any) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills []string

	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CareerLevel, &c.JobMajor,
		&c.YearsOfExperience, &c.DegreeType, pq.Array(&skills),
		&c.Nationality, &c.City, &c.Salary, &c.Gender,
	)
	if err != nil {
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}
