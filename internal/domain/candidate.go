package domain

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderNotSpecified Gender = "Not Specified"
)

// Candidate is one stored record per person under consideration. The ID is
// assigned at creation and immutable afterwards.
type Candidate struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	CareerLevel       string    `json:"career_level"`
	JobMajor          string    `json:"job_major"`
	YearsOfExperience int       `json:"years_of_experience"`
	DegreeType        string    `json:"degree_type"`
	Skills            []string  `json:"skills"`
	Nationality       string    `json:"nationality"`
	City              string    `json:"city"`
	Salary            float64   `json:"salary"`
	Gender            Gender    `json:"gender"`
}

// CandidateInput is the request body for create and update. Every attribute
// is required; update is a full-document replace, so omitting a field is a
// validation error, never a silent retain of the old value.
type CandidateInput struct {
	FirstName         string   `json:"first_name" validate:"required"`
	LastName          string   `json:"last_name" validate:"required"`
	Email             string   `json:"email" validate:"required"`
	CareerLevel       string   `json:"career_level" validate:"required"`
	JobMajor          string   `json:"job_major" validate:"required"`
	YearsOfExperience *int     `json:"years_of_experience" validate:"required"`
	DegreeType        string   `json:"degree_type" validate:"required"`
	Skills            []string `json:"skills" validate:"required"`
	Nationality       string   `json:"nationality" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Salary            *float64 `json:"salary" validate:"required"`
	Gender            Gender   `json:"gender" validate:"required,oneof=male female 'Not Specified'"`
}

// ToCandidate attaches an identifier and returns the stored form.
func (in *CandidateInput) ToCandidate(id uuid.UUID) *Candidate {
	return &Candidate{
		ID:                id,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		CareerLevel:       in.CareerLevel,
		JobMajor:          in.JobMajor,
		YearsOfExperience: *in.YearsOfExperience,
		DegreeType:        in.DegreeType,
		Skills:            in.Skills,
		Nationality:       in.Nationality,
		City:              in.City,
		Salary:            *in.Salary,
		Gender:            in.Gender,
	}
}

// CandidateFields is the declared attribute order, used for the CSV report
// header and the cross-field search. The identifier comes last.
var CandidateFields = []string{
	"first_name",
	"last_name",
	"email",
	"career_level",
	"job_major",
	"years_of_experience",
	"degree_type",
	"skills",
	"nationality",
	"city",
	"salary",
	"gender",
	"id",
}

// CSVRecord renders the candidate in CandidateFields order, with the id in
// its canonical string form and every other field in its natural textual
// form.
func (c *Candidate) CSVRecord() []string {
	return []string{
		c.FirstName,
		c.LastName,
		c.Email,
		c.CareerLevel,
		c.JobMajor,
		strconv.Itoa(c.YearsOfExperience),
		c.DegreeType,
		strings.Join(c.Skills, ","),
		c.Nationality,
		c.City,
		strconv.FormatFloat(c.Salary, 'f', -1, 64),
		string(c.Gender),
		c.ID.String(),
	}
}

type CandidateRepository interface {
	Insert(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	FindAll(ctx context.Context) ([]Candidate, error)
	Search(ctx context.Context, term string) ([]Candidate, error)
	Replace(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CandidateUsecase interface {
	Create(ctx context.Context, input *CandidateInput) (*Candidate, error)
	List(ctx context.Context, caller UserIdentity, searchQuery string) ([]Candidate, error)
	GenerateReport(ctx context.Context, caller UserIdentity) error
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	Update(ctx context.Context, id uuid.UUID, input *CandidateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}
