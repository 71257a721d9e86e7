package usecase

import (
	"context"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/report"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidates domain.CandidateRepository
	users      domain.UserRepository
	report     *report.Writer
	validate   *validator.Validate
}

func NewCandidateUsecase(
	candidates domain.CandidateRepository,
	users domain.UserRepository,
	reportWriter *report.Writer,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidates: candidates,
		users:      users,
		report:     reportWriter,
		validate:   validate,
	}
}

// authorize matches the submitted identity against stored users. The check
// runs on every call; a miss is reported with a single generic message that
// never reveals which field mismatched.
func (u *candidateUsecase) authorize(ctx context.Context, caller domain.UserIdentity) error {
	found, err := u.users.FindByIdentity(ctx, caller)
	if err != nil {
		return err
	}
	if found == nil {
		return apperror.Unauthorized("Unauthorized user")
	}
	return nil
}

func (u *candidateUsecase) Create(ctx context.Context, input *domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate := input.ToCandidate(uuid.New())
	if err := u.candidates.Insert(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) List(ctx context.Context, caller domain.UserIdentity, searchQuery string) ([]domain.Candidate, error) {
	if err := u.authorize(ctx, caller); err != nil {
		return nil, err
	}

	if searchQuery == "" {
		return u.candidates.FindAll(ctx)
	}
	return u.candidates.Search(ctx, searchQuery)
}

func (u *candidateUsecase) GenerateReport(ctx context.Context, caller domain.UserIdentity) error {
	if err := u.authorize(ctx, caller); err != nil {
		return err
	}

	candidates, err := u.candidates.FindAll(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(candidates))
	for i := range candidates {
		rows = append(rows, candidates[i].CSVRecord())
	}

	// Write failures (permissions, disk full) propagate as server faults.
	return u.report.Write(domain.CandidateFields, rows)
}

func (u *candidateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	candidate, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, id uuid.UUID, input *domain.CandidateInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(err.Error())
	}

	existing, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Candidate not found")
	}

	// Full replace: every attribute except the id comes from the input.
	return u.candidates.Replace(ctx, input.ToCandidate(id))
}

func (u *candidateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Candidate not found")
	}

	return u.candidates.Delete(ctx, id)
}
