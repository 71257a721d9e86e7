package usecase

import (
	"context"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type userUsecase struct {
	users    domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(users domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		users:    users,
		validate: validate,
	}
}

func (u *userUsecase) Create(ctx context.Context, input *domain.UserInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user := input.ToUser(uuid.New())
	if err := u.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) List(ctx context.Context) ([]domain.User, error) {
	return u.users.FindAll(ctx)
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, input *domain.UserInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(err.Error())
	}

	existing, err := u.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("User not found")
	}

	return u.users.Replace(ctx, input.ToUser(id))
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := u.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("User not found")
	}

	return u.users.Delete(ctx, id)
}
