// internal/service/company.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CompanyInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UserUpdateInput changes a member's profile. Empty fields are left alone.
type UserUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type CompanyService struct {
	companyRepo repository.CompanyRepositoryIface
	userRepo    repository.UserRepositoryIface
	hasher      *auth.PasswordHasher
	validate    *validator.Validate
}

func NewCompanyService(companyRepo repository.CompanyRepositoryIface, userRepo repository.UserRepositoryIface) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		hasher:      auth.NewPasswordHasher(),
		validate:    newValidator(),
	}
}

func (s *CompanyService) Get(ctx context.Context, companyID uuid.UUID) (*model.Company, error) {
	return s.companyRepo.FindByID(ctx, companyID)
}

func (s *CompanyService) Rename(ctx context.Context, companyID uuid.UUID, input CompanyInput) (*model.Company, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	company.Name = input.Name
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) ListUsers(ctx context.Context, companyID uuid.UUID) ([]*model.User, error) {
	return s.userRepo.ListByCompany(ctx, companyID)
}

func (s *CompanyService) GetUser(ctx context.Context, companyID, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByCompany(ctx, companyID, userID)
}

func (s *CompanyService) UpdateUser(ctx context.Context, companyID, userID uuid.UUID, input UserUpdateInput) (*model.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Struct(input); err != nil {
		return nil, toValidationError(err)
	}

	user, err := s.userRepo.FindByCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
