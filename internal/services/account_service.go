package services

import (
	"context"
	"strings"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.CreateAccountRequest) (*response_models.AccountResponse, error)
	GetAccountByID(ctx context.Context, id uint) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
}

func NewAccountService(accounts repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) CreateAccount(ctx context.Context, req request_models.CreateAccountRequest) (*response_models.AccountResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, utils.NewValidationError("username is required")
	}
	if req.Password == "" {
		return nil, utils.NewValidationError("password is required")
	}

	existing, err := s.accounts.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError("username is already taken")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.CreateAccount(ctx, &db_models.Account{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return &response_models.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
	}, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id uint) (*response_models.AccountResponse, error) {
	account, err := s.accounts.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return &response_models.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
	}, nil
}
