package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

// AccountRepository is the minimal user-record store. Lookups return
// (nil, nil) for a missing record.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *db_models.Account) (*db_models.Account, error)
	GetAccountByID(ctx context.Context, id uint) (*db_models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*db_models.Account, error)
}

func NewAccountPostgresRepository(db *gorm.DB) AccountRepository {
	return &accountPostgresRepository{db: db}
}

type accountPostgresRepository struct {
	db *gorm.DB
}

func (r *accountPostgresRepository) CreateAccount(ctx context.Context, account *db_models.Account) (*db_models.Account, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	account.ID = 0
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return account, nil
}

func (r *accountPostgresRepository) GetAccountByID(ctx context.Context, id uint) (*db_models.Account, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	var account db_models.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &account, nil
}

func (r *accountPostgresRepository) GetAccountByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	var account db_models.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &account, nil
}
