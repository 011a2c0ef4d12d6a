package repositories

import (
	"context"
	"sync"
	"time"

	"yatra/internal/models/db_models"
)

type accountMemoryRepository struct {
	mu       sync.Mutex
	accounts map[uint]db_models.Account
	nextID   uint
}

func NewAccountMemoryRepository() AccountRepository {
	return &accountMemoryRepository{
		accounts: make(map[uint]db_models.Account),
		nextID:   1,
	}
}

func (r *accountMemoryRepository) CreateAccount(ctx context.Context, account *db_models.Account) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = r.nextID
	r.nextID++
	account.CreatedAt = time.Now()

	r.accounts[account.ID] = *account
	return account, nil
}

func (r *accountMemoryRepository) GetAccountByID(ctx context.Context, id uint) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *accountMemoryRepository) GetAccountByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Username == username {
			match := account
			return &match, nil
		}
	}
	return nil, nil
}
