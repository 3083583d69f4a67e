package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"rolodex/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
	logger *slog.Logger
}

// ContactRepo creates a contact repository instance bound to the transaction.
func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx, f.logger)
}

// GroupRepo creates a group repository instance bound to the transaction.
func (f *gormRepositoryFactory) GroupRepo() repository.GroupRepository {
	return NewGroupRepository(f.tx)
}

// UserRepo creates a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// RefreshTokenRepo creates a refresh token repository instance bound to the transaction.
func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, logger *slog.Logger) repository.TransactionManager {
	return &gormTransactionManager{db: db, logger: logger}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If a panic occurs within the callback function, the transaction is
	// always rolled back before re-panicking.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, logger: tm.logger}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
