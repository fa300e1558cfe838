package accounts_repositories

import (
	"errors"
	"fmt"

	accounts_models "orilla/internal/features/accounts/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository struct{}

func (r *AccountRepository) CreateAccount(account *accounts_models.Account) error {
	if err := storage.GetDb().Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetAccountByID(accountID uuid.UUID) (*accounts_models.Account, error) {
	var account accounts_models.Account

	err := storage.GetDb().Where("id = ?", accountID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) GetAccountByName(
	organizationID uuid.UUID,
	name string,
) (*accounts_models.Account, error) {
	var account accounts_models.Account

	err := storage.GetDb().
		Where("organization_id = ? AND name = ?", organizationID, name).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) GetAccountsByOrganization(
	organizationID uuid.UUID,
) ([]*accounts_models.Account, error) {
	var accounts []*accounts_models.Account

	err := storage.GetDb().
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) UpdateAccount(account *accounts_models.Account) error {
	if err := storage.GetDb().Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

func (r *AccountRepository) DeleteAccount(accountID uuid.UUID) error {
	err := storage.GetDb().
		Where("id = ?", accountID).
		Delete(&accounts_models.Account{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
