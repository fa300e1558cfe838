package users_repositories

import (
	"crypto/rand"
	"encoding/hex"

	users_models "orilla/internal/features/users/models"
	"orilla/internal/storage"

	"gorm.io/gorm"
)

type SecretKeyRepository struct{}

// GetSecretKey returns the token-signing secret, generating one on first use.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	if err := storage.GetDb().First(&secretKey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			generated, genErr := generateSecret()
			if genErr != nil {
				return "", genErr
			}

			secretKey = users_models.SecretKey{Secret: generated}
			if createErr := storage.GetDb().Create(&secretKey).Error; createErr != nil {
				return "", createErr
			}

			return secretKey.Secret, nil
		}

		return "", err
	}

	return secretKey.Secret, nil
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
