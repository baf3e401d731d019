package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername looks up the stored credential for a username. An unknown
// username is not an error; the caller decides how to surface it.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, bool, error) {
	var m model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to find user by username")
	}

	return &entity.Credential{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
	}, true, nil
}
