package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cashierRepository implements the repository.CashierRepository interface using GORM.
type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository is the constructor for cashierRepository.
func NewCashierRepository(db *gorm.DB) repository.CashierRepository {
	return &cashierRepository{db: db}
}

func (repo *cashierRepository) List(ctx context.Context) ([]entity.Cashier, error) {
	var models []model.CashierModel
	if err := repo.db.WithContext(ctx).Order("cashier_id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cashiers")
	}

	cashiers := make([]entity.Cashier, 0, len(models))
	for _, m := range models {
		cashiers = append(cashiers, toCashierDomain(m))
	}

	return cashiers, nil
}

func (repo *cashierRepository) FindByID(ctx context.Context, id int64) (*entity.Cashier, bool, error) {
	var m model.CashierModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to find cashier %d", id)
	}

	cashier := toCashierDomain(m)

	return &cashier, true, nil
}

func (repo *cashierRepository) FindByName(ctx context.Context, name string) (*entity.Cashier, bool, error) {
	var m model.CashierModel
	if err := repo.db.WithContext(ctx).Where("cashier_name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to find cashier %q", name)
	}

	cashier := toCashierDomain(m)

	return &cashier, true, nil
}

func (repo *cashierRepository) Update(ctx context.Context, upd entity.CashierUpdate) (*entity.Cashier, error) {
	m := model.CashierModel{ID: upd.ID, Name: upd.Name, Salary: upd.Salary}

	result := repo.db.WithContext(ctx).Model(&m).Select("*").Omit("cashier_id").Updates(&m)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update cashier %d", upd.ID)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	cashier := toCashierDomain(m)

	return &cashier, nil
}

func toCashierDomain(m model.CashierModel) entity.Cashier {
	return entity.Cashier{ID: m.ID, Name: m.Name, Salary: m.Salary}
}
