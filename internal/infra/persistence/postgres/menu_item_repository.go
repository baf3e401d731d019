package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuItemRepository implements MenuItemRepository over one kind's table.
// The model type and its field mapping are the only per-kind parts; the
// query shapes are identical.
type menuItemRepository[M any] struct {
	db       *gorm.DB
	kind     entity.Kind
	idColumn string
	toModel  func(entity.MenuItem) M
	toEntity func(M) entity.MenuItem
}

// NewAppetizerRepository is the constructor for the appetizers table repository.
func NewAppetizerRepository(db *gorm.DB) repository.AppetizerRepository {
	return &menuItemRepository[model.AppetizerModel]{
		db:       db,
		kind:     entity.KindAppetizer,
		idColumn: "appetizers_id",
		toModel: func(item entity.MenuItem) model.AppetizerModel {
			m := model.AppetizerModel{Name: item.Name, Price: item.Price, ReceiptID: item.ReceiptID}
			if item.ID != nil {
				m.ID = *item.ID
			}

			return m
		},
		toEntity: func(m model.AppetizerModel) entity.MenuItem {
			id := m.ID

			return entity.MenuItem{ID: &id, Kind: entity.KindAppetizer, Name: m.Name, Price: m.Price, ReceiptID: m.ReceiptID}
		},
	}
}

// NewDrinkRepository is the constructor for the drinks table repository.
func NewDrinkRepository(db *gorm.DB) repository.DrinkRepository {
	return &menuItemRepository[model.DrinkModel]{
		db:       db,
		kind:     entity.KindDrink,
		idColumn: "drinks_id",
		toModel: func(item entity.MenuItem) model.DrinkModel {
			m := model.DrinkModel{Name: item.Name, Price: item.Price, ReceiptID: item.ReceiptID}
			if item.ID != nil {
				m.ID = *item.ID
			}

			return m
		},
		toEntity: func(m model.DrinkModel) entity.MenuItem {
			id := m.ID

			return entity.MenuItem{ID: &id, Kind: entity.KindDrink, Name: m.Name, Price: m.Price, ReceiptID: m.ReceiptID}
		},
	}
}

// NewMainCourseRepository is the constructor for the food table repository.
func NewMainCourseRepository(db *gorm.DB) repository.MainCourseRepository {
	return &menuItemRepository[model.MainCourseModel]{
		db:       db,
		kind:     entity.KindMainCourse,
		idColumn: "food_id",
		toModel: func(item entity.MenuItem) model.MainCourseModel {
			m := model.MainCourseModel{Name: item.Name, Price: item.Price, ReceiptID: item.ReceiptID}
			if item.ID != nil {
				m.ID = *item.ID
			}

			return m
		},
		toEntity: func(m model.MainCourseModel) entity.MenuItem {
			id := m.ID

			return entity.MenuItem{ID: &id, Kind: entity.KindMainCourse, Name: m.Name, Price: m.Price, ReceiptID: m.ReceiptID}
		},
	}
}

// List returns every row in id order.
func (repo *menuItemRepository[M]) List(ctx context.Context) ([]entity.MenuItem, error) {
	var models []M
	if err := repo.db.WithContext(ctx).Order(repo.idColumn).Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", repo.kind)
	}

	items := make([]entity.MenuItem, 0, len(models))
	for _, m := range models {
		items = append(items, repo.toEntity(m))
	}

	return items, nil
}

// FindByID returns the row and true, or ok=false when the id is absent.
func (repo *menuItemRepository[M]) FindByID(ctx context.Context, id int64) (*entity.MenuItem, bool, error) {
	var m M
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to find %s %d", repo.kind, id)
	}

	item := repo.toEntity(m)

	return &item, true, nil
}

// Create inserts the item and returns it with the assigned id.
func (repo *menuItemRepository[M]) Create(ctx context.Context, item entity.MenuItem) (*entity.MenuItem, error) {
	item.ID = nil
	m := repo.toModel(item)

	if err := repo.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", repo.kind)
	}

	created := repo.toEntity(m)

	return &created, nil
}

// Update replaces every column of the row named by upd.ID.
func (repo *menuItemRepository[M]) Update(ctx context.Context, upd entity.MenuItemUpdate) (*entity.MenuItem, error) {
	m := repo.toModel(entity.MenuItem{
		ID:        &upd.ID,
		Kind:      repo.kind,
		Name:      upd.Name,
		Price:     upd.Price,
		ReceiptID: upd.ReceiptID,
	})

	result := repo.db.WithContext(ctx).Model(&m).Select("*").Omit(repo.idColumn).Updates(&m)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update %s %d", repo.kind, upd.ID)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	updated := repo.toEntity(m)

	return &updated, nil
}

// Delete removes the row. Deleting an absent id yields ErrNotFound.
func (repo *menuItemRepository[M]) Delete(ctx context.Context, id int64) error {
	var m M
	result := repo.db.WithContext(ctx).Delete(&m, id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s %d", repo.kind, id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
