package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

// MenuItemFilter selects menu items. Zero-value fields do not filter;
// a zero filter scans the whole collection.
type MenuItemFilter struct {
	IDs           []string
	Category      *string
	AvailableOnly bool
}

type MenuItemRepository struct {
	store *database.Store
}

func NewMenuItemRepository(store *database.Store) *MenuItemRepository {
	return &MenuItemRepository{store: store}
}

func (r *MenuItemRepository) InsertOne(ctx context.Context, item *models.MenuItem) (string, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return "", err
	}

	if item.ID == "" {
		if item.ID, err = newID(); err != nil {
			return "", fmt.Errorf("assign menu item id: %w", err)
		}
	}
	if err := db.Create(item).Error; err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return item.ID, nil
}

// InsertMany writes all items in one batch insert.
func (r *MenuItemRepository) InsertMany(ctx context.Context, items []*models.MenuItem) ([]string, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []string{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			if item.ID, err = newID(); err != nil {
				return nil, fmt.Errorf("assign menu item id: %w", err)
			}
		}
		ids = append(ids, item.ID)
	}
	if err := db.Create(&items).Error; err != nil {
		return nil, fmt.Errorf("insert menu items: %w", err)
	}
	return ids, nil
}

func (r *MenuItemRepository) FindOne(ctx context.Context, id string) (*models.MenuItem, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var item models.MenuItem
	if err := db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find menu item %s: %w", id, err)
	}
	return &item, nil
}

// Find returns matching items in insertion order.
func (r *MenuItemRepository) Find(ctx context.Context, filter MenuItemFilter) ([]models.MenuItem, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return items, nil
	}
	if err := applyMenuFilter(db, filter).Order("seq ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	return items, nil
}

func (r *MenuItemRepository) Count(ctx context.Context, filter MenuItemFilter) (int64, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := applyMenuFilter(db.Model(&models.MenuItem{}), filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return count, nil
}

func applyMenuFilter(db *gorm.DB, filter MenuItemFilter) *gorm.DB {
	if len(filter.IDs) > 0 {
		db = db.Where("id IN ?", filter.IDs)
	}
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.AvailableOnly {
		db = db.Where("available = ?", true)
	}
	return db
}
