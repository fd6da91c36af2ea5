package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	store *database.Store
}

func NewOrderRepository(store *database.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// InsertOne persists the order as a single row insert.
func (r *OrderRepository) InsertOne(ctx context.Context, order *models.Order) (string, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return "", err
	}

	if order.ID == "" {
		if order.ID, err = newID(); err != nil {
			return "", fmt.Errorf("assign order id: %w", err)
		}
	}
	if err := db.Create(order).Error; err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return order.ID, nil
}

func (r *OrderRepository) FindOne(ctx context.Context, id string) (*models.Order, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

// Find returns the newest orders first. A limit of zero returns all.
func (r *OrderRepository) Find(ctx context.Context, limit int) ([]models.Order, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
