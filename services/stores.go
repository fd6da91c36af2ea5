package services

import (
	"context"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/repositories"
)

// MenuItemStore is the menu item collection.
type MenuItemStore interface {
	InsertOne(ctx context.Context, item *models.MenuItem) (string, error)
	InsertMany(ctx context.Context, items []*models.MenuItem) ([]string, error)
	FindOne(ctx context.Context, id string) (*models.MenuItem, error)
	Find(ctx context.Context, filter repositories.MenuItemFilter) ([]models.MenuItem, error)
	Count(ctx context.Context, filter repositories.MenuItemFilter) (int64, error)
}

// OrderStore is the order collection.
type OrderStore interface {
	InsertOne(ctx context.Context, order *models.Order) (string, error)
	FindOne(ctx context.Context, id string) (*models.Order, error)
	Find(ctx context.Context, limit int) ([]models.Order, error)
}

// OrderNotifier is told about every order that was stored.
type OrderNotifier interface {
	OrderCreated(order models.Order)
}
