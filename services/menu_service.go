package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/repositories"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type SeedResult struct {
	Seeded bool              `json:"seeded"`
	Count  int64             `json:"count"`
	Items  []models.Document `json:"items"`
}

type MenuService struct {
	menuItems MenuItemStore
}

func NewMenuService(menuItems MenuItemStore) *MenuService {
	return &MenuService{menuItems: menuItems}
}

// ListMenu returns available items, limited to category when it is set.
func (s *MenuService) ListMenu(ctx context.Context, category string) ([]models.Document, error) {
	filter := repositories.MenuItemFilter{AvailableOnly: true}
	if category != "" {
		filter.Category = &category
	}
	return s.find(ctx, filter)
}

// CreateMenuItem stores doc as given and returns the stored form.
func (s *MenuService) CreateMenuItem(ctx context.Context, doc models.Document) (models.Document, error) {
	item, err := models.NewMenuItem(doc)
	if err != nil {
		return nil, err
	}

	id, err := s.menuItems.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	created, err := s.menuItems.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload menu item %s: %w", id, err)
	}
	return created.Document()
}

// Seed fills an empty menu with DefaultMenu. A menu that already has any
// item is left untouched.
func (s *MenuService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.menuItems.Count(ctx, repositories.MenuItemFilter{})
	if err != nil {
		return nil, err
	}

	if count > 0 {
		items, err := s.find(ctx, repositories.MenuItemFilter{AvailableOnly: true})
		if err != nil {
			return nil, err
		}
		return &SeedResult{Seeded: false, Count: count, Items: items}, nil
	}

	fixture := DefaultMenu()
	batch := make([]*models.MenuItem, 0, len(fixture))
	for _, doc := range fixture {
		item, err := models.NewMenuItem(doc)
		if err != nil {
			return nil, err
		}
		batch = append(batch, item)
	}
	if _, err := s.menuItems.InsertMany(ctx, batch); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Seeded menu with %d items", len(batch))

	items, err := s.find(ctx, repositories.MenuItemFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}
	return &SeedResult{Seeded: true, Count: int64(len(items)), Items: items}, nil
}

func (s *MenuService) find(ctx context.Context, filter repositories.MenuItemFilter) ([]models.Document, error) {
	items, err := s.menuItems.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(items))
	for i := range items {
		doc, err := items[i].Document()
		if err != nil {
			return nil, fmt.Errorf("menu item %s: %w", items[i].ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
