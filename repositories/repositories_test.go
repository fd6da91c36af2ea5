package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/repositories"
	"github.com/yeremiapane/restaurant-ordering/testhelpers"
)

func menuItem(t *testing.T, body string) *models.MenuItem {
	t.Helper()
	doc, err := models.DecodeDocument([]byte(body))
	require.NoError(t, err)
	item, err := models.NewMenuItem(doc)
	require.NoError(t, err)
	return item
}

func TestMenuItemRepositoryInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMenuItemRepository(testhelpers.NewStore(t))

	id, err := repo.InsertOne(ctx, menuItem(t, `{"name":"Caesar Salad","price":8.49,"category":"Salads","available":true}`))
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	found, err := repo.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	doc, err := found.Document()
	require.NoError(t, err)
	assert.Equal(t, "Caesar Salad", doc["name"])

	_, err = repo.FindOne(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMenuItemRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMenuItemRepository(testhelpers.NewStore(t))

	ids, err := repo.InsertMany(ctx, []*models.MenuItem{
		menuItem(t, `{"name":"Margherita Pizza","category":"Pizza","available":true}`),
		menuItem(t, `{"name":"Pepperoni Pizza","category":"Pizza","available":false}`),
		menuItem(t, `{"name":"Lemonade","category":"Drinks","available":true}`),
		menuItem(t, `{"name":"Pizza-ish","category":"pizza","available":true}`),
	})
	require.NoError(t, err)
	require.Len(t, ids, 4)

	pizza := "Pizza"
	items, err := repo.Find(ctx, repositories.MenuItemFilter{Category: &pizza, AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ids[0], items[0].ID)

	available, err := repo.Count(ctx, repositories.MenuItemFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), available)

	total, err := repo.Count(ctx, repositories.MenuItemFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byID, err := repo.Find(ctx, repositories.MenuItemFilter{IDs: []string{ids[2], ids[1], uuid.NewString()}})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	assert.Equal(t, ids[1], byID[0].ID)
	assert.Equal(t, ids[2], byID[1].ID)

	none, err := repo.Find(ctx, repositories.MenuItemFilter{IDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepositoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewStore(t)
	repo := repositories.NewOrderRepository(store)

	name := "Lemonade"
	var ids []string
	for _, customer := range []string{"first", "second", "third"} {
		id, err := repo.InsertOne(ctx, &models.Order{
			CustomerName:    customer,
			CustomerEmail:   customer + "@example.com",
			CustomerAddress: "1 Main St",
			Items: []models.OrderLineItem{
				{ItemID: uuid.NewString(), Name: &name, Price: 3.49, Quantity: 1, LineTotal: 3.49},
			},
			Subtotal: 3.49,
			Tax:      0.28,
			Total:    3.77,
			Status:   models.OrderStatusPending,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	latest, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, ids[2], latest[0].ID)

	all, err := repo.Find(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[2].CustomerName)

	found, err := repo.FindOne(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Lemonade", *found.Items[0].Name)
	assert.Nil(t, found.Notes)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRepositoriesReportUnavailableStore(t *testing.T) {
	ctx := context.Background()
	store := database.Unavailable(errors.New("dial tcp: connection refused"))

	_, err := repositories.NewMenuItemRepository(store).Find(ctx, repositories.MenuItemFilter{})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)

	_, err = repositories.NewOrderRepository(store).InsertOne(ctx, &models.Order{})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
