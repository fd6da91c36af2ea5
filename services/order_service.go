package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/repositories"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// TaxRate is applied to the order subtotal.
const TaxRate = 0.08

const DefaultOrderLimit = 20

type OrderItemInput struct {
	ItemID   string
	Quantity int
}

type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Items           []OrderItemInput
	Notes           *string
}

type OrderService struct {
	menuItems MenuItemStore
	orders    OrderStore
	notifier  OrderNotifier
}

// NewOrderService wires the order flow. notifier may be nil.
func NewOrderService(menuItems MenuItemStore, orders OrderStore, notifier OrderNotifier) *OrderService {
	return &OrderService{
		menuItems: menuItems,
		orders:    orders,
		notifier:  notifier,
	}
}

// CreateOrder prices the requested items against the menu and stores the
// order. Nothing is written unless every item resolves.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	// parse everything before touching the store
	refs := make([]string, len(in.Items))
	distinct := make([]string, 0, len(in.Items))
	seen := make(map[string]struct{}, len(in.Items))
	for i, item := range in.Items {
		id, err := uuid.Parse(item.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReference, item.ItemID)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, item.Quantity)
		}
		refs[i] = id.String()
		if _, ok := seen[refs[i]]; !ok {
			seen[refs[i]] = struct{}{}
			distinct = append(distinct, refs[i])
		}
	}

	resolved, err := s.menuItems.Find(ctx, repositories.MenuItemFilter{IDs: distinct})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.MenuItem, len(resolved))
	for _, item := range resolved {
		byID[item.ID] = item
	}
	if len(byID) != len(distinct) {
		return nil, ErrItemNotFound
	}

	lines := make([]models.OrderLineItem, 0, len(in.Items))
	subtotal := 0.0
	for i, item := range in.Items {
		menuItem, ok := byID[refs[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, refs[i])
		}

		name, price, err := menuItem.Pricing()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMenuItem, refs[i], err)
		}

		lineTotal := price * float64(item.Quantity)
		subtotal += lineTotal
		lines = append(lines, models.OrderLineItem{
			ItemID:    refs[i],
			Name:      name,
			Price:     price,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
	}

	// tax and total come from the exact sum; the stored subtotal is rounded
	tax := utils.RoundMoney(subtotal * TaxRate)
	order := &models.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerAddress: in.CustomerAddress,
		Items:           lines,
		Subtotal:        utils.RoundMoney(subtotal),
		Tax:             tax,
		Total:           utils.RoundMoney(subtotal + tax),
		Status:          models.OrderStatusPending,
		Notes:           in.Notes,
	}

	id, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	created, err := s.orders.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload order %s: %w", id, err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": created.ID,
		"items":    len(created.Items),
		"total":    created.Total,
	}).Info("Order created")

	if s.notifier != nil {
		s.notifier.OrderCreated(*created)
	}
	return created, nil
}

// ListOrders returns the newest orders first. A limit of zero means no limit.
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return s.orders.Find(ctx, limit)
}
