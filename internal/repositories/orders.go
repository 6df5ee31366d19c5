package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Orders owns client service orders with their embedded responses.
type Orders struct {
	store *storage.Store
}

func NewOrdersRepository(store *storage.Store) *Orders {
	return &Orders{store: store}
}

func (r *Orders) GetAll(ctx context.Context) ([]entities.ClientOrder, error) {
	return storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
}

func (r *Orders) GetActive(ctx context.Context) ([]entities.ClientOrder, error) {
	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(o entities.ClientOrder, _ int) bool { return o.Status == entities.OrderActive }), nil
}

func (r *Orders) GetByClient(ctx context.Context, clientID string) ([]entities.ClientOrder, error) {
	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(o entities.ClientOrder, _ int) bool { return o.ClientID == clientID }), nil
}

func (r *Orders) Create(ctx context.Context, order entities.ClientOrder) (*entities.ClientOrder, error) {
	metrics.RepositoryCalls.WithLabelValues("orders", "create").Inc()

	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return nil, err
	}

	order.ID = entities.NewID()
	order.CreatedAt = time.Now().UTC()
	order.Responses = []entities.OrderResponse{}
	order.Status = entities.OrderActive

	if err = storage.SetCollection(ctx, r.store, storage.KeyClientOrders, append(all, order)); err != nil {
		return nil, err
	}
	return &order, nil
}

// Respond appends a pending price offer. An unknown order id is a silent
// no-op, matching the documented store behavior.
func (r *Orders) Respond(ctx context.Context, orderID, responderID, responderName string, responderRole entities.UserRole, price, message string) error {
	metrics.RepositoryCalls.WithLabelValues("orders", "respond").Inc()

	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(o entities.ClientOrder) bool { return o.ID == orderID })
	if !found {
		return nil
	}

	all[idx].Responses = append(all[idx].Responses, entities.OrderResponse{
		ID:            entities.NewID(),
		OrderID:       orderID,
		ResponderID:   responderID,
		ResponderName: responderName,
		ResponderRole: responderRole,
		Price:         price,
		Message:       message,
		Status:        entities.ApplicationPending,
		CreatedAt:     time.Now().UTC(),
	})
	return storage.SetCollection(ctx, r.store, storage.KeyClientOrders, all)
}

// UpdateStatus overwrites the order status without a transition guard.
func (r *Orders) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	metrics.RepositoryCalls.WithLabelValues("orders", "update_status").Inc()

	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(o entities.ClientOrder) bool { return o.ID == id })
	if !found {
		return nil
	}

	all[idx].Status = status
	return storage.SetCollection(ctx, r.store, storage.KeyClientOrders, all)
}

// AcceptResponse accepts exactly one response, rejects every sibling, and
// moves the order to inProgress. An unknown order id is a silent no-op.
func (r *Orders) AcceptResponse(ctx context.Context, orderID, responseID string) error {
	metrics.RepositoryCalls.WithLabelValues("orders", "accept_response").Inc()

	all, err := storage.GetCollection[entities.ClientOrder](ctx, r.store, storage.KeyClientOrders)
	if err != nil {
		return err
	}

	_, idx, found := lo.FindIndexOf(all, func(o entities.ClientOrder) bool { return o.ID == orderID })
	if !found {
		return nil
	}

	for i := range all[idx].Responses {
		if all[idx].Responses[i].ID == responseID {
			all[idx].Responses[i].Status = entities.ApplicationAccepted
		} else {
			all[idx].Responses[i].Status = entities.ApplicationRejected
		}
	}
	all[idx].Status = entities.OrderInProgress

	return storage.SetCollection(ctx, r.store, storage.KeyClientOrders, all)
}
