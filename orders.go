package lemon

import (
	"context"
	"net/http"
)

// OrdersService provides the /orders endpoints.
type OrdersService struct {
	client *Client
}

// Place places an order. ExpiresAt must be an absolute YYYY-MM-DD date or a
// relative day count like "14D"; anything else fails locally with a
// bad_request error before any network call. The value is forwarded to the
// API verbatim.
func (s *OrdersService) Place(ctx context.Context, opts PlaceOrderOptions) (*Response[Order], error) {
	if opts.ExpiresAt != "" && !isValidDate(opts.ExpiresAt) && !relativeExpiry.MatchString(opts.ExpiresAt) {
		return nil, newError(KindBadRequest, "Date format for `expires_at` is invalid")
	}

	env, err := do[wireOrder](ctx, s.client, http.MethodPost, "/orders", nil, opts)
	if err != nil {
		return nil, Classify(err, "An error occurred while placing order")
	}

	return &Response[Order]{
		Metadata: env.metadata(),
		Results:  toOrder(env.Results),
	}, nil
}

// Activate activates a placed order with the account PIN. Only required in
// the live environment.
func (s *OrdersService) Activate(ctx context.Context, orderID string, opts ActivateOrderOptions) (*Metadata, error) {
	env, err := do[struct{}](ctx, s.client, http.MethodPost, "/orders/"+orderID+"/activate", nil, opts)
	if err != nil {
		return nil, Classify(err, "An error occurred while activating order")
	}

	md := env.metadata()
	return &md, nil
}

// List fetches a page of orders, with execution details where available.
func (s *OrdersService) List(ctx context.Context, opts *ListOrdersOptions) (*Response[[]Order], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting orders")
	}

	env, err := do[[]wireOrder](ctx, s.client, http.MethodGet, "/orders", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting orders")
	}

	return &Response[[]Order]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toOrder),
		Pagination: env.pagination(),
	}, nil
}

// Get fetches a single order by id.
func (s *OrdersService) Get(ctx context.Context, orderID string) (*Response[Order], error) {
	env, err := do[wireOrder](ctx, s.client, http.MethodGet, "/orders/"+orderID, nil, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting order")
	}

	return &Response[Order]{
		Metadata: env.metadata(),
		Results:  toOrder(env.Results),
	}, nil
}

// Cancel cancels an order that has not executed yet.
func (s *OrdersService) Cancel(ctx context.Context, orderID string) (*Metadata, error) {
	env, err := do[struct{}](ctx, s.client, http.MethodDelete, "/orders/"+orderID, nil, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while cancelling order")
	}

	md := env.metadata()
	return &md, nil
}
