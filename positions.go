package lemon

import (
	"context"
	"net/http"
)

// PositionsService provides the /positions endpoints.
type PositionsService struct {
	client *Client
}

// List fetches a page of positions, optionally filtered by isin.
func (s *PositionsService) List(ctx context.Context, opts *ListPositionsOptions) (*Response[[]Position], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting positions")
	}

	env, err := do[[]wirePosition](ctx, s.client, http.MethodGet, "/positions", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting positions")
	}

	return &Response[[]Position]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toPosition),
		Pagination: env.pagination(),
	}, nil
}

// ListStatements fetches a page of position ledger statements.
func (s *PositionsService) ListStatements(ctx context.Context, opts *ListStatementsOptions) (*Response[[]Statement], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting statements")
	}

	env, err := do[[]wireStatement](ctx, s.client, http.MethodGet, "/positions/statements", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting statements")
	}

	return &Response[[]Statement]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toStatement),
		Pagination: env.pagination(),
	}, nil
}

// ListPerformance fetches per-instrument performance figures. Malformed
// From/To dates fail locally with a bad_request error before any network
// call.
func (s *PositionsService) ListPerformance(ctx context.Context, opts *ListPerformanceOptions) (*Response[[]Performance], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting performance")
	}

	env, err := do[[]wirePerformance](ctx, s.client, http.MethodGet, "/positions/performance", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting performance")
	}

	return &Response[[]Performance]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toPerformance),
		Pagination: env.pagination(),
	}, nil
}
