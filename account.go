package lemon

import (
	"context"
	"net/http"
)

// AccountService provides the /account endpoints.
type AccountService struct {
	client *Client
}

// Get fetches the current account snapshot.
func (s *AccountService) Get(ctx context.Context) (*Response[Account], error) {
	env, err := do[wireAccount](ctx, s.client, http.MethodGet, "/account", nil, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting account")
	}

	return &Response[Account]{
		Metadata: env.metadata(),
		Results:  toAccount(env.Results),
	}, nil
}

// CreateWithdrawal requests a withdrawal to the reference account. The
// response carries no payload, only the envelope metadata.
func (s *AccountService) CreateWithdrawal(ctx context.Context, opts CreateWithdrawalOptions) (*Metadata, error) {
	env, err := do[struct{}](ctx, s.client, http.MethodPost, "/account/withdrawals", nil, opts)
	if err != nil {
		return nil, Classify(err, "An error occurred while creating withdrawal")
	}

	md := env.metadata()
	return &md, nil
}

// ListWithdrawals fetches a page of withdrawals.
func (s *AccountService) ListWithdrawals(ctx context.Context, opts *ListWithdrawalsOptions) (*Response[[]Withdrawal], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting withdrawals")
	}

	env, err := do[[]wireWithdrawal](ctx, s.client, http.MethodGet, "/account/withdrawals", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting withdrawals")
	}

	return &Response[[]Withdrawal]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toWithdrawal),
		Pagination: env.pagination(),
	}, nil
}

// ListBankStatements fetches a page of bank statements, optionally filtered
// by type and date range. Malformed From/To dates fail locally with a
// bad_request error before any network call.
func (s *AccountService) ListBankStatements(ctx context.Context, opts *ListBankStatementsOptions) (*Response[[]BankStatement], error) {
	q, err := opts.values()
	if err != nil {
		return nil, Classify(err, "An error occurred while getting bank statements")
	}

	env, err := do[[]wireBankStatement](ctx, s.client, http.MethodGet, "/account/bankstatements", q, nil)
	if err != nil {
		return nil, Classify(err, "An error occurred while getting bank statements")
	}

	return &Response[[]BankStatement]{
		Metadata:   env.metadata(),
		Results:    mapSlice(env.Results, toBankStatement),
		Pagination: env.pagination(),
	}, nil
}
