package lemon

import (
	"net/url"
	"regexp"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// dateLayout is the format the API expects for date-valued query and body
// parameters.
const dateLayout = "2006-01-02"

// relativeExpiry matches the relative form of expires_at, e.g. "14D".
var relativeExpiry = regexp.MustCompile(`^\d{1,2}[dD]$`)

// FormatDate renders t the way date-valued API parameters expect
// (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// NewIdempotencyKey returns a fresh key for the Idempotency field of
// PlaceOrderOptions and CreateWithdrawalOptions.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// isValidDate accepts the API's two date-string forms: YYYY-MM-DD and a
// full ISO 8601 timestamp.
func isValidDate(s string) bool {
	if _, err := time.Parse(dateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func sortValue(d SortDirection) string {
	switch d {
	case OldestFirst:
		return "asc"
	case NewestFirst:
		return "desc"
	}
	return ""
}

// CreateWithdrawalOptions configures Account.CreateWithdrawal. Amount is in
// 1/10000 of the major currency unit.
type CreateWithdrawalOptions struct {
	Amount      int64  `json:"amount"`
	PIN         string `json:"pin,omitempty"`
	Idempotency string `json:"idempotency,omitempty"`
}

// ListWithdrawalsOptions configures Account.ListWithdrawals.
type ListWithdrawalsOptions struct {
	Page  int `url:"page,omitempty"`
	Limit int `url:"limit,omitempty"`
}

func (o *ListWithdrawalsOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	return query.Values(o)
}

// ListBankStatementsOptions configures Account.ListBankStatements.
// FromBeginning is preferred over From; dates use the YYYY-MM-DD format.
type ListBankStatementsOptions struct {
	Type          BankStatementType `url:"type,omitempty"`
	FromBeginning bool              `url:"-"`
	From          string            `url:"from,omitempty"`
	To            string            `url:"to,omitempty"`
	Sorting       SortDirection     `url:"-"`
	Page          int               `url:"page,omitempty"`
	Limit         int               `url:"limit,omitempty"`
}

func (o *ListBankStatementsOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	if o.From != "" && !o.FromBeginning && !isValidDate(o.From) {
		return nil, newError(KindBadRequest, "Date format for `from` is invalid")
	}
	if o.To != "" && !isValidDate(o.To) {
		return nil, newError(KindBadRequest, "Date format for `to` is invalid")
	}

	v, err := query.Values(o)
	if err != nil {
		return nil, err
	}
	if o.FromBeginning {
		v.Set("from", "beginning")
	}
	if s := sortValue(o.Sorting); s != "" {
		v.Set("sorting", s)
	}
	return v, nil
}

// PlaceOrderOptions configures Orders.Place. ExpiresAt accepts an absolute
// date (YYYY-MM-DD, at most 30 days out) or a day count like "14D"; it is
// only optional for market orders. StopPrice and LimitPrice are in 1/10000
// of the major currency unit.
type PlaceOrderOptions struct {
	ISIN        string    `json:"isin"`
	ExpiresAt   string    `json:"expires_at,omitempty"`
	Side        OrderSide `json:"side"`
	Quantity    int       `json:"quantity"`
	Venue       string    `json:"venue,omitempty"`
	StopPrice   int64     `json:"stop_price,omitempty"`
	LimitPrice  int64     `json:"limit_price,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Idempotency string    `json:"idempotency,omitempty"`
}

// ActivateOrderOptions configures Orders.Activate.
type ActivateOrderOptions struct {
	PIN string `json:"pin"`
}

// ListOrdersOptions configures Orders.List.
type ListOrdersOptions struct {
	From          string        `url:"from,omitempty"`
	To            string        `url:"to,omitempty"`
	ISIN          string        `url:"isin,omitempty"`
	Side          OrderSide     `url:"side,omitempty"`
	Status        []OrderStatus `url:"status,comma,omitempty"`
	Type          OrderType     `url:"type,omitempty"`
	KeyCreationID string        `url:"key_creation_id,omitempty"`
	Page          int           `url:"page,omitempty"`
	Limit         int           `url:"limit,omitempty"`
}

func (o *ListOrdersOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	return query.Values(o)
}

// ListPositionsOptions configures Positions.List.
type ListPositionsOptions struct {
	ISIN  string `url:"isin,omitempty"`
	Page  int    `url:"page,omitempty"`
	Limit int    `url:"limit,omitempty"`
}

func (o *ListPositionsOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	return query.Values(o)
}

// ListStatementsOptions configures Positions.ListStatements.
type ListStatementsOptions struct {
	Type  StatementType `url:"type,omitempty"`
	Page  int           `url:"page,omitempty"`
	Limit int           `url:"limit,omitempty"`
}

func (o *ListStatementsOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	return query.Values(o)
}

// ListPerformanceOptions configures Positions.ListPerformance. Dates use
// the YYYY-MM-DD format.
type ListPerformanceOptions struct {
	ISIN    string        `url:"isin,omitempty"`
	From    string        `url:"from,omitempty"`
	To      string        `url:"to,omitempty"`
	Sorting SortDirection `url:"-"`
	Page    int           `url:"page,omitempty"`
	Limit   int           `url:"limit,omitempty"`
}

func (o *ListPerformanceOptions) values() (url.Values, error) {
	if o == nil {
		return nil, nil
	}
	if o.From != "" && !isValidDate(o.From) {
		return nil, newError(KindBadRequest, "Date format for `from` is invalid")
	}
	if o.To != "" && !isValidDate(o.To) {
		return nil, newError(KindBadRequest, "Date format for `to` is invalid")
	}

	v, err := query.Values(o)
	if err != nil {
		return nil, err
	}
	if s := sortValue(o.Sorting); s != "" {
		v.Set("sorting", s)
	}
	return v, nil
}
