package lemon

import "time"

// Conventions:
//   - Money: int64 in 1/10000 of the major currency unit, passed through
//     from the API without scaling or rounding
//   - Optional fields: pointers, nil when the API omitted the field
//   - Timestamps: time.Time parsed from the API's ISO 8601 strings

// Mode says which trading environment actually served a request.
type Mode string

const (
	ModePaper Mode = "paper"
	ModeLive  Mode = "live"
)

// RequestStatus is the API's own verdict on a request.
type RequestStatus string

const (
	StatusOK    RequestStatus = "ok"
	StatusError RequestStatus = "error"
)

// Plan is an account's subscription tier.
type Plan string

const (
	PlanGo       Plan = "go"
	PlanInvestor Plan = "investor"
	PlanTrader   Plan = "trader"
	PlanB2B      Plan = "b2b"
)

// OrderSide is the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderStatus is an order's lifecycle state.
type OrderStatus string

const (
	OrderInactive  OrderStatus = "inactive"
	OrderActivated OrderStatus = "activated"
	OrderOpen      OrderStatus = "open"
	OrderCanceling OrderStatus = "canceling"
	OrderCanceled  OrderStatus = "canceled"
	OrderExecuted  OrderStatus = "executed"
	OrderExpired   OrderStatus = "expired"
)

// OrderType distinguishes market, stop, limit and stop-limit orders.
type OrderType string

const (
	OrderTypeMarket    OrderType = "market"
	OrderTypeStop      OrderType = "stop"
	OrderTypeLimit     OrderType = "limit"
	OrderTypeStopLimit OrderType = "stop_limit"
)

// BankStatementType is the category of a bank statement entry.
type BankStatementType string

const (
	BankStatementPayIn       BankStatementType = "pay_in"
	BankStatementPayOut      BankStatementType = "pay_out"
	BankStatementOrderBuy    BankStatementType = "order_buy"
	BankStatementOrderSell   BankStatementType = "order_sell"
	BankStatementEODBalance  BankStatementType = "eod_balance"
	BankStatementDividend    BankStatementType = "dividend"
	BankStatementTaxRefunded BankStatementType = "tax_refunded"
)

// StatementType is the category of a position ledger statement.
type StatementType string

const (
	StatementOrderBuy  StatementType = "order_buy"
	StatementOrderSell StatementType = "order_sell"
	StatementSplit     StatementType = "split"
	StatementImport    StatementType = "import"
	StatementSnx       StatementType = "snx"
)

// SortDirection orders date-sorted list endpoints.
type SortDirection string

const (
	OldestFirst SortDirection = "OLDEST_FIRST"
	NewestFirst SortDirection = "NEWEST_FIRST"
)

// Metadata is attached to every API response.
type Metadata struct {
	Time   time.Time     // Server time the request was processed
	Mode   Mode          // Environment that served the request
	Status RequestStatus // "ok" or "error"
}

// Pagination is attached to list responses only.
type Pagination struct {
	Previous *string // URL of the previous page, nil on the first
	Next     *string // URL of the next page, nil on the last
	Total    int     // Total number of items
	Page     int     // Current page number
	Pages    int     // Total number of pages
}

// Response wraps a decoded API result with its envelope.
type Response[T any] struct {
	Metadata   Metadata
	Results    T
	Pagination *Pagination // nil on single-resource endpoints
}

// Account is a point-in-time snapshot of the brokerage account. It is never
// mutated locally; call AccountService.Get again for fresh numbers.
type Account struct {
	CreatedAt      time.Time
	AccountID      string
	FirstName      string
	LastName       *string
	Email          string
	Phone          *string
	Address        *string
	BillingAddress *string
	BillingEmail   *string
	BillingName    *string
	BillingVAT     *string
	Mode           Mode
	DepositID      *string
	ClientID       *string
	AccountNumber  *string
	IBANBrokerage  *string
	IBANOrigin     *string
	BankNameOrigin *string

	Balance               int64
	CashToInvest          int64
	CashToWithdraw        int64
	AmountBoughtIntraday  int64
	AmountSoldIntraday    int64
	AmountOpenOrders      int64
	AmountOpenWithdrawals int64
	AmountEstimateTaxes   int64

	ApprovedAt        *time.Time
	TradingPlan       Plan
	DataPlan          Plan
	Plan              Plan
	TaxAllowance      *int64
	TaxAllowanceStart *time.Time
	TaxAllowanceEnd   *time.Time
}

// Withdrawal is a single withdrawal from the brokerage account.
type Withdrawal struct {
	ID          string
	Amount      int64
	CreatedAt   time.Time
	Date        *time.Time // Settlement date, nil while unsettled
	Idempotency *string
}

// BankStatement is one booking on the account's bank ledger.
type BankStatement struct {
	ID        string
	AccountID string
	Type      BankStatementType
	Date      time.Time
	Amount    int64
	ISIN      *string
	ISINTitle *string
	CreatedAt time.Time
	Quantity  *int
}

// RegulatoryInformation is the cost disclosure block attached to every order.
type RegulatoryInformation struct {
	CostsEntry                      int64
	CostsEntryPct                   string
	CostsRunning                    int64
	CostsRunningPct                 string
	CostsProduct                    int64
	CostsProductPct                 string
	CostsExit                       int64
	CostsExitPct                    string
	YieldReductionYear              int64
	YieldReductionYearPct           string
	YieldReductionYearFollowing     int64
	YieldReductionYearFollowingPct  string
	YieldReductionYearExit          int64
	YieldReductionYearExitPct       string
	EstimatedHoldingDurationYears   string
	EstimatedYieldReductionTotal    int64
	EstimatedYieldReductionTotalPct string
	KIID                            string
	LegalDisclaimer                 string
}

// Order is a single order in any lifecycle state. The execution fields are
// only populated once the API reports them (listed or fetched orders); an
// order fresh from PlaceOrder carries the placement fields only.
type Order struct {
	CreatedAt             time.Time
	ID                    string
	Status                OrderStatus
	RegulatoryInformation RegulatoryInformation
	ISIN                  string
	ExpiresAt             time.Time
	Side                  OrderSide
	Quantity              int
	StopPrice             *int64
	LimitPrice            *int64
	Venue                 string
	EstimatedPrice        int64
	EstimatedPriceTotal   int64
	Notes                 *string
	Charge                int64
	ChargeableAt          *time.Time
	KeyCreationID         string
	Idempotency           *string

	// Execution fields.
	KeyActivationID    *string // API key that activated the order, or "dashboard"/"mobile"
	Type               OrderType
	ExecutedQuantity   int
	ExecutedPrice      int64
	ExecutedPriceTotal int64
	ExecutedAt         *time.Time
	RejectedAt         *time.Time
}

// Position is a currently held instrument.
type Position struct {
	ISIN                string
	ISINTitle           string
	Quantity            int
	BuyPriceAvg         int64
	EstimatedPriceTotal int64
	EstimatedPrice      int64
}

// Statement is one entry on the position ledger.
type Statement struct {
	ID         string
	OrderID    string
	ExternalID *string
	Type       StatementType
	Quantity   int
	ISIN       string
	ISINTitle  string
	Date       time.Time
	CreatedAt  time.Time
}

// Performance is the realized and unrealized P&L for one instrument.
type Performance struct {
	ISIN           string
	ISINTitle      string
	Profit         int64
	Loss           int64
	QuantityBought int
	QuantitySold   int
	QuantityOpen   int
	OpenedAt       time.Time
	ClosedAt       *time.Time // nil while the position is still open
	Fees           int64
}
