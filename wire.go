package lemon

// Wire shapes as the API sends them: snake_case keys, string dates,
// pointers for fields the server may omit. Converted to the domain types
// exclusively by the functions in convert.go.

// envelope is the flat response wrapper every endpoint uses. The pagination
// fields are only populated on list endpoints.
type envelope[T any] struct {
	Time   string `json:"time"`
	Mode   string `json:"mode"`
	Status string `json:"status"`

	Results T `json:"results"`

	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	Pages    int     `json:"pages"`
}

// apiErrorBody is the machine-readable part of a non-2xx response body.
type apiErrorBody struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type wireAccount struct {
	CreatedAt             string  `json:"created_at"`
	AccountID             string  `json:"account_id"`
	FirstName             string  `json:"firstname"`
	LastName              *string `json:"lastname"`
	Email                 string  `json:"email"`
	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	BillingAddress        *string `json:"billing_address"`
	BillingEmail          *string `json:"billing_email"`
	BillingName           *string `json:"billing_name"`
	BillingVAT            *string `json:"billing_vat"`
	Mode                  string  `json:"mode"`
	DepositID             *string `json:"deposit_id"`
	ClientID              *string `json:"client_id"`
	AccountNumber         *string `json:"account_number"`
	IBANBrokerage         *string `json:"iban_brokerage"`
	IBANOrigin            *string `json:"iban_origin"`
	BankNameOrigin        *string `json:"bank_name_origin"`
	Balance               int64   `json:"balance"`
	CashToInvest          int64   `json:"cash_to_invest"`
	CashToWithdraw        int64   `json:"cash_to_withdraw"`
	AmountBoughtIntraday  int64   `json:"amount_bought_intraday"`
	AmountSoldIntraday    int64   `json:"amount_sold_intraday"`
	AmountOpenOrders      int64   `json:"amount_open_orders"`
	AmountOpenWithdrawals int64   `json:"amount_open_withdrawals"`
	AmountEstimateTaxes   int64   `json:"amount_estimate_taxes"`
	ApprovedAt            *string `json:"approved_at"`
	TradingPlan           string  `json:"trading_plan"`
	DataPlan              string  `json:"data_plan"`
	Plan                  string  `json:"plan"`
	TaxAllowance          *int64  `json:"tax_allowance"`
	TaxAllowanceStart     *string `json:"tax_allowance_start"`
	TaxAllowanceEnd       *string `json:"tax_allowance_end"`
}

type wireWithdrawal struct {
	ID          string  `json:"id"`
	Amount      int64   `json:"amount"`
	CreatedAt   string  `json:"created_at"`
	Date        *string `json:"date"`
	Idempotency *string `json:"idempotency"`
}

type wireBankStatement struct {
	ID        string  `json:"id"`
	AccountID string  `json:"account_id"`
	Type      string  `json:"type"`
	Date      string  `json:"date"`
	Amount    int64   `json:"amount"`
	ISIN      *string `json:"isin"`
	ISINTitle *string `json:"isin_title"`
	CreatedAt string  `json:"created_at"`
	Quantity  *int    `json:"quantity"`
}

type wireRegulatoryInformation struct {
	CostsEntry                      int64  `json:"costs_entry"`
	CostsEntryPct                   string `json:"costs_entry_pct"`
	CostsRunning                    int64  `json:"costs_running"`
	CostsRunningPct                 string `json:"costs_running_pct"`
	CostsProduct                    int64  `json:"costs_product"`
	CostsProductPct                 string `json:"costs_product_pct"`
	CostsExit                       int64  `json:"costs_exit"`
	CostsExitPct                    string `json:"costs_exit_pct"`
	YieldReductionYear              int64  `json:"yield_reduction_year"`
	YieldReductionYearPct           string `json:"yield_reduction_year_pct"`
	YieldReductionYearFollowing     int64  `json:"yield_reduction_year_following"`
	YieldReductionYearFollowingPct  string `json:"yield_reduction_year_following_pct"`
	YieldReductionYearExit          int64  `json:"yield_reduction_year_exit"`
	YieldReductionYearExitPct       string `json:"yield_reduction_year_exit_pct"`
	EstimatedHoldingDurationYears   string `json:"estimated_holding_duration_years"`
	EstimatedYieldReductionTotal    int64  `json:"estimated_yield_reduction_total"`
	EstimatedYieldReductionTotalPct string `json:"estimated_yield_reduction_total_pct"`
	KIID                            string `json:"KIID"`
	LegalDisclaimer                 string `json:"legal_disclaimer"`
}

// wireOrder carries both the placement fields and, on list/get responses,
// the execution fields. PlaceOrder responses leave the latter at their
// zero values.
type wireOrder struct {
	CreatedAt             string                    `json:"created_at"`
	ID                    string                    `json:"id"`
	Status                string                    `json:"status"`
	RegulatoryInformation wireRegulatoryInformation `json:"regulatory_information"`
	ISIN                  string                    `json:"isin"`
	ExpiresAt             string                    `json:"expires_at"`
	Side                  string                    `json:"side"`
	Quantity              int                       `json:"quantity"`
	StopPrice             *int64                    `json:"stop_price"`
	LimitPrice            *int64                    `json:"limit_price"`
	Venue                 string                    `json:"venue"`
	EstimatedPrice        int64                     `json:"estimated_price"`
	EstimatedPriceTotal   int64                     `json:"estimated_price_total"`
	Notes                 *string                   `json:"notes"`
	Charge                int64                     `json:"charge"`
	ChargeableAt          *string                   `json:"chargeable_at"`
	KeyCreationID         string                    `json:"key_creation_id"`
	Idempotency           *string                   `json:"idempotency"`

	KeyActivationID    *string `json:"key_activation_id"`
	Type               string  `json:"type"`
	ExecutedQuantity   int     `json:"executed_quantity"`
	ExecutedPrice      int64   `json:"executed_price"`
	ExecutedPriceTotal int64   `json:"executed_price_total"`
	ExecutedAt         *string `json:"executed_at"`
	RejectedAt         *string `json:"rejected_at"`
}

type wirePosition struct {
	ISIN                string `json:"isin"`
	ISINTitle           string `json:"isin_title"`
	Quantity            int    `json:"quantity"`
	BuyPriceAvg         int64  `json:"buy_price_avg"`
	EstimatedPriceTotal int64  `json:"estimated_price_total"`
	EstimatedPrice      int64  `json:"estimated_price"`
}

type wireStatement struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	ExternalID *string `json:"external_id"`
	Type       string  `json:"type"`
	Quantity   int     `json:"quantity"`
	ISIN       string  `json:"isin"`
	ISINTitle  string  `json:"isin_title"`
	Date       string  `json:"date"`
	CreatedAt  string  `json:"created_at"`
}

type wirePerformance struct {
	ISIN           string  `json:"isin"`
	ISINTitle      string  `json:"isin_title"`
	Profit         int64   `json:"profit"`
	Loss           int64   `json:"loss"`
	QuantityBought int     `json:"quantity_bought"`
	QuantitySold   int     `json:"quantity_sold"`
	QuantityOpen   int     `json:"quantity_open"`
	OpenedAt       string  `json:"opened_at"`
	ClosedAt       *string `json:"closed_at"`
	Fees           int64   `json:"fees"`
}
