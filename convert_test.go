package lemon

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2022-02-02T16:20:29Z", time.Date(2022, 2, 2, 16, 20, 29, 0, time.UTC)},
		{"2022-02-02", time.Date(2022, 2, 2, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"invalid", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseTime(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("parseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimePtr(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := parseTimePtr(nil); got != nil {
			t.Errorf("parseTimePtr(nil) = %v, want nil", got)
		}
	})

	t.Run("present value parses", func(t *testing.T) {
		s := "2022-02-02T16:20:29Z"
		got := parseTimePtr(&s)
		if got == nil {
			t.Fatal("parseTimePtr returned nil for present value")
		}
		if want := time.Date(2022, 2, 2, 16, 20, 29, 0, time.UTC); !got.Equal(want) {
			t.Errorf("parseTimePtr(%q) = %v, want %v", s, got, want)
		}
	})
}

func TestToAccount(t *testing.T) {
	lastName := "Doe"
	approvedAt := "2021-11-19T07:40:12Z"
	w := wireAccount{
		CreatedAt:    "2021-10-12T10:29:49Z",
		AccountID:    "acc_pyNQNll99hQbXMCS0dRzHyKQCRKYHpy3zg",
		FirstName:    "Jane",
		LastName:     &lastName,
		Email:        "jane@example.com",
		Mode:         "paper",
		Balance:      500000,
		CashToInvest: 250000,
		ApprovedAt:   &approvedAt,
		TradingPlan:  "go",
		DataPlan:     "go",
		Plan:         "go",
	}

	a := toAccount(w)

	// Monetary amounts pass through untouched, no scaling.
	if a.Balance != 500000 {
		t.Errorf("Balance = %d, want 500000", a.Balance)
	}
	if a.CashToInvest != 250000 {
		t.Errorf("CashToInvest = %d, want 250000", a.CashToInvest)
	}

	if a.Mode != ModePaper {
		t.Errorf("Mode = %q, want %q", a.Mode, ModePaper)
	}
	if a.LastName == nil || *a.LastName != "Doe" {
		t.Errorf("LastName = %v, want Doe", a.LastName)
	}
	if a.ApprovedAt == nil || !a.ApprovedAt.Equal(time.Date(2021, 11, 19, 7, 40, 12, 0, time.UTC)) {
		t.Errorf("ApprovedAt = %v", a.ApprovedAt)
	}

	// Absent optionals stay absent: nil pointers, not zero values.
	if a.Phone != nil {
		t.Errorf("Phone = %v, want nil", a.Phone)
	}
	if a.TaxAllowance != nil {
		t.Errorf("TaxAllowance = %v, want nil", a.TaxAllowance)
	}
	if a.TaxAllowanceStart != nil {
		t.Errorf("TaxAllowanceStart = %v, want nil", a.TaxAllowanceStart)
	}
}

func testWireOrder() wireOrder {
	return wireOrder{
		CreatedAt: "2021-11-15T13:58:19Z",
		ID:        "ord_pyPGQhhllz0mypLHw2nfM67Gm9PmgTYq0J",
		Status:    "inactive",
		RegulatoryInformation: wireRegulatoryInformation{
			CostsEntry:                      20000,
			CostsEntryPct:                   "0.30%",
			YieldReductionYear:              20000,
			YieldReductionYearPct:           "0.30%",
			EstimatedHoldingDurationYears:   "5",
			EstimatedYieldReductionTotal:    20000,
			EstimatedYieldReductionTotalPct: "0.30%",
			KIID:                            "text",
			LegalDisclaimer:                 "text",
		},
		ISIN:                "US0378331005",
		ExpiresAt:           "2021-11-19T00:00:00Z",
		Side:                "buy",
		Quantity:            10,
		Venue:               "xmun",
		EstimatedPrice:      2965000,
		EstimatedPriceTotal: 29650000,
		Charge:              0,
		KeyCreationID:       "apk_pyJKKbbDDNympXsVwZzPp2nBHqCm8jc8mj",
	}
}

func TestToOrder(t *testing.T) {
	w := testWireOrder()
	o := toOrder(w)

	if o.ID != w.ID {
		t.Errorf("ID = %q, want %q", o.ID, w.ID)
	}
	if o.Status != OrderInactive {
		t.Errorf("Status = %q, want %q", o.Status, OrderInactive)
	}
	if o.Side != SideBuy {
		t.Errorf("Side = %q, want %q", o.Side, SideBuy)
	}
	if o.EstimatedPrice != 2965000 {
		t.Errorf("EstimatedPrice = %d, want 2965000", o.EstimatedPrice)
	}
	if o.RegulatoryInformation.CostsEntryPct != "0.30%" {
		t.Errorf("CostsEntryPct = %q", o.RegulatoryInformation.CostsEntryPct)
	}
	if o.RegulatoryInformation.KIID != "text" {
		t.Errorf("KIID = %q", o.RegulatoryInformation.KIID)
	}

	// stop_price was absent on the wire: stays absent, never zero.
	if o.StopPrice != nil {
		t.Errorf("StopPrice = %v, want nil", o.StopPrice)
	}
	if o.LimitPrice != nil {
		t.Errorf("LimitPrice = %v, want nil", o.LimitPrice)
	}
	if o.Notes != nil {
		t.Errorf("Notes = %v, want nil", o.Notes)
	}
	if o.ExecutedAt != nil {
		t.Errorf("ExecutedAt = %v, want nil", o.ExecutedAt)
	}
	if o.RejectedAt != nil {
		t.Errorf("RejectedAt = %v, want nil", o.RejectedAt)
	}
}

func TestToOrderExecutionFields(t *testing.T) {
	w := testWireOrder()
	keyActivation := "dashboard"
	executedAt := "2021-11-15T14:01:00Z"
	w.Status = "executed"
	w.Type = "limit"
	w.KeyActivationID = &keyActivation
	w.ExecutedQuantity = 10
	w.ExecutedPrice = 2964000
	w.ExecutedPriceTotal = 29640000
	w.ExecutedAt = &executedAt

	o := toOrder(w)

	if o.Type != OrderTypeLimit {
		t.Errorf("Type = %q, want %q", o.Type, OrderTypeLimit)
	}
	if o.KeyActivationID == nil || *o.KeyActivationID != "dashboard" {
		t.Errorf("KeyActivationID = %v", o.KeyActivationID)
	}
	if o.ExecutedQuantity != 10 {
		t.Errorf("ExecutedQuantity = %d, want 10", o.ExecutedQuantity)
	}
	if o.ExecutedAt == nil || !o.ExecutedAt.Equal(time.Date(2021, 11, 15, 14, 1, 0, 0, time.UTC)) {
		t.Errorf("ExecutedAt = %v", o.ExecutedAt)
	}
	if o.RejectedAt != nil {
		t.Errorf("RejectedAt = %v, want nil", o.RejectedAt)
	}
}

// TestToOrderDeterminism: the same wire object always produces a
// structurally equal domain object.
func TestToOrderDeterminism(t *testing.T) {
	w := testWireOrder()
	stopPrice := int64(1000000)
	notes := "my notes"
	w.StopPrice = &stopPrice
	w.Notes = &notes

	first := toOrder(w)
	second := toOrder(w)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("toOrder not deterministic:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestToWithdrawal(t *testing.T) {
	w := wireWithdrawal{
		ID:        "wtd_pyQTPbbLLMNBQTM0mzkK7Kl24JT46sjVv",
		Amount:    1000000,
		CreatedAt: "2021-12-10T09:29:49Z",
	}

	wd := toWithdrawal(w)

	if wd.Amount != 1000000 {
		t.Errorf("Amount = %d, want 1000000", wd.Amount)
	}
	if wd.Date != nil {
		t.Errorf("Date = %v, want nil while unsettled", wd.Date)
	}
	if wd.Idempotency != nil {
		t.Errorf("Idempotency = %v, want nil", wd.Idempotency)
	}

	t.Run("settled", func(t *testing.T) {
		date := "2021-12-12"
		w.Date = &date
		wd := toWithdrawal(w)
		if wd.Date == nil || !wd.Date.Equal(time.Date(2021, 12, 12, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Date = %v", wd.Date)
		}
	})
}

func TestToPerformance(t *testing.T) {
	w := wirePerformance{
		ISIN:           "US0378331005",
		ISINTitle:      "APPLE INC.",
		Profit:         89400,
		Loss:           0,
		QuantityBought: 10,
		QuantitySold:   10,
		QuantityOpen:   0,
		OpenedAt:       "2023-01-05T09:00:00Z",
		Fees:           20000,
	}

	p := toPerformance(w)

	if p.Profit != 89400 {
		t.Errorf("Profit = %d, want 89400", p.Profit)
	}
	if p.ClosedAt != nil {
		t.Errorf("ClosedAt = %v, want nil while open", p.ClosedAt)
	}
}

func TestEnvelopeMetadata(t *testing.T) {
	env := envelope[struct{}]{
		Time:   "2022-02-02T16:20:29Z",
		Mode:   "paper",
		Status: "ok",
	}

	md := env.metadata()

	if !md.Time.Equal(time.Date(2022, 2, 2, 16, 20, 29, 0, time.UTC)) {
		t.Errorf("Time = %v", md.Time)
	}
	if md.Mode != ModePaper {
		t.Errorf("Mode = %q, want %q", md.Mode, ModePaper)
	}
	if md.Status != StatusOK {
		t.Errorf("Status = %q, want %q", md.Status, StatusOK)
	}
}

// TestEnvelopePagination: cursor fields surface verbatim, no transformation.
func TestEnvelopePagination(t *testing.T) {
	next := "cursor123"
	env := envelope[struct{}]{
		Previous: nil,
		Next:     &next,
		Total:    42,
		Page:     1,
		Pages:    5,
	}

	p := env.pagination()

	if p.Previous != nil {
		t.Errorf("Previous = %v, want nil", p.Previous)
	}
	if p.Next == nil || *p.Next != "cursor123" {
		t.Errorf("Next = %v, want cursor123", p.Next)
	}
	if p.Total != 42 || p.Page != 1 || p.Pages != 5 {
		t.Errorf("Total/Page/Pages = %d/%d/%d, want 42/1/5", p.Total, p.Page, p.Pages)
	}
}

func TestMapSlice(t *testing.T) {
	got := mapSlice([]wirePosition{
		{ISIN: "US0378331005", Quantity: 2},
		{ISIN: "US88160R1014", Quantity: 1},
	}, toPosition)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ISIN != "US0378331005" || got[1].ISIN != "US88160R1014" {
		t.Errorf("order not preserved: %+v", got)
	}

	t.Run("empty input", func(t *testing.T) {
		got := mapSlice(nil, toPosition)
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}
