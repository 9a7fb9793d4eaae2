package lemon

import "time"

// parseTime parses the API's date strings. Full ISO 8601 timestamps and
// bare YYYY-MM-DD dates both occur on the wire. Returns the zero time for
// empty or unparseable input.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// parseTimePtr maps an absent wire date to nil without ever hitting the
// parser. Present dates parse like parseTime.
func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}

// metadata derives the envelope metadata. One rule for every endpoint.
func (e *envelope[T]) metadata() Metadata {
	return Metadata{
		Time:   parseTime(e.Time),
		Mode:   Mode(e.Mode),
		Status: RequestStatus(e.Status),
	}
}

// pagination extracts the cursor fields verbatim. Only list endpoints call
// this; single-resource responses never carry pagination.
func (e *envelope[T]) pagination() *Pagination {
	return &Pagination{
		Previous: e.Previous,
		Next:     e.Next,
		Total:    e.Total,
		Page:     e.Page,
		Pages:    e.Pages,
	}
}

// mapSlice converts each wire element with fn, preserving order.
func mapSlice[W, D any](ws []W, fn func(W) D) []D {
	ds := make([]D, 0, len(ws))
	for _, w := range ws {
		ds = append(ds, fn(w))
	}
	return ds
}

func toAccount(w wireAccount) Account {
	return Account{
		CreatedAt:             parseTime(w.CreatedAt),
		AccountID:             w.AccountID,
		FirstName:             w.FirstName,
		LastName:              w.LastName,
		Email:                 w.Email,
		Phone:                 w.Phone,
		Address:               w.Address,
		BillingAddress:        w.BillingAddress,
		BillingEmail:          w.BillingEmail,
		BillingName:           w.BillingName,
		BillingVAT:            w.BillingVAT,
		Mode:                  Mode(w.Mode),
		DepositID:             w.DepositID,
		ClientID:              w.ClientID,
		AccountNumber:         w.AccountNumber,
		IBANBrokerage:         w.IBANBrokerage,
		IBANOrigin:            w.IBANOrigin,
		BankNameOrigin:        w.BankNameOrigin,
		Balance:               w.Balance,
		CashToInvest:          w.CashToInvest,
		CashToWithdraw:        w.CashToWithdraw,
		AmountBoughtIntraday:  w.AmountBoughtIntraday,
		AmountSoldIntraday:    w.AmountSoldIntraday,
		AmountOpenOrders:      w.AmountOpenOrders,
		AmountOpenWithdrawals: w.AmountOpenWithdrawals,
		AmountEstimateTaxes:   w.AmountEstimateTaxes,
		ApprovedAt:            parseTimePtr(w.ApprovedAt),
		TradingPlan:           Plan(w.TradingPlan),
		DataPlan:              Plan(w.DataPlan),
		Plan:                  Plan(w.Plan),
		TaxAllowance:          w.TaxAllowance,
		TaxAllowanceStart:     parseTimePtr(w.TaxAllowanceStart),
		TaxAllowanceEnd:       parseTimePtr(w.TaxAllowanceEnd),
	}
}

func toWithdrawal(w wireWithdrawal) Withdrawal {
	return Withdrawal{
		ID:          w.ID,
		Amount:      w.Amount,
		CreatedAt:   parseTime(w.CreatedAt),
		Date:        parseTimePtr(w.Date),
		Idempotency: w.Idempotency,
	}
}

func toBankStatement(w wireBankStatement) BankStatement {
	return BankStatement{
		ID:        w.ID,
		AccountID: w.AccountID,
		Type:      BankStatementType(w.Type),
		Date:      parseTime(w.Date),
		Amount:    w.Amount,
		ISIN:      w.ISIN,
		ISINTitle: w.ISINTitle,
		CreatedAt: parseTime(w.CreatedAt),
		Quantity:  w.Quantity,
	}
}

func toRegulatoryInformation(w wireRegulatoryInformation) RegulatoryInformation {
	return RegulatoryInformation{
		CostsEntry:                      w.CostsEntry,
		CostsEntryPct:                   w.CostsEntryPct,
		CostsRunning:                    w.CostsRunning,
		CostsRunningPct:                 w.CostsRunningPct,
		CostsProduct:                    w.CostsProduct,
		CostsProductPct:                 w.CostsProductPct,
		CostsExit:                       w.CostsExit,
		CostsExitPct:                    w.CostsExitPct,
		YieldReductionYear:              w.YieldReductionYear,
		YieldReductionYearPct:           w.YieldReductionYearPct,
		YieldReductionYearFollowing:     w.YieldReductionYearFollowing,
		YieldReductionYearFollowingPct:  w.YieldReductionYearFollowingPct,
		YieldReductionYearExit:          w.YieldReductionYearExit,
		YieldReductionYearExitPct:       w.YieldReductionYearExitPct,
		EstimatedHoldingDurationYears:   w.EstimatedHoldingDurationYears,
		EstimatedYieldReductionTotal:    w.EstimatedYieldReductionTotal,
		EstimatedYieldReductionTotalPct: w.EstimatedYieldReductionTotalPct,
		KIID:                            w.KIID,
		LegalDisclaimer:                 w.LegalDisclaimer,
	}
}

func toOrder(w wireOrder) Order {
	return Order{
		CreatedAt:             parseTime(w.CreatedAt),
		ID:                    w.ID,
		Status:                OrderStatus(w.Status),
		RegulatoryInformation: toRegulatoryInformation(w.RegulatoryInformation),
		ISIN:                  w.ISIN,
		ExpiresAt:             parseTime(w.ExpiresAt),
		Side:                  OrderSide(w.Side),
		Quantity:              w.Quantity,
		StopPrice:             w.StopPrice,
		LimitPrice:            w.LimitPrice,
		Venue:                 w.Venue,
		EstimatedPrice:        w.EstimatedPrice,
		EstimatedPriceTotal:   w.EstimatedPriceTotal,
		Notes:                 w.Notes,
		Charge:                w.Charge,
		ChargeableAt:          parseTimePtr(w.ChargeableAt),
		KeyCreationID:         w.KeyCreationID,
		Idempotency:           w.Idempotency,
		KeyActivationID:       w.KeyActivationID,
		Type:                  OrderType(w.Type),
		ExecutedQuantity:      w.ExecutedQuantity,
		ExecutedPrice:         w.ExecutedPrice,
		ExecutedPriceTotal:    w.ExecutedPriceTotal,
		ExecutedAt:            parseTimePtr(w.ExecutedAt),
		RejectedAt:            parseTimePtr(w.RejectedAt),
	}
}

func toPosition(w wirePosition) Position {
	return Position{
		ISIN:                w.ISIN,
		ISINTitle:           w.ISINTitle,
		Quantity:            w.Quantity,
		BuyPriceAvg:         w.BuyPriceAvg,
		EstimatedPriceTotal: w.EstimatedPriceTotal,
		EstimatedPrice:      w.EstimatedPrice,
	}
}

func toStatement(w wireStatement) Statement {
	return Statement{
		ID:         w.ID,
		OrderID:    w.OrderID,
		ExternalID: w.ExternalID,
		Type:       StatementType(w.Type),
		Quantity:   w.Quantity,
		ISIN:       w.ISIN,
		ISINTitle:  w.ISINTitle,
		Date:       parseTime(w.Date),
		CreatedAt:  parseTime(w.CreatedAt),
	}
}

func toPerformance(w wirePerformance) Performance {
	return Performance{
		ISIN:           w.ISIN,
		ISINTitle:      w.ISINTitle,
		Profit:         w.Profit,
		Loss:           w.Loss,
		QuantityBought: w.QuantityBought,
		QuantitySold:   w.QuantitySold,
		QuantityOpen:   w.QuantityOpen,
		OpenedAt:       parseTime(w.OpenedAt),
		ClosedAt:       parseTimePtr(w.ClosedAt),
		Fees:           w.Fees,
	}
}
