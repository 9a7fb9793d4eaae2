package lemon

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestListPositions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/positions" {
			t.Errorf("path = %q, want /positions", r.URL.Path)
		}
		if got := r.URL.Query().Get("isin"); got != "US0378331005" {
			t.Errorf("isin = %q", got)
		}
		w.Write([]byte(`{
			"time": "2022-02-02T16:20:29Z",
			"mode": "paper",
			"status": "ok",
			"results": [{
				"isin": "US0378331005",
				"isin_title": "APPLE INC.",
				"quantity": 2,
				"buy_price_avg": 2965000,
				"estimated_price_total": 5930000,
				"estimated_price": 2965000
			}],
			"previous": null,
			"next": null,
			"total": 1,
			"page": 1,
			"pages": 1
		}`))
	})

	res, err := c.Positions.List(context.Background(), &ListPositionsOptions{ISIN: "US0378331005"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(res.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(res.Results))
	}
	p := res.Results[0]
	if p.ISINTitle != "APPLE INC." {
		t.Errorf("ISINTitle = %q", p.ISINTitle)
	}
	if p.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", p.Quantity)
	}
	if p.BuyPriceAvg != 2965000 {
		t.Errorf("BuyPriceAvg = %d, want 2965000 unscaled", p.BuyPriceAvg)
	}
	if res.Pagination == nil || res.Pagination.Total != 1 {
		t.Errorf("Pagination = %+v", res.Pagination)
	}

	t.Run("nil options", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				t.Errorf("query = %q, want empty", r.URL.RawQuery)
			}
			w.Write([]byte(`{"time": "2022-02-02T16:20:29Z", "mode": "paper", "status": "ok", "results": [], "total": 0, "page": 1, "pages": 0}`))
		})

		res, err := c.Positions.List(context.Background(), nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(res.Results) != 0 {
			t.Errorf("len(Results) = %d, want 0", len(res.Results))
		}
	})
}

func TestListPositionStatements(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/positions/statements" {
			t.Errorf("path = %q, want /positions/statements", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "order_buy" {
			t.Errorf("type = %q, want order_buy", got)
		}
		w.Write([]byte(`{
			"time": "2022-02-02T16:20:29Z",
			"mode": "paper",
			"status": "ok",
			"results": [{
				"id": "pst_pyGTQbbDDJbhc7tHnDvmWrLRMMNg2JXqkk",
				"order_id": "ord_pyQTPbbFFQ6B4QcrcQCvPnVPLjRjVzCHfD",
				"external_id": null,
				"type": "order_buy",
				"quantity": 1,
				"isin": "US0378331005",
				"isin_title": "APPLE INC.",
				"date": "2021-12-10",
				"created_at": "2021-12-10T07:57:12.628Z"
			}],
			"previous": null,
			"next": null,
			"total": 1,
			"page": 1,
			"pages": 1
		}`))
	})

	res, err := c.Positions.ListStatements(context.Background(), &ListStatementsOptions{Type: StatementOrderBuy})
	if err != nil {
		t.Fatalf("ListStatements failed: %v", err)
	}

	if len(res.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(res.Results))
	}
	st := res.Results[0]
	if st.Type != StatementOrderBuy {
		t.Errorf("Type = %q, want order_buy", st.Type)
	}
	if st.ExternalID != nil {
		t.Errorf("ExternalID = %v, want nil", st.ExternalID)
	}
	if !st.Date.Equal(time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", st.Date)
	}
}

func TestListPerformance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/positions/performance" {
			t.Errorf("path = %q, want /positions/performance", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("from"); got != "2021-11-01" {
			t.Errorf("from = %q", got)
		}
		if got := q.Get("sorting"); got != "asc" {
			t.Errorf("sorting = %q, want asc", got)
		}
		w.Write([]byte(`{
			"time": "2022-02-02T16:20:29Z",
			"mode": "paper",
			"status": "ok",
			"results": [{
				"isin": "US0378331005",
				"isin_title": "APPLE INC.",
				"profit": 89400,
				"loss": 0,
				"quantity_bought": 1,
				"quantity_sold": 1,
				"quantity_open": 0,
				"opened_at": "2021-12-10T07:57:12.628Z",
				"closed_at": null,
				"fees": 20000
			}],
			"previous": null,
			"next": null,
			"total": 1,
			"page": 1,
			"pages": 1
		}`))
	})

	res, err := c.Positions.ListPerformance(context.Background(), &ListPerformanceOptions{
		From:    "2021-11-01",
		Sorting: OldestFirst,
	})
	if err != nil {
		t.Fatalf("ListPerformance failed: %v", err)
	}

	if len(res.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(res.Results))
	}
	perf := res.Results[0]
	if perf.Profit != 89400 {
		t.Errorf("Profit = %d, want 89400 unscaled", perf.Profit)
	}
	if perf.ClosedAt != nil {
		t.Errorf("ClosedAt = %v, want nil", perf.ClosedAt)
	}

	t.Run("invalid from fails before any network call", func(t *testing.T) {
		var hits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		})

		_, err := c.Positions.ListPerformance(context.Background(), &ListPerformanceOptions{From: "yesterday"})
		if !IsKind(err, KindBadRequest) {
			t.Errorf("err = %v, want bad_request", err)
		}
		if err.Error() != "Date format for `from` is invalid" {
			t.Errorf("message = %q", err.Error())
		}
		if hits.Load() != 0 {
			t.Errorf("server hits = %d, want 0", hits.Load())
		}
	})

	t.Run("newest first maps to desc", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("sorting"); got != "desc" {
				t.Errorf("sorting = %q, want desc", got)
			}
			w.Write([]byte(`{"time": "2022-02-02T16:20:29Z", "mode": "paper", "status": "ok", "results": [], "total": 0, "page": 1, "pages": 0}`))
		})

		_, err := c.Positions.ListPerformance(context.Background(), &ListPerformanceOptions{Sorting: NewestFirst})
		if err != nil {
			t.Fatalf("ListPerformance failed: %v", err)
		}
	})
}
