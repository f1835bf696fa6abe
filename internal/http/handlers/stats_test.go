package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"maryjoy/internal/sqlinline"
)

type statsTestSQL struct{}

func (statsTestSQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (statsTestSQL) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	if query != sqlinline.QStatsSummary {
		return NewSimpleRow(func(...any) error {
			return fmt.Errorf("unexpected query: %s", query)
		})
	}
	values := []int64{42, 3150000, 40, 7, 5, 12, 4}
	return NewSimpleRow(func(dest ...any) error {
		if len(dest) != len(values) {
			return fmt.Errorf("unexpected scan args: %d", len(dest))
		}
		for i, v := range values {
			p, ok := dest[i].(*int64)
			if !ok {
				return fmt.Errorf("dest %d is %T, want *int64", i, dest[i])
			}
			*p = v
		}
		return nil
	})
}

func (statsTestSQL) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func TestStatsSummary_MapsAllCounters(t *testing.T) {
	app := &App{SQL: statsTestSQL{}}

	rr := httptest.NewRecorder()
	app.StatsSummary(rr, httptest.NewRequest("GET", "/v1/stats/summary", nil))

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	var s statsSummary
	if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if s.ActiveSponsors != 42 {
		t.Fatalf("active sponsors: got %d, want 42", s.ActiveSponsors)
	}
	if s.MonthlyPledgedInt != 3150000 {
		t.Fatalf("monthly pledged: got %d, want 3150000", s.MonthlyPledgedInt)
	}
	if s.SponsorsOverdue30d != 4 {
		t.Fatalf("overdue sponsors: got %d, want 4", s.SponsorsOverdue30d)
	}
}
