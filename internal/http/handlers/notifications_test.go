package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maryjoy/internal/domain"
	"maryjoy/internal/notify"
	"maryjoy/internal/reconcile"
)

func TestNotificationsBroadcast_CreatesSponsorlessRow(t *testing.T) {
	inbox := &fakeNotifications{}
	app := &App{Notifications: inbox, Notifier: notify.NewService(inbox)}

	body := `{"message":"Office closed for Meskel","priority":"low"}`
	rr := httptest.NewRecorder()
	app.NotificationsBroadcast(rr, httptest.NewRequest("POST", "/v1/notifications/broadcast", strings.NewReader(body)))

	if rr.Code != 201 {
		t.Fatalf("got status %d, want 201, body %s", rr.Code, rr.Body.String())
	}
	if len(inbox.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(inbox.rows))
	}
	if !inbox.rows[0].SponsorID.IsZero() {
		t.Fatalf("broadcast must not target a sponsor, got %q", inbox.rows[0].SponsorID.String())
	}
	if inbox.rows[0].Priority != domain.PriorityLow {
		t.Fatalf("priority: got %q, want low", inbox.rows[0].Priority)
	}
}

func TestNotificationsBroadcast_RequiresMessage(t *testing.T) {
	inbox := &fakeNotifications{}
	app := &App{Notifications: inbox, Notifier: notify.NewService(inbox)}

	rr := httptest.NewRecorder()
	app.NotificationsBroadcast(rr, httptest.NewRequest("POST", "/v1/notifications/broadcast", strings.NewReader(`{"message":""}`)))

	if rr.Code != 400 {
		t.Fatalf("got status %d, want 400", rr.Code)
	}
	if len(inbox.rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(inbox.rows))
	}
}

func TestNotificationsList_FiltersBySponsorQuery(t *testing.T) {
	sponsorID := domain.SponsorID{Cluster: "02", Specific: "0150"}
	now := time.Now()
	inbox := &fakeNotifications{rows: []domain.Notification{
		{ID: "n-1", SponsorID: sponsorID, Message: "due", Type: domain.NotificationPaymentDue, Priority: domain.PriorityHigh, CreatedAt: now},
		{ID: "n-2", SponsorID: domain.SponsorID{Cluster: "03", Specific: "0007"}, Message: "other", Type: domain.NotificationPaymentDue, Priority: domain.PriorityHigh, CreatedAt: now},
		{ID: "n-3", Message: "everyone", Type: domain.NotificationSponsorshipUpdated, Priority: domain.PriorityNormal, CreatedAt: now},
	}}
	app := &App{Notifications: inbox}

	rr := httptest.NewRecorder()
	app.NotificationsList(rr, httptest.NewRequest("GET", "/v1/notifications?cluster=02&specific=0150", nil))

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	var payload struct {
		Items []notificationDTO `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].ID != "n-1" {
		t.Fatalf("expected only n-1, got %+v", payload.Items)
	}
}

type stubSweeper struct {
	result reconcile.Result
	err    error
	runs   int
}

func (s *stubSweeper) Run(context.Context) (reconcile.Result, error) {
	s.runs++
	return s.result, s.err
}

func TestReconcileRun_ReportsSweepCounters(t *testing.T) {
	sweeper := &stubSweeper{result: reconcile.Result{Checked: 12, Emitted: 3, Skipped: 2, Failed: 1}}
	app := &App{Sweeper: sweeper}

	rr := httptest.NewRecorder()
	app.ReconcileRun(rr, httptest.NewRequest("POST", "/v1/reconcile/run", nil))

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if sweeper.runs != 1 {
		t.Fatalf("expected 1 run, got %d", sweeper.runs)
	}
	var counters map[string]int
	if err := json.NewDecoder(rr.Body).Decode(&counters); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if counters["checked"] != 12 || counters["emitted"] != 3 {
		t.Fatalf("unexpected counters: %v", counters)
	}
}
