package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"maryjoy/internal/domain"
)

type notificationDTO struct {
	ID        string `json:"id"`
	SponsorID string `json:"sponsor_id,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	IsRead    bool   `json:"is_read"`
	ReadAt    string `json:"read_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

func notificationToDTO(n *domain.Notification) notificationDTO {
	dto := notificationDTO{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if !n.SponsorID.IsZero() {
		dto.SponsorID = n.SponsorID.String()
	}
	if n.ReadAt != nil {
		dto.ReadAt = n.ReadAt.Format(time.RFC3339)
	}
	return dto
}

// NotificationsList returns notifications for one sponsor when the
// cluster/specific query pair is present, otherwise the global feed.
func (a *App) NotificationsList(w http.ResponseWriter, r *http.Request) {
	var sponsorID domain.SponsorID
	q := r.URL.Query()
	if q.Get("cluster") != "" || q.Get("specific") != "" {
		var err error
		sponsorID, err = domain.NewSponsorID(q.Get("cluster"), q.Get("specific"))
		if err != nil {
			a.respondDomainErr(w, r, err, "sponsor id")
			return
		}
	}
	unreadOnly := q.Get("unread") == "true"
	limit := queryInt(r, "limit", 100)

	notifications, err := a.Notifications.List(r.Context(), sponsorID, unreadOnly, limit)
	if err != nil {
		a.respondDomainErr(w, r, err, "list notifications")
		return
	}
	items := make([]notificationDTO, 0, len(notifications))
	for i := range notifications {
		items = append(items, notificationToDTO(&notifications[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) NotificationsMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Notifications.MarkRead(r.Context(), id, time.Now()); err != nil {
		a.respondDomainErr(w, r, err, "notification")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"id": id, "status": "read"})
}

func (a *App) NotificationsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Notifications.Delete(r.Context(), id); err != nil {
		a.respondDomainErr(w, r, err, "notification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type broadcastRequest struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// NotificationsBroadcast creates a notification with no sponsor attached,
// visible to every portal user.
func (a *App) NotificationsBroadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Message == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "message is required")
		return
	}
	typ := domain.NotificationType(req.Type)
	if typ == "" {
		typ = domain.NotificationSponsorshipUpdated
	}
	priority := domain.NotificationPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}
	if err := a.Notifier.Broadcast(r.Context(), req.Message, typ, priority); err != nil {
		a.respondDomainErr(w, r, err, "broadcast")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"status": "sent"})
}
