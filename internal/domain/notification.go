package domain

import "time"

// NotificationType tags the event a notification was emitted for.
type NotificationType string

const (
	NotificationPaymentDue         NotificationType = "payment_due"
	NotificationPaymentReminder    NotificationType = "payment_reminder"
	NotificationPaymentConfirmed   NotificationType = "payment_confirmed"
	NotificationReportUploaded     NotificationType = "report_uploaded"
	NotificationSponsorshipUpdated NotificationType = "sponsorship_updated"
)

// NotificationPriority ranks how urgently a notification should surface.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is a persisted message for one sponsor, or for everyone when
// the sponsor id is empty (broadcast). Rows are only ever mutated by marking
// them read; deletion is an explicit administrator action.
type Notification struct {
	ID        string
	SponsorID SponsorID // zero value = broadcast
	Message   string
	Type      NotificationType
	Priority  NotificationPriority
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
