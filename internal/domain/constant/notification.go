package constant

type NotificationType string

const (
	NotificationDeadlineReminder NotificationType = "deadline_reminder"
	NotificationStatusUpdate     NotificationType = "status_update"
	NotificationDecision         NotificationType = "decision_notification"
	NotificationSystemAlert      NotificationType = "system_alert"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationDeadlineReminder, NotificationStatusUpdate, NotificationDecision, NotificationSystemAlert:
		return true
	}
	return false
}
