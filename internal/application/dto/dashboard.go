package dto

type DashboardStats struct {
	TotalApplications      int   `json:"totalApplications"`
	ApplicationsInProgress int   `json:"applicationsInProgress"`
	ApplicationsSubmitted  int   `json:"applicationsSubmitted"`
	DecisionsReceived      int   `json:"decisionsReceived"`
	UpcomingDeadlines      int   `json:"upcomingDeadlines"`
	RecentNotifications    int64 `json:"recentNotifications"` // Unread notifications

	Reminders ReminderStats `json:"reminders"`
}
