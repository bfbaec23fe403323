package dashboard

// Overview bundles the headline numbers the admin landing page shows:
// today's attendance picture plus the payroll state.
type Overview struct {
	TotalEmployees  int    `json:"total_employees"`
	PresentToday    int    `json:"present_today"`
	AbsentToday     int    `json:"absent_today"`
	LateToday       int    `json:"late_today"`
	OnLeaveToday    int    `json:"on_leave_today"`
	PunchesToday    int    `json:"punches_today"`
	PendingLeaves   int    `json:"pending_leaves"`
	ActiveRuns      int    `json:"active_runs"`
	LastRunNetTotal string `json:"last_run_net_total"`

	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// ActivityEntry is one audit-trail line on the dashboard.
type ActivityEntry struct {
	Username  string `json:"username"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}
