package responses

// DashboardStats is the admin landing-page aggregate. RecentAppointments counts
// appointments created in the last seven days.
type DashboardStats struct {
	TotalDoctors          int64 `json:"totalDoctors"`
	TotalPatients         int64 `json:"totalPatients"`
	TotalAppointments     int64 `json:"totalAppointments"`
	PendingAppointments   int64 `json:"pendingAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	RecentAppointments    int64 `json:"recentAppointments"`
}
