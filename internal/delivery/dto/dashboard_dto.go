package dto

// DashboardResponse aggregates the counters shown to clinic staff.
type DashboardResponse struct {
	TotalPatients       int64 `json:"total_patients"`
	TotalProfessionals  int64 `json:"total_professionals"`
	AppointmentsToday   int64 `json:"appointments_today"`
	PendingAppointments int64 `json:"pending_appointments"`
}
