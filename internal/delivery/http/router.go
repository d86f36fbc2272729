package http

import (
	"net/http"

	"clinic-agenda-api/internal/delivery/http/handler"
	"clinic-agenda-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	professionalHandler  *handler.ProfessionalHandler
	patientHandler       *handler.PatientHandler
	specialtyHandler     *handler.SpecialtyHandler
	clinicServiceHandler *handler.ClinicServiceHandler
	availabilityHandler  *handler.AvailabilityHandler
	appointmentHandler   *handler.AppointmentHandler
	dashboardHandler     *handler.DashboardHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	professionalHandler *handler.ProfessionalHandler,
	patientHandler *handler.PatientHandler,
	specialtyHandler *handler.SpecialtyHandler,
	clinicServiceHandler *handler.ClinicServiceHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		professionalHandler:  professionalHandler,
		patientHandler:       patientHandler,
		specialtyHandler:     specialtyHandler,
		clinicServiceHandler: clinicServiceHandler,
		availabilityHandler:  availabilityHandler,
		appointmentHandler:   appointmentHandler,
		dashboardHandler:     dashboardHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalogue: professionals, their availability, specialties and
	// services are browsable without a token so patients can shop around
	// before registering.
	api.HandleFunc("/professionals", r.professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}/availability", r.availabilityHandler.GetDayAvailability).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}/available-dates", r.availabilityHandler.GetAvailableDates).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)
	api.HandleFunc("/services", r.clinicServiceHandler.GetAllServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.clinicServiceHandler.GetService).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/patients/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patient.HandleFunc("/patients/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)
	patient.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)

	// Shared appointment routes (any authenticated role; ownership is
	// enforced in the usecase)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Professional routes (protected - professional only)
	professional := api.PathPrefix("").Subrouter()
	professional.Use(r.authMiddleware.Authenticate)
	professional.Use(middleware.RequireProfessional)
	professional.HandleFunc("/professionals/me", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	professional.HandleFunc("/professionals/me/schedule", r.professionalHandler.UpdateScheduleText).Methods(http.MethodPut)
	professional.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPost)

	// Staff routes (admin or professional)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrProfessional)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Professional management (admin)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}/schedule", r.professionalHandler.UpdateScheduleText).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.DeactivateProfessional).Methods(http.MethodDelete)

	// Patient management (admin)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Specialty management (admin)
	admin.HandleFunc("/specialties", r.specialtyHandler.CreateSpecialty).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.UpdateSpecialty).Methods(http.MethodPut)
	admin.HandleFunc("/specialties/{id}", r.specialtyHandler.DeleteSpecialty).Methods(http.MethodDelete)

	// Service management (admin)
	admin.HandleFunc("/services", r.clinicServiceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.clinicServiceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.clinicServiceHandler.DeleteService).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
