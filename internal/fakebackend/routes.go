package fakebackend

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/hostel-admin/mailtemplates"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/roomselection"
	"github.com/jrsteele09/hostel-admin/students"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteCSRFCookie, ChainMiddleware(s.CSRFCookieHandler(), s.LoggingMiddleware, s.CorsMiddleware))

	admin := s.RequireAuth(roleAdmin, roleSuperAdmin)
	student := s.RequireAuth(roleStudent)
	anyone := s.RequireAuth()

	// AUTH
	s.api("POST "+RouteAdminLogin, s.LoginHandler(roleAdmin))
	s.api("POST "+RouteAdminLogout, s.LogoutHandler(), admin)
	s.api("GET "+RouteAdminProfile, s.ProfileHandler(), admin)
	s.api("PUT "+RouteAdminProfile, s.UpdateProfileHandler(), admin)
	s.api("POST "+RouteAdminChangePassword, s.ChangePasswordHandler(), admin)

	s.api("POST "+RouteStudentLogin, s.LoginHandler(roleStudent))
	s.api("POST "+RouteStudentLogout, s.LogoutHandler(), student)
	s.api("GET "+RouteStudentProfile, s.ProfileHandler(), student)
	s.api("PUT "+RouteStudentProfile, s.UpdateProfileHandler(), student)
	s.api("POST "+RouteStudentChangePassword, s.ChangePasswordHandler(), student)

	// ADMIN
	s.api("GET "+RouteAdminApplications, s.ApplicationsListHandler(), admin)
	s.api("PATCH "+RouteAdminApplicationApprove, s.ApplicationReviewHandler(true), admin)
	s.api("PATCH "+RouteAdminApplicationReject, s.ApplicationReviewHandler(false), admin)
	s.api("GET "+RouteAdminPayments, s.PaymentsListHandler(), admin)
	s.api("GET "+RouteAdminHostels, s.HostelsListHandler(), admin)
	s.api("GET "+RouteAdminHostelRooms, s.HostelRoomsHandler(), admin)
	s.api("GET "+RouteAdminMaintenance, nestedList(s, "requests", func(d *dataset) []maintenance.Request { return d.maintenance }), admin)
	s.api("GET "+RouteAdminStudents, nestedList(s, "students", func(d *dataset) []students.Student { return d.students }), admin)
	s.api("GET "+RouteAdminRoomSelection, nestedList(s, "sessions", func(d *dataset) []roomselection.Session { return d.sessions }), admin)
	s.api("GET "+RouteAdminMailTemplates, nestedList(s, "templates", func(d *dataset) []mailtemplates.Template { return d.templates }), admin)
	s.api("GET "+RouteAdminReportsOverview, s.ReportsOverviewHandler(), admin)
	s.api("GET "+RouteAdminReportsOccupancy, s.ReportsOccupancyHandler(), admin)

	// NOTIFICATIONS
	s.api("GET "+RouteNotifications, s.NotificationsListHandler(), anyone)
	s.api("PATCH "+RouteNotificationRead, s.NotificationReadHandler(), anyone)
	s.api("PATCH "+RouteNotificationsReadAll, s.NotificationsReadAllHandler(), anyone)
	s.api("GET "+RouteNotificationsUnreadCount, s.NotificationsUnreadCountHandler(), anyone)

	// STUDENT
	s.api("GET "+RouteStudentSelfProfile, s.StudentSelfProfileHandler(), student)
	s.api("GET "+RouteStudentSelfApplication, s.StudentSelfApplicationHandler(), student)
	s.api("GET "+RouteStudentSelfPayments, s.StudentSelfPaymentsHandler(), student)
	s.api("GET "+RouteStudentSelfNotifications, s.StudentSelfNotificationsHandler(), student)
	s.api("GET "+RouteStudentSelfMaintenance, s.StudentSelfMaintenanceHandler(), student)
}

// api registers a route under APIPrefix behind the API middleware chain.
func (s *Server) api(pattern string, handler http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	s.RegisterRouteFunc(method+" "+APIPrefix+path, ChainMiddleware(handler, s.APIMiddleware(mw...)...))
}
