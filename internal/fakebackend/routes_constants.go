package fakebackend

// Route path constants
const (
	APIPrefix = "/api/v1"

	RouteCSRFCookie = "/sanctum/csrf-cookie"

	// Auth routes, relative to APIPrefix
	RouteAdminLogin          = "/admin/auth/login"
	RouteAdminLogout         = "/admin/auth/logout"
	RouteAdminProfile        = "/admin/auth/profile"
	RouteAdminChangePassword = "/admin/auth/change-password"

	RouteStudentLogin          = "/student/auth/login"
	RouteStudentLogout         = "/student/auth/logout"
	RouteStudentProfile        = "/student/auth/profile"
	RouteStudentChangePassword = "/student/auth/change-password"

	// Admin data routes
	RouteAdminApplications       = "/admin/applications"
	RouteAdminApplicationApprove = "/admin/applications/{id}/approve"
	RouteAdminApplicationReject  = "/admin/applications/{id}/reject"
	RouteAdminPayments           = "/admin/payments"
	RouteAdminHostels            = "/admin/hostels"
	RouteAdminHostelRooms        = "/admin/hostels/{id}/rooms"
	RouteAdminMaintenance        = "/admin/maintenance"
	RouteAdminStudents           = "/admin/students"
	RouteAdminRoomSelection      = "/admin/room-selection/sessions"
	RouteAdminMailTemplates      = "/admin/mail-templates"
	RouteAdminReportsOverview    = "/admin/reports/overview"
	RouteAdminReportsOccupancy   = "/admin/reports/occupancy"

	// Shared
	RouteNotifications            = "/notifications"
	RouteNotificationRead         = "/notifications/{id}/read"
	RouteNotificationsReadAll     = "/notifications/read-all"
	RouteNotificationsUnreadCount = "/notifications/unread-count"

	// Student self-service
	RouteStudentSelfProfile       = "/student/profile"
	RouteStudentSelfApplication   = "/student/application"
	RouteStudentSelfPayments      = "/student/payments"
	RouteStudentSelfNotifications = "/student/notifications"
	RouteStudentSelfMaintenance   = "/student/maintenance"
)
