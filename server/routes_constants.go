package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteLogin      = "/login"
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"
	RouteOAuthStart = "/auth/oauth"
	RouteCallback   = "/callback"

	// Auth Routes - Signup & Verification
	RouteSignup    = "/signup"
	RouteVerifyOTP = "/auth/verify-otp"

	// Auth Routes - Password Management
	RouteForgotPassword = "/auth/forgot-password"
	RouteResetPassword  = "/auth/reset-password"
	RouteUpdatePassword = "/auth/update-password"

	// Dashboard (role-gated entry point)
	RouteDashboard = "/dashboard"

	// Universities
	RouteUniversities     = "/universities"
	RouteUniversityDetail = "/universities/{id}"
	RouteUniversityAdd    = "/admin/universities"

	// Mentors
	RouteMentors       = "/mentors"
	RouteMentorDetail  = "/mentor/{id}"
	RouteMentorConnect = "/mentor/{id}/connect"
	RouteMentorReview  = "/mentor/{id}/review"
	RouteMentorProfile = "/mentor/profile"

	// Student portal
	RouteStudentProfile = "/student/profile"

	// Connections & Affiliations
	RouteConnectionApprove  = "/connections/{id}/approve"
	RouteConnectionReject   = "/connections/{id}/reject"
	RouteConnectionDelete   = "/connections/{id}/delete"
	RouteAffiliationApply   = "/affiliations/apply"
	RouteAffiliationApprove = "/affiliations/{id}/approve"
	RouteAffiliationReject  = "/affiliations/{id}/reject"

	// Discussion rooms
	RouteRooms       = "/rooms"
	RouteRoomJoin    = "/rooms/{id}/join"
	RouteRoomApprove = "/rooms/{id}/approve"
	RouteRoomReject  = "/rooms/{id}/reject"

	// Notifications
	RouteNotifications      = "/notifications"
	RouteNotificationRead   = "/notifications/{id}/read"
	RouteNotificationUnread = "/notifications/{id}/unread"
	RouteNotificationDelete = "/notifications/{id}/delete"

	// Payments & Negotiations
	RoutePayment            = "/payments/{connectionID}"
	RoutePaymentConfirm     = "/payments/{intentID}/confirm"
	RouteNegotiations       = "/negotiations"
	RouteNegotiationRespond = "/negotiations/{id}/respond"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
