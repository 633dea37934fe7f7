package server

import (
	"net/http"

	"github.com/uniguide/webapp/session"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())

	// LOGIN / SIGNUP
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginPageUIHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginSubmissionHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteSignup, s.SignupGetHandler())
	s.RegisterRouteFunc("POST "+RouteSignup, s.SignupPostHandler())
	s.RegisterRouteFunc("GET "+RouteVerifyOTP, s.VerifyOTPGetHandler())
	s.RegisterRouteFunc("POST "+RouteVerifyOTP, s.VerifyOTPPostHandler())
	s.RegisterRouteFunc("GET "+RouteOAuthStart, s.OAuthStartHandler())
	s.RegisterRouteFunc("GET "+RouteCallback, s.OAuthCallbackHandler())

	// PASSWORD
	s.RegisterRouteFunc("GET "+RouteForgotPassword, s.ForgotPasswordGetHandler())
	s.RegisterRouteFunc("POST "+RouteForgotPassword, s.ForgotPasswordPostHandler())
	s.RegisterRouteFunc("GET "+RouteResetPassword, s.ResetPasswordGetHandler())
	s.RegisterRouteFunc("POST "+RouteResetPassword, s.ResetPasswordPostHandler())
	s.protected("POST "+RouteUpdatePassword, s.UpdatePasswordHandler())

	// Protected routes compose RequireSession exactly once per navigation;
	// no protected content renders without a session (fail closed).
	s.protected("GET "+RouteDashboard, s.DashboardHandler())
	s.protected("GET "+RouteNotifications, s.NotificationsHandler())
	s.protected("POST "+RouteNotificationRead, s.NotificationReadHandler())
	s.protected("POST "+RouteNotificationUnread, s.NotificationUnreadHandler())
	s.protected("POST "+RouteNotificationDelete, s.NotificationDeleteHandler())

	// University directory is public to browse; adding entries is admin only.
	s.RegisterRouteHandler("GET "+RouteUniversities, ChainMiddleware(s.UniversitiesHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteUniversityDetail, ChainMiddleware(s.UniversityDetailHandler(), s.HTMLMiddleWare()...))
	s.roleGated("POST "+RouteUniversityAdd, s.UniversityAddHandler(), session.RoleAdmin)

	// Mentors
	s.protected("GET "+RouteMentors, s.MentorsHandler())
	s.protected("GET "+RouteMentorDetail, s.MentorDetailHandler())
	s.roleGated("POST "+RouteMentorConnect, s.MentorConnectHandler(), session.RoleStudent)
	s.roleGated("POST "+RouteMentorReview, s.MentorReviewHandler(), session.RoleStudent)
	s.roleGated("GET "+RouteMentorProfile, s.MentorProfileGetHandler(), session.RoleMentor)
	s.roleGated("POST "+RouteMentorProfile, s.MentorProfilePostHandler(), session.RoleMentor)

	// Student portal
	s.roleGated("GET "+RouteStudentProfile, s.StudentProfileGetHandler(), session.RoleStudent)
	s.roleGated("POST "+RouteStudentProfile, s.StudentProfilePostHandler(), session.RoleStudent)

	// Connections: mentors decide, students may withdraw their own requests.
	s.roleGated("POST "+RouteConnectionApprove, s.ConnectionApproveHandler(), session.RoleMentor)
	s.roleGated("POST "+RouteConnectionReject, s.ConnectionRejectHandler(), session.RoleMentor)
	s.roleGated("POST "+RouteConnectionDelete, s.ConnectionDeleteHandler(), session.RoleStudent)

	// Affiliations: mentors apply, admins decide.
	s.roleGated("POST "+RouteAffiliationApply, s.AffiliationApplyHandler(), session.RoleMentor)
	s.roleGated("POST "+RouteAffiliationApprove, s.AffiliationApproveHandler(), session.RoleAdmin)
	s.roleGated("POST "+RouteAffiliationReject, s.AffiliationRejectHandler(), session.RoleAdmin)

	// Discussion rooms
	s.protected("GET "+RouteRooms, s.RoomsHandler())
	s.protected("POST "+RouteRooms, s.RoomCreateHandler())
	s.protected("POST "+RouteRoomJoin, s.RoomJoinHandler())
	s.roleGated("POST "+RouteRoomApprove, s.RoomApproveHandler(), session.RoleAdmin)
	s.roleGated("POST "+RouteRoomReject, s.RoomRejectHandler(), session.RoleAdmin)

	// Payments & fee negotiations
	s.roleGated("GET "+RoutePayment, s.PaymentPageHandler(), session.RoleStudent)
	s.roleGated("POST "+RoutePaymentConfirm, s.PaymentConfirmHandler(), session.RoleStudent)
	s.roleGated("GET "+RouteNegotiations, s.NegotiationsHandler(), session.RoleMentor)
	s.roleGated("POST "+RouteNegotiationRespond, s.NegotiationRespondHandler(), session.RoleMentor)

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveStaticHandler(), s.CacheMiddleware))
}

// protected registers a route behind the session guard.
func (s *Server) protected(pattern string, handler http.HandlerFunc) {
	s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.HTMLMiddleWare(s.RequireSession())...))
}

// roleGated registers a route behind the session guard plus a role check.
func (s *Server) roleGated(pattern string, handler http.HandlerFunc, roles ...session.Role) {
	s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.HTMLMiddleWare(s.RequireSession(), s.RequireRole(roles...))...))
}
