package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))

	// Posts
	mux.Post("/posts", authMiddleware.ThenFunc(app.postHandler.CreatePost))
	mux.Get("/posts", standardMiddleware.ThenFunc(app.postHandler.GetPosts))
	mux.Get("/posts/:id", standardMiddleware.ThenFunc(app.postHandler.GetPostByID))
	mux.Put("/posts/:id", authMiddleware.ThenFunc(app.postHandler.UpdatePost))
	mux.Del("/posts/:id", authMiddleware.ThenFunc(app.postHandler.DeletePost))
	mux.Post("/posts/:id/comments", authMiddleware.ThenFunc(app.postHandler.CreateComment))
	mux.Get("/posts/:id/comments", standardMiddleware.ThenFunc(app.postHandler.GetComments))
	mux.Del("/comments/:id", authMiddleware.ThenFunc(app.postHandler.DeleteComment))

	// Listings
	mux.Post("/listings", authMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Get("/listings", standardMiddleware.ThenFunc(app.listingHandler.GetListings))
	mux.Get("/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Put("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.DeleteListing))
	mux.Post("/listings/:id/image", authMiddleware.ThenFunc(app.listingHandler.UploadImage))

	// Events
	mux.Post("/events", authMiddleware.ThenFunc(app.eventHandler.CreateEvent))
	mux.Get("/events", standardMiddleware.ThenFunc(app.eventHandler.GetUpcoming))
	mux.Get("/events/:id", standardMiddleware.ThenFunc(app.eventHandler.GetEventByID))
	mux.Put("/events/:id", authMiddleware.ThenFunc(app.eventHandler.UpdateEvent))
	mux.Del("/events/:id", authMiddleware.ThenFunc(app.eventHandler.DeleteEvent))
	mux.Post("/events/:id/attend", authMiddleware.ThenFunc(app.eventHandler.Attend))
	mux.Del("/events/:id/attend", authMiddleware.ThenFunc(app.eventHandler.Unattend))
	mux.Get("/events/:id/attendees", standardMiddleware.ThenFunc(app.eventHandler.GetAttendees))

	// Groups
	mux.Post("/groups", authMiddleware.ThenFunc(app.groupHandler.CreateGroup))
	mux.Get("/groups", standardMiddleware.ThenFunc(app.groupHandler.GetGroups))
	mux.Get("/groups/:id", standardMiddleware.ThenFunc(app.groupHandler.GetGroupByID))
	mux.Put("/groups/:id", authMiddleware.ThenFunc(app.groupHandler.UpdateGroup))
	mux.Del("/groups/:id", authMiddleware.ThenFunc(app.groupHandler.DeleteGroup))
	mux.Post("/groups/:id/join", authMiddleware.ThenFunc(app.groupHandler.Join))
	mux.Del("/groups/:id/leave", authMiddleware.ThenFunc(app.groupHandler.Leave))
	mux.Get("/groups/:id/members", authMiddleware.ThenFunc(app.groupHandler.GetMembers))

	// Service requests and their lifecycle
	mux.Post("/requests", authMiddleware.ThenFunc(app.serviceRequestHandler.CreateRequest))
	mux.Get("/requests", authMiddleware.ThenFunc(app.serviceRequestHandler.GetRequests))
	mux.Get("/requests/user/:user_id", authMiddleware.ThenFunc(app.serviceRequestHandler.GetRequestsByUser))
	mux.Get("/requests/:id", authMiddleware.ThenFunc(app.serviceRequestHandler.GetRequestByID))
	mux.Post("/requests/:id/responses", authMiddleware.ThenFunc(app.serviceResponseHandler.SubmitResponse))
	mux.Get("/requests/:id/responses", authMiddleware.ThenFunc(app.serviceResponseHandler.GetResponsesForRequest))
	mux.Add("PATCH", "/responses/:id", authMiddleware.ThenFunc(app.serviceResponseHandler.UpdateStatus))
	mux.Post("/responses/:id/feedback", authMiddleware.ThenFunc(app.serviceFeedbackHandler.SubmitFeedback))
	mux.Get("/responses/:id/feedback", authMiddleware.ThenFunc(app.serviceFeedbackHandler.GetFeedbackForResponse))

	// Request thread messaging
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Post("/messages", authMiddleware.ThenFunc(app.serviceMessageHandler.SendMessage))
	mux.Get("/messages/request/:request_id", authMiddleware.ThenFunc(app.serviceMessageHandler.GetThread))
	mux.Put("/messages/:id/read", authMiddleware.ThenFunc(app.serviceMessageHandler.MarkRead))

	// Notifications
	mux.Get("/notifications", authMiddleware.ThenFunc(app.notificationHandler.GetNotifications))
	mux.Put("/notifications/:id/read", authMiddleware.ThenFunc(app.notificationHandler.MarkRead))
	mux.Post("/notifications/token", authMiddleware.ThenFunc(app.notificationHandler.RegisterToken))
	mux.Del("/notifications/token", authMiddleware.ThenFunc(app.notificationHandler.DeleteToken))

	// Complaints
	mux.Post("/complaints", authMiddleware.ThenFunc(app.complaintHandler.CreateComplaint))
	mux.Get("/complaints", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetAllComplaints))
	mux.Del("/complaints/:id", adminAuthMiddleware.ThenFunc(app.complaintHandler.DeleteComplaint))

	// Admin
	mux.Get("/admin/users", adminAuthMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Post("/admin/users/:id/ban", adminAuthMiddleware.ThenFunc(app.adminHandler.BanUser))
	mux.Post("/admin/users/:id/unban", adminAuthMiddleware.ThenFunc(app.adminHandler.UnbanUser))
	mux.Del("/admin/users/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteUser))

	return standardMiddleware.Then(mux)
}
