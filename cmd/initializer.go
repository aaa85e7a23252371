package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"townhubBack/internal/config"
	"townhubBack/internal/handlers"
	"townhubBack/internal/repositories"
	"townhubBack/internal/services"
	"townhubBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	signingKey string

	userRepo  *repositories.UserRepository
	eventRepo *repositories.EventRepository
	banCache  *services.BanCache

	userService *services.UserService
	wsManager   *WebSocketManager

	userHandler            *handlers.UserHandler
	adminHandler           *handlers.AdminHandler
	postHandler            *handlers.PostHandler
	listingHandler         *handlers.ListingHandler
	eventHandler           *handlers.EventHandler
	groupHandler           *handlers.GroupHandler
	complaintHandler       *handlers.ComplaintHandler
	notificationHandler    *handlers.NotificationHandler
	serviceRequestHandler  *handlers.ServiceRequestHandler
	serviceResponseHandler *handlers.ServiceResponseHandler
	serviceFeedbackHandler *handlers.ServiceFeedbackHandler
	serviceMessageHandler  *handlers.ServiceMessageHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	postRepo := repositories.PostRepository{DB: db}
	listingRepo := repositories.ListingRepository{DB: db}
	eventRepo := repositories.EventRepository{DB: db}
	groupRepo := repositories.GroupRepository{DB: db}
	complaintRepo := repositories.ComplaintRepository{DB: db}
	notificationRepo := repositories.NotificationRepository{DB: db}
	requestRepo := repositories.ServiceRequestRepository{DB: db}
	responseRepo := repositories.ServiceResponseRepository{DB: db}
	feedbackRepo := repositories.ServiceFeedbackRepository{DB: db}
	messageRepo := repositories.ServiceMessageRepository{DB: db}

	banCache := &services.BanCache{RDB: rdb}
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	wsManager := NewWebSocketManager()

	// Services
	notificationService := &services.NotificationService{NotificationRepo: &notificationRepo, Client: fcmClient}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		BanCache:     banCache,
		SigningKey:   cfg.JWT.SigningKey,
	}
	postService := &services.PostService{PostRepo: &postRepo}
	listingService := &services.ListingService{ListingRepo: &listingRepo}
	eventService := &services.EventService{EventRepo: &eventRepo}
	groupService := &services.GroupService{GroupRepo: &groupRepo}
	complaintService := &services.ComplaintService{ComplaintRepo: &complaintRepo}
	requestService := &services.ServiceRequestService{RequestRepo: &requestRepo}
	responseService := &services.ServiceResponseService{
		ResponseRepo: &responseRepo,
		RequestRepo:  &requestRepo,
		Notifier:     notificationService,
	}
	feedbackService := &services.ServiceFeedbackService{
		FeedbackRepo: &feedbackRepo,
		ResponseRepo: &responseRepo,
		RequestRepo:  &requestRepo,
	}
	messageService := &services.ServiceMessageService{
		MessageRepo:  &messageRepo,
		RequestRepo:  &requestRepo,
		ResponseRepo: &responseRepo,
		Deliverer:    wsManager,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	adminHandler := &handlers.AdminHandler{UserService: userService}
	postHandler := &handlers.PostHandler{Service: postService}
	listingHandler := &handlers.ListingHandler{Service: listingService}
	eventHandler := &handlers.EventHandler{Service: eventService}
	groupHandler := &handlers.GroupHandler{Service: groupService}
	complaintHandler := &handlers.ComplaintHandler{Service: complaintService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	requestHandler := &handlers.ServiceRequestHandler{Service: requestService}
	responseHandler := &handlers.ServiceResponseHandler{Service: responseService}
	feedbackHandler := &handlers.ServiceFeedbackHandler{Service: feedbackService}
	messageHandler := &handlers.ServiceMessageHandler{Service: messageService}

	return &application{
		errorLog:               errorLog,
		infoLog:                infoLog,
		db:                     db,
		signingKey:             cfg.JWT.SigningKey,
		userRepo:               &userRepo,
		eventRepo:              &eventRepo,
		banCache:               banCache,
		userService:            userService,
		wsManager:              wsManager,
		userHandler:            userHandler,
		adminHandler:           adminHandler,
		postHandler:            postHandler,
		listingHandler:         listingHandler,
		eventHandler:           eventHandler,
		groupHandler:           groupHandler,
		complaintHandler:       complaintHandler,
		notificationHandler:    notificationHandler,
		serviceRequestHandler:  requestHandler,
		serviceResponseHandler: responseHandler,
		serviceFeedbackHandler: feedbackHandler,
		serviceMessageHandler:  messageHandler,
	}
}

// warmBanCache seeds redis with the banned set so the auth middleware can
// reject banned users without hitting MySQL on every request.
func (app *application) warmBanCache(ctx context.Context) {
	ids, err := app.userRepo.GetBannedUserIDs(ctx)
	if err != nil {
		app.errorLog.Printf("ban cache warm failed: %v", err)
		return
	}
	if err := app.banCache.Warm(ctx, ids); err != nil {
		app.errorLog.Printf("ban cache warm failed: %v", err)
		return
	}
	app.infoLog.Printf("ban cache warmed with %d users", len(ids))
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
