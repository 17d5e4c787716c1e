package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/villamar/stay-enquiries/internal/attachments"
	"github.com/villamar/stay-enquiries/internal/enquiry"
	"github.com/villamar/stay-enquiries/internal/http/handlers"
	imw "github.com/villamar/stay-enquiries/internal/http/middleware"
	"github.com/villamar/stay-enquiries/internal/platform/cache"
	"github.com/villamar/stay-enquiries/internal/relay"
	"github.com/villamar/stay-enquiries/internal/validation"
	"github.com/villamar/stay-enquiries/pkg/config"
	"github.com/villamar/stay-enquiries/pkg/events"
	"github.com/villamar/stay-enquiries/pkg/logger"
	mw "github.com/villamar/stay-enquiries/pkg/middleware"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// Connect to Redis (rate limiting + idempotency cache)
	ctx := context.Background()
	redisClient, err := cache.Connect(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Pick the relay sink
	sink := buildSink(cfg)

	// Initialize pipeline components
	phones, ok := validation.ParsePhonePolicy(cfg.Pipeline.AdditionalGuestPhones)
	if !ok {
		logger.Error("Invalid guest phone policy", "value", cfg.Pipeline.AdditionalGuestPhones)
		os.Exit(1)
	}
	formValidator := validation.New(phones)
	attachmentMgr := attachments.New(cfg.Uploads.MaxDocumentBytes, cfg.Uploads.AllowedTypes)
	store := enquiry.NewStore(cfg.Session.TTL, cfg.Session.SweepInterval, func(s *enquiry.Session) {
		s.Release(attachmentMgr)
		logger.Info("Expired enquiry session evicted", "session_id", s.ID)
	})

	enquiryService := enquiry.NewEnquiryService(store, attachmentMgr, formValidator, sink, eventBus)
	defer enquiryService.Shutdown()

	// Initialize handlers
	h := handlers.New(enquiryService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("enquiries"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Idempotency-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.IdempotencyMiddleware(cache.NewStore(redisClient)))

	limiter := imw.NewRateLimiter(redisClient, imw.RateLimitConfig{
		Requests: 30,
		Window:   time.Minute,
		KeyFunc:  imw.ClientIPKeyFunc,
		SkipFunc: func(req *http.Request) bool { return req.Method == http.MethodGet },
	})
	r.Use(limiter.Middleware())

	// Routes
	r.Mount("/v1", h.Routes())

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down enquiry service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Enquiry service shutdown error", "error", err)
		}
	}()

	logger.Info("Starting enquiry service", "port", cfg.Server.Port, "relay_mode", cfg.Relay.Mode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Enquiry service error", "error", err)
		os.Exit(1)
	}
}

func buildSink(cfg *config.Config) relay.Sink {
	switch cfg.Relay.Mode {
	case "form":
		return relay.NewFormRelay(cfg.Relay.Endpoint, cfg.Relay.Timeout, relay.Options{
			Subject:  cfg.Relay.Subject,
			Template: cfg.Relay.Template,
			ReplyTo:  cfg.Relay.ReplyTo,
		})
	case "mailersend":
		return relay.NewMailerSendRelay(
			cfg.Email.MailerSendKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			cfg.Email.InboxEmail,
			cfg.Relay.Subject,
		)
	default:
		return relay.NewDevRelay()
	}
}
