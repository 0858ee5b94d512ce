package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/bytewerk/leadboard/internal/infra/database"
	"github.com/bytewerk/leadboard/internal/infra/http/handlers"
	"github.com/bytewerk/leadboard/internal/infra/http/middleware"
	"github.com/bytewerk/leadboard/internal/infra/integration/ga4"
	"github.com/bytewerk/leadboard/internal/infra/mail"
	"github.com/bytewerk/leadboard/internal/infra/queue"
	"github.com/bytewerk/leadboard/internal/logging"
	"github.com/bytewerk/leadboard/internal/usecase"
)

func main() {
	godotenv.Load()
	logging.Setup()

	ctx := context.Background()

	// 1. Database
	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logging.Fatal("database connection failed", "error", err)
	}
	defer db.Close()

	leadRepo := database.NewLeadRepository(db)

	// 2. RabbitMQ (optional: without it the API still serves, minus intake
	// and status events)
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.QueueProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			logging.Fatal("rabbitmq connection failed", "error", err)
		}
		defer rabbitMQ.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	} else {
		slog.Warn("RABBITMQ_URL not set, intake worker and status events disabled")
	}

	// 3. Mail (optional)
	var mailer usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailer = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("LEAD_ALERT_TO"),
		)
	}

	// 4. UseCases
	leadService := usecase.NewLeadService(leadRepo, producer, mailer)

	var analyticsService *usecase.AnalyticsService
	ga4Configured := false
	if credsFile, propertyID := os.Getenv("GA4_CREDENTIALS_FILE"), os.Getenv("GA4_PROPERTY_ID"); credsFile != "" && propertyID != "" {
		creds, err := os.ReadFile(credsFile)
		if err != nil {
			logging.Fatal("ga4 credentials unreadable", "file", credsFile, "error", err)
		}
		ga4Client, err := ga4.NewClient(ctx, creds, propertyID)
		if err != nil {
			logging.Fatal("ga4 client init failed", "error", err)
		}
		analyticsService = usecase.NewAnalyticsService(ga4Client)
		ga4Configured = true
	} else {
		slog.Warn("GA4 not configured, analytics endpoint will report unavailable")
	}

	// 5. Intake worker
	if rabbitMQ != nil {
		worker := queue.NewWorker(rabbitMQ.Ch, leadService)
		go worker.Start(queue.IntakeQueue)
	}

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn, ga4Configured)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{envOr("ADMIN_ORIGIN", "http://localhost:3000")},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Post("/bulk-delete", leadHandler.BulkDelete)
		r.Post("/export", leadHandler.Export)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
	})
	r.Get("/analytics", analyticsHandler.Overview)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	slog.Info("leadboard API listening", "port", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logging.Fatal("server stopped", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
