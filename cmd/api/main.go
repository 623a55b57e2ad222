package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/postage"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	membershipRepo := database.NewMembershipRepository(db)
	contactRepo := database.NewContactRepository(db)
	jobRepo := database.NewDispatchJobRepository(db)

	// 2. Gateways e Adapters
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	emailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@liguemedicina.com"),
	)
	postageClient := postage.NewClient(os.Getenv("POSTAGE_URL"), os.Getenv("POSTAGE_API_KEY"))
	transport := mail.NewTransport(emailSender, postageClient)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Worker (consome outcomes e registra no histórico de contato)
	worker := queue.NewWorker(rabbitMQ.Ch, leadRepo, contactRepo)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, membershipRepo, contactRepo)
	trackLeadUC := usecase.NewTrackLeadUseCase(leadRepo, membershipRepo)
	logContactUC := usecase.NewLogContactUseCase(leadRepo, contactRepo)
	sendMessageUC := usecase.NewSendMessageUseCase(jobRepo, transport, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, deleteLeadUC, leadRepo)
	savedHandler := handlers.NewMembershipHandler(entity.CollectionSaved, trackLeadUC, membershipRepo)
	prospectionHandler := handlers.NewMembershipHandler(entity.CollectionProspection, trackLeadUC, membershipRepo)
	contactHandler := handlers.NewContactHandler(logContactUC, contactRepo)
	dispatchHandler := handlers.NewDispatchHandler(sendMessageUC, jobRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/leads", leadHandler.List)
	r.Post("/leads", leadHandler.Create)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	r.Get("/saved-leads", savedHandler.List)
	r.Post("/saved-leads", savedHandler.Add)
	r.Delete("/saved-leads/{leadId}", savedHandler.Remove)

	r.Get("/prospection-leads", prospectionHandler.List)
	r.Post("/prospection-leads", prospectionHandler.Add)
	r.Delete("/prospection-leads/{leadId}", prospectionHandler.Remove)

	r.Get("/contact-history", contactHandler.List)
	r.Get("/contact-history/{leadId}", contactHandler.ListForLead)
	r.Post("/contact-history", contactHandler.Create)

	r.Post("/send-email", dispatchHandler.SendEmail)
	r.Post("/send-mail", dispatchHandler.SendMail)
	r.Get("/dispatch-jobs/{id}", dispatchHandler.Get)
	r.Post("/dispatch-jobs/{id}/attempt", dispatchHandler.Attempt)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Server LigueLeads rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
