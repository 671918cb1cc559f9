package handlers

import (
	"net/http"

	"vibewealth/internal/config"
	"vibewealth/internal/metrics"
	"vibewealth/internal/middleware"
	"vibewealth/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gorillaws "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	cfg          config.Config
	log          logrus.FieldLogger
	auth         AuthService
	accounts     AccountService
	transactions TransactionService
	goals        GoalService
	chatbot      Chatbot
	hub          *websocket.Hub
	upgrader     gorillaws.Upgrader
}

func New(cfg config.Config, log logrus.FieldLogger, auth AuthService, accounts AccountService, transactions TransactionService, goals GoalService, chat Chatbot, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:          cfg,
		log:          log,
		auth:         auth,
		accounts:     accounts,
		transactions: transactions,
		goals:        goals,
		chatbot:      chat,
		hub:          hub,
		upgrader:     websocket.NewUpgrader(cfg.Origins()),
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(h.log))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.HTTPMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	acting := middleware.ActingUser(h.cfg.JWTSecret, h.cfg.RequireAuth)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(middleware.Auth(h.cfg.JWTSecret)).Get("/me", h.Me)
	})
	router.Route("/accounts", func(r chi.Router) {
		r.Use(acting)
		r.Post("/", h.CreateAccount)
		r.Get("/", h.ListAccounts)
		r.Get("/self-check", h.SelfCheck)
		r.Put("/{id}", h.UpdateAccount)
		r.Delete("/{id}", h.DeleteAccount)
	})
	router.Route("/transactions", func(r chi.Router) {
		r.Use(acting)
		r.Post("/", h.CreateTransaction)
		r.Get("/", h.ListTransactions)
	})
	router.Route("/goals", func(r chi.Router) {
		r.Use(acting)
		r.Post("/", h.CreateGoal)
		r.Get("/", h.ListGoals)
	})
	router.Post("/chatbot", h.SendChatQuery)
	router.Get("/chatbot", h.ReadChatReply)
	router.Get("/ws/balances", h.WSBalances)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	return router
}
