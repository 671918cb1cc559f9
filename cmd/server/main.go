package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibewealth/internal/chatbot"
	"vibewealth/internal/config"
	"vibewealth/internal/db"
	"vibewealth/internal/handlers"
	"vibewealth/internal/logging"
	"vibewealth/internal/services"
	"vibewealth/internal/store"
	"vibewealth/internal/store/memory"
	"vibewealth/internal/websocket"

	"github.com/sirupsen/logrus"
)

type repositories struct {
	users        services.UserRepository
	accounts     services.AccountRepository
	transactions services.TransactionRepository
	goals        services.GoalRepository
}

func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.AppEnv, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	repos, closeDB := openRepositories(cfg, log)
	defer closeDB()

	hub := websocket.NewHub()
	authService := services.NewAuthService(repos.users, repos.accounts, cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := services.NewAccountService(repos.users, repos.accounts, repos.transactions, hub, log)
	transactionService := services.NewTransactionService(repos.users, repos.accounts, repos.transactions, hub, log)
	goalService := services.NewGoalService(repos.users, repos.goals)
	chat := chatbot.NewService(chatProvider(cfg, log), log)

	handler := handlers.New(cfg, log, authService, accountService, transactionService, goalService, chat, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("vibewealth API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown error")
		return
	}
	log.Info("server stopped")
}

// openRepositories uses PostgreSQL when DATABASE_URL is set and the
// in-memory store otherwise.
func openRepositories(cfg config.Config, log *logrus.Logger) (repositories, func()) {
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			log.Fatal("DATABASE_URL is required in production")
		}
		log.Warn("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		return repositories{
			users:        mem.Users,
			accounts:     mem.Accounts,
			transactions: mem.Transactions,
			goals:        mem.Goals,
		}, func() {}
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	txRunner := db.NewTxRunner(database)
	return repositories{
		users:        store.NewUserStore(database),
		accounts:     store.NewAccountStore(database),
		transactions: store.NewTransactionStore(database, txRunner),
		goals:        store.NewGoalStore(database, txRunner),
	}, func() { _ = database.Close() }
}

func chatProvider(cfg config.Config, log logrus.FieldLogger) chatbot.Provider {
	if cfg.AIAPIKey == "" {
		log.Warn("AI_API_KEY not set, chatbot will echo queries")
		return chatbot.EchoProvider{}
	}
	log.WithField("model", cfg.AIModel).Info("chatbot using OpenAI-compatible provider")
	return chatbot.NewOpenAIProvider(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
}
