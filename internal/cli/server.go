package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guidance-service/internal/app"
	"guidance-service/internal/assessment"
	"guidance-service/internal/config"
	"guidance-service/internal/infra/memory"
	pginfra "guidance-service/internal/infra/postgres"
	redisinfra "guidance-service/internal/infra/redis"
	transport "guidance-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the guidance server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.BankLoader = memory.NewStaticBankLoader(assessment.DefaultBank())
	if pool != nil {
		loader = pginfra.NewBankLoader(pool)
	}

	bankTTL := config.TTLDuration(cfg.Assessment.BankTTL, 10*time.Minute)
	var bankRepo app.BankRepository
	if redisClient != nil {
		bankRepo = redisinfra.NewBankRepository(redisClient, loader, bankTTL)
	} else {
		bankRepo = memory.NewBankRepository(loader, bankTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	var history app.HistoryRepository
	switch {
	case pool != nil:
		history = pginfra.NewHistoryStore(pool)
	case redisClient != nil:
		history = redisinfra.NewHistoryStore(redisClient)
	default:
		history = memory.NewHistoryStore()
	}

	service := app.NewAssessmentService(sessions, bankRepo, history, cfg.Assessment.PoolSize)
	wsHandler := transport.NewWSHandler(service)
	historyHandler := transport.NewHistoryHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.Handle("/history", historyHandler)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting guidance service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
