package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"guidance-service/internal/app"
	"guidance-service/internal/assessment"
	"guidance-service/internal/domain"
	pgloader "guidance-service/internal/infra/postgres"
	pgmigrations "guidance-service/internal/infra/postgres/migrations"
	infraredis "guidance-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestAssessmentEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedBank(t, ctx, pgURL, assessment.DefaultBank())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	bankRepo := infraredis.NewBankRepository(redisClient, pgloader.NewBankLoader(pool), 5*time.Minute)
	sessionStore := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	history := pgloader.NewHistoryStore(pool)
	service := app.NewAssessmentService(sessionStore, bankRepo, history, assessment.DefaultPoolSize)

	sessionID, prompt, err := service.Start(ctx, "u1", 10, []string{"physics", "chemistry", "maths-std"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var result *domain.AssessmentResult
	for i := 0; i < prompt.Total; i++ {
		_, res, err := service.Answer(ctx, sessionID, 5)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		result = res
	}
	if result == nil {
		t.Fatal("expected a result after answering every question")
	}
	if len(result.Recommendations) != 4 {
		t.Fatalf("expected 4 stream recommendations, got %d", len(result.Recommendations))
	}

	entries, err := history.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 persisted history entry, got %d", len(entries))
	}
	if entries[0].Grade != 10 || len(entries[0].Recommendations) != 4 {
		t.Fatalf("unexpected history entry: %+v", entries[0])
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "guidance", "POSTGRES_PASSWORD": "guidancepass", "POSTGRES_DB": "guidancedb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://guidance:guidancepass@%s:%s/guidancedb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedBank(t *testing.T, ctx context.Context, dsn string, bank assessment.Bank) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	data, err := json.Marshal(bank)
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO question_bank (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, "default", string(data)); err != nil {
		t.Fatalf("insert bank: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
