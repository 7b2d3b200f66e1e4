package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}
	if !cfg.development {
		t.Errorf("expected development mode by default")
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" ||
		cfg.pgDB != "winetasting" || cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" {
		t.Errorf("unexpected redis config")
	}

	// Kafka is off unless brokers are set
	if cfg.kafkaBrokers != "" || cfg.kafkaTopic != "tasting-events" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 86400 {
		t.Errorf("unexpected jwt config")
	}

	// Rate limits, development loosens the auth limit
	if cfg.generalRateLimit != 100 || cfg.authRateLimit != 50 {
		t.Errorf("unexpected rate limit config: %d/%d", cfg.generalRateLimit, cfg.authRateLimit)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_ENV", "production")
	os.Setenv("FRONTEND_URL", "https://tasting.example.com")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_TOPIC", "tastings")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("ARBITER_EMAIL", "chief@example.com")
	os.Setenv("ARBITER_PASSWORD", "Sup3rSecret")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.development {
		t.Errorf("expected production mode")
	}
	if cfg.frontendURL != "https://tasting.example.com" {
		t.Errorf("unexpected frontend url: %s", cfg.frontendURL)
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" ||
		cfg.pgDB != "mydb" || cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 || cfg.redisPassword != "redispass" {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaBrokers != "kafka1:9092,kafka2:9092" || cfg.kafkaTopic != "tastings" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.arbiterEmail != "chief@example.com" || cfg.arbiterPassword != "Sup3rSecret" {
		t.Errorf("unexpected arbiter seed config")
	}
	// Production tightens the auth limit back to 5
	if cfg.authRateLimit != 5 {
		t.Errorf("unexpected auth rate limit: %d", cfg.authRateLimit)
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		appHost:  "127.0.0.1",
		appPort:  "8086",
		logLevel: "debug",

		pgHost:         pgHost,
		pgPort:         pgPort.Int(),
		pgUser:         "user",
		pgPassword:     "password",
		pgDB:           "testdb",
		pgMaxOpenConns: 5,
		pgMaxIdleConns: 2,
		migrationsDir:  "../migrations",

		redisHost: redisHost,
		redisPort: redisPort.Int(),

		jwtSecretKey: "testsecret",
		jwtExpSecond: 60,

		frontendURL: "http://localhost:5173",
		development: true,

		arbiterEmail:    "arbiter@example.com",
		arbiterPassword: "TestArbiter1",

		generalRateLimit: 100,
		authRateLimit:    50,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
