package main

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanta-be/internal/config"
	"vanta-be/internal/idempotency"
)

func TestSetupRouter(t *testing.T) {
	apiHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("api:" + r.URL.Path))
	})

	router := setupRouter(apiHandler)

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("API mounted", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/menu", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, "api:/api/menu", rr.Body.String())
	})

	t.Run("Unknown path", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:    "8080",
		AppEnv:     "test",
		CORSOrigin: "http://localhost:3000",
		FeedMode:   "off",
	}
}

func TestNewServer(t *testing.T) {
	db, err := sql.Open("mock_driver_main", "")
	require.NoError(t, err)

	app := newServer(context.Background(), testConfig(), db)
	defer app.close()

	t.Run("Health", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Admin gated without a configured hash", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("X-Admin-Passphrase", "anything")
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Cart session", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/cart", nil)
		rr := httptest.NewRecorder()
		app.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "session_id")
	})
}

func TestNewGuard(t *testing.T) {
	s := &server{}

	t.Run("No Redis URL", func(t *testing.T) {
		assert.IsType(t, idempotency.NopGuard{}, newGuard(context.Background(), testConfig(), s))
	})

	t.Run("Unreachable Redis", func(t *testing.T) {
		cfg := testConfig()
		cfg.RedisURL = "not a url"
		assert.IsType(t, idempotency.NopGuard{}, newGuard(context.Background(), cfg, s))
	})

	t.Run("Redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		cfg := testConfig()
		cfg.RedisURL = "redis://" + mr.Addr()
		assert.IsType(t, &idempotency.RedisGuard{}, newGuard(context.Background(), cfg, s))
		assert.Len(t, s.closers, 1)
	})
}

// --- Mock Driver for Testing ---
type mockDriver struct{}

func (m *mockDriver) Open(name string) (driver.Conn, error)         { return &mockConn{}, nil }
func (c *mockConn) Prepare(query string) (driver.Stmt, error)       { return &mockStmt{}, nil }
func (c *mockConn) Close() error                                    { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                       { return nil, nil }
func (s *mockStmt) Close() error                                    { return nil }
func (s *mockStmt) NumInput() int                                   { return 0 }
func (s *mockStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *mockStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

type mockConn struct{}
type mockStmt struct{}

func init() {
	sql.Register("mock_driver_main", &mockDriver{})
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		db, _ := sql.Open("mock_driver_main", "")
		return db
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	var addr string
	startServerFunc = func(srv *http.Server) error {
		addr = srv.Addr
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "db")
	t.Setenv("FEED_MODE", "off")
	t.Setenv("REDIS_URL", "")

	assert.NoError(t, run())
	assert.Equal(t, ":8080", addr)
}
