package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Stairwell/internal/auth"
	"Stairwell/internal/calc/premium/autodesign"
	"Stairwell/internal/calc/premium/batch"
	"Stairwell/internal/calc/premium/importer"
	"Stairwell/internal/calc/premium/recommend"
	"Stairwell/internal/calc/premium/schedule"
	"Stairwell/internal/calc/report"
	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/config"
	"Stairwell/internal/designs"
	"Stairwell/internal/logging"
	"Stairwell/internal/metrics"
	"Stairwell/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, store repo.Repository, logger *slog.Logger) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	flights := metrics.NewFlights(reg)

	authEnv := &auth.Env{JWTKey: cfg.TokenKey, Repo: store, Logger: logger.With("component", "auth")}
	limiter := auth.NewIPRateLimiter(cfg.RateLimit, cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()

	api.Handle("/login", limiter.LimitMiddleware(http.HandlerFunc(authEnv.LoginHandler))).Methods("POST")
	api.Handle("/register", limiter.LimitMiddleware(http.HandlerFunc(authEnv.RegisterHandler))).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	calcLogger := logger.With("component", "stairs")
	stairsH := &stairs.Handler{Logger: calcLogger, Observer: flights}
	reportH := &report.Handler{Logger: calcLogger}
	importH := &importer.Handler{Logger: calcLogger, Observer: flights}
	scheduleH := &schedule.Handler{Logger: calcLogger}
	batchH := &batch.Handler{Logger: calcLogger, Observer: flights}
	autoH := &autodesign.Handler{Logger: calcLogger}
	recommendH := &recommend.Handler{}

	tools := secureApi.PathPrefix("/tools/stairs").Subrouter()
	tools.HandleFunc("/calc", stairsH.Calc).Methods("POST")
	tools.HandleFunc("/preview", stairsH.Preview).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	tools.HandleFunc("/import", importH.Import).Methods("POST")
	tools.HandleFunc("/schedule", scheduleH.Export).Methods("POST")
	tools.HandleFunc("/batch", batchH.Calc).Methods("POST")
	tools.HandleFunc("/autodesign", autoH.Flight).Methods("POST")
	tools.HandleFunc("/options", recommendH.Options).Methods("POST")

	designsH := &designs.Handler{Repo: store, Logger: logger.With("component", "designs")}
	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", designsH.Get).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", designsH.Delete).Methods("DELETE")

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	if err := cfg.RequireToken(); err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	db, err := repo.InitDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	store := repo.NewPostgresRepository(db)
	if err := store.Migrate(ctx); err != nil {
		logger.Error("database", "err", err)
		os.Exit(1)
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg, store, logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	wg.Wait()
	logger.Info("server stopped")
}
