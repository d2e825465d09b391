package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"songshelf/cache"
	"songshelf/config"
	"songshelf/core/auth"
	"songshelf/db"
	"songshelf/logger"
	"songshelf/model"
	"songshelf/repository"

	"github.com/gorilla/mux"
)

// NewRouter builds the route table for the API. Kept separate from Start so
// tests can drive the real routes.
func NewRouter(h *APIHandler) *mux.Router {
	router := mux.NewRouter()

	router.Use(corsMiddleware)

	router.HandleFunc("/{version:v[0-9]+}/login", h.LoginHandler).Methods(http.MethodPost)

	router.HandleFunc("/{version:v[0-9]+}/songs", h.AuthMiddleware(h.GetSongsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/{version:v[0-9]+}/songs", h.AuthMiddleware(h.CreateSongHandler)).Methods(http.MethodPost)
	router.HandleFunc("/{version:v[0-9]+}/songs/{id:[0-9]+}", h.AuthMiddleware(h.GetSongHandler)).Methods(http.MethodGet)
	router.HandleFunc("/{version:v[0-9]+}/songs/{id:[0-9]+}", h.AuthMiddleware(h.UpdateSongHandler)).Methods(http.MethodPut)
	router.HandleFunc("/{version:v[0-9]+}/songs/{id:[0-9]+}", h.AuthMiddleware(h.DeleteSongHandler)).Methods(http.MethodDelete)

	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})

	auth.SetSecret(cfg.JWTSecret)

	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	if err := db.ConnectGormDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database with GORM", logger.ErrorField(err))
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(&model.Song{}); err != nil {
		logger.Fatal("Failed to migrate song model", logger.ErrorField(err))
	}

	// The cache is best-effort. Without Redis every list request hits the
	// database directly.
	if err := cache.Connect(cfg); err != nil {
		logger.Warn("Redis unavailable, running without song list cache", logger.ErrorField(err))
	} else {
		defer cache.Close()
	}

	songRepo := repository.NewMySQLSongRepository(db.GormDB)
	userRepo := repository.NewMySQLUserRepository(db.DB)
	songCache := cache.NewSongListCache(cache.RedisClient)
	apiHandler := NewAPIHandler(songRepo, userRepo, songCache)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      NewRouter(apiHandler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
