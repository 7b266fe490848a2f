package main

import (
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/handlers"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/session"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Cookie")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Fundfolio dashboard server starting...")

	if len(config.Cfg.CSRFAuthKey) < 32 {
		logger.L.Error("CSRF_AUTH_KEY must be at least 32 bytes long.")
		os.Exit(1)
	}

	logger.L.Info("Initializing backend API client...", "baseURL", config.Cfg.BackendAPIURL)
	apiClient, err := fundapi.New(config.Cfg.BackendAPIURL)
	if err != nil {
		logger.L.Error("Failed to initialize backend API client", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Initializing session store...")
	sessions := session.NewManager(apiClient, config.Cfg.SessionTTL, config.Cfg.SessionCleanup)

	logger.L.Info("Initializing handlers...")
	fundHandler := handlers.NewFundHandler(apiClient, sessions)
	txHandler := handlers.NewTransactionHandler(sessions)
	uploadHandler := handlers.NewUploadHandler(sessions)
	chatHandler := handlers.NewChatHandler(sessions)
	documentHandler := handlers.NewDocumentHandler(sessions)

	logger.L.Info("Configuring routes...")
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", txHandler.HandleDashboard)
	mux.HandleFunc("POST /transactions/select", txHandler.HandleSelectFund)
	mux.HandleFunc("GET /transactions/progress", txHandler.HandleProgress)

	mux.HandleFunc("GET /funds", fundHandler.HandleFundsPage)
	mux.HandleFunc("POST /funds", fundHandler.HandleCreateFund)
	mux.HandleFunc("GET /funds/{id}", fundHandler.HandleFundDetailPage)
	mux.HandleFunc("POST /funds/{id}/delete", fundHandler.HandleRequestDelete)
	mux.HandleFunc("POST /funds/delete/confirm", fundHandler.HandleConfirmDelete)
	mux.HandleFunc("POST /funds/delete/cancel", fundHandler.HandleCancelDelete)
	mux.HandleFunc("POST /funds/notice/dismiss", fundHandler.HandleDismissNotification)

	mux.HandleFunc("GET /upload", uploadHandler.HandleUploadPage)
	mux.HandleFunc("POST /upload", uploadHandler.HandleUpload)

	mux.HandleFunc("GET /documents", documentHandler.HandleDocumentsPage)
	mux.HandleFunc("POST /documents/{id}/delete", documentHandler.HandleDeleteDocument)

	mux.HandleFunc("GET /chat", chatHandler.HandleChatPage)
	mux.HandleFunc("POST /chat/send", chatHandler.HandleSend)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	logger.L.Info("Applying global middleware...")
	csrfProtection := handlers.CSRFMiddleware(config.Cfg.CSRFAuthKey)
	finalHandler := enableCORS(rateLimitMiddleware(csrfProtection(mux)))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
