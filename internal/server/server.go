package server

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"messagely/internal/handlers"
	"messagely/internal/handlers/auth"
	"messagely/internal/handlers/message"
	"messagely/internal/handlers/user"
	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
	"messagely/internal/ws"
)

type Server struct {
	Addr       string
	DB         *sql.DB
	JWTSecret  string
	JWTTTLHrs  int
	BcryptCost int
	Env        string
}

func NewServer(addr string, db *sql.DB, jwtSecret string, jwtTTL, bcryptCost int, env string) *Server {
	return &Server{
		Addr:       addr,
		DB:         db,
		JWTSecret:  jwtSecret,
		JWTTTLHrs:  jwtTTL,
		BcryptCost: bcryptCost,
		Env:        env,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the full route tree. Exposed separately from Run so tests
// can drive it through httptest.
func (s *Server) Router() chi.Router {
	users := &store.UserStore{DB: s.DB, BcryptCost: s.BcryptCost}
	messages := &store.MessageStore{DB: s.DB}
	hub := ws.NewHub()

	r := chi.NewRouter()

	// middlewares; auth runs on every route and only attaches identity,
	// restricted handlers reject anonymous requests themselves
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestLogger(s.Env))
	r.Use(middleware.AuthJWT(s.JWTSecret))

	r.Get("/health", HandlerFunc(&handlers.HealthHandler{DB: s.DB}))

	// auth routes (public)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", HandlerFunc(&auth.RegisterHandler{
			Users:     users,
			JWTSecret: s.JWTSecret,
			JWTTTLHrs: s.JWTTTLHrs,
		}))
		r.Post("/login", HandlerFunc(&auth.LoginHandler{
			Users:     users,
			JWTSecret: s.JWTSecret,
			JWTTTLHrs: s.JWTTTLHrs,
		}))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", HandlerFunc(&user.ListHandler{Users: users}))
		r.Get("/{username}", HandlerFunc(&user.GetHandler{Users: users}))
		r.Get("/{username}/to", HandlerFunc(&user.ToHandler{Messages: messages}))
		r.Get("/{username}/from", HandlerFunc(&user.FromHandler{Messages: messages}))
	})

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", HandlerFunc(&message.SendHandler{Messages: messages, Hub: hub}))
		r.Get("/{id}", HandlerFunc(&message.GetHandler{Messages: messages}))
		r.Post("/{id}/read", HandlerFunc(&message.ReadHandler{Messages: messages}))
	})

	// live message stream
	r.Get("/ws", HandlerFunc(&handlers.WSHandler{Hub: hub}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusNotFound, "Not Found")
	})

	return r
}

// Run serves the router and shuts down cleanly on SIGINT/SIGTERM.
func (s *Server) Run() error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Router()}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.Errorf("shutdown: %v", err)
		}
	}()

	logrus.Infof("server listening on %s", s.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
