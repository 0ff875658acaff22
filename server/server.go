package server

import (
	"net/http"

	"github.com/voxlabs/chirp/config"
	"github.com/voxlabs/chirp/pkg/auth"
	"github.com/voxlabs/chirp/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	if cfg.Authorizer != nil {
		r.Use(authenticate(cfg.Authorizer))
	}

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	return &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "chirp"),
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.handler)
}

func authenticate(p auth.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// health stays reachable for probes without a token
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := p.Authenticate(r.Context(), r)

			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
