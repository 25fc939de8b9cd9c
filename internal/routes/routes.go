package routes

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/just-nibble/standup-service/internal/auth"
	"github.com/just-nibble/standup-service/internal/http/handlers"
)

// NewRouter wires every route. All /api routes sit behind the session
// middleware.
func NewRouter(
	authSvc *auth.Service,
	daily *handlers.DailyHandler,
	weekly *handlers.WeeklyHandler,
	orgs *handlers.OrganizationHandler,
	stats *handlers.StatsHandler,
) http.Handler {
	router := http.NewServeMux()

	protect := func(h http.HandlerFunc) http.Handler {
		return authSvc.Middleware(h)
	}

	router.HandleFunc("GET /auth/login", authSvc.HandleLogin)
	router.HandleFunc("GET /auth/callback", authSvc.HandleCallback)
	router.HandleFunc("POST /auth/logout", authSvc.HandleLogout)

	router.Handle("GET /api/daily", protect(daily.List))
	router.Handle("GET /api/daily/{id}", protect(daily.Get))
	router.Handle("DELETE /api/daily/{id}", protect(daily.Delete))
	router.Handle("POST /api/daily/generate", protect(daily.Generate))

	router.Handle("GET /api/weekly", protect(weekly.List))
	router.Handle("GET /api/weekly/{id}", protect(weekly.Get))
	router.Handle("DELETE /api/weekly/{id}", protect(weekly.Delete))
	router.Handle("POST /api/weekly/generate", protect(weekly.Generate))

	router.Handle("GET /api/github/orgs", protect(orgs.ListRemote))
	router.Handle("GET /api/settings/organizations", protect(orgs.ListTracked))
	router.Handle("POST /api/settings/organizations", protect(orgs.SaveTracked))

	router.Handle("GET /api/stats", protect(stats.Overview))

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Serve Swagger documentation
	router.Handle("/swagger/", httpSwagger.WrapHandler)

	return withRequestLog(router)
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
