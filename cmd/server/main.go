package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/just-nibble/standup-service/internal/agent"
	"github.com/just-nibble/standup-service/internal/auth"
	"github.com/just-nibble/standup-service/internal/gitsource"
	"github.com/just-nibble/standup-service/internal/http/handlers"
	"github.com/just-nibble/standup-service/internal/queue"
	"github.com/just-nibble/standup-service/internal/repository"
	"github.com/just-nibble/standup-service/internal/routes"
	"github.com/just-nibble/standup-service/internal/usecases"
	"github.com/just-nibble/standup-service/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.LogLevel)

	// Initialize the database
	db, err := repository.InitDB(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Create the stores
	dailyStore := repository.NewGormDailyReportStore(db)
	weeklyStore := repository.NewGormWeeklyReportStore(db)
	orgStore := repository.NewGormOrganizationStore(db)
	userStore := repository.NewGormUserStore(db)
	sessionStore := repository.NewGormSessionStore(db)

	// Per-user GitHub clients are built from the stored OAuth token
	githubFactory := gitsource.Factory(func(token string) gitsource.Client {
		return gitsource.NewGitHubClient(token)
	})

	generator := agent.NewClient(cfg.AgentBin)

	// Create the usecases
	reports := usecases.NewReportUsecase(dailyStore, weeklyStore, githubFactory, generator, cfg.DailyTimeout(), cfg.WeeklyTimeout())
	stats := usecases.NewStatsUsecase(dailyStore, weeklyStore)
	orgs := usecases.NewOrganizationUsecase(orgStore, githubFactory)

	authSvc := auth.NewService(cfg.GithubClientID, cfg.GithubClientSecret, userStore, sessionStore, cfg.SessionTTL())

	// Set up HTTP routes
	router := routes.NewRouter(
		authSvc,
		handlers.NewDailyHandler(reports),
		handlers.NewWeeklyHandler(reports),
		handlers.NewOrganizationHandler(orgs),
		handlers.NewStatsHandler(stats),
	)

	jobs := queue.New(db)
	defer jobs.Stop()

	// Start the HTTP server
	log.Info().Str("port", cfg.Port).Msg("server is running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("could not start server")
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
