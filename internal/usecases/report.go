package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/just-nibble/standup-service/internal/agent"
	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/gitsource"
	"github.com/just-nibble/standup-service/internal/repository"
	"github.com/just-nibble/standup-service/internal/summary"
	"github.com/just-nibble/standup-service/pkg/errcodes"
)

const DateLayout = "2006-01-02"

// Generator is the text-generation agent boundary. *agent.Client satisfies
// it.
type Generator interface {
	IsAvailable() bool
	Invoke(prompt string, opts agent.Options) (string, error)
}

// GeneratedDaily is one generated daily summary, returned without being
// persisted. Whether and when dailies are stored is the caller's decision.
type GeneratedDaily struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// WeeklySource selects where a weekly summary draws its input from.
const (
	SourceDailys  = "dailys"
	SourceCommits = "commits"
)

type ReportUsecase interface {
	GenerateDailies(ctx context.Context, user domain.User, dates []string, org string) ([]GeneratedDaily, error)
	GenerateWeekly(ctx context.Context, user domain.User, weekStart, source, org string) (*domain.WeeklyReport, error)

	ListDailies(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error)
	GetDaily(ctx context.Context, userID, id uint) (*domain.DailyReport, error)
	DeleteDaily(ctx context.Context, userID, id uint) error
	ListWeeklies(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error)
	GetWeekly(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error)
	DeleteWeekly(ctx context.Context, userID, id uint) error
}

type reportUsecase struct {
	dailyStore    repository.DailyReportStore
	weeklyStore   repository.WeeklyReportStore
	github        gitsource.Factory
	generator     Generator
	dailyTimeout  time.Duration
	weeklyTimeout time.Duration
}

func NewReportUsecase(
	dailyStore repository.DailyReportStore,
	weeklyStore repository.WeeklyReportStore,
	github gitsource.Factory,
	generator Generator,
	dailyTimeout, weeklyTimeout time.Duration,
) ReportUsecase {
	return &reportUsecase{
		dailyStore:    dailyStore,
		weeklyStore:   weeklyStore,
		github:        github,
		generator:     generator,
		dailyTimeout:  dailyTimeout,
		weeklyTimeout: weeklyTimeout,
	}
}

// GenerateDailies produces a summary per requested date. Results are
// returned, not persisted.
func (u *reportUsecase) GenerateDailies(ctx context.Context, user domain.User, dates []string, org string) ([]GeneratedDaily, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: at least one date is required", errcodes.ErrValidation)
	}
	if org == "" {
		return nil, fmt.Errorf("%w: organization is required", errcodes.ErrValidation)
	}

	client := u.github(user.AccessToken)

	repos, err := client.ListOrgRepositories(ctx, org)
	if err != nil {
		return nil, err
	}

	available := u.generator.IsAvailable()
	log.Info().Bool("available", available).Str("org", org).Msg("daily generation: agent availability")

	dailies := make([]GeneratedDaily, 0, len(dates))
	for _, dateStr := range dates {
		day, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", errcodes.ErrValidation, dateStr)
		}
		since, until := dayWindow(day)

		commitsByRepo := u.collectCommits(ctx, client, org, repos, user.Email, since, until)

		var content string
		if len(commitsByRepo) == 0 {
			content = fmt.Sprintf("No commits found for %s in %s.", dateStr, org)
		} else {
			prompt := summary.BuildDailyPrompt(commitsByRepo)
			content = u.generate(prompt, available, u.dailyTimeout, func() string {
				return summary.FallbackDaily(commitsByRepo, day)
			})
		}

		dailies = append(dailies, GeneratedDaily{Date: dateStr, Content: content})
	}
	return dailies, nil
}

// GenerateWeekly produces and persists a weekly summary. The upsert is
// keyed on (user, week start), so regenerating a week replaces its content
// instead of creating a duplicate.
func (u *reportUsecase) GenerateWeekly(ctx context.Context, user domain.User, weekStart, source, org string) (*domain.WeeklyReport, error) {
	if weekStart == "" {
		return nil, fmt.Errorf("%w: week start date is required", errcodes.ErrValidation)
	}
	if org == "" {
		return nil, fmt.Errorf("%w: organization is required", errcodes.ErrValidation)
	}

	start, err := time.ParseInLocation(DateLayout, weekStart, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid week start %q", errcodes.ErrValidation, weekStart)
	}
	end := start.AddDate(0, 0, 6).Add(endOfDayOffset)

	var dailyContents []string
	if source == SourceDailys {
		rows, err := u.dailyStore.ListByUserBetween(ctx, user.ID, start, end)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			dailyContents = append(dailyContents, row.Content)
		}
	}

	var commitsByRepo []domain.RepoCommits
	if len(dailyContents) == 0 {
		client := u.github(user.AccessToken)
		repos, err := client.ListOrgRepositories(ctx, org)
		if err != nil {
			return nil, err
		}
		commitsByRepo = u.collectCommits(ctx, client, org, repos, user.Email, start, end)
	}

	prompt := summary.BuildWeeklyPrompt(dailyContents, commitsByRepo)

	available := u.generator.IsAvailable()
	log.Info().Bool("available", available).Str("org", org).Msg("weekly generation: agent availability")

	content := u.generate(prompt, available, u.weeklyTimeout, func() string {
		return summary.FallbackWeekly(dailyContents, commitsByRepo, start, end)
	})

	return u.weeklyStore.Upsert(ctx, domain.WeeklyReport{
		UserID:    user.ID,
		WeekStart: start,
		WeekEnd:   end,
		Content:   content,
	})
}

// collectCommits fetches and filters commits per repository, strictly
// sequentially. Repositories whose fetch fails, or with no qualifying
// commits, are omitted.
func (u *reportUsecase) collectCommits(ctx context.Context, client gitsource.Client, org string, repos []domain.Repository, authorEmail string, since, until time.Time) []domain.RepoCommits {
	var byRepo []domain.RepoCommits
	for _, repo := range repos {
		commits, err := client.ListRepoCommits(ctx, org, repo.Name, authorEmail, since, until)
		if err != nil {
			log.Error().Err(err).Str("org", org).Str("repo", repo.Name).Msg("skipping repository")
			continue
		}

		kept := commits[:0:0]
		for _, c := range commits {
			if !summary.IsMergeCommit(c.Message) {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			byRepo = append(byRepo, domain.RepoCommits{RepoName: repo.Name, Commits: kept})
		}
	}
	return byRepo
}

// generate runs the agent when available and substitutes the fallback on
// unavailability or any invocation failure. Generation never fails once
// data fetching has succeeded.
func (u *reportUsecase) generate(prompt string, available bool, timeout time.Duration, fallback func() string) string {
	if !available {
		log.Info().Msg("agent unavailable, using fallback formatter")
		return fallback()
	}
	out, err := u.generator.Invoke(prompt, agent.Options{Timeout: timeout})
	if err != nil {
		log.Error().Err(err).Msg("agent invocation failed, using fallback formatter")
		return fallback()
	}
	return out
}

func (u *reportUsecase) ListDailies(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error) {
	return u.dailyStore.ListByUser(ctx, userID, limit)
}

func (u *reportUsecase) GetDaily(ctx context.Context, userID, id uint) (*domain.DailyReport, error) {
	return u.dailyStore.GetByID(ctx, userID, id)
}

func (u *reportUsecase) DeleteDaily(ctx context.Context, userID, id uint) error {
	return u.dailyStore.Delete(ctx, userID, id)
}

func (u *reportUsecase) ListWeeklies(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error) {
	return u.weeklyStore.ListByUser(ctx, userID, limit)
}

func (u *reportUsecase) GetWeekly(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error) {
	return u.weeklyStore.GetByID(ctx, userID, id)
}

func (u *reportUsecase) DeleteWeekly(ctx context.Context, userID, id uint) error {
	return u.weeklyStore.Delete(ctx, userID, id)
}

const endOfDayOffset = 24*time.Hour - time.Millisecond

// dayWindow expands a calendar day to its inclusive timestamp range.
func dayWindow(day time.Time) (time.Time, time.Time) {
	return day, day.Add(endOfDayOffset)
}
