// Package gitsource wraps the GitHub REST API behind the small surface the
// report pipeline needs.
package gitsource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/just-nibble/standup-service/internal/domain"
)

const pageSize = 100

// Client lists organizations, repositories and commits for an
// authenticated identity.
type Client interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListOrgRepositories(ctx context.Context, org string) ([]domain.Repository, error)
	ListRepoCommits(ctx context.Context, org, repo, authorEmail string, since, until time.Time) ([]domain.Commit, error)
	GetCommitDetail(ctx context.Context, org, repo, sha string) (*domain.CommitDetail, error)
}

// Factory builds a Client for an access token. Handlers hold a Factory so
// each request uses the session's own token.
type Factory func(token string) Client

type OrganizationsService interface {
	List(ctx context.Context, user string, opts *github.ListOptions) ([]*github.Organization, *github.Response, error)
}

type RepositoriesService interface {
	ListByOrg(ctx context.Context, org string, opts *github.RepositoryListByOrgOptions) ([]*github.Repository, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

var _ Client = (*GitHubClient)(nil)

type GitHubClient struct {
	orgService  OrganizationsService
	repoService RepositoriesService
}

// NewGitHubClient builds a client authenticated with the given OAuth access
// token.
func NewGitHubClient(token string) *GitHubClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(httpClient)
	return &GitHubClient{
		orgService:  client.Organizations,
		repoService: client.Repositories,
	}
}

// NewGitHubClientWithServices wires explicit service implementations, used
// by tests.
func NewGitHubClientWithServices(orgService OrganizationsService, repoService RepositoriesService) *GitHubClient {
	return &GitHubClient{
		orgService:  orgService,
		repoService: repoService,
	}
}

// ListOrganizations returns the organizations visible to the authenticated
// user. Single page only; identities in more than 100 organizations are a
// known limitation.
func (c *GitHubClient) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	ghOrgs, _, err := c.orgService.List(ctx, "", &github.ListOptions{PerPage: pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	orgs := make([]domain.Organization, 0, len(ghOrgs))
	for _, o := range ghOrgs {
		orgs = append(orgs, domain.Organization{
			ID:          o.GetID(),
			Login:       o.GetLogin(),
			AvatarURL:   o.GetAvatarURL(),
			Description: o.GetDescription(),
		})
	}
	return orgs, nil
}

// ListOrgRepositories returns every repository in the organization,
// fetching full pages until a short page arrives. A failure on any page
// fails the whole call.
func (c *GitHubClient) ListOrgRepositories(ctx context.Context, org string) ([]domain.Repository, error) {
	var repos []domain.Repository

	for page := 1; ; page++ {
		ghRepos, _, err := c.repoService.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
			Type:        "all",
			ListOptions: github.ListOptions{Page: page, PerPage: pageSize},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", org, err)
		}

		for _, r := range ghRepos {
			repos = append(repos, domain.Repository{
				ID:       r.GetID(),
				Name:     r.GetName(),
				FullName: r.GetFullName(),
				Private:  r.GetPrivate(),
			})
		}

		if len(ghRepos) < pageSize {
			return repos, nil
		}
	}
}

// ListRepoCommits returns the author's commits in [since, until]. Unlike
// repository listing, a page failure returns whatever was accumulated so
// far: callers iterate many repositories and one empty or inaccessible
// repository must not abort the whole pipeline.
func (c *GitHubClient) ListRepoCommits(ctx context.Context, org, repo, authorEmail string, since, until time.Time) ([]domain.Commit, error) {
	commits := []domain.Commit{}

	for page := 1; ; page++ {
		ghCommits, _, err := c.repoService.ListCommits(ctx, org, repo, &github.CommitsListOptions{
			Author:      authorEmail,
			Since:       since,
			Until:       until,
			ListOptions: github.ListOptions{Page: page, PerPage: pageSize},
		})
		if err != nil {
			log.Warn().Err(err).
				Str("org", org).
				Str("repo", repo).
				Msg("skipping remaining commits for unreadable repository")
			return commits, nil
		}

		for _, gc := range ghCommits {
			commits = append(commits, toDomainCommit(gc))
		}

		if len(ghCommits) < pageSize {
			return commits, nil
		}
	}
}

// GetCommitDetail fetches one commit with diff statistics and changed
// filenames. A failed lookup is reported as absence, not an error.
func (c *GitHubClient) GetCommitDetail(ctx context.Context, org, repo, sha string) (*domain.CommitDetail, error) {
	gc, _, err := c.repoService.GetCommit(ctx, org, repo, sha, nil)
	if err != nil {
		return nil, nil
	}

	detail := &domain.CommitDetail{
		Commit:    toDomainCommit(gc),
		Additions: gc.GetStats().GetAdditions(),
		Deletions: gc.GetStats().GetDeletions(),
	}
	for _, f := range gc.Files {
		detail.FilesChanged = append(detail.FilesChanged, f.GetFilename())
	}
	return detail, nil
}

func toDomainCommit(gc *github.RepositoryCommit) domain.Commit {
	author := gc.GetCommit().GetAuthor()
	return domain.Commit{
		SHA:         gc.GetSHA(),
		Message:     gc.GetCommit().GetMessage(),
		AuthorName:  author.GetName(),
		AuthorEmail: author.GetEmail(),
		AuthorDate:  author.GetDate().Time,
	}
}
