package gitsource

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrgService struct {
	orgs []*github.Organization
	err  error
}

func (f *fakeOrgService) List(ctx context.Context, user string, opts *github.ListOptions) ([]*github.Organization, *github.Response, error) {
	return f.orgs, nil, f.err
}

type fakeRepoService struct {
	repoPages   [][]*github.Repository
	repoErrAt   int // 1-based page index that errors, 0 for never
	commitPages [][]*github.RepositoryCommit
	commitErrAt int
	commit      *github.RepositoryCommit
	commitErr   error
}

func (f *fakeRepoService) ListByOrg(ctx context.Context, org string, opts *github.RepositoryListByOrgOptions) ([]*github.Repository, *github.Response, error) {
	page := opts.Page
	if f.repoErrAt != 0 && page == f.repoErrAt {
		return nil, nil, errors.New("boom")
	}
	if page > len(f.repoPages) {
		return nil, nil, nil
	}
	return f.repoPages[page-1], nil, nil
}

func (f *fakeRepoService) ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	page := opts.Page
	if f.commitErrAt != 0 && page == f.commitErrAt {
		return nil, nil, errors.New("409 Git Repository is empty")
	}
	if page > len(f.commitPages) {
		return nil, nil, nil
	}
	return f.commitPages[page-1], nil, nil
}

func (f *fakeRepoService) GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error) {
	return f.commit, nil, f.commitErr
}

func repoPage(n int, prefix string) []*github.Repository {
	page := make([]*github.Repository, n)
	for i := range page {
		page[i] = &github.Repository{
			ID:   github.Ptr(int64(i)),
			Name: github.Ptr(fmt.Sprintf("%s-%d", prefix, i)),
		}
	}
	return page
}

func commitPage(n int, prefix string) []*github.RepositoryCommit {
	page := make([]*github.RepositoryCommit, n)
	for i := range page {
		page[i] = &github.RepositoryCommit{
			SHA: github.Ptr(fmt.Sprintf("%s%07d", prefix, i)),
			Commit: &github.Commit{
				Message: github.Ptr("work"),
				Author:  &github.CommitAuthor{Email: github.Ptr("dev@example.com")},
			},
		}
	}
	return page
}

func TestListOrganizations(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{
		orgs: []*github.Organization{
			{ID: github.Ptr(int64(7)), Login: github.Ptr("acme"), AvatarURL: github.Ptr("http://a")},
		},
	}, &fakeRepoService{})

	orgs, err := client.ListOrganizations(context.Background())

	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, int64(7), orgs[0].ID)
	assert.Equal(t, "acme", orgs[0].Login)
}

func TestListOrganizations_Error(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{err: errors.New("401")}, &fakeRepoService{})

	_, err := client.ListOrganizations(context.Background())

	assert.Error(t, err)
}

func TestListOrgRepositories_PaginatesUntilShortPage(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{
		repoPages: [][]*github.Repository{
			repoPage(pageSize, "a"),
			repoPage(pageSize, "b"),
			repoPage(3, "c"),
		},
	})

	repos, err := client.ListOrgRepositories(context.Background(), "acme")

	require.NoError(t, err)
	assert.Len(t, repos, 2*pageSize+3)
}

func TestListOrgRepositories_PageErrorFailsWholeCall(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{
		repoPages: [][]*github.Repository{repoPage(pageSize, "a")},
		repoErrAt: 2,
	})

	repos, err := client.ListOrgRepositories(context.Background(), "acme")

	assert.Error(t, err)
	assert.Nil(t, repos, "no partial results on repository listing failure")
}

func TestListRepoCommits_PaginatesUntilShortPage(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{
		commitPages: [][]*github.RepositoryCommit{
			commitPage(pageSize, "a"),
			commitPage(2, "b"),
		},
	})

	commits, err := client.ListRepoCommits(context.Background(), "acme", "api", "dev@example.com",
		time.Now().Add(-24*time.Hour), time.Now())

	require.NoError(t, err)
	assert.Len(t, commits, pageSize+2)
}

func TestListRepoCommits_ErrorReturnsAccumulated(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{
		commitPages: [][]*github.RepositoryCommit{commitPage(pageSize, "a")},
		commitErrAt: 2,
	})

	commits, err := client.ListRepoCommits(context.Background(), "acme", "api", "dev@example.com",
		time.Now().Add(-24*time.Hour), time.Now())

	require.NoError(t, err, "inaccessible pages are skipped, not surfaced")
	assert.Len(t, commits, pageSize)
}

func TestListRepoCommits_ImmediateErrorReturnsEmpty(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{commitErrAt: 1})

	commits, err := client.ListRepoCommits(context.Background(), "acme", "empty-repo", "dev@example.com",
		time.Now().Add(-24*time.Hour), time.Now())

	require.NoError(t, err)
	assert.Empty(t, commits)
	assert.NotNil(t, commits)
}

func TestGetCommitDetail(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{
		commit: &github.RepositoryCommit{
			SHA:    github.Ptr("abc1234def5678"),
			Commit: &github.Commit{Message: github.Ptr("fix: things")},
			Stats:  &github.CommitStats{Additions: github.Ptr(10), Deletions: github.Ptr(2)},
			Files: []*github.CommitFile{
				{Filename: github.Ptr("main.go")},
			},
		},
	})

	detail, err := client.GetCommitDetail(context.Background(), "acme", "api", "abc1234def5678")

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, 10, detail.Additions)
	assert.Equal(t, 2, detail.Deletions)
	assert.Equal(t, []string{"main.go"}, detail.FilesChanged)
}

func TestGetCommitDetail_LookupFailureIsAbsence(t *testing.T) {
	client := NewGitHubClientWithServices(&fakeOrgService{}, &fakeRepoService{commitErr: errors.New("404")})

	detail, err := client.GetCommitDetail(context.Background(), "acme", "api", "nope")

	assert.NoError(t, err)
	assert.Nil(t, detail)
}
