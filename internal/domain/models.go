package domain

import "time"

// Organization is a GitHub organization visible to the authenticated user
type Organization struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description,omitempty"`
}

// Repository is a repository inside an organization. Fetched per request,
// never persisted.
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
}

// Commit is a single commit as returned by the commits listing
type Commit struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorDate  time.Time `json:"author_date"`
}

// CommitDetail is a single commit with diff statistics
type CommitDetail struct {
	Commit
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
	FilesChanged []string `json:"files_changed"`
}

// RepoCommits pairs a repository name with the commits that qualified for a
// report window. Repos with no qualifying commits are omitted entirely.
type RepoCommits struct {
	RepoName string
	Commits  []Commit
}

// User is the authenticated GitHub identity
type User struct {
	ID          uint
	GithubID    int64
	Login       string
	Name        string
	Email       string
	AvatarURL   string
	AccessToken string
}

// Session is a server-side login session
type Session struct {
	ID        uint
	Token     string
	UserID    uint
	ExpiresAt time.Time
}

// DailyReport is a generated summary for one calendar day
type DailyReport struct {
	ID        uint
	UserID    uint
	Date      time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyReport is a generated summary for one week. WeekEnd is always
// WeekStart plus six days.
type WeeklyReport struct {
	ID        uint
	UserID    uint
	WeekStart time.Time
	WeekEnd   time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
