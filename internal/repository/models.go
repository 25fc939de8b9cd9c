package repository

import (
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
)

// User is the authenticated GitHub identity
type User struct {
	ID          uint  `gorm:"primaryKey"`
	GithubID    int64 `gorm:"uniqueIndex"`
	Login       string
	Name        string
	Email       string `gorm:"index"`
	AvatarURL   string
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Session is a server-side login session
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex"`
	UserID    uint   `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Organization is a GitHub organization a user has tracked at some point
type Organization struct {
	ID        uint  `gorm:"primaryKey"`
	GithubID  int64 `gorm:"uniqueIndex"`
	Login     string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserOrganization links a user to a tracked organization. Replacing the
// tracked set deactivates every link and reactivates the selected ones.
type UserOrganization struct {
	ID             uint `gorm:"primaryKey"`
	UserID         uint `gorm:"uniqueIndex:idx_user_org"`
	OrganizationID uint `gorm:"uniqueIndex:idx_user_org"`
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Organization   Organization `gorm:"foreignKey:OrganizationID"`
}

// DailyReport holds one generated daily summary. Date is normalized to
// midnight UTC.
type DailyReport struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Date      time.Time `gorm:"index"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklyReport holds one generated weekly summary, unique per user and
// week start.
type WeeklyReport struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_week_start"`
	WeekStart time.Time `gorm:"uniqueIndex:idx_user_week_start"`
	WeekEnd   time.Time
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QueueJob is a queued background job row. Jobs are enqueued by
// internal/queue; no worker consumes them yet.
type QueueJob struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	Payload   string `gorm:"type:jsonb"`
	State     string `gorm:"index;default:created"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:          u.ID,
		GithubID:    u.GithubID,
		Login:       u.Login,
		Name:        u.Name,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		AccessToken: u.AccessToken,
	}
}

func (s *Session) ToDomain() *domain.Session {
	return &domain.Session{
		ID:        s.ID,
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}
}

func (o *Organization) ToDomain() domain.Organization {
	return domain.Organization{
		ID:        o.GithubID,
		Login:     o.Login,
		Name:      o.Name,
		AvatarURL: o.AvatarURL,
	}
}

func (d *DailyReport) ToDomain() domain.DailyReport {
	return domain.DailyReport{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      d.Date,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (w *WeeklyReport) ToDomain() domain.WeeklyReport {
	return domain.WeeklyReport{
		ID:        w.ID,
		UserID:    w.UserID,
		WeekStart: w.WeekStart,
		WeekEnd:   w.WeekEnd,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
