// Package queue persists background job requests. Jobs are enqueued as
// rows; no worker consumes them yet, so generation stays synchronous in the
// request handlers.
package queue

import (
	"context"
	"encoding/json"
	"sync"

	"gorm.io/gorm"

	"github.com/just-nibble/standup-service/internal/repository"
)

const (
	GenerateDaily  = "generate-daily"
	GenerateWeekly = "generate-weekly"
	SyncCommits    = "sync-commits"
)

const stateCreated = "created"

type GenerateDailyPayload struct {
	UserID         uint   `json:"userId"`
	Date           string `json:"date"`
	OrganizationID string `json:"organizationId"`
}

type GenerateWeeklyPayload struct {
	UserID            uint   `json:"userId"`
	WeekStart         string `json:"weekStart"`
	WeekEnd           string `json:"weekEnd"`
	UseExistingDailys bool   `json:"useExistingDailys"`
}

type SyncCommitsPayload struct {
	UserID         uint   `json:"userId"`
	OrganizationID string `json:"organizationId"`
	Since          string `json:"since,omitempty"`
	Until          string `json:"until,omitempty"`
}

// Queue is a process-wide handle, initialized on first use.
type Queue struct {
	db *gorm.DB

	mu      sync.Mutex
	started bool
}

func New(db *gorm.DB) *Queue {
	return &Queue{db: db}
}

func (q *Queue) start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.started = true
}

// Send enqueues one job. The returned id identifies the row.
func (q *Queue) Send(ctx context.Context, name string, payload any) (uint, error) {
	q.start()

	data, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	job := repository.QueueJob{
		Name:    name,
		Payload: string(data),
		State:   stateCreated,
	}
	if err := q.db.WithContext(ctx).Create(&job).Error; err != nil {
		return 0, err
	}
	return job.ID, nil
}

func (q *Queue) EnqueueDailyGeneration(ctx context.Context, payload GenerateDailyPayload) (uint, error) {
	return q.Send(ctx, GenerateDaily, payload)
}

func (q *Queue) EnqueueWeeklyGeneration(ctx context.Context, payload GenerateWeeklyPayload) (uint, error) {
	return q.Send(ctx, GenerateWeekly, payload)
}

func (q *Queue) EnqueueCommitSync(ctx context.Context, payload SyncCommitsPayload) (uint, error) {
	return q.Send(ctx, SyncCommits, payload)
}

// Stop is the graceful-shutdown hook. With no worker running there is
// nothing to drain; it exists so callers can tear down symmetrically.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.started = false
}
