package repository

import (
	"context"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Intake methods fill in generated identifiers, codes and timestamps on the
// passed record before appending it; validation failures leave state
// untouched and return a *ValidationError.

type ExpertRepo interface {
	// SearchExperts returns the active experts matching every supplied
	// criterion, in insertion order. An empty filter returns all active
	// records.
	SearchExperts(ctx context.Context, f models.ExpertFilter) ([]models.Expert, error)
	// GetExpert returns an active expert by id, or ErrExpertNotFound.
	GetExpert(ctx context.Context, id int64) (*models.Expert, error)
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
}

type ApplicationRepo interface {
	SubmitApplication(ctx context.Context, app *models.Application) error
	ListApplications(ctx context.Context) ([]models.Application, error)
	// ApproveApplication promotes a pending application into a new active
	// directory entry. Returns ErrApplicationNotFound for unknown ids and
	// ErrAlreadyProcessed when the application is not pending.
	ApproveApplication(ctx context.Context, id int64) (*models.Expert, *models.Application, error)
}

type FeedbackRepo interface {
	SubmitClientFeedback(ctx context.Context, fb *models.Feedback) error
	SubmitExpertFeedback(ctx context.Context, fb *models.Feedback) error
	ListFeedback(ctx context.Context) (client, expert []models.Feedback, err error)
}

type WaitlistRepo interface {
	// JoinWaitlist appends the entry and returns a display-only position:
	// the real list size plus a random social-proof offset. It is not a
	// queue rank.
	JoinWaitlist(ctx context.Context, e *models.WaitlistEntry) (position int, err error)
	WaitlistStats(ctx context.Context) (*models.WaitlistStats, error)
}

type ConnectionRepo interface {
	// RequestConnection records the request and returns the referenced
	// expert, or ErrExpertNotFound when the id does not resolve to an
	// active record.
	RequestConnection(ctx context.Context, c *models.Connection) (*models.Expert, error)
}
