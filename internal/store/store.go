// Package store owns the in-memory marketplace collections. All mutation
// goes through a single Store guarded by one mutex; persistence is an
// injected best-effort snapshot, never the source of truth.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/wisdomconnect/wisdom-connect/internal/directory"
	"github.com/wisdomconnect/wisdom-connect/pkg/models"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

const (
	defaultWaitlistBase = 247
	launchProgress      = 73
)

// Social-proof content for the waitlist stats payload.
var (
	topCountries = []string{
		"🇺🇸 United States", "🇬🇧 United Kingdom", "🇨🇦 Canada", "🇦🇺 Australia", "🇩🇪 Germany",
	}
	recentExperts = []string{
		"Elon Musk", "Warren Buffett", "Steve Jobs", "Jeff Bezos", "Oprah Winfrey",
	}
)

// Options configures a Store.
type Options struct {
	// SnapshotPath is the flat JSON file mirrored on every mutation.
	// Empty disables persistence entirely.
	SnapshotPath string
	// WaitlistBase is the social-proof offset added to the real signup
	// count in stats. Defaults to 247.
	WaitlistBase int
	Logger       *slog.Logger
}

// Store implements the repository interfaces over in-memory collections.
type Store struct {
	mu           sync.RWMutex
	db           *database
	ids          *idGenerator
	logger       *slog.Logger
	snap         *snapshotWriter
	waitlistBase int
}

// New builds a Store seeded with the launch directory, overlaid with the
// snapshot file when one exists and passes validation. A missing or
// corrupt snapshot is logged and ignored; the process always starts.
func New(ctx context.Context, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	base := opts.WaitlistBase
	if base <= 0 {
		base = defaultWaitlistBase
	}

	db := seedDatabase()
	if opts.SnapshotPath != "" {
		if err := loadSnapshot(ctx, opts.SnapshotPath, db); err != nil {
			logger.Info("using seed data", "path", opts.SnapshotPath, "reason", err)
		} else {
			logger.Info("snapshot loaded", "path", opts.SnapshotPath, "experts", len(db.Experts))
		}
	}

	s := &Store{
		db:           db,
		ids:          newIDGenerator(),
		logger:       logger,
		waitlistBase: base,
	}
	if opts.SnapshotPath != "" {
		s.snap = newSnapshotWriter(opts.SnapshotPath, logger)
	}
	return s
}

// Close flushes any pending snapshot and stops the writer.
func (s *Store) Close() error {
	if s.snap != nil {
		s.snap.Stop()
	}
	return nil
}

// Flush serializes the current state to the snapshot writer. Mutations
// already persist themselves; this exists for tooling that wants a
// snapshot file without performing a mutation.
func (s *Store) Flush() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.persistLocked()
}

// persistLocked serializes the whole database and hands it to the
// background writer. Must be called with the lock held; the caller's
// mutation has already succeeded and a write failure only gets logged.
func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	data, err := json.MarshalIndent(s.db, "", "  ")
	if err != nil {
		s.logger.Error("marshal snapshot", "err", err)
		return
	}
	s.snap.enqueue(data)
}

// SearchExperts returns the active experts matching the filter, in
// insertion order.
func (s *Store) SearchExperts(ctx context.Context, f models.ExpertFilter) ([]models.Expert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return directory.Apply(s.db.Experts, f), nil
}

// GetExpert returns an active expert by id.
func (s *Store) GetExpert(ctx context.Context, id int64) (*models.Expert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e := s.findActiveExpert(id); e != nil {
		cp := *e
		return &cp, nil
	}
	return nil, repository.ErrExpertNotFound
}

// findActiveExpert must be called with at least the read lock held.
func (s *Store) findActiveExpert(id int64) *models.Expert {
	for i := range s.db.Experts {
		if s.db.Experts[i].ID == id && s.db.Experts[i].IsActive {
			return &s.db.Experts[i]
		}
	}
	return nil
}

func (s *Store) submitFeedback(fb *models.Feedback, collection *[]models.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return &repository.ValidationError{Message: "Valid rating (1-5) is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fb.ID = s.ids.next()
	fb.Timestamp = time.Now().UTC()
	*collection = append(*collection, *fb)
	s.persistLocked()
	return nil
}

func (s *Store) SubmitClientFeedback(ctx context.Context, fb *models.Feedback) error {
	return s.submitFeedback(fb, &s.db.ClientFeedback)
}

func (s *Store) SubmitExpertFeedback(ctx context.Context, fb *models.Feedback) error {
	return s.submitFeedback(fb, &s.db.ExpertFeedback)
}

func (s *Store) ListFeedback(ctx context.Context) (client, expert []models.Feedback, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client = append([]models.Feedback{}, s.db.ClientFeedback...)
	expert = append([]models.Feedback{}, s.db.ExpertFeedback...)
	return client, expert, nil
}

// SubmitApplication validates and appends an expert application with
// status pending.
func (s *Store) SubmitApplication(ctx context.Context, app *models.Application) error {
	var missing []string
	if strings.TrimSpace(app.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(app.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(app.Experience) == "" {
		missing = append(missing, "experience")
	}
	if strings.TrimSpace(app.Industry) == "" {
		missing = append(missing, "industry")
	}
	if app.Rate == 0 {
		missing = append(missing, "rate")
	}
	if len(missing) > 0 {
		return &repository.ValidationError{Message: "Missing required fields", Fields: missing}
	}
	if app.Rate < 1000 || app.Rate > 10000 {
		return &repository.ValidationError{Message: "Daily rate must be between $1,000 and $10,000"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	app.ID = s.ids.next()
	app.ApplicationID = code("WC", app.ID)
	app.Status = models.StatusPending
	app.SubmittedDate = time.Now().UTC()
	s.db.Applications = append(s.db.Applications, *app)
	s.persistLocked()
	return nil
}

func (s *Store) ListApplications(ctx context.Context) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application{}, s.db.Applications...), nil
}

// ApproveApplication promotes a pending application into a new active
// directory entry. The application is mutated in place: status approved,
// approval timestamp, back-reference to the new expert id.
func (s *Store) ApproveApplication(ctx context.Context, id int64) (*models.Expert, *models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var app *models.Application
	for i := range s.db.Applications {
		if s.db.Applications[i].ID == id {
			app = &s.db.Applications[i]
			break
		}
	}
	if app == nil {
		return nil, nil, repository.ErrApplicationNotFound
	}
	if app.Status != models.StatusPending {
		return nil, nil, repository.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	newID := s.nextExpertIDLocked()
	expert := models.Expert{
		ID:              newID,
		Name:            app.Name,
		Title:           app.Title,
		Industry:        app.Industry,
		Avatar:          "👤",
		Experience:      fmt.Sprintf("%s years experience", app.Experience),
		ExperienceLevel: app.Experience,
		Rating:          5.0,
		Reviews:         0,
		Price:           app.Rate,
		Projects:        0,
		Skills:          app.Skills,
		Description:     app.Bio,
		LinkedIn:        app.LinkedIn,
		Availability:    app.Availability,
		Bio:             app.Bio,
		IsActive:        true,
		JoinedDate:      now,
		ApprovedDate:    &now,
	}
	if expert.Skills == nil {
		expert.Skills = []string{}
	}
	if expert.Description == "" {
		expert.Description = fmt.Sprintf("Experienced professional in %s", app.Industry)
	}
	if expert.Availability == "" {
		expert.Availability = "part-time"
	}

	s.db.Experts = append(s.db.Experts, expert)
	app.Status = models.StatusApproved
	app.ApprovedDate = &now
	app.ExpertID = &newID
	s.persistLocked()

	appCopy := *app
	return &expert, &appCopy, nil
}

// nextExpertIDLocked allocates max existing id + 1, flooring at 1 when the
// directory is empty.
func (s *Store) nextExpertIDLocked() int64 {
	var max int64
	for i := range s.db.Experts {
		if s.db.Experts[i].ID > max {
			max = s.db.Experts[i].ID
		}
	}
	return max + 1
}

// JoinWaitlist validates and appends a signup. The returned position is a
// display-only number (real size plus a random offset), not a queue rank.
func (s *Store) JoinWaitlist(ctx context.Context, e *models.WaitlistEntry) (int, error) {
	var missing []string
	if strings.TrimSpace(e.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(e.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(e.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return 0, &repository.ValidationError{Message: "Missing required fields", Fields: missing}
	}
	if !strings.Contains(e.Email, "@") || !strings.Contains(e.Email, ".") {
		return 0, &repository.ValidationError{Message: "Valid email address is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.ids.next()
	e.WaitlistID = code("WL", e.ID)
	if e.Source == "" {
		e.Source = "website"
	}
	e.Timestamp = time.Now().UTC()
	s.db.Waitlist = append(s.db.Waitlist, *e)
	s.persistLocked()

	position := len(s.db.Waitlist) + rand.Intn(100) + 150
	return position, nil
}

func (s *Store) WaitlistStats(ctx context.Context) (*models.WaitlistStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	today := 0
	for i := range s.db.Waitlist {
		if !s.db.Waitlist[i].Timestamp.Before(midnight) {
			today++
		}
	}

	return &models.WaitlistStats{
		TotalSignups:   len(s.db.Waitlist) + s.waitlistBase,
		TodaySignups:   today,
		TopCountries:   append([]string{}, topCountries...),
		RecentExperts:  append([]string{}, recentExperts...),
		LaunchProgress: launchProgress,
	}, nil
}

// RequestConnection records a visitor's request to reach an expert and
// returns the referenced expert.
func (s *Store) RequestConnection(ctx context.Context, c *models.Connection) (*models.Expert, error) {
	if c.ExpertID == 0 {
		return nil, &repository.ValidationError{Message: "Expert ID is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expert := s.findActiveExpert(c.ExpertID)
	if expert == nil {
		return nil, repository.ErrExpertNotFound
	}

	c.ID = s.ids.next()
	c.ConnectionID = code("CONN", c.ID)
	c.Status = models.StatusPending
	c.Timestamp = time.Now().UTC()
	s.db.Connections = append(s.db.Connections, *c)
	s.persistLocked()

	cp := *expert
	return &cp, nil
}

// PlatformStats aggregates directory-wide numbers for the stats endpoint.
func (s *Store) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := 0
	var ratingSum float64
	industries := []string{}
	seen := map[string]bool{}
	topSkills := map[string]int{}
	for i := range s.db.Experts {
		e := &s.db.Experts[i]
		if e.IsActive {
			active++
		}
		ratingSum += e.Rating
		if !seen[e.Industry] {
			seen[e.Industry] = true
			industries = append(industries, e.Industry)
		}
		for _, skill := range e.Skills {
			topSkills[skill]++
		}
	}

	avg := "0"
	if len(s.db.Experts) > 0 {
		avg = fmt.Sprintf("%.1f", ratingSum/float64(len(s.db.Experts)))
	}

	return &models.PlatformStats{
		TotalExperts:      active,
		TotalApplications: len(s.db.Applications),
		TotalConnections:  len(s.db.Connections),
		TotalFeedback:     len(s.db.ClientFeedback) + len(s.db.ExpertFeedback),
		AverageRating:     avg,
		Industries:        industries,
		TopSkills:         topSkills,
	}, nil
}
