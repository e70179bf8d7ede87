package mock

import (
	"context"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	ExpertRepo   *mockExpertRepo
	FeedbackRepo *mockFeedbackRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		ExpertRepo:   &mockExpertRepo{},
		FeedbackRepo: &mockFeedbackRepo{},
	}
}

type mockExpertRepo struct {
	Experts  []models.Expert
	Err      error
	StatsErr error
}

func (m *mockExpertRepo) SearchExperts(ctx context.Context, f models.ExpertFilter) ([]models.Expert, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Experts, nil
}

func (m *mockExpertRepo) GetExpert(ctx context.Context, id int64) (*models.Expert, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Experts {
		if m.Experts[i].ID == id {
			return &m.Experts[i], nil
		}
	}
	return nil, m.Err
}

func (m *mockExpertRepo) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	return &models.PlatformStats{TotalExperts: len(m.Experts)}, nil
}

type mockFeedbackRepo struct {
	Stored    []models.Feedback
	SubmitErr error
}

func (m *mockFeedbackRepo) SubmitClientFeedback(ctx context.Context, fb *models.Feedback) error {
	if m.SubmitErr != nil {
		return m.SubmitErr
	}
	fb.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, *fb)
	return nil
}

func (m *mockFeedbackRepo) SubmitExpertFeedback(ctx context.Context, fb *models.Feedback) error {
	return m.SubmitClientFeedback(ctx, fb)
}

func (m *mockFeedbackRepo) ListFeedback(ctx context.Context) ([]models.Feedback, []models.Feedback, error) {
	if m.SubmitErr != nil {
		return nil, nil, m.SubmitErr
	}
	return m.Stored, nil, nil
}
