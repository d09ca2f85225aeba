package worker_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"horizonte/backend/features/job"
	"horizonte/backend/internal/feed"
	"horizonte/backend/internal/tagging"
	"horizonte/backend/internal/worker"
)

// Mocks

type MockFeedSource struct{ mock.Mock }

func (m *MockFeedSource) FetchAll(ctx context.Context, feeds []string, maxItems int) []feed.Item {
	args := m.Called(ctx, feeds, maxItems)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]feed.Item)
}

func (m *MockFeedSource) ScrapeList(ctx context.Context, pageURL, selector string) ([]feed.Item, error) {
	args := m.Called(ctx, pageURL, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feed.Item), args.Error(1)
}

type MockSignalStore struct{ mock.Mock }

func (m *MockSignalStore) ReplaceAll(ctx context.Context, signals []worker.SignalDTO) error {
	args := m.Called(ctx, signals)
	return args.Error(0)
}

type MockConceptLister struct{ mock.Mock }

func (m *MockConceptLister) ListConcepts(ctx context.Context) ([]tagging.Concept, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tagging.Concept), args.Error(1)
}

type MockJobRepo struct{ mock.Mock }

func (m *MockJobRepo) Save(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
func (m *MockJobRepo) List(ctx context.Context) ([]job.Job, error)          { return nil, nil }
func (m *MockJobRepo) Get(ctx context.Context, id string) (*job.Job, error) { return nil, nil }
func (m *MockJobRepo) Delete(ctx context.Context, id string) error          { return nil }
func (m *MockJobRepo) Count(ctx context.Context) (int, error)               { return 0, nil }
