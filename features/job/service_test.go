package job

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"horizonte/backend/internal/config"
)

type slowPublisher struct {
	sleep     time.Duration
	LastTopic string
}

func (p *slowPublisher) Publish(topic string, body []byte) error {
	p.LastTopic = topic
	time.Sleep(p.sleep)
	return nil
}

type stubRepo struct {
	Repository
	payload []byte
}

func (r *stubRepo) Get(ctx context.Context, id string) (*Job, error) {
	return &Job{ID: id, Payload: r.payload}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubRepo) Count(ctx context.Context) (int, error) { return 10, nil }

func (r *stubRepo) List(ctx context.Context) ([]Job, error) {
	return []Job{{ID: "1"}, {ID: "2"}}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestRetry_PublishesToCollectTopic(t *testing.T) {
	repo := &stubRepo{payload: []byte(`{"max_items":10}`)}
	pub := &slowPublisher{}
	service := NewService(repo, pub, testLogger())

	err := service.Retry(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, config.TopicCollect, pub.LastTopic)
}

func TestRetry_InvalidPayload(t *testing.T) {
	repo := &stubRepo{payload: []byte(`{invalid-json}`)}
	pub := &slowPublisher{}
	service := NewService(repo, pub, testLogger())

	err := service.Retry(context.Background(), "1")
	assert.Error(t, err)
}

func TestRetry_ContextCancellation(t *testing.T) {
	repo := &stubRepo{payload: []byte(`{}`)}
	pub := &slowPublisher{sleep: 100 * time.Millisecond}
	service := NewService(repo, pub, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := service.Retry(ctx, "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestRetry_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 6s publish timeout test in short mode")
	}

	repo := &stubRepo{payload: []byte(`{}`)}
	pub := &slowPublisher{sleep: 6 * time.Second}
	service := NewService(repo, pub, testLogger())

	err := service.Retry(context.Background(), "1")
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}
	assert.Equal(t, "timeout waiting for NSQ publish", err.Error())
}

func TestService_Count(t *testing.T) {
	service := NewService(&stubRepo{}, nil, testLogger())

	count, err := service.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestService_List(t *testing.T) {
	service := NewService(&stubRepo{}, nil, testLogger())

	jobs, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "1", jobs[0].ID)
}
