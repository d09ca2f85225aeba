package worker_test

import (
	"encoding/json"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"horizonte/backend/features/job"
	"horizonte/backend/internal/feed"
	"horizonte/backend/internal/tagging"
	"horizonte/backend/internal/worker"
)

var testFeeds = []string{"https://feeds.example.org/agro.xml"}

func newCollectConsumer(src *MockFeedSource, store *MockSignalStore, concepts *MockConceptLister, jobs *MockJobRepo, fallbacks []feed.FallbackPage) *worker.CollectConsumer {
	return worker.NewCollectConsumer(src, store, concepts, jobs, testFeeds, fallbacks, 48)
}

func TestCollectConsumer_HandleMessage(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	consumer := newCollectConsumer(src, store, concepts, jobs, nil)

	body, _ := json.Marshal(worker.CollectTaskPayload{CorrelationID: "corr-1"})
	msg := &nsq.Message{Body: body}

	src.On("FetchAll", mock.Anything, testFeeds, 48).Return([]feed.Item{
		{Title: "Seca atinge a safra de milho", Link: "https://news.example.org/1"},
		{Title: "Exportações de carne crescem", Link: "https://news.example.org/2"},
	})
	concepts.On("ListConcepts", mock.Anything).Return([]tagging.Concept{
		{Name: "Clima", Keywords: []string{"seca"}},
	}, nil)
	store.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(signals []worker.SignalDTO) bool {
		if len(signals) != 2 {
			return false
		}
		first := signals[0]
		return first.Title == "Seca atinge a safra de milho" &&
			first.Source == "https://news.example.org/1" &&
			len(first.Concepts) == 1 && first.Concepts[0] == "Clima" &&
			len(signals[1].Concepts) == 0
	})).Return(nil)

	err := consumer.HandleMessage(msg)

	assert.NoError(t, err)
	src.AssertExpectations(t)
	store.AssertExpectations(t)
	concepts.AssertExpectations(t)
}

func TestCollectConsumer_PoisonPill(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	consumer := newCollectConsumer(src, store, concepts, jobs, nil)

	msg := &nsq.Message{Body: []byte("invalid json")}

	err := consumer.HandleMessage(msg)
	assert.NoError(t, err) // Should return nil (ack)
	src.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectConsumer_EmptyBody(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	consumer := newCollectConsumer(src, store, concepts, jobs, nil)

	err := consumer.HandleMessage(&nsq.Message{Body: nil})
	assert.NoError(t, err)
	src.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectConsumer_FallbackScrape(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	fallbacks := []feed.FallbackPage{
		{URL: "https://www.gov.br/agricultura/pt-br", Selector: "a[href*='/assuntos/noticias/']"},
	}
	consumer := newCollectConsumer(src, store, concepts, jobs, fallbacks)

	body, _ := json.Marshal(worker.CollectTaskPayload{})
	msg := &nsq.Message{Body: body}

	src.On("FetchAll", mock.Anything, testFeeds, 48).Return([]feed.Item{})
	src.On("ScrapeList", mock.Anything, fallbacks[0].URL, fallbacks[0].Selector).Return([]feed.Item{
		{Title: "Plano Safra é anunciado", Link: "https://www.gov.br/n/1"},
	}, nil)
	concepts.On("ListConcepts", mock.Anything).Return(nil, nil)
	store.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(signals []worker.SignalDTO) bool {
		return len(signals) == 1 && signals[0].Title == "Plano Safra é anunciado"
	})).Return(nil)

	err := consumer.HandleMessage(msg)

	assert.NoError(t, err)
	src.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCollectConsumer_NothingCollected_SavesFailedJob(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	fallbacks := []feed.FallbackPage{
		{URL: "https://www.gov.br/agricultura/pt-br", Selector: "a"},
	}
	consumer := newCollectConsumer(src, store, concepts, jobs, fallbacks)

	body, _ := json.Marshal(worker.CollectTaskPayload{})
	msg := &nsq.Message{Body: body}

	src.On("FetchAll", mock.Anything, testFeeds, 48).Return(nil)
	src.On("ScrapeList", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	jobs.On("Save", mock.Anything, mock.MatchedBy(func(j *job.Job) bool {
		return j.Handler == "collector" && j.Error != ""
	})).Return(nil)

	err := consumer.HandleMessage(msg)

	assert.NoError(t, err) // dropped, not retried
	jobs.AssertExpectations(t)
	store.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestCollectConsumer_StoreError_Retries(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	consumer := newCollectConsumer(src, store, concepts, jobs, nil)

	body, _ := json.Marshal(worker.CollectTaskPayload{})
	msg := &nsq.Message{Body: body}

	src.On("FetchAll", mock.Anything, testFeeds, 48).Return([]feed.Item{
		{Title: "Título", Link: "https://news.example.org/1"},
	})
	concepts.On("ListConcepts", mock.Anything).Return(nil, nil)
	store.On("ReplaceAll", mock.Anything, mock.Anything).Return(assert.AnError)

	err := consumer.HandleMessage(msg)
	assert.Error(t, err)
}

func TestCollectConsumer_MaxItemsOverride(t *testing.T) {
	src := new(MockFeedSource)
	store := new(MockSignalStore)
	concepts := new(MockConceptLister)
	jobs := new(MockJobRepo)
	consumer := newCollectConsumer(src, store, concepts, jobs, nil)

	body, _ := json.Marshal(worker.CollectTaskPayload{MaxItems: 5})
	msg := &nsq.Message{Body: body}

	src.On("FetchAll", mock.Anything, testFeeds, 5).Return([]feed.Item{
		{Title: "Título", Link: "https://news.example.org/1"},
	})
	concepts.On("ListConcepts", mock.Anything).Return(nil, nil)
	store.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)

	err := consumer.HandleMessage(msg)
	assert.NoError(t, err)
	src.AssertExpectations(t)
}
