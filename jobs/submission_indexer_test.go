package jobs

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anket.link/configs"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
}

// indexerServer her isteği kaydeden ve sıradaki hazır cevabı dönen sahte Elastic'tir.
type indexerServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	replies  []func(w http.ResponseWriter)
	server   *httptest.Server
}

func newIndexerServer(t *testing.T, replies ...func(w http.ResponseWriter)) *indexerServer {
	t.Helper()
	s := &indexerServer{replies: replies}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.requests = append(s.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
		})
		if len(s.requests) > len(s.replies) {
			t.Errorf("beklenenden fazla istek geldi: %d. istek %s %s", len(s.requests), r.Method, r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.replies[len(s.requests)-1](w)
	}))
	t.Cleanup(s.server.Close)
	return s
}

func (s *indexerServer) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func (s *indexerServer) config() configs.ElasticsearchConfig {
	return configs.ElasticsearchConfig{
		Enabled: true,
		Host:    s.server.URL,
		Index:   "survey_submissions",
		Timeout: 2 * time.Second,
	}
}

func reply(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func sampleDoc() SubmissionDocument {
	return SubmissionDocument{
		SurveyID:    1,
		ResponderID: 7,
		SubmittedAt: "2026-08-31T10:00:00Z",
		IP:          "203.0.113.9",
		UserAgent:   "go-test",
	}
}

func TestIndexer_DisabledConfigSendsNothing(t *testing.T) {
	s := newIndexerServer(t)

	cfg := s.config()
	cfg.Enabled = false
	NewSubmissionIndexer(cfg).Index(sampleDoc())

	assert.Empty(t, s.recorded())
}

func TestIndexer_SuccessIsSinglePost(t *testing.T) {
	s := newIndexerServer(t, reply(http.StatusCreated, `{"result":"created"}`))

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	reqs := s.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/survey_submissions/_doc", reqs[0].Path)
}

func TestIndexer_MissingIndexCreatesOnceAndRetriesOnce(t *testing.T) {
	s := newIndexerServer(t,
		reply(http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`),
		reply(http.StatusOK, `{"acknowledged":true}`),
		reply(http.StatusCreated, `{"result":"created"}`),
	)

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	reqs := s.recorded()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/survey_submissions/_doc", reqs[0].Path)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
	assert.Equal(t, "/survey_submissions", reqs[1].Path)
	assert.Equal(t, http.MethodPost, reqs[2].Method)
	assert.Equal(t, "/survey_submissions/_doc", reqs[2].Path)
}

func TestIndexer_MissingIndexDetectedInLongBody(t *testing.T) {
	// Hata işareti, log kırpma sınırının (600 bayt) ötesinde de olsa tanınmalı.
	longBody := fmt.Sprintf(`{"error":{"root_cause":"%s","type":"index_not_found_exception"}}`,
		strings.Repeat("x", 700))
	s := newIndexerServer(t,
		reply(http.StatusNotFound, longBody),
		reply(http.StatusOK, `{"acknowledged":true}`),
		reply(http.StatusCreated, `{"result":"created"}`),
	)

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	reqs := s.recorded()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
}

func TestIndexer_RetryFailureDoesNotRecurse(t *testing.T) {
	// Tekrar deneme de 404 dönse bile ikinci bir indeks oluşturma denenmez.
	s := newIndexerServer(t,
		reply(http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`),
		reply(http.StatusOK, `{"acknowledged":true}`),
		reply(http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`),
	)

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	assert.Len(t, s.recorded(), 3)
}

func TestIndexer_CreateIndexFailureStops(t *testing.T) {
	s := newIndexerServer(t,
		reply(http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`),
		reply(http.StatusBadRequest, `{"error":"mapping rejected"}`),
	)

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	// İndeks oluşturulamayınca doküman tekrar denenmez.
	assert.Len(t, s.recorded(), 2)
}

func TestIndexer_AuthFailureIsSingleRequest(t *testing.T) {
	s := newIndexerServer(t, reply(http.StatusUnauthorized, `{"error":"security_exception"}`))

	NewSubmissionIndexer(s.config()).Index(sampleDoc())

	assert.Len(t, s.recorded(), 1)
}

func TestIndexer_BasicAuthHeaderWhenCredentialsSet(t *testing.T) {
	s := newIndexerServer(t, reply(http.StatusCreated, `{"result":"created"}`))

	cfg := s.config()
	cfg.Username = "elastic"
	cfg.Password = "changeme"
	NewSubmissionIndexer(cfg).Index(sampleDoc())

	reqs := s.recorded()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Auth, "Basic ")
}
