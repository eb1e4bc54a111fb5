package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/zoo-api/internal/adapters/metrics"
	"github.com/bnema/zoo-api/internal/adapters/repo/jsonfile"
	"github.com/bnema/zoo-api/internal/application"
	"github.com/bnema/zoo-api/internal/domain"
	"github.com/bnema/zoo-api/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animalsFixture = `{
  "animals": [
    {"id": "0", "name": "Sarah", "species": "bear", "diet": "carnivore", "personalityTraits": ["hungry", "zany"]},
    {"id": "1", "name": "Noel", "species": "bear", "diet": "herbivore", "personalityTraits": ["impish", "sassy", "brave"]},
    {"id": "2", "name": "Erica", "species": "gorilla", "diet": "omnivore", "personalityTraits": ["hungry", "zany", "brave"]}
  ]
}`

const zookeepersFixture = `{
  "zookeepers": [
    {"id": "0", "name": "Raksha", "age": 31, "favoriteAnimal": "penguin"},
    {"id": "1", "name": "Isabella", "age": 67, "favoriteAnimal": "bear"}
  ]
}`

type testServer struct {
	handler http.Handler
	dataDir string
	metrics *metrics.Recorder
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, jsonfile.AnimalsFile), []byte(animalsFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, jsonfile.ZookeepersFile), []byte(zookeepersFixture), 0o644))

	animals, keepers, err := jsonfile.Open(dataDir)
	require.NoError(t, err)

	recorder := metrics.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := application.NewService(animals, keepers,
		application.WithLogger(logger),
		application.WithCreatedRecorder(recorder),
	)
	server := NewServer(service, ServerOptions{Logger: logger, Metrics: recorder})

	return testServer{handler: server.Handler(), dataDir: dataDir, metrics: recorder}
}

func (ts testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListAnimals(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "no query", query: "", want: []string{"Sarah", "Noel", "Erica"}},
		{name: "diet", query: "?diet=herbivore", want: []string{"Noel"}},
		{name: "species", query: "?species=bear", want: []string{"Sarah", "Noel"}},
		{name: "single trait", query: "?personalityTraits=brave", want: []string{"Noel", "Erica"}},
		{name: "all traits", query: "?personalityTraits=hungry&personalityTraits=brave", want: []string{"Erica"}},
		{name: "unknown key ignored", query: "?color=brown", want: []string{"Sarah", "Noel", "Erica"}},
		{name: "no match", query: "?name=Nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals"+tt.query, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			animals := decodeBody[[]AnimalView](t, rec)
			names := make([]string, 0, len(animals))
			for _, animal := range animals {
				names = append(names, animal.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGetAnimal(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, AnimalView{
		ID:                "2",
		Name:              "Erica",
		Species:           "gorilla",
		Diet:              "omnivore",
		PersonalityTraits: []string{"hungry", "zany", "brave"},
	}, decodeBody[AnimalView](t, rec))

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateAnimal(t *testing.T) {
	ts := newTestServer(t)

	body := `{"id": "bogus", "name": "Raksha", "species": "human", "diet": "omnivore", "personalityTraits": ["calm"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[AnimalView](t, rec)
	assert.Equal(t, "3", created.ID)
	assert.Equal(t, "Raksha", created.Name)

	data, err := os.ReadFile(filepath.Join(ts.dataDir, jsonfile.AnimalsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"id\": \"3\"")
	assert.Contains(t, string(data), "\"name\": \"Raksha\"")

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[AnimalView](t, rec))
}

func TestCreateAnimalRejectsInvalidBodies(t *testing.T) {
	ts := newTestServer(t)

	bodies := []string{
		`{"name": "Raksha", "species": "human", "diet": "omnivore", "personalityTraits": "calm"}`,
		`{"name": "Raksha"}`,
		`{"name": "Raksha",`,
		`["not", "an", "object"]`,
		``,
		`{"name": "X", "species": "owl", "diet": "carnivore", "personalityTraits": []} trailing`,
		`{"name": "X", "species": "owl", "diet": "carnivore", "personalityTraits": []}{}`,
	}

	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := ts.do(t, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "The animal is not properly formatted.", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	}

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals", nil))
	assert.Len(t, decodeBody[[]AnimalView](t, rec), 3)
}

func TestCreateAnimalFromForm(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{
		"name":                {"Ghost"},
		"species":             {"owl"},
		"diet":                {"carnivore"},
		"personalityTraits[]": {"quiet"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"quiet"}, decodeBody[AnimalView](t, rec).PersonalityTraits)

	form.Del("personalityTraits[]")
	form.Set("personalityTraits", "quiet")
	req = httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec = ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAnimalFromFormMergesScalarAndArrayKeys(t *testing.T) {
	ts := newTestServer(t)

	body := "personalityTraits%5B%5D=quiet&personalityTraits=calm&name=Ghost&species=owl&diet=carnivore&personalityTraits%5B%5D=wise"
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := ts.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"calm", "quiet", "wise"}, decodeBody[AnimalView](t, rec).PersonalityTraits)
	}
}

func TestZookeeperRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/zookeepers?age=31", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []ZookeeperView{{ID: "0", Name: "Raksha", Age: 31, FavoriteAnimal: "penguin"}}, decodeBody[[]ZookeeperView](t, rec))

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/zookeepers/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Isabella", decodeBody[ZookeeperView](t, rec).Name)

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/zookeepers/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/zookeepers", strings.NewReader(`{"name": "Isabella", "age": "67", "favoriteAnimal": "bear"}`))
	rec = ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The zookeeper is not properly formatted.", rec.Body.String())

	for _, age := range []string{"1e20", "-1e20", "9223372036854775808"} {
		req = httptest.NewRequest(http.MethodPost, "/api/zookeepers", strings.NewReader(`{"name": "Big", "age": `+age+`, "favoriteAnimal": "bear"}`))
		rec = ts.do(t, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, age)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/zookeepers", strings.NewReader(`{"name": "Darlene", "age": 44, "favoriteAnimal": "gorilla"}`))
	rec = ts.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ZookeeperView{ID: "2", Name: "Darlene", Age: 44, FavoriteAnimal: "gorilla"}, decodeBody[ZookeeperView](t, rec))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodDelete, "/api/animals/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", decodeBody[APIError](t, rec).Error)
}

func TestRequestIDAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/animals", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := ts.do(t, req)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/animals/1", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	create := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(`{"name": "Raksha", "species": "human", "diet": "omnivore", "personalityTraits": []}`))
	require.Equal(t, http.StatusOK, ts.do(t, create).Code)

	rec = ts.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `zoo_http_requests_total{code="200",method="GET",route="/api/animals"} 1`)
	assert.Contains(t, body, `zoo_http_requests_total{code="200",method="GET",route="/api/animals/{id}"} 1`)
	assert.Contains(t, body, `zoo_records_created_total{kind="animal"} 1`)
}

func TestMetricsCollapseUnknownMethods(t *testing.T) {
	ts := newTestServer(t)

	for _, method := range []string{"FOOBAR", "BREW", "PROPFIND"} {
		rec := ts.do(t, httptest.NewRequest(method, "/api/animals", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	}

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `zoo_http_requests_total{code="405",method="other",route="/api/animals"} 3`)
	assert.NotContains(t, body, "FOOBAR")
	assert.NotContains(t, body, "PROPFIND")
}

func TestMethodLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", methodLabel(http.MethodGet))
	assert.Equal(t, "DELETE", methodLabel(http.MethodDelete))
	assert.Equal(t, "other", methodLabel("get"))
	assert.Equal(t, "other", methodLabel("FOOBAR"))
}

func TestHealthz(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))

	server := NewServer(stubService{}, ServerOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clock,
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HealthView{Status: "ok", Timestamp: "2026-10-15T09:30:00Z"}, decodeBody[HealthView](t, rec))
}

func TestStorageFailureIsInternalError(t *testing.T) {
	var logs bytes.Buffer
	server := NewServer(stubService{err: errors.New("disk full")}, ServerOptions{
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/animals", strings.NewReader(`{"name": "Raksha", "species": "human", "diet": "omnivore", "personalityTraits": []}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody[APIError](t, rec).Error)
	assert.Contains(t, logs.String(), "disk full")
}

func TestPublicDirIsServed(t *testing.T) {
	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>Zoo</h1>"), 0o644))

	server := NewServer(stubService{}, ServerOptions{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		PublicDir: publicDir,
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Zoo</h1>")
}

func TestRunStopsWhenContextIsCanceled(t *testing.T) {
	server := NewServer(stubService{}, ServerOptions{
		Addr:   "127.0.0.1:0",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type stubService struct {
	err error
}

func (s stubService) ListAnimals(context.Context, domain.Query) ([]domain.Animal, error) {
	return nil, s.err
}

func (s stubService) GetAnimal(context.Context, string) (domain.Animal, error) {
	return domain.Animal{}, s.err
}

func (s stubService) CreateAnimal(context.Context, domain.Candidate) (domain.Animal, error) {
	return domain.Animal{}, s.err
}

func (s stubService) ListZookeepers(context.Context, domain.Query) ([]domain.Zookeeper, error) {
	return nil, s.err
}

func (s stubService) GetZookeeper(context.Context, string) (domain.Zookeeper, error) {
	return domain.Zookeeper{}, s.err
}

func (s stubService) CreateZookeeper(context.Context, domain.Candidate) (domain.Zookeeper, error) {
	return domain.Zookeeper{}, s.err
}
