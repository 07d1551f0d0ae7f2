package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/kmapd/internal/combiner"
	"github.com/fyrsmithlabs/kmapd/internal/grammar"
	"github.com/fyrsmithlabs/kmapd/internal/groovy"
	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
	"github.com/fyrsmithlabs/kmapd/internal/mapping"
	"github.com/fyrsmithlabs/kmapd/internal/resolver"
	"github.com/fyrsmithlabs/kmapd/internal/testcase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	table := mapping.NewTable(
		mapping.PrimaryRecords(),
		mapping.SecondaryRecords(),
		mapping.DefaultCombinations(),
	)
	classifier := lexicon.NewClassifier(lexicon.DefaultVocabulary())
	analyzer := grammar.NewAnalyzer(grammar.DefaultCatalog(), classifier)
	engine := combiner.NewEngine(combiner.NewDecomposer(classifier, table))
	renderer := groovy.New()

	res, err := resolver.New(resolver.Options{
		Table:    table,
		Analyzer: analyzer,
		Engine:   engine,
		Renderer: renderer,
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)

	generator := testcase.NewGenerator(res, renderer, zap.NewNop())

	srv, err := NewServer(res, generator, zap.NewNop(), nil)
	require.NoError(t, err)
	return srv
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_MissingDependencies(t *testing.T) {
	srv := newTestServer(t)

	_, err := NewServer(nil, nil, nil, nil)
	assert.ErrorContains(t, err, "resolver")

	_, err = NewServer(srv.resolver, nil, nil, nil)
	assert.ErrorContains(t, err, "generator")

	_, err = NewServer(srv.resolver, srv.generator, nil, nil)
	assert.ErrorContains(t, err, "logger")
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestServer_Resolve(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/resolve", `{"phrase":"클릭"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resolver.Resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "Click", resp.Action)
	assert.NotEmpty(t, resp.Script)
}

func TestServer_Resolve_MissingPhrase(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/resolve", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Resolve_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/resolve", `{"phrase":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ResolveBatch(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/resolve/batch",
		`{"phrases":["클릭","입력"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []resolver.Resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Click", resp[0].Action)
	assert.Equal(t, "Set Text", resp[1].Action)
}

func TestServer_ResolveBatch_Empty(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/resolve/batch", `{"phrases":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Testcase_Script(t *testing.T) {
	srv := newTestServer(t)

	body := `{"content":"Steps:\n1. 버튼 클릭\nExpected Result:\n1. 결과 확인"}`
	rec := doRequest(srv, http.MethodPost, "/api/v1/testcase", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestcaseScriptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Script, "@Test")
	assert.Contains(t, resp.Script, "WebUI.closeBrowser()")
}

func TestServer_Testcase_Analyze(t *testing.T) {
	srv := newTestServer(t)

	body := `{"content":"Steps:\n1. 버튼 클릭","mode":"analyze"}`
	rec := doRequest(srv, http.MethodPost, "/api/v1/testcase", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp testcase.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalPhrases)
	assert.Equal(t, 1, resp.Mapped)
}

func TestServer_Testcase_EmptyContent(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/v1/testcase", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Statistics(t *testing.T) {
	srv := newTestServer(t)

	doRequest(srv, http.MethodPost, "/api/v1/resolve", `{"phrase":"클릭"}`)

	rec := doRequest(srv, http.MethodGet, "/api/v1/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats resolver.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, uint64(1), stats.TotalQueries)
}

func TestServer_ClearCache(t *testing.T) {
	srv := newTestServer(t)

	doRequest(srv, http.MethodPost, "/api/v1/resolve", `{"phrase":"클릭"}`)

	rec := doRequest(srv, http.MethodDelete, "/api/v1/cache", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	stats := srv.resolver.Statistics()
	assert.Equal(t, 0, stats.CacheSize)
}
