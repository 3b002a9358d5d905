package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamKamathi18/youtube/internal/analyzer"
	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/internal/pipeline"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCoordinator struct {
	run    *pipeline.Run
	err    error
	calls  int
	apiKey string
}

func (m *mockCoordinator) Run(ctx context.Context, sourcePath string) (*pipeline.Run, error) {
	m.calls++
	if m.err != nil {
		return m.run, m.err
	}
	return m.run, nil
}

func testServer(t *testing.T, coord *mockCoordinator) *Server {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{BinaryPath: "./whisper", ModelPath: "model.bin"},
		Paths: config.PathsConfig{
			Uploads: filepath.Join(root, "uploads"),
			Outputs: filepath.Join(root, "outputs"),
			Temp:    filepath.Join(root, "temp"),
		},
	}
	require.NoError(t, cfg.Validate())
	for _, dir := range []string{cfg.Paths.Uploads, cfg.Paths.Outputs, cfg.Paths.Temp} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	factory := func(apiKey string) pipeline.Coordinator {
		coord.apiKey = apiKey
		return coord
	}
	return New(cfg, logger.New("error"), factory)
}

func completedRun() *pipeline.Run {
	return &pipeline.Run{
		ID:    "run-1",
		State: pipeline.StateComplete,
		Metadata: &analyzer.Metadata{
			Description:          "D",
			ThumbnailPrompt:      "P",
			ThumbnailTextOverlay: "T",
			ViralSegment:         analyzer.ViralSegment{Start: 0, End: 2},
		},
		SubtitlePath: "/data/outputs/talk.srt",
		MasterPath:   "/data/outputs/master_talk.mp4",
		ShortPath:    "/data/outputs/short_talk.mp4",
	}
}

func TestHTTPClientBounded(t *testing.T) {
	srv := testServer(t, &mockCoordinator{run: completedRun()})

	// Webhook delivery runs detached from any request, so the shared
	// client itself must carry the deadline.
	assert.NotZero(t, srv.httpClient.Timeout)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, &mockCoordinator{run: completedRun()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessMissingFields(t *testing.T) {
	srv := testServer(t, &mockCoordinator{run: completedRun()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process", bytes.NewBufferString(`{"video_url": ""}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessSuccess(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake video bytes"))
	}))
	defer origin.Close()

	coord := &mockCoordinator{run: completedRun()}
	srv := testServer(t, coord)

	body, _ := json.Marshal(map[string]string{
		"video_url":      origin.URL + "/talk.mp4",
		"gemini_api_key": "test-key",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, coord.calls)
	assert.Equal(t, "test-key", coord.apiKey)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "D", resp["description"])
	assert.Equal(t, "P", resp["thumbnail_prompt"])
	assert.Equal(t, "T", resp["thumbnail_text_overlay"])
	assert.Equal(t, "/outputs/master_talk.mp4", resp["master_video_path"])
	assert.Equal(t, "/outputs/short_talk.mp4", resp["short_video_path"])
	assert.Equal(t, "/outputs/talk.srt", resp["subtitle_path"])
}

func TestProcessStageFailure(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake video bytes"))
	}))
	defer origin.Close()

	failed := &pipeline.Run{ID: "run-2", State: pipeline.StateFailed, FailedStage: pipeline.StageAnalyze}
	coord := &mockCoordinator{
		run: failed,
		err: &pipeline.StageError{Stage: pipeline.StageAnalyze, Err: analyzer.ErrUnavailable},
	}
	srv := testServer(t, coord)

	body, _ := json.Marshal(map[string]string{
		"video_url":      origin.URL + "/talk.mp4",
		"gemini_api_key": "test-key",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp["status"])
	assert.Equal(t, "analysis", resp["stage"])
	assert.Contains(t, resp["error"], "analysis unavailable")
}

func TestProcessDownloadFailure(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer origin.Close()

	coord := &mockCoordinator{run: completedRun()}
	srv := testServer(t, coord)

	body, _ := json.Marshal(map[string]string{
		"video_url":      origin.URL + "/missing.mp4",
		"gemini_api_key": "test-key",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 0, coord.calls)
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain mp4", "https://example.com/videos/talk.mp4", "talk.mp4"},
		{"query string", "https://example.com/talk.mp4?token=abc", "talk.mp4"},
		{"mov", "https://example.com/raw.mov", "raw.mov"},
		{"no extension", "https://example.com/watch", "downloaded_video.mp4"},
		{"html page", "https://example.com/index.html", "downloaded_video.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromURL(tt.url))
		})
	}
}
