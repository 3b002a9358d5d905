package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// downloadVideo fetches a remote video into the temp directory and returns
// the local path. The filename is taken from the URL path; anything without
// a recognizable video extension falls back to a generic name.
func (s *Server) downloadVideo(ctx context.Context, rawURL string) (string, error) {
	filename := filenameFromURL(rawURL)
	destPath := filepath.Join(s.cfg.Paths.Temp, uuid.NewString()+"_"+filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download video: unexpected status %s", resp.Status)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		dst.Close()
		os.Remove(destPath)
		return "", fmt.Errorf("download video: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("download video: %w", err)
	}

	return destPath, nil
}

func filenameFromURL(rawURL string) string {
	name := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		name = path.Base(parsed.Path)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v":
		return name
	default:
		return "downloaded_video.mp4"
	}
}
