package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SohamKamathi18/youtube/internal/pipeline"
)

// ProcessRequest is the JSON body of POST /process.
type ProcessRequest struct {
	VideoURL     string `json:"video_url" binding:"required"`
	GeminiAPIKey string `json:"gemini_api_key" binding:"required"`
	WebhookURL   string `json:"webhook_url"`
}

func (s *Server) processURL(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "error": err.Error()})
		return
	}

	sourcePath, err := s.downloadVideo(c.Request.Context(), req.VideoURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status": "failed",
			"stage":  string(pipeline.StageUpload),
			"error":  err.Error(),
		})
		return
	}

	coord := s.newRun(req.GeminiAPIKey)

	// With a webhook the caller gets an immediate acknowledgement and the
	// result is delivered asynchronously.
	if req.WebhookURL != "" {
		requestID := uuid.NewString()
		go s.runAndNotify(coord, sourcePath, req.WebhookURL, requestID)
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "request_id": requestID})
		return
	}

	run, err := coord.Run(c.Request.Context(), sourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failureResponse(run, err))
		return
	}
	c.JSON(http.StatusOK, successResponse(run))
}

func (s *Server) processUpload(c *gin.Context) {
	apiKey := c.PostForm("gemini_api_key")
	if apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "error": "gemini_api_key is required"})
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "error": "video file is required"})
		return
	}

	sourcePath := filepath.Join(s.cfg.Paths.Temp, uuid.NewString()+"_"+filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, sourcePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "failed",
			"stage":  string(pipeline.StageUpload),
			"error":  err.Error(),
		})
		return
	}

	run, err := s.newRun(apiKey).Run(c.Request.Context(), sourcePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failureResponse(run, err))
		return
	}
	c.JSON(http.StatusOK, successResponse(run))
}

// runAndNotify executes the pipeline detached from the request and posts
// the outcome to the caller's webhook.
func (s *Server) runAndNotify(coord pipeline.Coordinator, sourcePath, webhookURL, requestID string) {
	ctx := context.Background()

	run, err := coord.Run(ctx, sourcePath)

	var payload gin.H
	if err != nil {
		payload = failureResponse(run, err)
	} else {
		payload = successResponse(run)
	}
	payload["request_id"] = requestID

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(ctx, "Encode webhook payload for %s: %v", requestID, err)
		return
	}

	resp, err := s.httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		s.logger.Error(ctx, "Webhook delivery for %s failed: %v", requestID, err)
		return
	}
	resp.Body.Close()
	s.logger.Info(ctx, "Webhook delivered for %s: %s", requestID, resp.Status)
}

func successResponse(run *pipeline.Run) gin.H {
	return gin.H{
		"status":                 "success",
		"run_id":                 run.ID,
		"description":            run.Metadata.Description,
		"thumbnail_prompt":       run.Metadata.ThumbnailPrompt,
		"thumbnail_text_overlay": run.Metadata.ThumbnailTextOverlay,
		"master_video_path":      "/outputs/" + filepath.Base(run.MasterPath),
		"short_video_path":       "/outputs/" + filepath.Base(run.ShortPath),
		"subtitle_path":          "/outputs/" + filepath.Base(run.SubtitlePath),
	}
}

func failureResponse(run *pipeline.Run, err error) gin.H {
	resp := gin.H{
		"status": "failed",
		"error":  err.Error(),
	}
	if run != nil {
		resp["run_id"] = run.ID
	}
	if stage, ok := pipeline.FailedStage(err); ok {
		resp["stage"] = string(stage)
	}
	return resp
}
