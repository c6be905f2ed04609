package handler

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"mediaguard/internal/domain"
	"mediaguard/internal/service"
)

// EventHandler replays storage events through the notifier workflow.
type EventHandler struct {
	svc service.NotifierService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc service.NotifierService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ClassifyRequest is the body of POST /v1/classify.
type ClassifyRequest struct {
	Bucket string `json:"bucket" binding:"required"`
	Key    string `json:"key" binding:"required"`
}

// ClassifyResponse reports the decision without sending an alert.
type ClassifyResponse struct {
	Object   string          `json:"object"`
	Decision domain.Decision `json:"decision"`
	Labels   domain.LabelSet `json:"labels"`
}

// HandleS3Event handles POST /v1/events/s3
func (h *EventHandler) HandleS3Event(c *gin.Context) {
	var evt events.S3Event
	if err := c.ShouldBindJSON(&evt); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be an S3 event notification")
		return
	}

	resp, err := h.svc.HandleEvent(c.Request.Context(), evt)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, resp)
}

// Classify handles POST /v1/classify
func (h *EventHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "bucket and key are required")
		return
	}

	ref := domain.ObjectRef{Bucket: req.Bucket, Key: req.Key}
	decision, labels, err := h.svc.Classify(c.Request.Context(), ref)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ClassifyResponse{Object: ref.URI(), Decision: decision, Labels: labels})
}
