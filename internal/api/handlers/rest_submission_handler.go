package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"goahomes/api/internal/models"
	"goahomes/api/internal/services"
	"goahomes/api/internal/tasks"
	"goahomes/api/internal/utils"
)

// RestSubmissionHandler handles REST requests for the moderation queue.
type RestSubmissionHandler struct {
	submissionService services.ISubmissionService
	taskClient        *asynq.Client
}

// NewRestSubmissionHandler creates a new RestSubmissionHandler. taskClient
// may be nil, in which case notifications are skipped.
func NewRestSubmissionHandler(submissionService services.ISubmissionService, taskClient *asynq.Client) *RestSubmissionHandler {
	return &RestSubmissionHandler{
		submissionService: submissionService,
		taskClient:        taskClient,
	}
}

// CreateSubmission handles POST /v1/submissions
func (h *RestSubmissionHandler) CreateSubmission(c *gin.Context) {
	var draft models.SubmissionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	submission, err := h.submissionService.CreateSubmission(c.Request.Context(), &draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	task, taskErr := tasks.NewSubmissionReceivedTask(tasks.SubmissionReceivedPayload{
		SubmissionID: submission.ID.String(),
		OwnerName:    submission.OwnerName,
		Title:        submission.Title,
		Location:     submission.Location,
	})
	h.enqueue(c, task, taskErr)

	c.JSON(http.StatusCreated, submission)
}

// ListSubmissions handles GET /v1/admin/submissions
func (h *RestSubmissionHandler) ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	result, err := h.submissionService.ListSubmissions(c.Request.Context(), status, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSubmission handles GET /v1/admin/submissions/:id
func (h *RestSubmissionHandler) GetSubmission(c *gin.Context) {
	submissionID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID format"})
		return
	}

	submission, err := h.submissionService.FindSubmissionByID(c.Request.Context(), submissionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

type decideRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// DecideSubmission handles PATCH /v1/admin/submissions/:id
func (h *RestSubmissionHandler) DecideSubmission(c *gin.Context) {
	submissionID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID format"})
		return
	}

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	submission, err := h.submissionService.DecideSubmission(c.Request.Context(), submissionID, req.Status, req.AdminNotes)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	task, taskErr := tasks.NewSubmissionDecidedTask(tasks.SubmissionDecidedPayload{
		SubmissionID: submission.ID.String(),
		OwnerName:    submission.OwnerName,
		OwnerEmail:   submission.Email,
		Title:        submission.Title,
		Status:       submission.Status,
		AdminNotes:   submission.AdminNotes,
	})
	h.enqueue(c, task, taskErr)

	c.JSON(http.StatusOK, submission)
}

// PublishSubmission handles POST /v1/admin/submissions/:id/publish
func (h *RestSubmissionHandler) PublishSubmission(c *gin.Context) {
	submissionID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID format"})
		return
	}

	listing, err := h.submissionService.PublishSubmission(c.Request.Context(), submissionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// DeleteSubmission handles DELETE /v1/admin/submissions/:id
func (h *RestSubmissionHandler) DeleteSubmission(c *gin.Context) {
	submissionID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID format"})
		return
	}

	if err := h.submissionService.DeleteSubmission(c.Request.Context(), submissionID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// enqueue queues a notification task; failures are logged, never surfaced to
// the client.
func (h *RestSubmissionHandler) enqueue(c *gin.Context, task *asynq.Task, err error) {
	if h.taskClient == nil {
		return
	}
	if err != nil {
		log.Printf("Failed to build notification task: %v", err)
		return
	}
	if _, err := h.taskClient.EnqueueContext(c.Request.Context(), task); err != nil {
		log.Printf("Failed to enqueue notification task %s: %v", task.Type(), err)
	}
}
