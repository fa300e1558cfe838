package timesheets_controllers

import (
	"net/http"

	"orilla/internal/apperrors"
	timesheets_dto "orilla/internal/features/timesheets/dto"
	timesheets_services "orilla/internal/features/timesheets/services"
	users_middleware "orilla/internal/features/users/middleware"
	users_models "orilla/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkflowController struct {
	workflowService *timesheets_services.SheetWorkflowService
}

func (c *WorkflowController) RegisterRoutes(router *gin.RouterGroup) {
	sheetRoutes := router.Group("/time-sheets")

	sheetRoutes.POST("/:id/submit", c.SubmitSheet)
	sheetRoutes.POST("/:id/approve", c.ApproveSheet)
	sheetRoutes.POST("/:id/reject", c.RejectSheet)
	sheetRoutes.POST("/:id/revert", c.RevertToDraft)

	entryRoutes := router.Group("/time-entries")

	entryRoutes.POST("/:id/approve", c.ApproveEntry)
	entryRoutes.POST("/:id/question", c.QuestionEntry)
	entryRoutes.POST("/:id/resolve", c.ResolveQuestion)
	entryRoutes.GET("/:id/permissions", c.GetEntryPermissions)
}

// SubmitSheet
// @Summary Submit a draft time sheet for review
// @Tags time-sheet-workflow
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-sheets/{id}/submit [post]
func (c *WorkflowController) SubmitSheet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sheetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sheet ID"})
		return
	}

	if err := c.workflowService.SubmitSheet(sheetID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time sheet submitted successfully"})
}

// ApproveSheet
// @Summary Approve a submitted time sheet
// @Description Requires every member entry to be approved
// @Tags time-sheet-workflow
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-sheets/{id}/approve [post]
func (c *WorkflowController) ApproveSheet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sheetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sheet ID"})
		return
	}

	if err := c.workflowService.ApproveSheet(sheetID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time sheet approved successfully"})
}

// RejectSheet
// @Summary Reject a submitted time sheet
// @Tags time-sheet-workflow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Param request body timesheets_dto.RejectTimeSheetRequestDTO false "Optional rejection reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-sheets/{id}/reject [post]
func (c *WorkflowController) RejectSheet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sheetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sheet ID"})
		return
	}

	// The rejection reason is optional, a bodyless reject is valid.
	var request timesheets_dto.RejectTimeSheetRequestDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := c.workflowService.RejectSheet(sheetID, &request, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time sheet rejected"})
}

// RevertToDraft
// @Summary Revert a time sheet to draft
// @Description Resets every member entry to pending and clears review marks
// @Tags time-sheet-workflow
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-sheets/{id}/revert [post]
func (c *WorkflowController) RevertToDraft(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sheetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sheet ID"})
		return
	}

	if err := c.workflowService.RevertToDraft(sheetID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time sheet reverted to draft"})
}

// ApproveEntry
// @Summary Approve a pending entry in a submitted sheet
// @Tags time-sheet-workflow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body timesheets_dto.ReviewEntryRequestDTO false "Optional message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-entries/{id}/approve [post]
func (c *WorkflowController) ApproveEntry(ctx *gin.Context) {
	c.reviewEntry(ctx, c.workflowService.ApproveEntry)
}

// QuestionEntry
// @Summary Question an entry in a submitted sheet
// @Tags time-sheet-workflow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body timesheets_dto.ReviewEntryRequestDTO false "Optional message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-entries/{id}/question [post]
func (c *WorkflowController) QuestionEntry(ctx *gin.Context) {
	c.reviewEntry(ctx, c.workflowService.QuestionEntry)
}

// ResolveQuestion
// @Summary Resolve a questioned entry back to pending
// @Tags time-sheet-workflow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body timesheets_dto.ReviewEntryRequestDTO false "Optional message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /time-entries/{id}/resolve [post]
func (c *WorkflowController) ResolveQuestion(ctx *gin.Context) {
	c.reviewEntry(ctx, c.workflowService.ResolveQuestion)
}

// GetEntryPermissions
// @Summary Get the review capability set for one entry
// @Tags time-sheet-workflow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} timesheets_permissions.EntryPermissions
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id}/permissions [get]
func (c *WorkflowController) GetEntryPermissions(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	response, err := c.workflowService.GetEntryPermissions(entryID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

type reviewAction func(
	entryID uuid.UUID,
	request *timesheets_dto.ReviewEntryRequestDTO,
	user *users_models.User,
) error

func (c *WorkflowController) reviewEntry(ctx *gin.Context, action reviewAction) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	request := &timesheets_dto.ReviewEntryRequestDTO{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := action(entryID, request, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Entry status updated"})
}
