package timeentries_controllers

import (
	"net/http"

	"orilla/internal/apperrors"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_services "orilla/internal/features/timeentries/services"
	users_middleware "orilla/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeEntryController struct {
	entryService   *timeentries_services.TimeEntryService
	messageService *timeentries_services.EntryMessageService
}

func (c *TimeEntryController) RegisterRoutes(router *gin.RouterGroup) {
	entryRoutes := router.Group("/time-entries")

	entryRoutes.POST("", c.CreateEntry)
	entryRoutes.GET("/available", c.GetAvailableEntries)
	entryRoutes.GET("/:id", c.GetEntry)
	entryRoutes.PUT("/:id", c.UpdateEntry)
	entryRoutes.DELETE("/:id", c.DeleteEntry)
	entryRoutes.POST("/:id/messages", c.CreateMessage)
	entryRoutes.GET("/:id/messages", c.GetMessages)

	router.GET("/organizations/:id/time-entries", c.GetOrganizationEntries)
}

// CreateEntry
// @Summary Record a time entry
// @Tags time-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body timeentries_dto.CreateTimeEntryRequestDTO true "Entry data"
// @Success 200 {object} timeentries_dto.TimeEntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-entries [post]
func (c *TimeEntryController) CreateEntry(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request timeentries_dto.CreateTimeEntryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.entryService.CreateEntry(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAvailableEntries
// @Summary List entries not assigned to any time sheet
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param organizationId query string true "Organization ID"
// @Param projectId query string false "Project ID"
// @Success 200 {object} timeentries_dto.ListTimeEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-entries/available [get]
func (c *TimeEntryController) GetAvailableEntries(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request timeentries_dto.GetAvailableEntriesRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.entryService.GetAvailableEntries(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEntry
// @Summary Get a time entry
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} timeentries_dto.TimeEntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id} [get]
func (c *TimeEntryController) GetEntry(ctx *gin.Context) {
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

	response, err := c.entryService.GetEntry(entryID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetOrganizationEntries
// @Summary List time entries of an organization
// @Description Regular users see their own entries, admins see everything
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} timeentries_dto.ListTimeEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /organizations/{id}/time-entries [get]
func (c *TimeEntryController) GetOrganizationEntries(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	organizationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	response, err := c.entryService.GetOrganizationEntries(organizationID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateEntry
// @Summary Update a time entry
// @Description Only entries not assigned to a time sheet can be edited
// @Tags time-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body timeentries_dto.UpdateTimeEntryRequestDTO true "Entry data"
// @Success 200 {object} timeentries_dto.TimeEntryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id} [put]
func (c *TimeEntryController) UpdateEntry(ctx *gin.Context) {
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

	var request timeentries_dto.UpdateTimeEntryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.entryService.UpdateEntry(entryID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteEntry
// @Summary Delete a time entry
// @Description Entries on a time sheet or already billed cannot be deleted
// @Tags time-entries
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id} [delete]
func (c *TimeEntryController) DeleteEntry(ctx *gin.Context) {
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

	if err := c.entryService.DeleteEntry(entryID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time entry deleted successfully"})
}

// CreateMessage
// @Summary Add a message to the entry discussion trail
// @Tags time-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body timeentries_dto.CreateEntryMessageRequestDTO true "Message"
// @Success 200 {object} timeentries_dto.EntryMessageResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id}/messages [post]
func (c *TimeEntryController) CreateMessage(ctx *gin.Context) {
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

	var request timeentries_dto.CreateEntryMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.messageService.CreateMessage(entryID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMessages
// @Summary List the entry discussion trail
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} timeentries_dto.GetEntryMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-entries/{id}/messages [get]
func (c *TimeEntryController) GetMessages(ctx *gin.Context) {
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

	response, err := c.messageService.GetMessages(entryID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
