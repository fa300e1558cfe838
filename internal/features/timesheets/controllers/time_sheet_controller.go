package timesheets_controllers

import (
	"net/http"

	"orilla/internal/apperrors"
	timesheets_dto "orilla/internal/features/timesheets/dto"
	timesheets_services "orilla/internal/features/timesheets/services"
	users_middleware "orilla/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeSheetController struct {
	sheetService *timesheets_services.TimeSheetService
}

func (c *TimeSheetController) RegisterRoutes(router *gin.RouterGroup) {
	sheetRoutes := router.Group("/time-sheets")

	sheetRoutes.POST("", c.CreateSheet)
	sheetRoutes.GET("", c.ListSheets)
	sheetRoutes.GET("/:id", c.GetSheet)
	sheetRoutes.GET("/:id/summary", c.GetSummary)
	sheetRoutes.PUT("/:id", c.UpdateSheet)
	sheetRoutes.DELETE("/:id", c.DeleteSheet)
	sheetRoutes.POST("/:id/entries", c.AddEntries)
	sheetRoutes.DELETE("/:id/entries/:entryId", c.RemoveEntry)
}

// CreateSheet
// @Summary Create a time sheet
// @Description Create a draft time sheet to collect entries for review
// @Tags time-sheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body timesheets_dto.CreateTimeSheetRequestDTO true "Sheet data"
// @Success 200 {object} timesheets_dto.TimeSheetResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-sheets [post]
func (c *TimeSheetController) CreateSheet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request timesheets_dto.CreateTimeSheetRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.sheetService.CreateSheet(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListSheets
// @Summary List time sheets
// @Tags time-sheets
// @Produce json
// @Security BearerAuth
// @Param organizationId query string true "Organization ID"
// @Param projectId query string false "Project ID"
// @Success 200 {object} timesheets_dto.ListTimeSheetsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-sheets [get]
func (c *TimeSheetController) ListSheets(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request timesheets_dto.ListTimeSheetsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.sheetService.ListSheets(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSheet
// @Summary Get a time sheet with its entries
// @Description Returns the sheet, member entries, total hours and the approval precondition
// @Tags time-sheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} timesheets_dto.TimeSheetWithEntriesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-sheets/{id} [get]
func (c *TimeSheetController) GetSheet(ctx *gin.Context) {
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

	response, err := c.sheetService.GetSheetWithEntries(sheetID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSummary
// @Summary Get the aggregated summary of a time sheet
// @Description Entry counts by status, hour sums and budget rollups
// @Tags time-sheets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} timesheets_dto.TimeSheetSummaryResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-sheets/{id}/summary [get]
func (c *TimeSheetController) GetSummary(ctx *gin.Context) {
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

	response, err := c.sheetService.GetSheetSummary(sheetID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateSheet
// @Summary Update a draft time sheet
// @Tags time-sheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Param request body timesheets_dto.UpdateTimeSheetRequestDTO true "Sheet data"
// @Success 200 {object} timesheets_dto.TimeSheetResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-sheets/{id} [put]
func (c *TimeSheetController) UpdateSheet(ctx *gin.Context) {
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

	var request timesheets_dto.UpdateTimeSheetRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.sheetService.UpdateSheet(sheetID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteSheet
// @Summary Delete a draft time sheet
// @Description Entries survive sheet deletion, only the membership is cleared
// @Tags time-sheets
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-sheets/{id} [delete]
func (c *TimeSheetController) DeleteSheet(ctx *gin.Context) {
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

	if err := c.sheetService.DeleteSheet(sheetID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time sheet deleted successfully"})
}

// AddEntries
// @Summary Add entries to a draft time sheet
// @Description Entries must not belong to another sheet
// @Tags time-sheets
// @Accept json
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Param request body timesheets_dto.AddEntriesRequestDTO true "Entry IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /time-sheets/{id}/entries [post]
func (c *TimeSheetController) AddEntries(ctx *gin.Context) {
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

	var request timesheets_dto.AddEntriesRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.sheetService.AddEntries(sheetID, &request, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Entries added successfully"})
}

// RemoveEntry
// @Summary Remove an entry from a draft time sheet
// @Description Approved entries cannot be removed
// @Tags time-sheets
// @Security BearerAuth
// @Param id path string true "Sheet ID"
// @Param entryId path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /time-sheets/{id}/entries/{entryId} [delete]
func (c *TimeSheetController) RemoveEntry(ctx *gin.Context) {
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

	entryID, err := uuid.Parse(ctx.Param("entryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := c.sheetService.RemoveEntry(sheetID, entryID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Entry removed successfully"})
}
