package organizations_controllers

import (
	"net/http"

	"orilla/internal/apperrors"
	organizations_dto "orilla/internal/features/organizations/dto"
	organizations_services "orilla/internal/features/organizations/services"
	users_middleware "orilla/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrganizationController struct {
	organizationService *organizations_services.OrganizationService
}

func (c *OrganizationController) RegisterRoutes(router *gin.RouterGroup) {
	organizationRoutes := router.Group("/organizations")

	organizationRoutes.POST("", c.CreateOrganization)
	organizationRoutes.GET("", c.ListOrganizations)
	organizationRoutes.GET("/:id", c.GetOrganization)
	organizationRoutes.PUT("/:id", c.UpdateOrganization)
	organizationRoutes.DELETE("/:id", c.DeleteOrganization)
}

// CreateOrganization
// @Summary Create a new organization
// @Description Create a new organization (admin only)
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body organizations_dto.CreateOrganizationRequestDTO true "Organization data"
// @Success 200 {object} organizations_dto.OrganizationResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /organizations [post]
func (c *OrganizationController) CreateOrganization(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request organizations_dto.CreateOrganizationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.organizationService.CreateOrganization(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListOrganizations
// @Summary List organizations
// @Description Get all organizations
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} organizations_dto.ListOrganizationsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /organizations [get]
func (c *OrganizationController) ListOrganizations(ctx *gin.Context) {
	response, err := c.organizationService.ListOrganizations()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve organizations"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetOrganization
// @Summary Get organization details
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} organizations_dto.OrganizationResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{id} [get]
func (c *OrganizationController) GetOrganization(ctx *gin.Context) {
	organizationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	response, err := c.organizationService.GetOrganization(organizationID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateOrganization
// @Summary Update an organization
// @Description Update organization fields (admin only)
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Param request body organizations_dto.UpdateOrganizationRequestDTO true "Organization data"
// @Success 200 {object} organizations_dto.OrganizationResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{id} [put]
func (c *OrganizationController) UpdateOrganization(ctx *gin.Context) {
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

	var request organizations_dto.UpdateOrganizationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.organizationService.UpdateOrganization(organizationID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteOrganization
// @Summary Delete an organization
// @Description Delete an organization without projects (admin only)
// @Tags organizations
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{id} [delete]
func (c *OrganizationController) DeleteOrganization(ctx *gin.Context) {
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

	if err := c.organizationService.DeleteOrganization(organizationID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Organization deleted successfully"})
}
