package accounts_controllers

import (
	"net/http"

	"orilla/internal/apperrors"
	accounts_dto "orilla/internal/features/accounts/dto"
	accounts_services "orilla/internal/features/accounts/services"
	users_middleware "orilla/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountController struct {
	accountService *accounts_services.AccountService
}

func (c *AccountController) RegisterRoutes(router *gin.RouterGroup) {
	accountRoutes := router.Group("/accounts")

	accountRoutes.POST("", c.CreateAccount)
	accountRoutes.GET("/:id", c.GetAccount)
	accountRoutes.PUT("/:id", c.UpdateAccount)
	accountRoutes.DELETE("/:id", c.DeleteAccount)

	router.GET("/organizations/:id/accounts", c.ListAccounts)
}

// CreateAccount
// @Summary Create a new account
// @Description Create a customer account inside an organization (admin only)
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body accounts_dto.CreateAccountRequestDTO true "Account data"
// @Success 200 {object} accounts_dto.AccountResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /accounts [post]
func (c *AccountController) CreateAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request accounts_dto.CreateAccountRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.accountService.CreateAccount(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAccount
// @Summary Get account details
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} accounts_dto.AccountResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [get]
func (c *AccountController) GetAccount(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	response, err := c.accountService.GetAccount(accountID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListAccounts
// @Summary List accounts of an organization
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} accounts_dto.ListAccountsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /organizations/{id}/accounts [get]
func (c *AccountController) ListAccounts(ctx *gin.Context) {
	organizationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	response, err := c.accountService.ListAccounts(organizationID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accounts"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateAccount
// @Summary Update an account
// @Description Update account fields (admin only)
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body accounts_dto.UpdateAccountRequestDTO true "Account data"
// @Success 200 {object} accounts_dto.AccountResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [put]
func (c *AccountController) UpdateAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	var request accounts_dto.UpdateAccountRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.accountService.UpdateAccount(accountID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteAccount
// @Summary Delete an account
// @Description Delete an account without projects (admin only)
// @Tags accounts
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [delete]
func (c *AccountController) DeleteAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	if err := c.accountService.DeleteAccount(accountID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
