package accounts_controllers

import (
	"net/http"
	"testing"

	accounts_dto "orilla/internal/features/accounts/dto"
	organizations_controllers "orilla/internal/features/organizations/controllers"
	projects_testing "orilla/internal/features/projects/testing"
	users_enums "orilla/internal/features/users/enums"
	users_testing "orilla/internal/features/users/testing"
	test_utils "orilla/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateAccount_AsAdmin_ReturnsAccount(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		GetAccountController(),
	)

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)

	request := accounts_dto.CreateAccountRequestDTO{
		OrganizationID: organization.ID,
		Name:           "Acme Retainer " + uuid.New().String()[:8],
		BudgetHours:    120,
	}

	var response accounts_dto.AccountResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/accounts", "Bearer "+admin.Token,
		request, http.StatusOK, &response)

	assert.Equal(t, request.Name, response.Name)
	assert.Equal(t, organization.ID, response.OrganizationID)
	assert.Equal(t, 120.0, response.BudgetHours)
}

func Test_CreateAccount_WithDuplicateName_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		GetAccountController(),
	)

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)

	request := accounts_dto.CreateAccountRequestDTO{
		OrganizationID: organization.ID,
		Name:           "Duplicate Account " + uuid.New().String()[:8],
	}

	test_utils.MakePostRequest(t, router, "/api/v1/accounts", "Bearer "+admin.Token, request, http.StatusOK)

	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/accounts", "Bearer "+admin.Token, request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_CreateAccount_AsRegularUser_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		GetAccountController(),
	)

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)

	user := users_testing.CreateTestUser(users_enums.UserRoleUser)
	request := accounts_dto.CreateAccountRequestDTO{
		OrganizationID: organization.ID,
		Name:           "Forbidden Account",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/accounts", "Bearer "+user.Token, request, http.StatusForbidden)
}

func Test_ListAccounts_ByOrganization_ReturnsOnlyItsAccounts(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		GetAccountController(),
	)

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	first := projects_testing.CreateTestOrganization(t, router, admin.Token)
	second := projects_testing.CreateTestOrganization(t, router, admin.Token)

	request := accounts_dto.CreateAccountRequestDTO{
		OrganizationID: first.ID,
		Name:           "Scoped Account " + uuid.New().String()[:8],
	}
	test_utils.MakePostRequest(t, router, "/api/v1/accounts", "Bearer "+admin.Token, request, http.StatusOK)

	var firstList accounts_dto.ListAccountsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/organizations/"+first.ID.String()+"/accounts",
		"Bearer "+admin.Token, http.StatusOK, &firstList)
	assert.Len(t, firstList.Accounts, 1)

	var secondList accounts_dto.ListAccountsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/organizations/"+second.ID.String()+"/accounts",
		"Bearer "+admin.Token, http.StatusOK, &secondList)
	assert.Empty(t, secondList.Accounts)
}

func Test_DeleteAccount_AsAdmin_RemovesAccount(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		GetAccountController(),
	)

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)

	request := accounts_dto.CreateAccountRequestDTO{
		OrganizationID: organization.ID,
		Name:           "Short-lived account " + uuid.New().String()[:8],
	}

	var account accounts_dto.AccountResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/accounts", "Bearer "+admin.Token,
		request, http.StatusOK, &account)

	test_utils.MakeDeleteRequest(
		t, router, "/api/v1/accounts/"+account.ID.String(), "Bearer "+admin.Token, http.StatusOK)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/accounts/"+account.ID.String(), "Bearer "+admin.Token, http.StatusNotFound)
}
