package timeentries_controllers

import (
	"net/http"
	"testing"
	"time"

	organizations_controllers "orilla/internal/features/organizations/controllers"
	organizations_dto "orilla/internal/features/organizations/dto"
	projects_controllers "orilla/internal/features/projects/controllers"
	projects_testing "orilla/internal/features/projects/testing"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_enums "orilla/internal/features/timeentries/enums"
	users_dto "orilla/internal/features/users/dto"
	users_enums "orilla/internal/features/users/enums"
	users_testing "orilla/internal/features/users/testing"
	test_utils "orilla/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEntryTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		GetTimeEntryController(),
	)
}

func createEntryTestOrganization(
	t *testing.T,
	router *gin.Engine,
) (*organizations_dto.OrganizationResponseDTO, *users_dto.SignInResponseDTO) {
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)
	return organization, admin
}

func Test_CreateTimeEntry_WithValidData_ReturnsPendingEntry(t *testing.T) {
	router := createEntryTestRouter()
	organization, admin := createEntryTestOrganization(t, router)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Prepare quarterly report",
		Date:           time.Now().UTC(),
		Hours:          3.5,
	}

	var response timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+admin.Token,
		request, http.StatusOK, &response)

	assert.Equal(t, "Prepare quarterly report", response.Title)
	assert.Equal(t, 3.5, response.Hours)
	assert.Equal(t, timeentries_enums.EntryStatusPending, response.Status)
	assert.Equal(t, "Pending", response.StatusLabel)
	assert.Nil(t, response.TimeSheetID)
}

func Test_CreateTimeEntry_WithNegativeHours_ReturnsBadRequest(t *testing.T) {
	router := createEntryTestRouter()
	organization, admin := createEntryTestOrganization(t, router)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Negative hours",
		Date:           time.Now().UTC(),
		Hours:          -2,
	}

	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/time-entries", "Bearer "+admin.Token, request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "greater than zero")
}

func Test_CreateTimeEntry_ForProjectWithoutMembership_ReturnsForbidden(t *testing.T) {
	router := createEntryTestRouter()
	organization, _ := createEntryTestOrganization(t, router)

	owner := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject(t, router, organization.ID, owner, "Members Only")

	outsider := users_testing.CreateTestUser(users_enums.UserRoleUser)
	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		ProjectID:      &project.ID,
		Title:          "Outsider entry",
		Date:           time.Now().UTC(),
		Hours:          1,
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/time-entries", "Bearer "+outsider.Token, request, http.StatusForbidden)
}

func Test_DeleteTimeEntry_WhenBilled_ReturnsBadRequest(t *testing.T) {
	router := createEntryTestRouter()
	organization, admin := createEntryTestOrganization(t, router)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Billed entry",
		Date:           time.Now().UTC(),
		Hours:          2,
		Billed:         true,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+admin.Token,
		request, http.StatusOK, &entry)

	resp := test_utils.MakeDeleteRequest(
		t, router, "/api/v1/time-entries/"+entry.ID.String(), "Bearer "+admin.Token, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "billed")
}

func Test_GetAvailableEntries_ReturnsOnlyUnassignedEntries(t *testing.T) {
	router := createEntryTestRouter()
	organization, admin := createEntryTestOrganization(t, router)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Available entry",
		Date:           time.Now().UTC(),
		Hours:          1,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+admin.Token,
		request, http.StatusOK, &entry)

	var available timeentries_dto.ListTimeEntriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/time-entries/available?organizationId="+organization.ID.String(),
		"Bearer "+admin.Token, http.StatusOK, &available)

	found := false
	for _, e := range available.Entries {
		assert.Nil(t, e.TimeSheetID)
		if e.ID == entry.ID {
			found = true
		}
	}
	require.True(t, found, "created entry should be listed as available")
}

func Test_EntryMessages_AppendOnlyTrailKeepsOrder(t *testing.T) {
	router := createEntryTestRouter()
	organization, admin := createEntryTestOrganization(t, router)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Discussed entry",
		Date:           time.Now().UTC(),
		Hours:          1,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+admin.Token,
		request, http.StatusOK, &entry)

	for _, content := range []string{"First note", "Second note"} {
		message := timeentries_dto.CreateEntryMessageRequestDTO{Content: content}
		test_utils.MakePostRequest(
			t, router, "/api/v1/time-entries/"+entry.ID.String()+"/messages",
			"Bearer "+admin.Token, message, http.StatusOK)
	}

	var messages timeentries_dto.GetEntryMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/time-entries/"+entry.ID.String()+"/messages",
		"Bearer "+admin.Token, http.StatusOK, &messages)

	require.Len(t, messages.Messages, 2)
	assert.Equal(t, "First note", messages.Messages[0].Content)
	assert.Equal(t, "Second note", messages.Messages[1].Content)
	assert.Nil(t, messages.Messages[0].StatusChange)
}

func Test_CreateEntryMessage_ByCreatorOnProjectlessEntry_ReturnsForbidden(t *testing.T) {
	router := createEntryTestRouter()
	organization, _ := createEntryTestOrganization(t, router)

	creator := users_testing.CreateTestUser(users_enums.UserRoleUser)
	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		Title:          "Unscoped entry",
		Date:           time.Now().UTC(),
		Hours:          1,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+creator.Token,
		request, http.StatusOK, &entry)

	// Owning the entry grants no comment rights outside a project scope.
	message := timeentries_dto.CreateEntryMessageRequestDTO{Content: "My own entry"}
	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/time-entries/"+entry.ID.String()+"/messages",
		"Bearer "+creator.Token, message, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "no project scope")
}

func Test_CreateEntryMessage_AsNonMemberOnProjectEntry_ReturnsForbidden(t *testing.T) {
	router := createEntryTestRouter()
	organization, _ := createEntryTestOrganization(t, router)

	owner := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject(t, router, organization.ID, owner, "Commented Project")

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		ProjectID:      &project.ID,
		Title:          "Project entry",
		Date:           time.Now().UTC(),
		Hours:          2,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+owner.Token,
		request, http.StatusOK, &entry)

	outsider := users_testing.CreateTestUser(users_enums.UserRoleUser)
	message := timeentries_dto.CreateEntryMessageRequestDTO{Content: "Drive-by comment"}
	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/time-entries/"+entry.ID.String()+"/messages",
		"Bearer "+outsider.Token, message, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "not a project member")
}

func Test_CreateEntryMessage_AsClientMember_Succeeds(t *testing.T) {
	router := createEntryTestRouter()
	organization, _ := createEntryTestOrganization(t, router)

	owner := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject(t, router, organization.ID, owner, "Client Comments")

	client := users_testing.CreateTestUser(users_enums.UserRoleUser)
	projects_testing.AddMemberToProject(t, router, project, client, users_enums.ProjectRoleClient, owner.Token)

	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: organization.ID,
		ProjectID:      &project.ID,
		Title:          "Client-visible entry",
		Date:           time.Now().UTC(),
		Hours:          2,
	}

	var entry timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/time-entries", "Bearer "+owner.Token,
		request, http.StatusOK, &entry)

	message := timeentries_dto.CreateEntryMessageRequestDTO{Content: "Looks reasonable"}
	test_utils.MakePostRequest(
		t, router, "/api/v1/time-entries/"+entry.ID.String()+"/messages",
		"Bearer "+client.Token, message, http.StatusOK)
}
