package timesheets_controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	organizations_controllers "orilla/internal/features/organizations/controllers"
	projects_controllers "orilla/internal/features/projects/controllers"
	projects_models "orilla/internal/features/projects/models"
	projects_testing "orilla/internal/features/projects/testing"
	timeentries_controllers "orilla/internal/features/timeentries/controllers"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_enums "orilla/internal/features/timeentries/enums"
	timesheets_dto "orilla/internal/features/timesheets/dto"
	timesheets_enums "orilla/internal/features/timesheets/enums"
	users_dto "orilla/internal/features/users/dto"
	users_enums "orilla/internal/features/users/enums"
	users_testing "orilla/internal/features/users/testing"
	test_utils "orilla/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWorkflowTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		organizations_controllers.GetOrganizationController(),
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		timeentries_controllers.GetTimeEntryController(),
		GetTimeSheetController(),
		GetWorkflowController(),
	)
}

type workflowFixture struct {
	router         *gin.Engine
	organizationID uuid.UUID
	project        *projects_models.Project
	owner          *users_dto.SignInResponseDTO
	reviewer       *users_dto.SignInResponseDTO
	client         *users_dto.SignInResponseDTO
}

func setupWorkflowFixture(t *testing.T) *workflowFixture {
	router := createWorkflowTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	organization := projects_testing.CreateTestOrganization(t, router, admin.Token)

	owner := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject(
		t, router, organization.ID, owner, "Workflow Project "+uuid.New().String()[:8])

	reviewer := users_testing.CreateTestUser(users_enums.UserRoleUser)
	projects_testing.AddMemberToProject(t, router, project, reviewer, users_enums.ProjectRoleReviewer, owner.Token)

	client := users_testing.CreateTestUser(users_enums.UserRoleUser)
	projects_testing.AddMemberToProject(t, router, project, client, users_enums.ProjectRoleClient, owner.Token)

	return &workflowFixture{
		router:         router,
		organizationID: organization.ID,
		project:        project,
		owner:          owner,
		reviewer:       reviewer,
		client:         client,
	}
}

func (f *workflowFixture) createEntry(t *testing.T, title string, hours float64) *timeentries_dto.TimeEntryResponseDTO {
	request := timeentries_dto.CreateTimeEntryRequestDTO{
		OrganizationID: f.organizationID,
		ProjectID:      &f.project.ID,
		Title:          title,
		Date:           time.Now().UTC(),
		Hours:          hours,
	}

	var response timeentries_dto.TimeEntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, f.router, "/api/v1/time-entries", "Bearer "+f.owner.Token,
		request, http.StatusOK, &response)

	return &response
}

func (f *workflowFixture) createSheetWithEntries(
	t *testing.T,
	entryIDs ...uuid.UUID,
) *timesheets_dto.TimeSheetResponseDTO {
	request := timesheets_dto.CreateTimeSheetRequestDTO{
		OrganizationID: f.organizationID,
		ProjectID:      &f.project.ID,
		Title:          "Sheet " + uuid.New().String()[:8],
	}

	var sheet timesheets_dto.TimeSheetResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, f.router, "/api/v1/time-sheets", "Bearer "+f.owner.Token,
		request, http.StatusOK, &sheet)

	if len(entryIDs) > 0 {
		addRequest := timesheets_dto.AddEntriesRequestDTO{EntryIDs: entryIDs}
		test_utils.MakePostRequest(
			t, f.router, "/api/v1/time-sheets/"+sheet.ID.String()+"/entries",
			"Bearer "+f.owner.Token, addRequest, http.StatusOK)
	}

	return &sheet
}

func (f *workflowFixture) getSheet(t *testing.T, sheetID uuid.UUID) *timesheets_dto.TimeSheetWithEntriesResponseDTO {
	var response timesheets_dto.TimeSheetWithEntriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, f.router, "/api/v1/time-sheets/"+sheetID.String(),
		"Bearer "+f.owner.Token, http.StatusOK, &response)

	return &response
}

func Test_TimeSheetWorkflowE2E_CompletesSuccessfully(t *testing.T) {
	fixture := setupWorkflowFixture(t)

	first := fixture.createEntry(t, "Implement billing export", 4)
	second := fixture.createEntry(t, "Review billing export", 2)
	sheet := fixture.createSheetWithEntries(t, first.ID, second.ID)

	// Submit the draft sheet for review
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	withEntries := fixture.getSheet(t, sheet.ID)
	assert.Equal(t, timesheets_enums.SheetStatusSubmitted, withEntries.TimeSheet.Status)
	assert.Equal(t, 6.0, withEntries.TotalHours)
	assert.False(t, withEntries.CanApprove.CanApprove)
	assert.Equal(t, "entries pending", withEntries.CanApprove.Reason)

	// Approving the sheet while entries are pending is blocked
	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusUnprocessableEntity)
	assert.Contains(t, string(resp.Body), "entries pending")

	// Reviewer approves the first entry
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+first.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	// Reviewer questions the second entry with a message
	question := timesheets_dto.ReviewEntryRequestDTO{Message: "Hours look too low for a review pass"}
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+second.ID.String()+"/question",
		"Bearer "+fixture.reviewer.Token, question, http.StatusOK)

	var summary timesheets_dto.TimeSheetSummaryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/summary",
		"Bearer "+fixture.owner.Token, http.StatusOK, &summary)

	assert.Equal(t, 2, summary.TotalEntries)
	assert.Equal(t, 1, summary.ApprovedEntries)
	assert.Equal(t, 1, summary.QuestionedEntries)
	assert.Equal(t, 4.0, summary.ApprovedHours)

	// Questioned entries outrank pending ones in the blocking reason
	resp = test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusUnprocessableEntity)
	assert.Contains(t, string(resp.Body), "entries questioned")

	// The question message landed on the entry trail with a status tag
	var messages timeentries_dto.GetEntryMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, fixture.router,
		"/api/v1/time-entries/"+second.ID.String()+"/messages",
		"Bearer "+fixture.owner.Token, http.StatusOK, &messages)

	require.Len(t, messages.Messages, 1)
	assert.Equal(t, "Hours look too low for a review pass", messages.Messages[0].Content)
	require.NotNil(t, messages.Messages[0].StatusChange)
	assert.Equal(t, timeentries_enums.EntryStatusQuestioned, *messages.Messages[0].StatusChange)

	// Resolve the question and approve the remaining entry
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+second.ID.String()+"/resolve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+second.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	// Now the sheet can be approved
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	final := fixture.getSheet(t, sheet.ID)
	assert.Equal(t, timesheets_enums.SheetStatusApproved, final.TimeSheet.Status)
}

func Test_SubmitSheet_WithoutEntries_ReturnsBadRequest(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	sheet := fixture.createSheetWithEntries(t)

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusBadRequest)

	assert.Contains(t, string(resp.Body), "empty time sheet")
}

func Test_ApproveEntry_WhenSheetIsDraft_ReturnsUnprocessable(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Draft entry", 1)
	fixture.createSheetWithEntries(t, entry.ID)

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusUnprocessableEntity)

	assert.Contains(t, string(resp.Body), "submitted")
}

func Test_ApproveSheet_AsClient_ReturnsForbidden(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Client cannot approve this", 3)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.client.Token, nil, http.StatusForbidden)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/approve",
		"Bearer "+fixture.client.Token, nil, http.StatusForbidden)
}

func Test_RejectSheet_WithReason_StoresReason(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Entry to reject", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	reject := timesheets_dto.RejectTimeSheetRequestDTO{Reason: "Wrong billing period"}
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/reject",
		"Bearer "+fixture.reviewer.Token, reject, http.StatusOK)

	rejected := fixture.getSheet(t, sheet.ID)
	assert.Equal(t, timesheets_enums.SheetStatusRejected, rejected.TimeSheet.Status)
	assert.Equal(t, "Wrong billing period", rejected.TimeSheet.RejectionReason)

	// Revert brings the sheet back to draft and clears the reason
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/revert",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	reverted := fixture.getSheet(t, sheet.ID)
	assert.Equal(t, timesheets_enums.SheetStatusDraft, reverted.TimeSheet.Status)
	assert.Empty(t, reverted.TimeSheet.RejectionReason)
}

func Test_RejectSheet_WithoutBody_Succeeds(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Rejected without a word", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	// The rejection reason is optional, a bodyless reject works
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/reject",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	rejected := fixture.getSheet(t, sheet.ID)
	assert.Equal(t, timesheets_enums.SheetStatusRejected, rejected.TimeSheet.Status)
	assert.Empty(t, rejected.TimeSheet.RejectionReason)
}

func Test_RevertSheet_ResetsEntryStatusesToPending(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Approved then reverted", 5)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/revert",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	reverted := fixture.getSheet(t, sheet.ID)
	require.Len(t, reverted.Entries, 1)
	assert.Equal(t, timeentries_enums.EntryStatusPending, reverted.Entries[0].Status)
	assert.Nil(t, reverted.Entries[0].StatusChangedAt)
	assert.Nil(t, reverted.Entries[0].StatusChangedBy)
}

func Test_RevertSheet_AfterReviewerInteraction_RequiresOwner(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Reviewed entry", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	// Reviewer interaction marks the sheet; experts can no longer revert it
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	expert := users_testing.CreateTestUser(users_enums.UserRoleUser)
	projects_testing.AddMemberToProject(t, fixture.router, fixture.project, expert,
		users_enums.ProjectRoleExpert, fixture.owner.Token)

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/revert",
		"Bearer "+expert.Token, nil, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "cannot silently revert")

	// Owner holds the override and may revert
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/revert",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)
}

func Test_AddEntries_ToSubmittedSheet_ReturnsBadRequest(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	onSheet := fixture.createEntry(t, "On the sheet", 1)
	sheet := fixture.createSheetWithEntries(t, onSheet.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	extra := fixture.createEntry(t, "Too late", 1)
	request := timesheets_dto.AddEntriesRequestDTO{EntryIDs: []uuid.UUID{extra.ID}}

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/entries",
		"Bearer "+fixture.owner.Token, request, http.StatusBadRequest)
}

func Test_AddEntries_AlreadyAssignedElsewhere_ReturnsConflict(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Claimed entry", 1)
	fixture.createSheetWithEntries(t, entry.ID)

	other := fixture.createSheetWithEntries(t)
	request := timesheets_dto.AddEntriesRequestDTO{EntryIDs: []uuid.UUID{entry.ID}}

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+other.ID.String()+"/entries",
		"Bearer "+fixture.owner.Token, request, http.StatusConflict)

	assert.Contains(t, string(resp.Body), "assigned to another sheet")
}

func Test_AddEntries_PartialConflict_ClaimsNothing(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	claimed := fixture.createEntry(t, "Claimed elsewhere", 1)
	fixture.createSheetWithEntries(t, claimed.ID)

	free := fixture.createEntry(t, "Still free", 1)
	sheet := fixture.createSheetWithEntries(t)

	request := timesheets_dto.AddEntriesRequestDTO{EntryIDs: []uuid.UUID{claimed.ID, free.ID}}
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/entries",
		"Bearer "+fixture.owner.Token, request, http.StatusConflict)

	// The conflict rolled back the whole claim, the free entry was not attached
	withEntries := fixture.getSheet(t, sheet.ID)
	assert.Empty(t, withEntries.Entries)

	var available timeentries_dto.ListTimeEntriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, fixture.router,
		"/api/v1/time-entries/available?organizationId="+fixture.organizationID.String(),
		"Bearer "+fixture.owner.Token, http.StatusOK, &available)

	found := false
	for _, e := range available.Entries {
		if e.ID == free.ID {
			found = true
		}
	}
	assert.True(t, found, "free entry should still be unassigned after the rollback")
}

func Test_AddEntries_RetrySameRequest_Succeeds(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Added twice", 1)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	// Entries already on this sheet count as claimed, a retry is not a conflict
	request := timesheets_dto.AddEntriesRequestDTO{EntryIDs: []uuid.UUID{entry.ID}}
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/entries",
		"Bearer "+fixture.owner.Token, request, http.StatusOK)

	withEntries := fixture.getSheet(t, sheet.ID)
	require.Len(t, withEntries.Entries, 1)
	assert.Equal(t, entry.ID, withEntries.Entries[0].ID)
}

func Test_RemoveEntry_FromSubmittedSheet_ReturnsBadRequest(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Locked in", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	removeURL := fmt.Sprintf("/api/v1/time-sheets/%s/entries/%s", sheet.ID.String(), entry.ID.String())
	resp := test_utils.MakeDeleteRequest(t, fixture.router, removeURL, "Bearer "+fixture.owner.Token, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "while the sheet is draft")

	// After revert the sheet is draft again and the entry can be removed
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/revert",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)
	test_utils.MakeDeleteRequest(t, fixture.router, removeURL, "Bearer "+fixture.owner.Token, http.StatusOK)
}

func Test_ApproveEntry_Twice_ReturnsConflict(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Approved once", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusOK)

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/approve",
		"Bearer "+fixture.reviewer.Token, nil, http.StatusConflict)

	assert.Contains(t, string(resp.Body), "not pending")
}

func Test_RejectSheet_AsNonMember_ReturnsForbidden(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Entry", 1)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	outsider := users_testing.CreateTestUser(users_enums.UserRoleUser)
	reject := timesheets_dto.RejectTimeSheetRequestDTO{Reason: "Should not work"}

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/reject",
		"Bearer "+outsider.Token, reject, http.StatusForbidden)

	assert.Contains(t, string(resp.Body), "not a project member")
}

func Test_QuestionEntry_Twice_ReturnsConflict(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Questioned entry", 2)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	question := timesheets_dto.ReviewEntryRequestDTO{Message: "Please split this entry"}
	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/question",
		"Bearer "+fixture.reviewer.Token, question, http.StatusOK)

	resp := test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/question",
		"Bearer "+fixture.reviewer.Token, question, http.StatusConflict)

	assert.Contains(t, string(resp.Body), "already questioned")
}

func Test_GetEntryPermissions_ReflectsProjectRole(t *testing.T) {
	fixture := setupWorkflowFixture(t)
	entry := fixture.createEntry(t, "Permission probe", 1)
	sheet := fixture.createSheetWithEntries(t, entry.ID)

	test_utils.MakePostRequest(t, fixture.router,
		"/api/v1/time-sheets/"+sheet.ID.String()+"/submit",
		"Bearer "+fixture.owner.Token, nil, http.StatusOK)

	var reviewerPermissions timesheets_dto.EntryPermissionsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/permissions",
		"Bearer "+fixture.reviewer.Token, http.StatusOK, &reviewerPermissions)

	assert.True(t, reviewerPermissions.CanApprove)
	assert.True(t, reviewerPermissions.CanQuestion)
	assert.False(t, reviewerPermissions.IsOwner)

	var clientPermissions timesheets_dto.EntryPermissionsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, fixture.router,
		"/api/v1/time-entries/"+entry.ID.String()+"/permissions",
		"Bearer "+fixture.client.Token, http.StatusOK, &clientPermissions)

	assert.False(t, clientPermissions.CanApprove)
	assert.True(t, clientPermissions.CanComment)
}
