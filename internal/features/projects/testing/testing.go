package projects_testing

import (
	"fmt"
	"net/http"

	"orilla/internal/features/audit_logs"
	organizations_dto "orilla/internal/features/organizations/dto"
	projects_dto "orilla/internal/features/projects/dto"
	projects_models "orilla/internal/features/projects/models"
	projects_services "orilla/internal/features/projects/services"
	users_dto "orilla/internal/features/users/dto"
	users_enums "orilla/internal/features/users/enums"
	users_middleware "orilla/internal/features/users/middleware"
	users_services "orilla/internal/features/users/services"
	users_testing "orilla/internal/features/users/testing"
	test_utils "orilla/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()
	projects_services.SetupDependencies()

	return router
}

// CreateTestOrganization creates an organization through the admin API and
// returns it. The admin token must belong to a system admin.
func CreateTestOrganization(
	t require.TestingT,
	router *gin.Engine,
	adminToken string,
) *organizations_dto.OrganizationResponseDTO {
	request := organizations_dto.CreateOrganizationRequestDTO{
		Name: "Test Organization " + uuid.New().String()[:8],
	}

	var response organizations_dto.OrganizationResponseDTO
	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/organizations", "Bearer "+adminToken, request)
	require.Equal(t, http.StatusOK, w.StatusCode, "Failed to create organization: %s", string(w.Body))
	require.NoError(t, w.UnmarshalResponse(&response))

	return &response
}

// CreateTestProject creates a project owned by the given user inside the
// organization. Member project creation is enabled for the duration of the
// call so non-admin owners work too.
func CreateTestProject(
	t require.TestingT,
	router *gin.Engine,
	organizationID uuid.UUID,
	owner *users_dto.SignInResponseDTO,
	name string,
) *projects_models.Project {
	users_testing.EnableUserProjectCreation()
	defer users_testing.ResetSettingsToDefaults()

	request := projects_dto.CreateProjectRequestDTO{
		OrganizationID: organizationID,
		Name:           name,
	}

	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+owner.Token, request)
	require.Equal(t, http.StatusOK, w.StatusCode, "Failed to create project: %s", string(w.Body))

	var response projects_dto.ProjectResponseDTO
	require.NoError(t, w.UnmarshalResponse(&response))

	return &projects_models.Project{
		ID:             response.ID,
		OrganizationID: response.OrganizationID,
		Name:           response.Name,
	}
}

// AddMemberToProject adds an existing user to the project with the given
// role, acting as the owner.
func AddMemberToProject(
	t require.TestingT,
	router *gin.Engine,
	project *projects_models.Project,
	member *users_dto.SignInResponseDTO,
	role users_enums.ProjectRole,
	ownerToken string,
) {
	request := projects_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  role,
	}

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		fmt.Sprintf("/api/v1/projects/%s/members", project.ID.String()),
		"Bearer "+ownerToken,
		request,
	)
	require.Equal(t, http.StatusOK, w.StatusCode, "Failed to add member: %s", string(w.Body))
}
