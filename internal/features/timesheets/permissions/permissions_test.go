package timesheets_permissions

import (
	"testing"

	users_enums "orilla/internal/features/users/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func actorWithRole(role users_enums.ProjectRole) Actor {
	return Actor{UserID: uuid.New(), ProjectRole: &role}
}

func Test_Evaluate_WithSystemAdmin_AllowsEveryCapability(t *testing.T) {
	admin := Actor{UserID: uuid.New(), IsSystemAdmin: true}
	context := ReviewContext{HasProject: false}

	capabilities := []Capability{
		CapabilityApproveEntry,
		CapabilityQuestionEntry,
		CapabilityComment,
		CapabilityApproveSheet,
		CapabilityRejectSheet,
		CapabilityRevertSheet,
		CapabilityOverrideRevert,
	}

	for _, capability := range capabilities {
		decision := Evaluate(admin, context, capability)
		assert.True(t, decision.Allowed, "Expected admin to hold %s", capability)
		assert.Empty(t, decision.Reason)
	}
}

func Test_Evaluate_WithoutProjectScope_DeniesNonAdmins(t *testing.T) {
	actor := actorWithRole(users_enums.ProjectRoleOwner)
	context := ReviewContext{HasProject: false}

	decision := Evaluate(actor, context, CapabilityApproveSheet)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNoProjectScope, decision.Reason)
}

func Test_Evaluate_WithNonMember_DeniesWithMembershipReason(t *testing.T) {
	actor := Actor{UserID: uuid.New()}
	context := ReviewContext{HasProject: true}

	decision := Evaluate(actor, context, CapabilityApproveEntry)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNotProjectMember, decision.Reason)
}

func Test_Evaluate_RoleCapabilityTable_MatchesExpectedMatrix(t *testing.T) {
	tests := []struct {
		role       users_enums.ProjectRole
		capability Capability
		allowed    bool
	}{
		{users_enums.ProjectRoleOwner, CapabilityApproveEntry, true},
		{users_enums.ProjectRoleOwner, CapabilityRejectSheet, true},
		{users_enums.ProjectRoleOwner, CapabilityOverrideRevert, true},
		{users_enums.ProjectRoleExpert, CapabilityApproveEntry, true},
		{users_enums.ProjectRoleExpert, CapabilityQuestionEntry, true},
		{users_enums.ProjectRoleExpert, CapabilityApproveSheet, true},
		{users_enums.ProjectRoleExpert, CapabilityRevertSheet, true},
		{users_enums.ProjectRoleExpert, CapabilityOverrideRevert, false},
		{users_enums.ProjectRoleReviewer, CapabilityApproveEntry, true},
		{users_enums.ProjectRoleReviewer, CapabilityRejectSheet, true},
		{users_enums.ProjectRoleReviewer, CapabilityOverrideRevert, false},
		{users_enums.ProjectRoleClient, CapabilityComment, true},
		{users_enums.ProjectRoleClient, CapabilityApproveEntry, false},
		{users_enums.ProjectRoleClient, CapabilityApproveSheet, false},
		{users_enums.ProjectRoleViewer, CapabilityComment, true},
		{users_enums.ProjectRoleViewer, CapabilityQuestionEntry, false},
		{users_enums.ProjectRoleViewer, CapabilityRevertSheet, false},
	}

	context := ReviewContext{HasProject: true}

	for _, tt := range tests {
		decision := Evaluate(actorWithRole(tt.role), context, tt.capability)
		assert.Equal(t, tt.allowed, decision.Allowed,
			"role %s capability %s", tt.role, tt.capability)

		if !tt.allowed {
			assert.Equal(t, ReasonRoleNotPermitted, decision.Reason)
		}
	}
}

func Test_Evaluate_RevertWithClientInteraction_DeniesWithoutOverride(t *testing.T) {
	context := ReviewContext{HasProject: true, HasClientInteraction: true}

	for _, role := range []users_enums.ProjectRole{
		users_enums.ProjectRoleExpert,
		users_enums.ProjectRoleReviewer,
	} {
		decision := Evaluate(actorWithRole(role), context, CapabilityRevertSheet)
		assert.False(t, decision.Allowed, "role %s should not silently revert", role)
		assert.Equal(t, ReasonClientInteraction, decision.Reason)
	}
}

func Test_Evaluate_RevertWithClientInteraction_AllowsOwnerOverride(t *testing.T) {
	context := ReviewContext{HasProject: true, HasClientInteraction: true}

	decision := Evaluate(actorWithRole(users_enums.ProjectRoleOwner), context, CapabilityRevertSheet)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}

func Test_Evaluate_RevertWithClientInteraction_AllowsSystemAdmin(t *testing.T) {
	admin := Actor{UserID: uuid.New(), IsSystemAdmin: true}
	context := ReviewContext{HasProject: true, HasClientInteraction: true}

	decision := Evaluate(admin, context, CapabilityRevertSheet)

	assert.True(t, decision.Allowed)
}

func Test_Evaluate_RevertWithoutClientInteraction_AllowsReviewer(t *testing.T) {
	context := ReviewContext{HasProject: true, HasClientInteraction: false}

	decision := Evaluate(actorWithRole(users_enums.ProjectRoleReviewer), context, CapabilityRevertSheet)

	assert.True(t, decision.Allowed)
}

func Test_EvaluateEntryPermissions_WithReviewer_GrantsReviewSet(t *testing.T) {
	actor := actorWithRole(users_enums.ProjectRoleReviewer)
	context := ReviewContext{HasProject: true}

	permissions := EvaluateEntryPermissions(actor, context, uuid.New())

	assert.True(t, permissions.CanApprove)
	assert.True(t, permissions.CanQuestion)
	assert.True(t, permissions.CanComment)
	assert.False(t, permissions.IsOwner)
}

func Test_EvaluateEntryPermissions_WithClient_GrantsCommentOnly(t *testing.T) {
	actor := actorWithRole(users_enums.ProjectRoleClient)
	context := ReviewContext{HasProject: true}

	permissions := EvaluateEntryPermissions(actor, context, uuid.New())

	assert.False(t, permissions.CanApprove)
	assert.False(t, permissions.CanQuestion)
	assert.True(t, permissions.CanComment)
}

func Test_EvaluateEntryPermissions_WithEntryCreator_OwnershipGrantsNoApproval(t *testing.T) {
	creatorID := uuid.New()
	role := users_enums.ProjectRoleViewer
	actor := Actor{UserID: creatorID, ProjectRole: &role}
	context := ReviewContext{HasProject: true}

	permissions := EvaluateEntryPermissions(actor, context, creatorID)

	assert.True(t, permissions.IsOwner)
	assert.False(t, permissions.CanApprove)
	assert.False(t, permissions.CanQuestion)
}
