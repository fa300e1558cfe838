// Package timesheets_permissions decides whether an actor may perform an
// approval-related action on a time sheet or one of its entries. All
// functions are pure: the caller resolves the actor's roles and the sheet's
// interaction history from persisted state and passes them in.
package timesheets_permissions

import (
	users_enums "orilla/internal/features/users/enums"

	"github.com/google/uuid"
)

// Capability is one permission-gated review action.
type Capability string

const (
	CapabilityApproveEntry  Capability = "entries:approve"
	CapabilityQuestionEntry Capability = "entries:question"
	CapabilityComment       Capability = "messages:create"
	CapabilityApproveSheet  Capability = "sheets:approve"
	CapabilityRejectSheet   Capability = "sheets:reject"
	CapabilityRevertSheet   Capability = "sheets:revert"

	// CapabilityOverrideRevert allows reverting a sheet that clients or
	// reviewers already interacted with, and reverting an approved sheet.
	CapabilityOverrideRevert Capability = "sheets:revert-override"
)

// Deny reasons surfaced to the caller. These are stable, machine-readable
// strings the UI matches on.
const (
	ReasonNoProjectScope    = "no project scope"
	ReasonNotProjectMember  = "not a project member"
	ReasonRoleNotPermitted  = "role does not permit this action"
	ReasonClientInteraction = "sheet has client/reviewer interaction, cannot silently revert"
)

// Actor is the resolved identity performing an action. ProjectRole is nil
// when the actor holds no membership on the relevant project.
type Actor struct {
	UserID        uuid.UUID
	IsSystemAdmin bool
	ProjectRole   *users_enums.ProjectRole
}

// ReviewContext carries the persisted state the decision depends on.
type ReviewContext struct {
	// HasProject is false for sheets/entries without a project reference;
	// only system admins may review those.
	HasProject bool

	// HasClientInteraction is true when any entry status was changed by, or
	// any entry message was authored by, a user holding the client, reviewer
	// or owner role on the project.
	HasClientInteraction bool
}

// Decision is the evaluation result. Reason is set only when denied.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// roleCapabilities is the fixed role→capability table. Owners hold every
// capability including the revert override. Experts and reviewers review
// entries and decide sheets but cannot override. Clients and viewers only
// comment.
var roleCapabilities = map[users_enums.ProjectRole]map[Capability]bool{
	users_enums.ProjectRoleOwner: {
		CapabilityApproveEntry:   true,
		CapabilityQuestionEntry:  true,
		CapabilityComment:        true,
		CapabilityApproveSheet:   true,
		CapabilityRejectSheet:    true,
		CapabilityRevertSheet:    true,
		CapabilityOverrideRevert: true,
	},
	users_enums.ProjectRoleExpert: {
		CapabilityApproveEntry:  true,
		CapabilityQuestionEntry: true,
		CapabilityComment:       true,
		CapabilityApproveSheet:  true,
		CapabilityRejectSheet:   true,
		CapabilityRevertSheet:   true,
	},
	users_enums.ProjectRoleReviewer: {
		CapabilityApproveEntry:  true,
		CapabilityQuestionEntry: true,
		CapabilityComment:       true,
		CapabilityApproveSheet:  true,
		CapabilityRejectSheet:   true,
		CapabilityRevertSheet:   true,
	},
	users_enums.ProjectRoleClient: {
		CapabilityComment: true,
	},
	users_enums.ProjectRoleViewer: {
		CapabilityComment: true,
	},
}

// Evaluate decides a single capability for the actor. System admins hold
// every capability regardless of project scope.
func Evaluate(actor Actor, context ReviewContext, capability Capability) Decision {
	base := evaluateRole(actor, context, capability)
	if !base.Allowed {
		return base
	}

	if capability == CapabilityRevertSheet && context.HasClientInteraction {
		override := evaluateRole(actor, context, CapabilityOverrideRevert)
		if !override.Allowed {
			return deny(ReasonClientInteraction)
		}
	}

	return base
}

func evaluateRole(actor Actor, context ReviewContext, capability Capability) Decision {
	if actor.IsSystemAdmin {
		return allow()
	}

	if !context.HasProject {
		return deny(ReasonNoProjectScope)
	}

	if actor.ProjectRole == nil {
		return deny(ReasonNotProjectMember)
	}

	if roleCapabilities[*actor.ProjectRole][capability] {
		return allow()
	}

	return deny(ReasonRoleNotPermitted)
}

// EntryPermissions is the per-entry capability set exposed to the UI.
type EntryPermissions struct {
	CanApprove  bool `json:"canApprove"`
	CanQuestion bool `json:"canQuestion"`
	CanComment  bool `json:"canComment"`
	IsOwner     bool `json:"isOwner"`
}

// EvaluateEntryPermissions computes the capability set for one entry.
// entryCreatorID identifies the entry owner; ownership by itself grants no
// approval rights, the role table governs.
func EvaluateEntryPermissions(
	actor Actor,
	context ReviewContext,
	entryCreatorID uuid.UUID,
) EntryPermissions {
	return EntryPermissions{
		CanApprove:  Evaluate(actor, context, CapabilityApproveEntry).Allowed,
		CanQuestion: Evaluate(actor, context, CapabilityQuestionEntry).Allowed,
		CanComment:  Evaluate(actor, context, CapabilityComment).Allowed,
		IsOwner:     actor.UserID == entryCreatorID,
	}
}
