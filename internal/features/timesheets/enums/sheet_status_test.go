package timesheets_enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CanTransitionTo_FollowsLifecycleGraph(t *testing.T) {
	tests := []struct {
		from    SheetStatus
		to      SheetStatus
		allowed bool
	}{
		{SheetStatusDraft, SheetStatusSubmitted, true},
		{SheetStatusDraft, SheetStatusApproved, false},
		{SheetStatusDraft, SheetStatusRejected, false},
		{SheetStatusDraft, SheetStatusDraft, false},
		{SheetStatusSubmitted, SheetStatusApproved, true},
		{SheetStatusSubmitted, SheetStatusRejected, true},
		{SheetStatusSubmitted, SheetStatusDraft, true},
		{SheetStatusSubmitted, SheetStatusSubmitted, false},
		{SheetStatusApproved, SheetStatusDraft, true},
		{SheetStatusApproved, SheetStatusSubmitted, false},
		{SheetStatusApproved, SheetStatusRejected, false},
		{SheetStatusRejected, SheetStatusDraft, true},
		{SheetStatusRejected, SheetStatusApproved, false},
		{SheetStatusRejected, SheetStatusSubmitted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func Test_IsTerminal_OnlyApprovedAndRejectedAreTerminal(t *testing.T) {
	assert.False(t, SheetStatusDraft.IsTerminal())
	assert.False(t, SheetStatusSubmitted.IsTerminal())
	assert.True(t, SheetStatusApproved.IsTerminal())
	assert.True(t, SheetStatusRejected.IsTerminal())
}

func Test_IsValid_RejectsUnknownStatus(t *testing.T) {
	assert.True(t, SheetStatusDraft.IsValid())
	assert.True(t, SheetStatusSubmitted.IsValid())
	assert.False(t, SheetStatus("ARCHIVED").IsValid())
	assert.False(t, SheetStatus("").IsValid())
}

func Test_Label_ReturnsDisplayName(t *testing.T) {
	assert.Equal(t, "Draft", SheetStatusDraft.Label())
	assert.Equal(t, "Submitted", SheetStatusSubmitted.Label())
	assert.Equal(t, "Approved", SheetStatusApproved.Label())
	assert.Equal(t, "Rejected", SheetStatusRejected.Label())
	assert.Equal(t, "UNKNOWN", SheetStatus("UNKNOWN").Label())
}
