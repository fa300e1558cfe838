package timeentries_enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsValid_AcceptsKnownStatuses(t *testing.T) {
	assert.True(t, EntryStatusPending.IsValid())
	assert.True(t, EntryStatusApproved.IsValid())
	assert.True(t, EntryStatusQuestioned.IsValid())
}

func Test_IsValid_RejectsUnknownStatus(t *testing.T) {
	assert.False(t, EntryStatus("REJECTED").IsValid())
	assert.False(t, EntryStatus("").IsValid())
}

func Test_Label_ReturnsDisplayName(t *testing.T) {
	assert.Equal(t, "Pending", EntryStatusPending.Label())
	assert.Equal(t, "Approved", EntryStatusApproved.Label())
	assert.Equal(t, "Questioned", EntryStatusQuestioned.Label())
	assert.Equal(t, "CUSTOM", EntryStatus("CUSTOM").Label())
}
