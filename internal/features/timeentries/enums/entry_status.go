package timeentries_enums

// EntryStatus is the review sub-state of a single time entry inside a
// submitted time sheet.
type EntryStatus string

const (
	EntryStatusPending    EntryStatus = "PENDING"
	EntryStatusApproved   EntryStatus = "APPROVED"
	EntryStatusQuestioned EntryStatus = "QUESTIONED"
)

var entryStatusLabels = map[EntryStatus]string{
	EntryStatusPending:    "Pending",
	EntryStatusApproved:   "Approved",
	EntryStatusQuestioned: "Questioned",
}

func (s EntryStatus) IsValid() bool {
	_, ok := entryStatusLabels[s]
	return ok
}

// Label returns the display name of the status.
func (s EntryStatus) Label() string {
	if label, ok := entryStatusLabels[s]; ok {
		return label
	}

	return string(s)
}
