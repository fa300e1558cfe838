package timesheets_enums

// SheetStatus is the lifecycle state of a time sheet.
type SheetStatus string

const (
	SheetStatusDraft     SheetStatus = "DRAFT"
	SheetStatusSubmitted SheetStatus = "SUBMITTED"
	SheetStatusApproved  SheetStatus = "APPROVED"
	SheetStatusRejected  SheetStatus = "REJECTED"
)

var sheetStatusLabels = map[SheetStatus]string{
	SheetStatusDraft:     "Draft",
	SheetStatusSubmitted: "Submitted",
	SheetStatusApproved:  "Approved",
	SheetStatusRejected:  "Rejected",
}

// sheetTransitions is the full transition graph. Submit moves draft forward,
// approve/reject close a submitted sheet, revert is the only way back.
var sheetTransitions = map[SheetStatus][]SheetStatus{
	SheetStatusDraft:     {SheetStatusSubmitted},
	SheetStatusSubmitted: {SheetStatusApproved, SheetStatusRejected, SheetStatusDraft},
	SheetStatusApproved:  {SheetStatusDraft},
	SheetStatusRejected:  {SheetStatusDraft},
}

func (s SheetStatus) IsValid() bool {
	_, ok := sheetStatusLabels[s]
	return ok
}

// Label returns the display name of the status.
func (s SheetStatus) Label() string {
	if label, ok := sheetStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

func (s SheetStatus) CanTransitionTo(to SheetStatus) bool {
	for _, allowed := range sheetTransitions[s] {
		if allowed == to {
			return true
		}
	}

	return false
}

func (s SheetStatus) IsTerminal() bool {
	return s == SheetStatusApproved || s == SheetStatusRejected
}
