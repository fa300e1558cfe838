package timeentries_controllers

import (
	timeentries_services "orilla/internal/features/timeentries/services"
)

var timeEntryController = &TimeEntryController{
	timeentries_services.GetTimeEntryService(),
	timeentries_services.GetEntryMessageService(),
}

func GetTimeEntryController() *TimeEntryController {
	return timeEntryController
}
