package timesheets_controllers

import (
	timesheets_services "orilla/internal/features/timesheets/services"
)

var timeSheetController = &TimeSheetController{
	timesheets_services.GetTimeSheetService(),
}

var workflowController = &WorkflowController{
	timesheets_services.GetSheetWorkflowService(),
}

func GetTimeSheetController() *TimeSheetController {
	return timeSheetController
}

func GetWorkflowController() *WorkflowController {
	return workflowController
}
