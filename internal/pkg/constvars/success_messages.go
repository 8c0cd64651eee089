package constvars

const (
	BuildBundleSuccessMessage     = "Declaration converted to FHIR bundle successfully"
	UpdateTaskSuccessMessage      = "Task updated successfully"
	IndexEventSuccessMessage      = "Event indexed successfully"
	AssignmentCheckSuccessMessage = "Assignment checked successfully"
)
