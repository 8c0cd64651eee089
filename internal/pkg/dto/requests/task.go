package requests

import "opencrvs-service/internal/pkg/fhir_dto"

// TaskStatusUpdate is the payload for a Task business-status transition.
// Reason and Comment are both required when Status is REJECTED.
type TaskStatusUpdate struct {
	Entry   fhir_dto.TaskEntry `json:"entry" validate:"required"`
	Status  string             `json:"status" validate:"required"`
	Reason  string             `json:"reason,omitempty"`
	Comment string             `json:"comment,omitempty"`
}

// TaskExtensionUpdate appends one extension to a persisted Task.
type TaskExtensionUpdate struct {
	Entry     fhir_dto.TaskEntry `json:"entry" validate:"required"`
	Extension fhir_dto.Extension `json:"extension" validate:"required"`
}
