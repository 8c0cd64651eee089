package fhir_dto

// Task tracks the workflow state of a registration event. BusinessStatus holds
// the registration status (DECLARED, REGISTERED, REJECTED, ...), while Status
// is the plain FHIR task state.
type Task struct {
	ResourceType   string           `json:"resourceType"`
	ID             string           `json:"id,omitempty"`
	Status         string           `json:"status,omitempty"`
	Intent         string           `json:"intent,omitempty"`
	Code           *CodeableConcept `json:"code,omitempty"`
	Focus          *Reference       `json:"focus,omitempty"`
	Identifier     []Identifier     `json:"identifier,omitempty"`
	Extension      []Extension      `json:"extension,omitempty"`
	BusinessStatus *CodeableConcept `json:"businessStatus,omitempty"`
	Reason         *CodeableConcept `json:"reason,omitempty"`
	StatusReason   *CodeableConcept `json:"statusReason,omitempty"`
	Note           []Annotation     `json:"note,omitempty"`
	LastModified   string           `json:"lastModified,omitempty"`
	Meta           *Meta            `json:"meta,omitempty"`
}
