package fhir_dto

// Composition is the root resource of a declaration bundle. Its sections
// enumerate which resource groups are present.
type Composition struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id,omitempty"`
	Identifier   *Identifier          `json:"identifier,omitempty"`
	Status       string               `json:"status,omitempty"`
	Type         *CodeableConcept     `json:"type,omitempty"`
	Class        *CodeableConcept     `json:"class,omitempty"`
	Subject      *Reference           `json:"subject,omitempty"`
	Title        string               `json:"title,omitempty"`
	Date         string               `json:"date,omitempty"`
	Section      []CompositionSection `json:"section,omitempty"`
}

type CompositionSection struct {
	Title string           `json:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty"`
	Entry []Reference      `json:"entry,omitempty"`
}
