package fhir_dto

type RelatedPerson struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Relationship *CodeableConcept `json:"relationship,omitempty"`
	Patient      *Reference       `json:"patient,omitempty"`
	Extension    []Extension      `json:"extension,omitempty"`
}
