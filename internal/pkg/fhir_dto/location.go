package fhir_dto

type Location struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Mode         string           `json:"mode,omitempty"`
	Type         *CodeableConcept `json:"type,omitempty"`
	PartOf       *Reference       `json:"partOf,omitempty"`
	Address      *Address         `json:"address,omitempty"`
}
