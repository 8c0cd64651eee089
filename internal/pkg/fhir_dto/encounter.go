package fhir_dto

type Encounter struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Status       string              `json:"status,omitempty"`
	Location     []EncounterLocation `json:"location,omitempty"`
}

type EncounterLocation struct {
	Location Reference `json:"location"`
}
