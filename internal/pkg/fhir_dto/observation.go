package fhir_dto

// Observation carries exactly one of ValueQuantity, ValueString or
// ValueDateTime, depending on the domain field it was built from.
type Observation struct {
	ResourceType  string            `json:"resourceType"`
	ID            string            `json:"id,omitempty"`
	Status        string            `json:"status,omitempty"`
	Context       *Reference        `json:"context,omitempty"`
	Category      []CodeableConcept `json:"category,omitempty"`
	Code          *CodeableConcept  `json:"code,omitempty"`
	ValueQuantity *Quantity         `json:"valueQuantity,omitempty"`
	ValueString   string            `json:"valueString,omitempty"`
	ValueDateTime string            `json:"valueDateTime,omitempty"`
}
