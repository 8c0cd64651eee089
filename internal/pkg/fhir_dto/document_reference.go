package fhir_dto

type DocumentReference struct {
	ResourceType     string                     `json:"resourceType"`
	ID               string                     `json:"id,omitempty"`
	MasterIdentifier *Identifier                `json:"masterIdentifier,omitempty"`
	Identifier       []Identifier               `json:"identifier,omitempty"`
	Status           string                     `json:"status,omitempty"`
	DocStatus        string                     `json:"docStatus,omitempty"`
	Type             *CodeableConcept           `json:"type,omitempty"`
	Subject          *Reference                 `json:"subject,omitempty"`
	Created          string                     `json:"created,omitempty"`
	Extension        []Extension                `json:"extension,omitempty"`
	Content          []DocumentReferenceContent `json:"content,omitempty"`
}

type DocumentReferenceContent struct {
	Attachment Attachment `json:"attachment"`
}
