package fhir_dto

// PaymentReconciliation follows the store wire contract: total and detail
// amounts are plain numbers, and the total is summed at certificate level.
type PaymentReconciliation struct {
	ResourceType string                        `json:"resourceType"`
	ID           string                        `json:"id,omitempty"`
	Status       string                        `json:"status,omitempty"`
	Identifier   []Identifier                  `json:"identifier,omitempty"`
	Total        float64                       `json:"total,omitempty"`
	Outcome      *CodeableConcept              `json:"outcome,omitempty"`
	Detail       []PaymentReconciliationDetail `json:"detail,omitempty"`
}

type PaymentReconciliationDetail struct {
	Type   *CodeableConcept `json:"type,omitempty"`
	Amount float64          `json:"amount,omitempty"`
	Date   string           `json:"date,omitempty"`
}
