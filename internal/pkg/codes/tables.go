package codes

import (
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"
)

// Tables holds the fixed domain-to-FHIR terminology mappings. It is built once
// and handed to the bundle builders so they stay free of hidden globals.
// Lookups on unmapped codes fail loudly instead of defaulting.
type Tables struct {
	maritalStatus map[string]string
	docStatus     map[string]string
	observations  map[ObservationField]ObservationCode
}

// ObservationField names a scalar declaration field that projects to an
// Observation resource.
type ObservationField string

const (
	FieldBirthType                 ObservationField = "birthType"
	FieldWeightAtBirth             ObservationField = "weightAtBirth"
	FieldAttendantAtBirth          ObservationField = "attendantAtBirth"
	FieldChildrenBornAliveToMother ObservationField = "childrenBornAliveToMother"
	FieldFoetalDeathsToMother      ObservationField = "foetalDeathsToMother"
	FieldLastPreviousLiveBirth     ObservationField = "lastPreviousLiveBirth"
	FieldMannerOfDeath             ObservationField = "mannerOfDeath"
	FieldCauseOfDeath              ObservationField = "causeOfDeath"
	FieldDeathDescription          ObservationField = "deathDescription"
	FieldTypeOfMarriage            ObservationField = "typeOfMarriage"
)

// ObservationCode is the coding metadata for one observation field.
type ObservationCode struct {
	Code            string
	Display         string
	CategoryCode    string
	CategoryDisplay string
}

const (
	CategoryProcedure  = "procedure"
	CategoryVitalSigns = "vital-signs"
)

func NewTables() *Tables {
	return &Tables{
		maritalStatus: map[string]string{
			"SINGLE":     "S",
			"MARRIED":    "M",
			"WIDOWED":    "W",
			"DIVORCED":   "D",
			"SEPARATED":  "L",
			"NOT_STATED": "UNK",
		},
		docStatus: map[string]string{
			"final":   "final",
			"amended": "approved",
			"deleted": "deleted",
		},
		observations: map[ObservationField]ObservationCode{
			FieldBirthType: {
				Code: "57722-1", Display: "Birth plurality of Pregnancy",
				CategoryCode: CategoryProcedure, CategoryDisplay: "Procedure",
			},
			FieldWeightAtBirth: {
				Code: "3141-9", Display: "Body weight Measured",
				CategoryCode: CategoryVitalSigns, CategoryDisplay: "Vital Signs",
			},
			FieldAttendantAtBirth: {
				Code: "73764-3", Display: "Birth attendant title",
				CategoryCode: CategoryProcedure, CategoryDisplay: "Procedure",
			},
			FieldChildrenBornAliveToMother: {
				Code: "num-born-alive", Display: "Number born alive to mother",
			},
			FieldFoetalDeathsToMother: {
				Code: "num-foetal-death", Display: "Number foetal deaths to mother",
			},
			FieldLastPreviousLiveBirth: {
				Code: "68499-3", Display: "Date last live birth",
			},
			FieldMannerOfDeath: {
				Code: "uncertified-manner-of-death", Display: "Uncertified manner of death",
			},
			FieldCauseOfDeath: {
				Code: "ICD10", Display: "Cause of death",
			},
			FieldDeathDescription: {
				Code: "lay-reported-or-verbal-autopsy-description",
				Display: "Lay reported or verbal autopsy description",
			},
			FieldTypeOfMarriage: {
				Code: "partnership", Display: "Partnership",
			},
		},
	}
}

// MaritalStatus maps the domain marital-status enum to its FHIR code.
func (t *Tables) MaritalStatus(status string) (string, error) {
	code, ok := t.maritalStatus[status]
	if !ok {
		return "", exceptions.ErrUnknownCode(status, "marital-status")
	}
	return code, nil
}

// DocStatus maps an attachment status to the FHIR docStatus vocabulary.
func (t *Tables) DocStatus(status string) (string, error) {
	code, ok := t.docStatus[status]
	if !ok {
		return "", exceptions.ErrUnknownCode(status, "doc-status")
	}
	return code, nil
}

// Observation returns the coding metadata for an observation field.
func (t *Tables) Observation(field ObservationField) (ObservationCode, error) {
	oc, ok := t.observations[field]
	if !ok {
		return ObservationCode{}, exceptions.ErrUnknownCode(string(field), "observation")
	}
	return oc, nil
}

// TrackingIDSystem returns the identifier namespace for an event's tracking id.
func TrackingIDSystem(event constvars.Event) string {
	switch event {
	case constvars.EventDeath:
		return constvars.OpenCRVSSpecificationURL + "id/death-tracking-id"
	case constvars.EventMarriage:
		return constvars.OpenCRVSSpecificationURL + "id/marriage-tracking-id"
	default:
		return constvars.OpenCRVSSpecificationURL + "id/birth-tracking-id"
	}
}

// RegistrationNumberSystem returns the identifier namespace for an event's
// registration number.
func RegistrationNumberSystem(event constvars.Event) string {
	switch event {
	case constvars.EventDeath:
		return constvars.OpenCRVSSpecificationURL + "id/death-registration-number"
	case constvars.EventMarriage:
		return constvars.OpenCRVSSpecificationURL + "id/marriage-registration-number"
	default:
		return constvars.OpenCRVSSpecificationURL + "id/birth-registration-number"
	}
}
