package registration

import (
	"strings"
	"time"

	"opencrvs-service/internal/pkg/codes"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/fhir_dto"
	"opencrvs-service/internal/pkg/utils"
)

func buildHumanNames(names []requests.NameInput) []fhir_dto.HumanName {
	var out []fhir_dto.HumanName
	for _, n := range names {
		name := fhir_dto.HumanName{Use: n.Use}
		if n.FamilyName != "" {
			name.Family = []string{n.FamilyName}
		}
		if n.FirstNames != "" {
			name.Given = strings.Split(n.FirstNames, " ")
		}
		out = append(out, name)
	}
	return out
}

func buildAddresses(addresses []requests.AddressInput) []fhir_dto.Address {
	var out []fhir_dto.Address
	for _, a := range addresses {
		out = append(out, fhir_dto.Address{
			Use:        a.Use,
			Type:       a.Type,
			Text:       a.Text,
			Line:       a.Line,
			City:       a.City,
			District:   a.District,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}
	return out
}

func buildNationalityExtension(code string) fhir_dto.Extension {
	return fhir_dto.Extension{
		URL: constvars.ExtensionPatientNationality,
		Extension: []fhir_dto.Extension{
			{
				URL: "code",
				ValueCodeableConcept: &fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{System: constvars.ISO3166SystemURL, Code: code},
					},
				},
			},
			{
				URL:         "period",
				ValuePeriod: &fhir_dto.Period{Start: "", End: ""},
			},
		},
	}
}

// buildPatient maps one person section onto a Patient resource. The extension
// order is fixed: dateOfMarriage, nationality, educationalAttainment,
// occupation, reasonNotApplying. A present-but-blank dateOfMarriage still
// emits an extension with an empty date.
func buildPatient(tables *codes.Tables, in *requests.PersonInput) (*fhir_dto.Patient, error) {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           in.FHIRID,
		Gender:       in.Gender,
		BirthDate:    in.BirthDate,
		Name:         buildHumanNames(in.Name),
		Address:      buildAddresses(in.Address),
	}
	if patient.ID == "" {
		patient.ID = utils.GenerateResourceID()
	}

	for _, id := range in.Identifier {
		identifier := fhir_dto.Identifier{Value: id.ID}
		if id.Type != "" {
			identifier.Type = &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{System: constvars.OpenCRVSIdentifierTypeSystemURL, Code: id.Type},
				},
			}
		}
		identifier.OtherType = id.OtherType
		patient.Identifier = append(patient.Identifier, identifier)
	}

	for _, t := range in.Telecom {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: t.System,
			Value:  t.Value,
			Use:    t.Use,
		})
	}

	for _, p := range in.Photo {
		patient.Photo = append(patient.Photo, fhir_dto.Attachment{
			ContentType: p.ContentType,
			Data:        p.Data,
		})
	}

	if in.MaritalStatus != "" {
		code, err := tables.MaritalStatus(in.MaritalStatus)
		if err != nil {
			return nil, err
		}
		patient.MaritalStatus = &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.FHIRSpecificationURL + "marital-status", Code: code},
			},
			Text: in.MaritalStatus,
		}
	}

	patient.MultipleBirthInteger = in.MultipleBirth

	if in.DateOfMarriage != nil {
		patient.Extension = append(patient.Extension, fhir_dto.Extension{
			URL:           constvars.ExtensionDateOfMarriage,
			ValueDateTime: in.DateOfMarriage,
		})
	}
	for _, nationality := range in.Nationality {
		patient.Extension = append(patient.Extension, buildNationalityExtension(nationality))
	}
	if in.EducationalAttainment != "" {
		patient.Extension = append(patient.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionEducationalAttainment,
			ValueString: in.EducationalAttainment,
		})
	}
	if in.Occupation != "" {
		patient.Extension = append(patient.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionPatientOccupation,
			ValueString: in.Occupation,
		})
	}
	if in.ReasonNotApplying != "" {
		patient.Extension = append(patient.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionReasonNotApplying,
			ValueString: in.ReasonNotApplying,
		})
	}

	return patient, nil
}

// buildInformant spawns the RelatedPerson carrying the informant relationship.
// patientURL may be empty when the informant is not one of the bundled persons.
func buildInformant(reg *requests.RegistrationDetailsInput, patientURL string) *fhir_dto.RelatedPerson {
	informant := &fhir_dto.RelatedPerson{
		ResourceType: constvars.ResourceRelatedPerson,
		ID:           utils.GenerateResourceID(),
		Relationship: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.RelatedPersonRelationshipTypeURL, Code: reg.InformantType},
			},
		},
	}
	if reg.InformantType == constvars.InformantRelationshipOther {
		informant.Relationship.Text = reg.OtherInformantType
	}
	if patientURL != "" {
		informant.Patient = &fhir_dto.Reference{Reference: patientURL}
	}
	return informant
}

// buildTask creates the workflow Task for a declaration. The task starts as a
// draft while required fields are missing and as ready otherwise.
func buildTask(event constvars.Event, reg *requests.RegistrationDetailsInput, focusURL, createdAt string) (*fhir_dto.Task, error) {
	task := &fhir_dto.Task{
		ResourceType: constvars.ResourceTask,
		ID:           reg.FHIRID,
		Status:       constvars.TaskStatusReady,
		Intent:       constvars.TaskIntentOrder,
		Code: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSTypesSystemURL, Code: string(event)},
			},
		},
		Focus: &fhir_dto.Reference{Reference: focusURL},
	}
	if task.ID == "" {
		task.ID = utils.GenerateResourceID()
	}
	if reg.InCompleteFields != "" {
		task.Status = constvars.TaskStatusDraft
	}

	if reg.PaperFormID != "" {
		task.Identifier = append(task.Identifier, fhir_dto.Identifier{
			System: constvars.IdentifierPaperFormID,
			Value:  reg.PaperFormID,
		})
	}
	if reg.DraftID != "" {
		task.Identifier = append(task.Identifier, fhir_dto.Identifier{
			System: constvars.IdentifierDraftID,
			Value:  reg.DraftID,
		})
	}
	if reg.TrackingID != "" {
		task.Identifier = append(task.Identifier, fhir_dto.Identifier{
			System: codes.TrackingIDSystem(event),
			Value:  reg.TrackingID,
		})
	}
	if reg.RegistrationNumber != "" {
		task.Identifier = append(task.Identifier, fhir_dto.Identifier{
			System: codes.RegistrationNumberSystem(event),
			Value:  reg.RegistrationNumber,
		})
	}

	if reg.InformantType != "" {
		task.Extension = append(task.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionContactPerson,
			ValueString: reg.InformantType,
		})
		if reg.InformantType == constvars.InformantRelationshipOther {
			if reg.OtherInformantType == "" {
				return nil, exceptions.ErrMissingOtherRelationship()
			}
			task.Extension = append(task.Extension, fhir_dto.Extension{
				URL:         constvars.ExtensionContactRelationship,
				ValueString: reg.OtherInformantType,
			})
		}
	}
	if reg.ContactPhoneNumber != "" {
		task.Extension = append(task.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionContactPhoneNumber,
			ValueString: reg.ContactPhoneNumber,
		})
	}
	if reg.InCompleteFields != "" {
		task.Extension = append(task.Extension, fhir_dto.Extension{
			URL:         constvars.ExtensionInCompleteFields,
			ValueString: reg.InCompleteFields,
		})
	}

	for _, status := range reg.Status {
		if status.TimeLoggedMS != nil {
			task.Extension = append(task.Extension, fhir_dto.Extension{
				URL:          constvars.ExtensionTimeLoggedMS,
				ValueInteger: status.TimeLoggedMS,
			})
		}
		for _, comment := range status.Comments {
			task.Note = append(task.Note, fhir_dto.Annotation{
				Text: comment.Comment,
				Time: comment.CreatedAt,
			})
		}
	}

	task.LastModified = createdAt
	if task.LastModified == "" {
		task.LastModified = time.Now().Format(time.RFC3339)
	}
	return task, nil
}

// buildAttachmentReference maps a supporting document onto a DocumentReference.
// Unknown attachment statuses fail the build rather than defaulting.
func buildAttachmentReference(tables *codes.Tables, in *requests.AttachmentInput) (*fhir_dto.DocumentReference, error) {
	docStatus, err := tables.DocStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ref := &fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           in.FHIRID,
		Status:       constvars.DocumentReferenceStatusCurrent,
		DocStatus:    docStatus,
		Created:      in.CreatedAt,
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSSupportingDocTypeURL, Code: in.Type},
			},
		},
		Content: []fhir_dto.DocumentReferenceContent{
			{Attachment: fhir_dto.Attachment{ContentType: in.ContentType, Data: in.Data}},
		},
	}
	if ref.ID == "" {
		ref.ID = utils.GenerateResourceID()
	}
	if in.OriginalFileName != "" {
		ref.Identifier = append(ref.Identifier, fhir_dto.Identifier{
			System: constvars.IdentifierOriginalFileName,
			Value:  in.OriginalFileName,
		})
	}
	if in.SystemFileName != "" {
		ref.Identifier = append(ref.Identifier, fhir_dto.Identifier{
			System: constvars.IdentifierSystemFileName,
			Value:  in.SystemFileName,
		})
	}
	if in.Subject != "" {
		ref.Subject = &fhir_dto.Reference{Display: in.Subject}
	}
	return ref, nil
}

// buildCertificateReference creates the DocumentReference for an issued
// certificate. dataRef is the stored certificate PDF's reference URL, and
// paymentURL is empty when no payment was recorded.
func buildCertificateReference(event constvars.Event, cert *requests.CertificateInput, dataRef, collectorURL, paymentURL string) *fhir_dto.DocumentReference {
	ref := &fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           utils.GenerateResourceID(),
		Status:       constvars.DocumentReferenceStatusCurrent,
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSCertificateTypeURL, Code: string(event)},
			},
		},
	}
	if collectorURL != "" {
		ref.Extension = append(ref.Extension, fhir_dto.Extension{
			URL:            constvars.ExtensionCollector,
			ValueReference: &fhir_dto.Reference{Reference: collectorURL},
		})
	}
	ref.Extension = append(ref.Extension, fhir_dto.Extension{
		URL:          constvars.ExtensionHasShowedVerifiedDoc,
		ValueBoolean: utils.BoolPtr(cert.HasShowedVerifiedDocument),
	})
	if paymentURL != "" {
		ref.Extension = append(ref.Extension, fhir_dto.Extension{
			URL:            constvars.ExtensionPayment,
			ValueReference: &fhir_dto.Reference{Reference: paymentURL},
		})
	}
	if dataRef != "" {
		ref.Content = []fhir_dto.DocumentReferenceContent{
			{Attachment: fhir_dto.Attachment{ContentType: constvars.MIMEApplicationPDF, Data: dataRef}},
		}
	}
	return ref
}

// buildCollector spawns the RelatedPerson acting as certificate collector.
// affidavits already carry stored reference URLs in place of raw payloads.
func buildCollector(in *requests.CollectorInput, affidavits []fhir_dto.Attachment, patientURL string) (*fhir_dto.RelatedPerson, error) {
	if in.Relationship == constvars.InformantRelationshipOther &&
		len(in.Name) == 0 && len(in.Identifier) == 0 {
		return nil, exceptions.ErrMissingCollectorIdentity()
	}

	collector := &fhir_dto.RelatedPerson{
		ResourceType: constvars.ResourceRelatedPerson,
		ID:           utils.GenerateResourceID(),
		Relationship: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.RelatedPersonRelationshipTypeURL, Code: in.Relationship},
			},
		},
	}
	if in.OtherRelationship != "" {
		collector.Relationship.Text = in.OtherRelationship
	}
	for _, affidavit := range affidavits {
		affidavit := affidavit
		collector.Extension = append(collector.Extension, fhir_dto.Extension{
			URL:             constvars.ExtensionRelatedPersonAffidavit,
			ValueAttachment: &affidavit,
		})
	}
	if patientURL != "" {
		collector.Patient = &fhir_dto.Reference{Reference: patientURL}
	}
	return collector, nil
}

// buildCollectorPatient creates the identity stub referenced by the collector.
// The identifier keeps the raw id in the id slot here, not in value.
func buildCollectorPatient(in *requests.CollectorInput) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           utils.GenerateResourceID(),
		Name:         buildHumanNames(in.Name),
	}
	for _, id := range in.Identifier {
		identifier := fhir_dto.Identifier{ID: id.ID}
		if id.Type != "" {
			identifier.Type = &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{System: constvars.OpenCRVSIdentifierTypeSystemURL, Code: id.Type},
				},
			}
		}
		patient.Identifier = append(patient.Identifier, identifier)
	}
	return patient
}

// buildPayment rolls the certificate's payments into one PaymentReconciliation.
func buildPayment(payments []requests.PaymentInput) *fhir_dto.PaymentReconciliation {
	payment := &fhir_dto.PaymentReconciliation{
		ResourceType: constvars.ResourcePaymentReconciliation,
		ID:           utils.GenerateResourceID(),
		Status:       constvars.PaymentReconciliationStatusActive,
	}
	for _, p := range payments {
		if p.PaymentID != "" {
			payment.Identifier = append(payment.Identifier, fhir_dto.Identifier{
				System: constvars.IdentifierPaymentID,
				Value:  p.PaymentID,
			})
		}
		payment.Total += p.Total
		if p.Outcome != "" {
			payment.Outcome = &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{Code: p.Outcome}},
			}
		}
		payment.Detail = append(payment.Detail, fhir_dto.PaymentReconciliationDetail{
			Type:   &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: p.Type}}},
			Amount: p.Amount,
			Date:   p.Date,
		})
	}
	return payment
}

func buildEncounter(id, locationURL string) *fhir_dto.Encounter {
	encounter := &fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           id,
		Status:       constvars.EncounterStatusFinished,
	}
	if encounter.ID == "" {
		encounter.ID = utils.GenerateResourceID()
	}
	if locationURL != "" {
		encounter.Location = []fhir_dto.EncounterLocation{
			{Location: fhir_dto.Reference{Reference: locationURL}},
		}
	}
	return encounter
}

func buildEventLocation(in *requests.EventLocationInput) *fhir_dto.Location {
	location := &fhir_dto.Location{
		ResourceType: constvars.ResourceLocation,
		ID:           utils.GenerateResourceID(),
		Mode:         constvars.LocationModeInstance,
	}
	if in.Type != "" {
		location.Type = &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSLocationTypeURL, Code: in.Type},
			},
		}
	}
	if in.PartOf != "" {
		location.PartOf = &fhir_dto.Reference{Reference: in.PartOf}
	}
	if in.Address != nil {
		address := buildAddresses([]requests.AddressInput{*in.Address})
		location.Address = &address[0]
	}
	return location
}

// buildObservation creates the shared Observation shell for one scalar field;
// the caller fills in the value slot.
func buildObservation(tables *codes.Tables, field codes.ObservationField, id, encounterURL string) (*fhir_dto.Observation, error) {
	oc, err := tables.Observation(field)
	if err != nil {
		return nil, err
	}

	observation := &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		ID:           id,
		Status:       constvars.ObservationStatusFinal,
		Context:      &fhir_dto.Reference{Reference: encounterURL},
		Code: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.LOINCSystemURL, Code: oc.Code, Display: oc.Display},
			},
		},
	}
	if observation.ID == "" {
		observation.ID = utils.GenerateResourceID()
	}
	if oc.CategoryCode != "" {
		observation.Category = []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FHIRObservationCategoryURL,
						Code:    oc.CategoryCode,
						Display: oc.CategoryDisplay,
					},
				},
			},
		}
	}
	return observation, nil
}
