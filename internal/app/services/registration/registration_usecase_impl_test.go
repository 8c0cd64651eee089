package registration

import (
	"context"
	"testing"

	"opencrvs-service/internal/pkg/codes"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/fhir_dto"
	"opencrvs-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const uploadedRefURL = "/ocrvs/3d3623fa-333d-11ed-a261-0242ac120002.png"

type stubDocumentStorage struct {
	uploads int
}

func (s *stubDocumentStorage) UploadDocument(_ context.Context, _, _ string) (string, error) {
	s.uploads++
	return uploadedRefURL, nil
}

func newTestUsecase() *registrationUsecase {
	return &registrationUsecase{
		Tables:          codes.NewTables(),
		DocumentStorage: &stubDocumentStorage{},
		Log:             zap.NewNop(),
	}
}

func fullBirthInput() *requests.RegistrationInput {
	weight := 3.0
	bornAlive := 2
	foetalDeaths := 0
	timeLogged := 1234
	one, two, three := 1, 2, 3

	return &requests.RegistrationInput{
		Mother: &requests.PersonInput{
			FHIRID:                "8f18a6ea-89d1-4b03-80b3-57509a7eeb39",
			Identifier:            []requests.IdentifierInput{{ID: "123456", Type: "OTHER", OtherType: "Custom type"}},
			Gender:                "female",
			BirthDate:             "2000-01-28",
			MaritalStatus:         "MARRIED",
			Name:                  []requests.NameInput{{FirstNames: "Jane", FamilyName: "Doe", Use: "en"}},
			MultipleBirth:         &one,
			DateOfMarriage:        utils.StringPtr("2014-01-28"),
			Nationality:           []string{"BGD"},
			EducationalAttainment: "UPPER_SECONDARY_ISCED_3",
			Occupation:            "Mother Occupation",
		},
		Father: &requests.PersonInput{
			FHIRID:        "8f18a6ea-89d1-4b03-80b3-57509a7eeb40",
			Gender:        "male",
			Telecom:       []requests.TelecomInput{{Use: "mobile", System: "phone", Value: "0171111111"}},
			MaritalStatus: "MARRIED",
			BirthDate:     "2000-09-28",
			MultipleBirth: &two,
			Address: []requests.AddressInput{
				{
					Use:        "home",
					Type:       "both",
					Line:       []string{"2760 Mlosi Street", "Wallacedene"},
					District:   "Kraaifontein",
					State:      "Western Cape",
					City:       "Cape Town",
					PostalCode: "7570",
					Country:    "BGD",
				},
				{
					Use:        "home",
					Type:       "both",
					Line:       []string{"40 Orbis Wharf", "Wallacedene"},
					Text:       "Optional address text",
					District:   "Kraaifontein",
					State:      "Western Cape",
					City:       "Cape Town",
					PostalCode: "7570",
					Country:    "BGD",
				},
			},
			Photo:                 []requests.AttachmentData{{ContentType: "image/jpeg", Data: "123456"}},
			DateOfMarriage:        utils.StringPtr("2014-01-28"),
			Nationality:           []string{"BGD"},
			EducationalAttainment: "UPPER_SECONDARY_ISCED_3",
			Occupation:            "Father Occupation",
		},
		Child: &requests.PersonInput{
			FHIRID:                "8f18a6ea-89d1-4b03-80b3-57509a7eeb41",
			Gender:                "male",
			BirthDate:             "2018-01-28",
			MaritalStatus:         "NOT_STATED",
			MultipleBirth:         &three,
			DateOfMarriage:        utils.StringPtr(""),
			Nationality:           []string{"BGD"},
			EducationalAttainment: "NO_SCHOOLING",
		},
		Registration: &requests.RegistrationDetailsInput{
			FHIRID:             "8f18a6ea-89d1-4b03-80b3-57509a7eebce",
			InformantType:      "MOTHER",
			ContactPhoneNumber: "01733333333",
			PaperFormID:        "12345678",
			DraftID:            "8f18a6ea-89d1-4b03-80b3-57509a7eebce",
			TrackingID:         "B123456",
			RegistrationNumber: "201923324512345671",
			InCompleteFields: "child/child-view-group/placeOfBirth," +
				"mother/mother-view-group/iDType," +
				"mother/mother-view-group/iD," +
				"mother/mother-view-group/familyName," +
				"mother/mother-view-group/familyNameEng",
			Status: []requests.StatusInput{
				{
					Comments: []requests.CommentInput{
						{Comment: "This is just a test data", CreatedAt: "2018-10-31T09:40:05+10:00"},
					},
					Timestamp:    "2018-10-31T09:40:05+10:00",
					TimeLoggedMS: &timeLogged,
				},
			},
			Attachments: []requests.AttachmentInput{
				{
					FHIRID:           "8f18a6ea-89d1-4b03-80b3-57509a7eebce11",
					ContentType:      "image/jpeg",
					Data:             "SampleData",
					Status:           "final",
					OriginalFileName: "original.jpg",
					SystemFileName:   "system.jpg",
					Type:             "NATIONAL_ID",
					CreatedAt:        "2018-10-21",
				},
				{
					FHIRID:           "8f18a6ea-89d1-4b03-80b3-57509a7eebce22",
					ContentType:      "image/png",
					Data:             "ExampleData",
					Status:           "amended",
					OriginalFileName: "original.png",
					SystemFileName:   "system.png",
					Type:             "PASSPORT",
					CreatedAt:        "2018-10-22",
					Subject:          "MOTHER",
				},
			},
			Certificates: []requests.CertificateInput{
				{
					Collector: &requests.CollectorInput{
						Relationship: "OTHER",
						Affidavit: []requests.AttachmentData{
							{ContentType: "image/jpg", Data: "data:image/png;base64,2324256"},
						},
						Name:       []requests.NameInput{{FirstNames: "Doe", FamilyName: "Jane", Use: "en"}},
						Identifier: []requests.IdentifierInput{{ID: "123456", Type: "PASSPORT"}},
					},
					HasShowedVerifiedDocument: true,
					Payments: []requests.PaymentInput{
						{
							PaymentID: "1234",
							Type:      "MANUAL",
							Total:     50,
							Amount:    50,
							Outcome:   "COMPLETED",
							Date:      "2018-10-22",
						},
					},
					Data: "data:image/png;base64,2324256",
				},
			},
		},
		EventLocation: &requests.EventLocationInput{
			Type:   "PRIVATE_HOME",
			PartOf: "Location/456",
			Address: &requests.AddressInput{
				Country:    "789",
				State:      "101112",
				District:   "131415",
				PostalCode: "sw11",
				Line: []string{
					"addressLine1",
					"addressLine1UrbanOption",
					"addressLine2",
					"123",
					"456",
					"789",
				},
			},
		},
		BirthType:                 "SINGLE",
		WeightAtBirth:             &weight,
		AttendantAtBirth:          "NURSE",
		ChildrenBornAliveToMother: &bornAlive,
		FoetalDeathsToMother:      &foetalDeaths,
		LastPreviousLiveBirth:     "2014-01-28",
		CreatedAt:                 "2018-10-31T09:45:05+10:00",
		FHIRIDMap: &requests.FHIRIDMap{
			Composition: "8f18a6ea-89d1-4b03-80b3-57509a7eebcedsd",
			Encounter:   "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dsakelske",
			Observation: &requests.ObservationIDMap{
				BirthType:                 "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3283",
				WeightAtBirth:             "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3293",
				AttendantAtBirth:          "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3203",
				ChildrenBornAliveToMother: "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3283kdsoe",
				FoetalDeathsToMother:      "8f18a6ea-89d1-4b03-80b3-57509a7eebce-kdsa2324",
				LastPreviousLiveBirth:     "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dsa23324lsdafk",
			},
		},
	}
}

func TestBuildFHIRBundle(t *testing.T) {
	uc := newTestUsecase()

	bundle, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, fullBirthInput())
	assert.NoError(t, err)
	assert.NotNil(t, bundle)
	assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
	assert.Equal(t, constvars.BundleTypeDocument, bundle.Type)
	assert.Len(t, bundle.Entry, 20)

	composition := bundle.Entry[0].Resource.(*fhir_dto.Composition)
	assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebcedsd", composition.ID)
	assert.Len(t, composition.Section, 7)
	assert.NotEmpty(t, composition.Date)
	assert.Equal(t, "Birth Declaration", composition.Title)

	t.Run("mother", func(t *testing.T) {
		mother := bundle.Entry[1].Resource.(*fhir_dto.Patient)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eeb39", mother.ID)
		assert.Equal(t, "female", mother.Gender)
		assert.Equal(t, "Jane", mother.Name[0].Given[0])
		assert.Equal(t, "Doe", mother.Name[0].Family[0])
		assert.Equal(t, "en", mother.Name[0].Use)
		assert.Equal(t, "123456", mother.Identifier[0].Value)
		assert.Equal(t, "OTHER", mother.Identifier[0].Type.Coding[0].Code)
		assert.Equal(t, "Custom type", mother.Identifier[0].OtherType)
		assert.Equal(t, "2000-01-28", mother.BirthDate)
		assert.Equal(t, "MARRIED", mother.MaritalStatus.Text)
		assert.Equal(t, "M", mother.MaritalStatus.Coding[0].Code)
		assert.Equal(t, 1, *mother.MultipleBirthInteger)

		assert.Equal(t, constvars.ExtensionDateOfMarriage, mother.Extension[0].URL)
		assert.Equal(t, "2014-01-28", *mother.Extension[0].ValueDateTime)
		assert.Equal(t, fhir_dto.Extension{
			URL: constvars.ExtensionPatientNationality,
			Extension: []fhir_dto.Extension{
				{
					URL: "code",
					ValueCodeableConcept: &fhir_dto.CodeableConcept{
						Coding: []fhir_dto.Coding{{System: constvars.ISO3166SystemURL, Code: "BGD"}},
					},
				},
				{
					URL:         "period",
					ValuePeriod: &fhir_dto.Period{Start: "", End: ""},
				},
			},
		}, mother.Extension[1])
		assert.Equal(t, constvars.ExtensionEducationalAttainment, mother.Extension[2].URL)
		assert.Equal(t, "UPPER_SECONDARY_ISCED_3", mother.Extension[2].ValueString)
		assert.Equal(t, constvars.ExtensionPatientOccupation, mother.Extension[3].URL)
		assert.Equal(t, "Mother Occupation", mother.Extension[3].ValueString)
		assert.Len(t, mother.Extension, 4)
	})

	t.Run("father", func(t *testing.T) {
		father := bundle.Entry[2].Resource.(*fhir_dto.Patient)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eeb40", father.ID)
		assert.Equal(t, "male", father.Gender)
		assert.Equal(t, "0171111111", father.Telecom[0].Value)
		assert.Equal(t, "phone", father.Telecom[0].System)
		assert.Equal(t, "mobile", father.Telecom[0].Use)
		assert.Equal(t, "2000-09-28", father.BirthDate)
		assert.Equal(t, 2, *father.MultipleBirthInteger)
		assert.Equal(t, "home", father.Address[0].Use)
		assert.Equal(t, "2760 Mlosi Street", father.Address[0].Line[0])
		assert.Equal(t, "40 Orbis Wharf", father.Address[1].Line[0])
		assert.Equal(t, "Optional address text", father.Address[1].Text)
		assert.Equal(t, constvars.ExtensionPatientNationality, father.Extension[1].URL)
	})

	t.Run("child emits blank date of marriage", func(t *testing.T) {
		child := bundle.Entry[3].Resource.(*fhir_dto.Patient)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eeb41", child.ID)
		assert.Equal(t, "NOT_STATED", child.MaritalStatus.Text)
		assert.Equal(t, "UNK", child.MaritalStatus.Coding[0].Code)
		assert.Equal(t, 3, *child.MultipleBirthInteger)
		assert.Equal(t, constvars.ExtensionDateOfMarriage, child.Extension[0].URL)
		assert.NotNil(t, child.Extension[0].ValueDateTime)
		assert.Equal(t, "", *child.Extension[0].ValueDateTime)
		assert.Equal(t, "NO_SCHOOLING", child.Extension[2].ValueString)
	})

	t.Run("task", func(t *testing.T) {
		task := bundle.Entry[4].Resource.(*fhir_dto.Task)
		assert.Equal(t, constvars.ResourceTask, task.ResourceType)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce", task.ID)
		assert.Equal(t, constvars.TaskStatusDraft, task.Status)
		assert.Equal(t, bundle.Entry[0].FullURL, task.Focus.Reference)
		assert.Equal(t, &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSTypesSystemURL, Code: "BIRTH"},
			},
		}, task.Code)

		assert.Equal(t, fhir_dto.Extension{
			URL:         constvars.ExtensionContactPerson,
			ValueString: "MOTHER",
		}, task.Extension[0])
		assert.Equal(t, fhir_dto.Extension{
			URL:         constvars.ExtensionContactPhoneNumber,
			ValueString: "01733333333",
		}, task.Extension[1])
		assert.Equal(t, constvars.ExtensionInCompleteFields, task.Extension[2].URL)
		assert.Equal(t, constvars.ExtensionTimeLoggedMS, task.Extension[3].URL)
		assert.Equal(t, 1234, *task.Extension[3].ValueInteger)

		assert.Equal(t, "2018-10-31T09:45:05+10:00", task.LastModified)
		assert.Equal(t, fhir_dto.Annotation{
			Text: "This is just a test data",
			Time: "2018-10-31T09:40:05+10:00",
		}, task.Note[0])

		assert.Equal(t, []fhir_dto.Identifier{
			{System: "http://opencrvs.org/specs/id/paper-form-id", Value: "12345678"},
			{System: "http://opencrvs.org/specs/id/draft-id", Value: "8f18a6ea-89d1-4b03-80b3-57509a7eebce"},
			{System: "http://opencrvs.org/specs/id/birth-tracking-id", Value: "B123456"},
			{System: "http://opencrvs.org/specs/id/birth-registration-number", Value: "201923324512345671"},
		}, task.Identifier)
	})

	t.Run("informant", func(t *testing.T) {
		informant := bundle.Entry[5].Resource.(*fhir_dto.RelatedPerson)
		assert.Equal(t, constvars.ResourceRelatedPerson, informant.ResourceType)
		assert.Equal(t, "MOTHER", informant.Relationship.Coding[0].Code)
		assert.Equal(t, bundle.Entry[1].FullURL, informant.Patient.Reference)
	})

	t.Run("attachments", func(t *testing.T) {
		first := bundle.Entry[6].Resource.(*fhir_dto.DocumentReference)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce11", first.ID)
		assert.Equal(t, "final", first.DocStatus)
		assert.Equal(t, "2018-10-21", first.Created)
		assert.Equal(t, "NATIONAL_ID", first.Type.Coding[0].Code)
		assert.Equal(t, constvars.OpenCRVSSupportingDocTypeURL, first.Type.Coding[0].System)
		assert.Equal(t, []fhir_dto.DocumentReferenceContent{
			{Attachment: fhir_dto.Attachment{ContentType: "image/jpeg", Data: "SampleData"}},
		}, first.Content)
		assert.Equal(t, []fhir_dto.Identifier{
			{System: "http://opencrvs.org/specs/id/original-file-name", Value: "original.jpg"},
			{System: "http://opencrvs.org/specs/id/system-file-name", Value: "system.jpg"},
		}, first.Identifier)
		assert.Nil(t, first.Subject)

		second := bundle.Entry[7].Resource.(*fhir_dto.DocumentReference)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce22", second.ID)
		assert.Equal(t, "approved", second.DocStatus)
		assert.Equal(t, "PASSPORT", second.Type.Coding[0].Code)
		assert.Equal(t, &fhir_dto.Reference{Display: "MOTHER"}, second.Subject)
	})

	t.Run("certificate group", func(t *testing.T) {
		certificate := bundle.Entry[8].Resource.(*fhir_dto.DocumentReference)
		assert.Equal(t, constvars.ResourceDocumentReference, certificate.ResourceType)
		assert.Equal(t, "BIRTH", certificate.Type.Coding[0].Code)
		assert.Equal(t, constvars.OpenCRVSCertificateTypeURL, certificate.Type.Coding[0].System)
		assert.Equal(t, []fhir_dto.Extension{
			{
				URL:            constvars.ExtensionCollector,
				ValueReference: &fhir_dto.Reference{Reference: bundle.Entry[9].FullURL},
			},
			{
				URL:          constvars.ExtensionHasShowedVerifiedDoc,
				ValueBoolean: utils.BoolPtr(true),
			},
			{
				URL:            constvars.ExtensionPayment,
				ValueReference: &fhir_dto.Reference{Reference: bundle.Entry[11].FullURL},
			},
		}, certificate.Extension)
		assert.Equal(t, []fhir_dto.DocumentReferenceContent{
			{Attachment: fhir_dto.Attachment{ContentType: constvars.MIMEApplicationPDF, Data: uploadedRefURL}},
		}, certificate.Content)

		collector := bundle.Entry[9].Resource.(*fhir_dto.RelatedPerson)
		assert.Equal(t, constvars.ResourceRelatedPerson, collector.ResourceType)
		assert.Equal(t, "OTHER", collector.Relationship.Coding[0].Code)
		assert.Equal(t, constvars.RelatedPersonRelationshipTypeURL, collector.Relationship.Coding[0].System)
		assert.Equal(t, []fhir_dto.Extension{
			{
				URL: constvars.ExtensionRelatedPersonAffidavit,
				ValueAttachment: &fhir_dto.Attachment{
					ContentType: "image/jpg",
					Data:        uploadedRefURL,
				},
			},
		}, collector.Extension)
		assert.Equal(t, bundle.Entry[10].FullURL, collector.Patient.Reference)

		collectorPatient := bundle.Entry[10].Resource.(*fhir_dto.Patient)
		assert.Equal(t, []fhir_dto.HumanName{
			{Use: "en", Family: []string{"Jane"}, Given: []string{"Doe"}},
		}, collectorPatient.Name)
		assert.Equal(t, []fhir_dto.Identifier{
			{
				ID: "123456",
				Type: &fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{System: constvars.OpenCRVSIdentifierTypeSystemURL, Code: "PASSPORT"},
					},
				},
			},
		}, collectorPatient.Identifier)

		payment := bundle.Entry[11].Resource.(*fhir_dto.PaymentReconciliation)
		assert.Equal(t, constvars.PaymentReconciliationStatusActive, payment.Status)
		assert.Equal(t, []fhir_dto.Identifier{
			{System: "http://opencrvs.org/specs/id/payment-id", Value: "1234"},
		}, payment.Identifier)
		assert.Equal(t, 50.0, payment.Total)
		assert.Equal(t, &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{Code: "COMPLETED"}},
		}, payment.Outcome)
		assert.Equal(t, []fhir_dto.PaymentReconciliationDetail{
			{
				Type:   &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "MANUAL"}}},
				Amount: 50,
				Date:   "2018-10-22",
			},
		}, payment.Detail)
	})

	t.Run("encounter and location", func(t *testing.T) {
		encounter := bundle.Entry[12].Resource.(*fhir_dto.Encounter)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dsakelske", encounter.ID)
		assert.Equal(t, constvars.EncounterStatusFinished, encounter.Status)
		assert.Equal(t, bundle.Entry[13].FullURL, encounter.Location[0].Location.Reference)

		location := bundle.Entry[13].Resource.(*fhir_dto.Location)
		assert.Equal(t, "Location/456", location.PartOf.Reference)
		assert.Equal(t, "PRIVATE_HOME", location.Type.Coding[0].Code)
		assert.Equal(t, "789", location.Address.Country)
		assert.Equal(t, "101112", location.Address.State)
		assert.Equal(t, "131415", location.Address.District)
		assert.Equal(t, "sw11", location.Address.PostalCode)
	})

	t.Run("observations", func(t *testing.T) {
		encounterURL := bundle.Entry[12].FullURL

		birthType := bundle.Entry[14].Resource.(*fhir_dto.Observation)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3283", birthType.ID)
		assert.Equal(t, "SINGLE", birthType.ValueQuantity.Value)
		assert.Equal(t, encounterURL, birthType.Context.Reference)
		assert.Equal(t, []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{System: constvars.FHIRObservationCategoryURL, Code: "procedure", Display: "Procedure"},
				},
			},
		}, birthType.Category)
		assert.Equal(t, []fhir_dto.Coding{
			{System: constvars.LOINCSystemURL, Code: "57722-1", Display: "Birth plurality of Pregnancy"},
		}, birthType.Code.Coding)

		weight := bundle.Entry[15].Resource.(*fhir_dto.Observation)
		assert.Equal(t, "8f18a6ea-89d1-4b03-80b3-57509a7eebce-dh3293", weight.ID)
		assert.Equal(t, 3.0, weight.ValueQuantity.Value)
		assert.Equal(t, "kg", weight.ValueQuantity.Unit)
		assert.Equal(t, "vital-signs", weight.Category[0].Coding[0].Code)
		assert.Equal(t, "3141-9", weight.Code.Coding[0].Code)

		attendant := bundle.Entry[16].Resource.(*fhir_dto.Observation)
		assert.Equal(t, "NURSE", attendant.ValueString)
		assert.Equal(t, "73764-3", attendant.Code.Coding[0].Code)

		bornAlive := bundle.Entry[17].Resource.(*fhir_dto.Observation)
		assert.Equal(t, 2, bornAlive.ValueQuantity.Value)
		assert.Equal(t, "num-born-alive", bornAlive.Code.Coding[0].Code)
		assert.Empty(t, bornAlive.Category)

		foetalDeaths := bundle.Entry[18].Resource.(*fhir_dto.Observation)
		assert.Equal(t, 0, foetalDeaths.ValueQuantity.Value)
		assert.Equal(t, "num-foetal-death", foetalDeaths.Code.Coding[0].Code)

		lastLiveBirth := bundle.Entry[19].Resource.(*fhir_dto.Observation)
		assert.Equal(t, "2014-01-28", lastLiveBirth.ValueDateTime)
		assert.Equal(t, "68499-3", lastLiveBirth.Code.Coding[0].Code)
		assert.Equal(t, encounterURL, lastLiveBirth.Context.Reference)
	})
}

func TestBuildFHIRBundleDeterminism(t *testing.T) {
	uc := newTestUsecase()

	first, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, fullBirthInput())
	assert.NoError(t, err)
	second, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, fullBirthInput())
	assert.NoError(t, err)

	// Entries with pre-seeded ids rebuild identically.
	assert.Equal(t, first.Entry[0].FullURL, second.Entry[0].FullURL)
	assert.Equal(t, first.Entry[1].FullURL, second.Entry[1].FullURL)
	assert.Equal(t, first.Entry[4].FullURL, second.Entry[4].FullURL)
	assert.Equal(t, first.Entry[12].FullURL, second.Entry[12].FullURL)
	assert.Equal(t, first.Entry[14].FullURL, second.Entry[14].FullURL)
	assert.Len(t, second.Entry, len(first.Entry))
}

func TestBuildFHIRBundleContactOtherRelationship(t *testing.T) {
	uc := newTestUsecase()

	input := &requests.RegistrationInput{
		Registration: &requests.RegistrationDetailsInput{
			FHIRID:             "8f18a6ea-89d1-4b03-80b3-57509a7eebce",
			InformantType:      "OTHER",
			OtherInformantType: "Friend",
			ContactPhoneNumber: "01733333333",
			TrackingID:         "B123456",
		},
	}

	bundle, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, input)
	assert.NoError(t, err)

	var task *fhir_dto.Task
	for _, entry := range bundle.Entry {
		if candidate, ok := entry.Resource.(*fhir_dto.Task); ok {
			task = candidate
		}
	}
	assert.NotNil(t, task)
	assert.Equal(t, constvars.TaskStatusReady, task.Status)
	assert.Contains(t, task.Extension, fhir_dto.Extension{
		URL:         constvars.ExtensionContactPerson,
		ValueString: "OTHER",
	})
	assert.Contains(t, task.Extension, fhir_dto.Extension{
		URL:         constvars.ExtensionContactRelationship,
		ValueString: "Friend",
	})
}

func TestBuildFHIRBundleValidation(t *testing.T) {
	uc := newTestUsecase()

	t.Run("OTHER informant requires a relationship text", func(t *testing.T) {
		input := &requests.RegistrationInput{
			Registration: &requests.RegistrationDetailsInput{
				InformantType: "OTHER",
			},
		}
		_, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, input)
		assert.Error(t, err)
	})

	t.Run("OTHER collector requires name or identifier", func(t *testing.T) {
		input := &requests.RegistrationInput{
			Registration: &requests.RegistrationDetailsInput{
				InformantType: "MOTHER",
				Certificates: []requests.CertificateInput{
					{Collector: &requests.CollectorInput{Relationship: "OTHER"}},
				},
			},
		}
		_, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, input)
		assert.Error(t, err)
	})

	t.Run("unknown attachment status fails loudly", func(t *testing.T) {
		input := &requests.RegistrationInput{
			Registration: &requests.RegistrationDetailsInput{
				InformantType: "MOTHER",
				Attachments: []requests.AttachmentInput{
					{Status: "pending", Type: "NATIONAL_ID"},
				},
			},
		}
		_, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, input)
		assert.Error(t, err)
	})
}

func TestBuildFHIRBundleDeathEvent(t *testing.T) {
	uc := newTestUsecase()

	input := &requests.RegistrationInput{
		Registration: &requests.RegistrationDetailsInput{
			InformantType: "FATHER",
			TrackingID:    "D123456",
		},
		MannerOfDeath: "NATURAL_CAUSES",
	}

	bundle, err := uc.BuildFHIRBundle(context.Background(), constvars.EventDeath, input)
	assert.NoError(t, err)

	composition := bundle.Entry[0].Resource.(*fhir_dto.Composition)
	assert.Equal(t, "Death Declaration", composition.Title)

	var task *fhir_dto.Task
	var observation *fhir_dto.Observation
	for _, entry := range bundle.Entry {
		switch resource := entry.Resource.(type) {
		case *fhir_dto.Task:
			task = resource
		case *fhir_dto.Observation:
			observation = resource
		}
	}
	assert.NotNil(t, task)
	assert.Equal(t, "DEATH", task.Code.Coding[0].Code)
	assert.Contains(t, task.Identifier, fhir_dto.Identifier{
		System: "http://opencrvs.org/specs/id/death-tracking-id",
		Value:  "D123456",
	})
	assert.NotNil(t, observation)
	assert.Equal(t, "uncertified-manner-of-death", observation.Code.Coding[0].Code)
	assert.Equal(t, "NATURAL_CAUSES", observation.ValueString)
}

func TestUpdateFHIRTaskBundle(t *testing.T) {
	uc := newTestUsecase()

	existingTask := &fhir_dto.Task{
		ResourceType: constvars.ResourceTask,
		ID:           "ba0412c6-5125-4447-bd32-fb5cf336ddbc",
		Intent:       "order",
		Status:       "ready",
		Code: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: constvars.OpenCRVSTypesSystemURL, Code: "BIRTH"}},
		},
		Extension: []fhir_dto.Extension{
			{URL: constvars.ExtensionContactPerson, ValueString: "MOTHER"},
			{URL: constvars.ExtensionRegLastUser, ValueReference: &fhir_dto.Reference{Reference: "DUMMY"}},
		},
		Identifier: []fhir_dto.Identifier{
			{System: "http://opencrvs.org/specs/id/birth-tracking-id", Value: "B1mW7jA"},
		},
		BusinessStatus: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: constvars.OpenCRVSRegStatusSystemURL, Code: "DECLARED"}},
		},
		Focus: &fhir_dto.Reference{Reference: "Composition/df3fb104-4c2c-486f-97b3-edbeabcd4422"},
		Meta: &fhir_dto.Meta{
			LastUpdated: "2018-11-29T14:50:34.127+00:00",
			VersionID:   "6bd9d08f-58e2-48f7-8279-ca08e64a3942",
		},
	}
	entry := fhir_dto.TaskEntry{
		FullURL:  "http://localhost:3447/fhir/Task/ba0412c6-5125-4447-bd32-fb5cf336ddbc",
		Resource: existingTask,
	}

	t.Run("rejection sets reason, status reason and business status", func(t *testing.T) {
		bundle, err := uc.UpdateFHIRTaskBundle(context.Background(), &requests.TaskStatusUpdate{
			Entry:   entry,
			Status:  constvars.RegStatusRejected,
			Reason:  "Misspelling",
			Comment: "Child name was misspelled",
		})
		assert.NoError(t, err)
		assert.Len(t, bundle.Entry, 1)
		assert.Equal(t, entry.FullURL, bundle.Entry[0].FullURL)

		task := bundle.Entry[0].Resource.(*fhir_dto.Task)
		assert.Equal(t, "Misspelling", task.Reason.Text)
		assert.Equal(t, "Child name was misspelled", task.StatusReason.Text)
		assert.Equal(t, "REJECTED", task.BusinessStatus.Coding[0].Code)
		assert.NotEmpty(t, task.LastModified)

		// Prior identifiers and extensions are untouched.
		assert.Equal(t, existingTask.Identifier, task.Identifier)
		assert.Equal(t, existingTask.Extension, task.Extension)
	})

	t.Run("rejection without a comment is a validation failure", func(t *testing.T) {
		_, err := uc.UpdateFHIRTaskBundle(context.Background(), &requests.TaskStatusUpdate{
			Entry:  entry,
			Status: constvars.RegStatusRejected,
			Reason: "Misspelling",
		})
		assert.Error(t, err)
	})

	t.Run("plain status transition leaves reason empty", func(t *testing.T) {
		bundle, err := uc.UpdateFHIRTaskBundle(context.Background(), &requests.TaskStatusUpdate{
			Entry:  entry,
			Status: constvars.RegStatusValidated,
		})
		assert.NoError(t, err)

		task := bundle.Entry[0].Resource.(*fhir_dto.Task)
		assert.Equal(t, "VALIDATED", task.BusinessStatus.Coding[0].Code)
		assert.Nil(t, task.Reason)
		assert.Nil(t, task.StatusReason)
	})

	t.Run("missing task resource is rejected", func(t *testing.T) {
		_, err := uc.UpdateFHIRTaskBundle(context.Background(), &requests.TaskStatusUpdate{
			Entry:  fhir_dto.TaskEntry{},
			Status: constvars.RegStatusValidated,
		})
		assert.Error(t, err)
	})
}

func TestTaskBundleWithExtension(t *testing.T) {
	uc := newTestUsecase()

	entry := fhir_dto.TaskEntry{
		Resource: &fhir_dto.Task{
			ResourceType: constvars.ResourceTask,
			Extension: []fhir_dto.Extension{
				{URL: constvars.ExtensionContactPerson, ValueString: "MOTHER"},
			},
		},
	}

	bundle, err := uc.TaskBundleWithExtension(context.Background(), &requests.TaskExtensionUpdate{
		Entry:     entry,
		Extension: fhir_dto.Extension{URL: "mock-url", ValueString: "mock-value"},
	})
	assert.NoError(t, err)

	task := bundle.Entry[0].Resource.(*fhir_dto.Task)
	found := utils.FindExtension("mock-url", task.Extension)
	assert.NotNil(t, found)
	assert.Equal(t, "mock-value", found.ValueString)

	// The original task's extension list is not mutated.
	assert.Len(t, entry.Resource.Extension, 1)
}

func TestBuildFHIRBundleRoundTripRejection(t *testing.T) {
	uc := newTestUsecase()

	built, err := uc.BuildFHIRBundle(context.Background(), constvars.EventBirth, fullBirthInput())
	assert.NoError(t, err)

	task := built.Entry[4].Resource.(*fhir_dto.Task)
	identifiersBefore := append([]fhir_dto.Identifier{}, task.Identifier...)
	extensionsBefore := append([]fhir_dto.Extension{}, task.Extension...)

	updated, err := uc.UpdateFHIRTaskBundle(context.Background(), &requests.TaskStatusUpdate{
		Entry:   fhir_dto.TaskEntry{FullURL: built.Entry[4].FullURL, Resource: task},
		Status:  constvars.RegStatusRejected,
		Reason:  "Misspelling",
		Comment: "Child name was misspelled",
	})
	assert.NoError(t, err)

	rejected := updated.Entry[0].Resource.(*fhir_dto.Task)
	assert.Equal(t, "Misspelling", rejected.Reason.Text)
	assert.Equal(t, "Child name was misspelled", rejected.StatusReason.Text)
	assert.Equal(t, "REJECTED", rejected.BusinessStatus.Coding[0].Code)
	assert.Equal(t, identifiersBefore, rejected.Identifier)
	assert.Equal(t, extensionsBefore, rejected.Extension)
}
