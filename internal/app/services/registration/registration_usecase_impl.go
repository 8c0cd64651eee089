package registration

import (
	"context"
	"time"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/codes"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/fhir_dto"
	"opencrvs-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Bundle graph roles. Cross-references between builders resolve through
// these instead of entry positions.
const (
	roleComposition = "composition"
	roleMother      = "mother"
	roleFather      = "father"
	roleChild       = "child"
	roleTask        = "task"
	roleInformant   = "informant"
	roleEncounter   = "encounter"
	roleLocation    = "location"
)

type registrationUsecase struct {
	Tables          *codes.Tables
	DocumentStorage contracts.DocumentStorage
	Log             *zap.Logger
}

func NewRegistrationUsecase(logger *zap.Logger, tables *codes.Tables, documentStorage contracts.DocumentStorage) contracts.RegistrationUsecase {
	return &registrationUsecase{
		Tables:          tables,
		DocumentStorage: documentStorage,
		Log:             logger,
	}
}

// BuildFHIRBundle converts a declaration into an ordered document bundle. The
// entry sequence is part of the wire contract: Composition first, then the
// person resources, the Task, the informant, supporting documents, one group
// of resources per certificate, and finally the encounter with its location
// and observations.
func (uc *registrationUsecase) BuildFHIRBundle(ctx context.Context, event constvars.Event, input *requests.RegistrationInput) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.BuildFHIRBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, string(event)),
	)

	if err := utils.ValidateStruct(input); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	createdAt := input.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}

	compositionID := ""
	if input.FHIRIDMap != nil {
		compositionID = input.FHIRIDMap.Composition
	}
	if compositionID == "" {
		compositionID = utils.GenerateResourceID()
	}
	compositionURL := constvars.FullURLPrefix + compositionID

	g := newBundleGraph()
	var sections []fhir_dto.CompositionSection

	personSections := []struct {
		role   string
		title  string
		code   string
		person *requests.PersonInput
	}{
		{roleMother, "Mother's details", "mother-details", input.Mother},
		{roleFather, "Father's details", "father-details", input.Father},
		{roleChild, "Child details", "child-details", input.Child},
	}
	for _, ps := range personSections {
		if ps.person == nil {
			continue
		}
		patient, err := buildPatient(uc.Tables, ps.person)
		if err != nil {
			return nil, err
		}
		fullURL := g.add(ps.role, patient.ID, patient)
		sections = append(sections, newSection(ps.title, ps.code, fullURL))
	}

	if input.Registration != nil {
		task, err := buildTask(event, input.Registration, compositionURL, input.CreatedAt)
		if err != nil {
			return nil, err
		}
		g.add(roleTask, task.ID, task)

		if input.Registration.InformantType != "" {
			informant := buildInformant(input.Registration, g.url(informantRole(input.Registration.InformantType)))
			fullURL := g.add(roleInformant, informant.ID, informant)
			sections = append(sections, newSection("Informant's details", "informant-details", fullURL))
		}

		var attachmentURLs []string
		for i := range input.Registration.Attachments {
			docRef, err := buildAttachmentReference(uc.Tables, &input.Registration.Attachments[i])
			if err != nil {
				return nil, err
			}
			fullURL := g.add("attachment", docRef.ID, docRef)
			attachmentURLs = append(attachmentURLs, fullURL)
		}
		if len(attachmentURLs) > 0 {
			sections = append(sections, newSection("Supporting Documents", "supporting-documents", attachmentURLs...))
		}

		var certificateURLs []string
		for i := range input.Registration.Certificates {
			fullURL, err := uc.addCertificateGroup(ctx, g, event, &input.Registration.Certificates[i])
			if err != nil {
				return nil, err
			}
			certificateURLs = append(certificateURLs, fullURL)
		}
		if len(certificateURLs) > 0 {
			sections = append(sections, newSection("Certificates", "certificates", certificateURLs...))
		}
	}

	if err := uc.addEncounterGroup(g, event, input, &sections); err != nil {
		return nil, err
	}

	composition := buildComposition(event, input.Registration, compositionID, createdAt, sections)
	entries := append([]fhir_dto.BundleEntry{
		{FullURL: compositionURL, Resource: composition},
	}, g.entries...)

	return &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeDocument,
		Meta:         &fhir_dto.Meta{LastUpdated: createdAt},
		Entry:        entries,
	}, nil
}

// addCertificateGroup uploads the certificate payloads, then appends the
// DocumentReference, the collector, the collector's identity stub and the
// payment reconciliation, in that order. Returns the DocumentReference URL.
func (uc *registrationUsecase) addCertificateGroup(ctx context.Context, g *bundleGraph, event constvars.Event, cert *requests.CertificateInput) (string, error) {
	dataRef := ""
	if cert.Data != "" {
		refURL, err := uc.DocumentStorage.UploadDocument(ctx, utils.GenerateResourceID(), cert.Data)
		if err != nil {
			return "", err
		}
		dataRef = refURL
	}

	var collector *fhir_dto.RelatedPerson
	var collectorPatient *fhir_dto.Patient
	if cert.Collector != nil {
		var affidavits []fhir_dto.Attachment
		for _, affidavit := range cert.Collector.Affidavit {
			refURL, err := uc.DocumentStorage.UploadDocument(ctx, utils.GenerateResourceID(), affidavit.Data)
			if err != nil {
				return "", err
			}
			affidavits = append(affidavits, fhir_dto.Attachment{
				ContentType: affidavit.ContentType,
				Data:        refURL,
			})
		}

		collectorPatient = buildCollectorPatient(cert.Collector)
		var err error
		collector, err = buildCollector(cert.Collector, affidavits, constvars.FullURLPrefix+collectorPatient.ID)
		if err != nil {
			return "", err
		}
	}

	var payment *fhir_dto.PaymentReconciliation
	if len(cert.Payments) > 0 {
		payment = buildPayment(cert.Payments)
	}

	collectorURL := ""
	if collector != nil {
		collectorURL = constvars.FullURLPrefix + collector.ID
	}
	paymentURL := ""
	if payment != nil {
		paymentURL = constvars.FullURLPrefix + payment.ID
	}

	docRef := buildCertificateReference(event, cert, dataRef, collectorURL, paymentURL)
	fullURL := g.add("certificate", docRef.ID, docRef)
	if collector != nil {
		g.add("collector", collector.ID, collector)
		g.add("collector-patient", collectorPatient.ID, collectorPatient)
	}
	if payment != nil {
		g.add("payment", payment.ID, payment)
	}
	return fullURL, nil
}

// addEncounterGroup appends the encounter, its location and the per-field
// observations. The encounter only exists when the declaration carries an
// event location or at least one observed scalar.
func (uc *registrationUsecase) addEncounterGroup(g *bundleGraph, event constvars.Event, input *requests.RegistrationInput, sections *[]fhir_dto.CompositionSection) error {
	observations, err := uc.collectObservations(input)
	if err != nil {
		return err
	}
	if input.EventLocation == nil && len(observations) == 0 {
		return nil
	}

	encounterID := ""
	if input.FHIRIDMap != nil {
		encounterID = input.FHIRIDMap.Encounter
	}

	var location *fhir_dto.Location
	locationURL := ""
	if input.EventLocation != nil {
		location = buildEventLocation(input.EventLocation)
		locationURL = constvars.FullURLPrefix + location.ID
	}

	encounter := buildEncounter(encounterID, locationURL)
	encounterURL := g.add(roleEncounter, encounter.ID, encounter)
	if location != nil {
		g.add(roleLocation, location.ID, location)
	}

	for _, pending := range observations {
		observation, err := buildObservation(uc.Tables, pending.field, pending.id, encounterURL)
		if err != nil {
			return err
		}
		pending.fill(observation)
		g.add("observation", observation.ID, observation)
	}

	title, code := encounterSection(event)
	*sections = append(*sections, newSection(title, code, encounterURL))
	return nil
}

type pendingObservation struct {
	field codes.ObservationField
	id    string
	fill  func(*fhir_dto.Observation)
}

// collectObservations lists the scalar fields present on the declaration, in
// their fixed output order. Absent fields emit nothing; zero-valued pointers
// still count as present.
func (uc *registrationUsecase) collectObservations(input *requests.RegistrationInput) ([]pendingObservation, error) {
	ids := &requests.ObservationIDMap{}
	if input.FHIRIDMap != nil && input.FHIRIDMap.Observation != nil {
		ids = input.FHIRIDMap.Observation
	}

	var out []pendingObservation
	add := func(field codes.ObservationField, id string, fill func(*fhir_dto.Observation)) {
		out = append(out, pendingObservation{field: field, id: id, fill: fill})
	}

	if input.BirthType != "" {
		add(codes.FieldBirthType, ids.BirthType, func(o *fhir_dto.Observation) {
			o.ValueQuantity = &fhir_dto.Quantity{Value: input.BirthType}
		})
	}
	if input.WeightAtBirth != nil {
		add(codes.FieldWeightAtBirth, ids.WeightAtBirth, func(o *fhir_dto.Observation) {
			o.ValueQuantity = &fhir_dto.Quantity{
				Value:  *input.WeightAtBirth,
				Unit:   "kg",
				System: "http://unitsofmeasure.org",
				Code:   "kg",
			}
		})
	}
	if input.AttendantAtBirth != "" {
		add(codes.FieldAttendantAtBirth, ids.AttendantAtBirth, func(o *fhir_dto.Observation) {
			o.ValueString = input.AttendantAtBirth
		})
	}
	if input.ChildrenBornAliveToMother != nil {
		add(codes.FieldChildrenBornAliveToMother, ids.ChildrenBornAliveToMother, func(o *fhir_dto.Observation) {
			o.ValueQuantity = &fhir_dto.Quantity{Value: *input.ChildrenBornAliveToMother}
		})
	}
	if input.FoetalDeathsToMother != nil {
		add(codes.FieldFoetalDeathsToMother, ids.FoetalDeathsToMother, func(o *fhir_dto.Observation) {
			o.ValueQuantity = &fhir_dto.Quantity{Value: *input.FoetalDeathsToMother}
		})
	}
	if input.LastPreviousLiveBirth != "" {
		add(codes.FieldLastPreviousLiveBirth, ids.LastPreviousLiveBirth, func(o *fhir_dto.Observation) {
			o.ValueDateTime = input.LastPreviousLiveBirth
		})
	}
	if input.MannerOfDeath != "" {
		add(codes.FieldMannerOfDeath, ids.MannerOfDeath, func(o *fhir_dto.Observation) {
			o.ValueString = input.MannerOfDeath
		})
	}
	if input.CauseOfDeath != "" {
		add(codes.FieldCauseOfDeath, ids.CauseOfDeath, func(o *fhir_dto.Observation) {
			o.ValueString = input.CauseOfDeath
		})
	}
	if input.DeathDescription != "" {
		add(codes.FieldDeathDescription, ids.DeathDescription, func(o *fhir_dto.Observation) {
			o.ValueString = input.DeathDescription
		})
	}
	if input.TypeOfMarriage != "" {
		add(codes.FieldTypeOfMarriage, ids.TypeOfMarriage, func(o *fhir_dto.Observation) {
			o.ValueQuantity = &fhir_dto.Quantity{Value: input.TypeOfMarriage}
		})
	}
	return out, nil
}

// UpdateFHIRTaskBundle applies a business-status transition to a persisted
// Task and returns a single-entry bundle carrying the diff. A REJECTED
// transition without both a reason and a comment is a validation failure.
func (uc *registrationUsecase) UpdateFHIRTaskBundle(ctx context.Context, update *requests.TaskStatusUpdate) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.UpdateFHIRTaskBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTaskStatusKey, update.Status),
	)

	if update.Entry.Resource == nil {
		return nil, exceptions.ErrBundleMissingTask()
	}
	if update.Status == constvars.RegStatusRejected && (update.Reason == "" || update.Comment == "") {
		return nil, exceptions.ErrRejectionRequiresReason()
	}

	task := *update.Entry.Resource
	task.BusinessStatus = &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{
			{System: constvars.OpenCRVSRegStatusSystemURL, Code: update.Status},
		},
	}
	if update.Status == constvars.RegStatusRejected {
		task.Reason = &fhir_dto.CodeableConcept{Text: update.Reason}
		task.StatusReason = &fhir_dto.CodeableConcept{Text: update.Comment}
		task.Note = append(append([]fhir_dto.Annotation{}, task.Note...), fhir_dto.Annotation{
			Text: update.Comment,
			Time: time.Now().Format(time.RFC3339),
		})
	}
	task.LastModified = time.Now().Format(time.RFC3339)

	return &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeDocument,
		Entry: []fhir_dto.BundleEntry{
			{FullURL: update.Entry.FullURL, Resource: &task},
		},
	}, nil
}

// TaskBundleWithExtension appends one extension to a persisted Task without
// rebuilding anything else.
func (uc *registrationUsecase) TaskBundleWithExtension(ctx context.Context, update *requests.TaskExtensionUpdate) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.TaskBundleWithExtension called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if update.Entry.Resource == nil {
		return nil, exceptions.ErrBundleMissingTask()
	}

	task := *update.Entry.Resource
	task.Extension = append(append([]fhir_dto.Extension{}, task.Extension...), update.Extension)

	return &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeDocument,
		Entry: []fhir_dto.BundleEntry{
			{FullURL: update.Entry.FullURL, Resource: &task},
		},
	}, nil
}

func newSection(title, code string, refs ...string) fhir_dto.CompositionSection {
	section := fhir_dto.CompositionSection{
		Title: title,
		Code: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSSectionsSystemURL, Code: code},
			},
			Text: title,
		},
	}
	for _, ref := range refs {
		section.Entry = append(section.Entry, fhir_dto.Reference{Reference: ref})
	}
	return section
}

func informantRole(informantType string) string {
	switch informantType {
	case "MOTHER":
		return roleMother
	case "FATHER":
		return roleFather
	default:
		return ""
	}
}

func encounterSection(event constvars.Event) (title, code string) {
	switch event {
	case constvars.EventDeath:
		return "Death encounter", "death-encounter"
	case constvars.EventMarriage:
		return "Marriage encounter", "marriage-encounter"
	default:
		return "Birth encounter", "birth-encounter"
	}
}

func compositionTitle(event constvars.Event) (title, code string) {
	switch event {
	case constvars.EventDeath:
		return "Death Declaration", "death-declaration"
	case constvars.EventMarriage:
		return "Marriage Declaration", "marriage-declaration"
	default:
		return "Birth Declaration", "birth-declaration"
	}
}

func buildComposition(event constvars.Event, reg *requests.RegistrationDetailsInput, id, date string, sections []fhir_dto.CompositionSection) *fhir_dto.Composition {
	title, code := compositionTitle(event)
	composition := &fhir_dto.Composition{
		ResourceType: constvars.ResourceComposition,
		ID:           id,
		Status:       constvars.CompositionStatusPreliminary,
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSDocTypesSystemURL, Code: code},
			},
			Text: title,
		},
		Class: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.OpenCRVSDocClassesSystemURL, Code: constvars.CompositionDocClassCode},
			},
			Text: constvars.CompositionDocClassText,
		},
		Title:   title,
		Date:    date,
		Section: sections,
	}
	if reg != nil && reg.DraftID != "" {
		composition.Identifier = &fhir_dto.Identifier{
			System: "urn:ietf:rfc:3986",
			Value:  reg.DraftID,
		}
	}
	return composition
}
