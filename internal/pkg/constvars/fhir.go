package constvars

const (
	ResourceBundle                = "Bundle"
	ResourceComposition           = "Composition"
	ResourcePatient               = "Patient"
	ResourceTask                  = "Task"
	ResourceRelatedPerson         = "RelatedPerson"
	ResourceDocumentReference     = "DocumentReference"
	ResourceEncounter             = "Encounter"
	ResourceObservation           = "Observation"
	ResourceLocation              = "Location"
	ResourcePaymentReconciliation = "PaymentReconciliation"
)

// Event is the registration event a declaration belongs to.
type Event string

const (
	EventBirth    Event = "BIRTH"
	EventDeath    Event = "DEATH"
	EventMarriage Event = "MARRIAGE"
)

// Coding system and identifier namespace URIs. These strings are part of the
// wire contract with the FHIR store and must be reproduced verbatim.
const (
	OpenCRVSSpecificationURL   = "http://opencrvs.org/specs/"
	FHIRSpecificationURL       = "http://hl7.org/fhir/StructureDefinition/"
	FHIRObservationCategoryURL = "http://hl7.org/fhir/observation-category"
	LOINCSystemURL             = "http://loinc.org"
	ISO3166SystemURL           = "urn:iso:std:iso:3166"

	OpenCRVSTypesSystemURL          = OpenCRVSSpecificationURL + "types"
	OpenCRVSRegStatusSystemURL      = OpenCRVSSpecificationURL + "reg-status"
	OpenCRVSIdentifierTypeSystemURL = OpenCRVSSpecificationURL + "identifier-type"
	OpenCRVSSupportingDocTypeURL    = OpenCRVSSpecificationURL + "supporting-doc-type"
	OpenCRVSCertificateTypeURL      = OpenCRVSSpecificationURL + "certificate-type"
	OpenCRVSLocationTypeURL         = OpenCRVSSpecificationURL + "location-type"
	OpenCRVSSectionsSystemURL       = OpenCRVSSpecificationURL + "sections"
	OpenCRVSDocTypesSystemURL       = "http://opencrvs.org/doc-types"
	OpenCRVSDocClassesSystemURL     = "http://opencrvs.org/doc-classes"

	RelatedPersonRelationshipTypeURL = "http://hl7.org/fhir/ValueSet/relatedperson-relationshiptype"
)

const (
	ExtensionContactPerson            = OpenCRVSSpecificationURL + "extension/contact-person"
	ExtensionContactRelationship      = OpenCRVSSpecificationURL + "extension/contact-relationship"
	ExtensionContactPhoneNumber       = OpenCRVSSpecificationURL + "extension/contact-person-phone-number"
	ExtensionInCompleteFields         = OpenCRVSSpecificationURL + "extension/in-complete-fields"
	ExtensionTimeLoggedMS             = OpenCRVSSpecificationURL + "extension/timeLoggedMS"
	ExtensionEducationalAttainment    = OpenCRVSSpecificationURL + "extension/educational-attainment"
	ExtensionPatientOccupation        = OpenCRVSSpecificationURL + "extension/patient-occupation"
	ExtensionReasonNotApplying        = OpenCRVSSpecificationURL + "extension/reason-not-applying"
	ExtensionDateOfMarriage           = OpenCRVSSpecificationURL + "extension/date-of-marriage"
	ExtensionCollector                = OpenCRVSSpecificationURL + "extension/collector"
	ExtensionHasShowedVerifiedDoc     = OpenCRVSSpecificationURL + "extension/hasShowedVerifiedDocument"
	ExtensionPayment                  = OpenCRVSSpecificationURL + "extension/payment"
	ExtensionRelatedPersonAffidavit   = OpenCRVSSpecificationURL + "extension/relatedperson-affidavittype"
	ExtensionPatientNationality       = FHIRSpecificationURL + "patient-nationality"
	ExtensionRegLastUser              = OpenCRVSSpecificationURL + "extension/regLastUser"
)

const (
	IdentifierPaperFormID      = OpenCRVSSpecificationURL + "id/paper-form-id"
	IdentifierDraftID          = OpenCRVSSpecificationURL + "id/draft-id"
	IdentifierOriginalFileName = OpenCRVSSpecificationURL + "id/original-file-name"
	IdentifierSystemFileName   = OpenCRVSSpecificationURL + "id/system-file-name"
	IdentifierPaymentID        = OpenCRVSSpecificationURL + "id/payment-id"
)

const (
	BundleTypeDocument = "document"

	CompositionStatusPreliminary = "preliminary"
	CompositionDocClassCode      = "crvs-document"
	CompositionDocClassText      = "CRVS Document"

	TaskStatusDraft = "draft"
	TaskStatusReady = "ready"
	TaskIntentOrder = "order"

	EncounterStatusFinished = "finished"

	ObservationStatusFinal = "final"

	DocumentReferenceStatusCurrent = "current"

	PaymentReconciliationStatusActive = "active"

	LocationModeInstance = "instance"
)

// Business statuses a Task moves through during registration.
const (
	RegStatusInProgress        = "IN_PROGRESS"
	RegStatusDeclared          = "DECLARED"
	RegStatusWaitingValidation = "WAITING_VALIDATION"
	RegStatusValidated         = "VALIDATED"
	RegStatusRegistered        = "REGISTERED"
	RegStatusCertified         = "CERTIFIED"
	RegStatusRejected          = "REJECTED"
	RegStatusArchived          = "ARCHIVED"
)

const (
	InformantRelationshipOther = "OTHER"

	FullURLPrefix = "urn:uuid:"
)
