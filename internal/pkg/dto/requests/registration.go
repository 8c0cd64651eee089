package requests

// RegistrationInput is the declaration document submitted for a civil
// registration event. Every section is optional; optionality is explicit so a
// single validation pass at the boundary can reject inconsistent input before
// any resource builder runs.
type RegistrationInput struct {
	Mother        *PersonInput              `json:"mother,omitempty"`
	Father        *PersonInput              `json:"father,omitempty"`
	Child         *PersonInput              `json:"child,omitempty"`
	Registration  *RegistrationDetailsInput `json:"registration,omitempty"`
	EventLocation *EventLocationInput       `json:"eventLocation,omitempty"`

	// Birth scalars.
	BirthType                 string   `json:"birthType,omitempty"`
	WeightAtBirth             *float64 `json:"weightAtBirth,omitempty"`
	AttendantAtBirth          string   `json:"attendantAtBirth,omitempty"`
	ChildrenBornAliveToMother *int     `json:"childrenBornAliveToMother,omitempty"`
	FoetalDeathsToMother      *int     `json:"foetalDeathsToMother,omitempty"`
	LastPreviousLiveBirth     string   `json:"lastPreviousLiveBirth,omitempty"`

	// Death scalars.
	MannerOfDeath    string `json:"mannerOfDeath,omitempty"`
	CauseOfDeath     string `json:"causeOfDeath,omitempty"`
	DeathDescription string `json:"deathDescription,omitempty"`

	// Marriage scalars.
	TypeOfMarriage string `json:"typeOfMarriage,omitempty"`

	CreatedAt string     `json:"createdAt,omitempty"`
	FHIRIDMap *FHIRIDMap `json:"_fhirIDMap,omitempty"`
}

// PersonInput describes one person section (mother, father, child).
// DateOfMarriage is a pointer: a present-but-blank value still
// emits an extension with an empty date, an absent one emits nothing.
type PersonInput struct {
	FHIRID                string            `json:"_fhirID,omitempty"`
	Identifier            []IdentifierInput `json:"identifier,omitempty"`
	Gender                string            `json:"gender,omitempty"`
	BirthDate             string            `json:"birthDate,omitempty"`
	MaritalStatus         string            `json:"maritalStatus,omitempty"`
	Name                  []NameInput       `json:"name,omitempty"`
	MultipleBirth         *int              `json:"multipleBirth,omitempty"`
	Address               []AddressInput    `json:"address,omitempty"`
	Telecom               []TelecomInput    `json:"telecom,omitempty"`
	Photo                 []AttachmentData  `json:"photo,omitempty"`
	DateOfMarriage        *string           `json:"dateOfMarriage,omitempty"`
	Nationality           []string          `json:"nationality,omitempty"`
	EducationalAttainment string            `json:"educationalAttainment,omitempty"`
	Occupation            string            `json:"occupation,omitempty"`
	ReasonNotApplying     string            `json:"reasonNotApplying,omitempty"`
}

type IdentifierInput struct {
	ID        string `json:"id" validate:"required"`
	Type      string `json:"type,omitempty"`
	OtherType string `json:"otherType,omitempty"`
}

type NameInput struct {
	FirstNames string `json:"firstNames,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	Use        string `json:"use,omitempty"`
}

type TelecomInput struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}

type AddressInput struct {
	Use        string   `json:"use,omitempty"`
	Type       string   `json:"type,omitempty"`
	Text       string   `json:"text,omitempty"`
	Line       []string `json:"line,omitempty"`
	City       string   `json:"city,omitempty"`
	District   string   `json:"district,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

type AttachmentData struct {
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data,omitempty"`
}

type RegistrationDetailsInput struct {
	FHIRID             string             `json:"_fhirID,omitempty"`
	InformantType      string             `json:"informantType,omitempty"`
	OtherInformantType string             `json:"otherInformantType,omitempty"`
	ContactPhoneNumber string             `json:"contactPhoneNumber,omitempty"`
	PaperFormID        string             `json:"paperFormID,omitempty"`
	DraftID            string             `json:"draftId,omitempty"`
	TrackingID         string             `json:"trackingId,omitempty"`
	RegistrationNumber string             `json:"registrationNumber,omitempty"`
	InCompleteFields   string             `json:"inCompleteFields,omitempty"`
	Status             []StatusInput      `json:"status,omitempty"`
	Attachments        []AttachmentInput  `json:"attachments,omitempty"`
	Certificates       []CertificateInput `json:"certificates,omitempty"`
}

type StatusInput struct {
	Comments     []CommentInput `json:"comments,omitempty"`
	Timestamp    string         `json:"timestamp,omitempty"`
	TimeLoggedMS *int           `json:"timeLoggedMS,omitempty"`
}

type CommentInput struct {
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type AttachmentInput struct {
	FHIRID           string `json:"_fhirID,omitempty"`
	ContentType      string `json:"contentType,omitempty"`
	Data             string `json:"data,omitempty"`
	Status           string `json:"status,omitempty"`
	OriginalFileName string `json:"originalFileName,omitempty"`
	SystemFileName   string `json:"systemFileName,omitempty"`
	Type             string `json:"type,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	Subject          string `json:"subject,omitempty"`
}

type CertificateInput struct {
	Collector                 *CollectorInput `json:"collector,omitempty"`
	HasShowedVerifiedDocument bool            `json:"hasShowedVerifiedDocument,omitempty"`
	Payments                  []PaymentInput  `json:"payments,omitempty"`
	Data                      string          `json:"data,omitempty"`
}

type CollectorInput struct {
	Relationship      string            `json:"relationship,omitempty"`
	OtherRelationship string            `json:"otherRelationship,omitempty"`
	Affidavit         []AttachmentData  `json:"affidavit,omitempty"`
	Name              []NameInput       `json:"name,omitempty"`
	Identifier        []IdentifierInput `json:"identifier,omitempty"`
}

type PaymentInput struct {
	PaymentID string  `json:"paymentId,omitempty"`
	Type      string  `json:"type,omitempty"`
	Total     float64 `json:"total,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Outcome   string  `json:"outcome,omitempty"`
	Date      string  `json:"date,omitempty"`
}

type EventLocationInput struct {
	Type    string        `json:"type,omitempty"`
	PartOf  string        `json:"partOf,omitempty"`
	Address *AddressInput `json:"address,omitempty"`
}

// FHIRIDMap pre-seeds resource ids so resubmissions rebuild an identical
// bundle. Absent ids are generated fresh, so rebuilds without a map are not
// idempotent.
type FHIRIDMap struct {
	Composition string            `json:"composition,omitempty"`
	Encounter   string            `json:"encounter,omitempty"`
	Observation *ObservationIDMap `json:"observation,omitempty"`
}

type ObservationIDMap struct {
	BirthType                 string `json:"birthType,omitempty"`
	WeightAtBirth             string `json:"weightAtBirth,omitempty"`
	AttendantAtBirth          string `json:"attendantAtBirth,omitempty"`
	ChildrenBornAliveToMother string `json:"childrenBornAliveToMother,omitempty"`
	FoetalDeathsToMother      string `json:"foetalDeathsToMother,omitempty"`
	LastPreviousLiveBirth     string `json:"lastPreviousLiveBirth,omitempty"`
	MannerOfDeath             string `json:"mannerOfDeath,omitempty"`
	CauseOfDeath              string `json:"causeOfDeath,omitempty"`
	DeathDescription          string `json:"deathDescription,omitempty"`
	TypeOfMarriage            string `json:"typeOfMarriage,omitempty"`
}
