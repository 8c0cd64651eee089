package models

import "time"

// EventDocument is the search projection of a declaration bundle. One
// document per composition, keyed by the composition id.
type EventDocument struct {
	CompositionID      string    `bson:"_id" json:"compositionId"`
	Event              string    `bson:"event" json:"event"`
	BusinessStatus     string    `bson:"businessStatus" json:"businessStatus"`
	TrackingID         string    `bson:"trackingId" json:"trackingId"`
	RegistrationNumber string    `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	ChildNames         []string  `bson:"childNames,omitempty" json:"childNames,omitempty"`
	MotherNames        []string  `bson:"motherNames,omitempty" json:"motherNames,omitempty"`
	FatherNames        []string  `bson:"fatherNames,omitempty" json:"fatherNames,omitempty"`
	InformantNames     []string  `bson:"informantNames,omitempty" json:"informantNames,omitempty"`
	ContactPhoneNumber string    `bson:"contactPhoneNumber,omitempty" json:"contactPhoneNumber,omitempty"`
	VersionID          string    `bson:"versionId" json:"versionId"`
	IndexedAt          time.Time `bson:"indexedAt" json:"indexedAt"`
}
