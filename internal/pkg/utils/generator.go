package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateResourceID mints a fresh FHIR resource id.
func GenerateResourceID() string {
	return uuid.NewString()
}
