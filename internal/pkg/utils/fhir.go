package utils

import "opencrvs-service/internal/pkg/fhir_dto"

// FindExtension returns the first extension with the given url, or nil.
func FindExtension(url string, extensions []fhir_dto.Extension) *fhir_dto.Extension {
	for i := range extensions {
		if extensions[i].URL == url {
			return &extensions[i]
		}
	}
	return nil
}

// IntPtr and BoolPtr wrap literals for optional FHIR attributes.
func IntPtr(v int) *int { return &v }

func BoolPtr(v bool) *bool { return &v }

func StringPtr(v string) *string { return &v }
