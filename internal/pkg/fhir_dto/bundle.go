package fhir_dto

import "github.com/goccy/go-json"

// Bundle is an ordered document bundle produced by the gateway. Entry order is
// significant: downstream consumers index by position as well as by id.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Type         string        `json:"type"`
	Meta         *Meta         `json:"meta,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	FullURL  string      `json:"fullUrl,omitempty"`
	Resource interface{} `json:"resource"`
}

// RawBundle is the decode-side counterpart for bundles arriving over HTTP,
// where each entry is inspected before its concrete type is known.
type RawBundle struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id,omitempty"`
	Type         string     `json:"type,omitempty"`
	Entry        []RawEntry `json:"entry"`
}

type RawEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource"`
}

// ResourceTypeOf peeks at the resourceType of a raw entry.
func (e RawEntry) ResourceTypeOf() string {
	var peek struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(e.Resource, &peek); err != nil {
		return ""
	}
	return peek.ResourceType
}

// TaskEntry pairs a persisted Task with its bundle-relative URL. It is the
// input to the task status mutations.
type TaskEntry struct {
	FullURL  string `json:"fullUrl,omitempty"`
	Resource *Task  `json:"resource"`
}
