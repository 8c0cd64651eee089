package registration

import (
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/fhir_dto"
)

// bundleGraph collects resources under logical roles while the bundle is
// assembled. Cross-references are resolved by role instead of by array
// position, and the fixed output order is only fixed at serialization time.
type bundleGraph struct {
	entries []fhir_dto.BundleEntry
	urls    map[string]string
}

func newBundleGraph() *bundleGraph {
	return &bundleGraph{urls: make(map[string]string)}
}

// add appends a resource under a role and returns its bundle-relative URL.
func (g *bundleGraph) add(role, resourceID string, resource interface{}) string {
	fullURL := constvars.FullURLPrefix + resourceID
	g.entries = append(g.entries, fhir_dto.BundleEntry{
		FullURL:  fullURL,
		Resource: resource,
	})
	g.urls[role] = fullURL
	return fullURL
}

// url resolves a role to its assigned URL; empty when the role was never added.
func (g *bundleGraph) url(role string) string {
	return g.urls[role]
}
