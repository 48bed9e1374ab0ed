// Package orbit provides an HTTP client for the Orbit template catalog API.
//
// # Overview
//
// The package defines the query model (the five optional filter fields), the
// wire types for template records and result pages, and a small read-only
// client for the /templates search endpoint.
//
// # Client Usage
//
// Create a client from the configured endpoint and issue searches with a
// snapshot of the current query:
//
//	client, err := orbit.NewClient("http://127.0.0.1:4848")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	page, err := client.Search(ctx, query)
//	if err != nil {
//		failure := orbit.AsFailure(err)
//		log.Printf("search failed (%s): %v", failure.Kind, failure)
//	}
//
// # Failure Model
//
// Search never panics and produces exactly one outcome per call. Every error
// it returns is a *Failure value classified as network, status, or decode, so
// callers can treat all failure modes uniformly as data.
//
// # Known Gap
//
// The filter values are not yet serialized into the request; Search issues an
// unconditional GET and the filters only affect display state client-side.
package orbit
