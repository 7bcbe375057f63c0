// Package console holds the admin and submission workflows that sit on top
// of the resource API client: submitting applications, moving them through
// the trash, promoting them to results, filtering results, moderating
// reviews and handing payments off to the gateway.
//
// Each list a view shows is a View: an explicit state value that changes
// only through Reduce. Loads are tagged with a per-list sequence number so
// a slow response never overwrites a newer one.
package console
