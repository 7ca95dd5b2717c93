// internal/models/listing.go
package models

// JobListing is a single posting returned by the external search. It lives
// for one request/response cycle and is never persisted.
type JobListing struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}
