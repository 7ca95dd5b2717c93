// internal/models/application.go
package models

// ApplicationRecord is a persisted user-saved job entry. The ID is assigned
// by the store exactly once at creation and never changes; every other field
// is mutable through explicit update operations only.
//
// Location/Link come from the HTML form flow, URL from the JSON API flow;
// a record carries whichever its entry path supplied.
type ApplicationRecord struct {
	ID        string `bson:"-"                    json:"id"`
	Title     string `bson:"title"                json:"title"`
	Company   string `bson:"company"              json:"company"`
	Location  string `bson:"location,omitempty"   json:"location,omitempty"`
	Link      string `bson:"link,omitempty"       json:"link,omitempty"`
	URL       string `bson:"url,omitempty"        json:"url,omitempty"`
	Status    string `bson:"status"               json:"status"`
	Date      string `bson:"date,omitempty"       json:"date,omitempty"`
	CreatedAt string `bson:"created_at,omitempty" json:"created_at,omitempty"` // ISO 8601
}

// CreateApplicationRequest is the JSON API body for creating a record.
type CreateApplicationRequest struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

// UpdateStatusRequest is the JSON API body for patching a record's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
