package model

import "time"

// OwnerInfo carries the display fields of a document's owner.
// It never includes the password hash or other sensitive fields.
type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Document represents one uploaded study file plus its metadata and storage
// reference. This is a pure domain model with no database-specific tags; it is
// shared across the HTTP, service and storage layers.
//
// FileURL and StorageID are set exactly once at creation and never mutated.
// The lifecycle is create-once, read-many.
type Document struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Subject     string     `json:"subject"`
	FileURL     string     `json:"fileUrl"`
	FileType    string     `json:"fileType"`
	StorageID   string     `json:"storageId"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	Owner       *OwnerInfo `json:"owner,omitempty"`
}
