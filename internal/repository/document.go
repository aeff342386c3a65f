package repository

import (
	"context"

	"studygeni/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
//
// All read operations resolve the owner's display fields (name + email) so
// callers never need a second lookup and never see sensitive owner fields.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row with
	// owner display fields attached.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID with owner display fields attached.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns documents newest-first by creation time with owner display
	// fields attached, plus the total row count. A PageQuery with Limit <= 0
	// returns all documents.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
