package postgres

import (
	"context"
	"database/sql"
	"errors"

	"studygeni/internal/model"
	"studygeni/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// IsNoRowsError reports whether err signals an empty result set.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Create inserts a new document row and returns the stored record with the
// owner's display fields joined in a single statement.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO documents (id, title, description, subject, file_url, file_type, storage_id, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, title, description, subject, file_url, file_type, storage_id, created_by, created_at
		)
		SELECT i.id, i.title, i.description, i.subject, i.file_url, i.file_type, i.storage_id, i.created_by, i.created_at,
		       u.name, u.email
		FROM inserted i
		JOIN users u ON u.id = i.created_by
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.Subject,
		doc.FileURL,
		doc.FileType,
		doc.StorageID,
		doc.CreatedBy,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID with owner display fields.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT d.id, d.title, d.description, d.subject, d.file_url, d.file_type, d.storage_id, d.created_by, d.created_at,
		       u.name, u.email
		FROM documents d
		JOIN users u ON u.id = d.created_by
		WHERE d.id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents newest-first with owner display fields and a total
// count. Limit <= 0 means no page limit (NULLIF turns it into LIMIT NULL).
func (r *DocumentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT d.id, d.title, d.description, d.subject, d.file_url, d.file_type, d.storage_id, d.created_by, d.created_at,
		       u.name, u.email
		FROM documents d
		JOIN users u ON u.id = d.created_by
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT NULLIF($1, 0) OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var (
			d     model.Document
			owner model.OwnerInfo
		)
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Description,
			&d.Subject,
			&d.FileURL,
			&d.FileType,
			&d.StorageID,
			&d.CreatedBy,
			&d.CreatedAt,
			&owner.Name,
			&owner.Email,
		); err != nil {
			return nil, err
		}
		d.Owner = &owner
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

func scanDocument(row *sql.Row) (*model.Document, error) {
	var (
		d     model.Document
		owner model.OwnerInfo
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Subject,
		&d.FileURL,
		&d.FileType,
		&d.StorageID,
		&d.CreatedBy,
		&d.CreatedAt,
		&owner.Name,
		&owner.Email,
	); err != nil {
		return nil, err
	}
	d.Owner = &owner
	return &d, nil
}
