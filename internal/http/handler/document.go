package handler

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studygeni/internal/http/middleware"
	"studygeni/internal/service"
)

// UploadDocument handles multipart document uploads (fields: title, subject,
// description, file). The file is staged to a local temp path; the service
// owns its deletion on every exit path.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := strings.TrimSpace(c.FormValue("title"))
		subject := strings.TrimSpace(c.FormValue("subject"))
		description := strings.TrimSpace(c.FormValue("description"))

		// Required-field checks before any file staging.
		if title == "" {
			return writeError(c, fiber.StatusBadRequest, service.ErrTitleRequired.Error())
		}
		if subject == "" {
			return writeError(c, fiber.StatusBadRequest, service.ErrSubjectRequired.Error())
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, service.ErrFileRequired.Error())
		}

		ownerID, _ := c.Locals(middleware.UserIDLocalKey).(string)

		localPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fh.Filename))
		if err := c.SaveFile(fh, localPath); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "failed to store uploaded file")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			Title:            title,
			Description:      description,
			Subject:          subject,
			LocalPath:        localPath,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			OwnerID:          ownerID,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTitleRequired),
				errors.Is(err, service.ErrSubjectRequired),
				errors.Is(err, service.ErrFileRequired),
				errors.Is(err, service.ErrFileTypeNotAllowed):
				return writeError(c, fiber.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrStorage):
				return writeError(c, fiber.StatusInternalServerError, service.ErrStorage.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}
		return writeData(c, fiber.StatusCreated, "Document uploaded successfully", doc)
	}
}

// ListDocuments returns documents newest-first. Optional limit/offset query
// params page the result; the default returns everything.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeData(c, fiber.StatusOK, "", res)
	}
}

// GetDocument returns a single document by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, service.ErrNotFound.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeData(c, fiber.StatusOK, "", doc)
	}
}
