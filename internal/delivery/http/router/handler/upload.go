package handler

import (
	"mime/multipart"
	"net/http"

	"arbolitos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// formFile pulls one uploaded file out of the multipart form. The returned
// close function must be deferred by the caller; it is non-nil even on a
// missing optional file.
func formFile(c echo.Context, field string, maxSize int64) (*usecase.FileUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, noop, nil
		}

		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	if maxSize > 0 && header.Size > maxSize {
		return nil, noop, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file is too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}

	return &usecase.FileUpload{
		FileName:    header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Content:     file,
	}, func() { file.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
