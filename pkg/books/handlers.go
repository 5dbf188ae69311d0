package books

import (
	"net/http"

	"github.com/bookriapp/bookri/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	payload := CreateBookPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.CreateBook(ctx, CreateBookOptions{
		Name:          payload.Name,
		Author:        payload.Author,
		FileLocation:  payload.FileLocation,
		CoverImage:    payload.CoverImage,
		TotalPages:    payload.TotalPages,
		FileFormat:    payload.FileFormat,
		FileSizeBytes: payload.FileSize,
		Metadata:      payload.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) importBook(c echo.Context) error {
	ctx := c.Request().Context()

	payload := ImportBookPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.ImportBook(ctx, ImportBookOptions{
		FilePath: payload.FilePath,
		Name:     payload.Name,
		Author:   payload.Author,
		Metadata: payload.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books := h.bookService.ListBooks(ctx)

	resp := struct {
		Books []*models.Book `json:"books"`
		Total int            `json:"total"`
	}{books, len(books)}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.RetrieveBook(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}
