package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DocumentHandler holds dependencies for document handlers.
type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List handles the document listing request.
func (h *DocumentHandler) List(c echo.Context) error {
	documents, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documents, "")
}

// Get handles a single document retrieve.
func (h *DocumentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	document, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, document, "")
}

// Create handles the multipart document upload: the file rides in the
// 'file' part, metadata in the remaining form fields.
func (h *DocumentHandler) Create(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file upload")
	}

	productID, err := uuid.Parse(c.FormValue("product"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product reference")
	}

	isMain, _ := strconv.ParseBool(c.FormValue("is_main"))

	name := c.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	input := &usecase.CreateDocumentInput{
		Name:      name,
		ProductID: productID,
		Type:      c.FormValue("document_type"),
		Size:      fileHeader.Size,
		Dimension: c.FormValue("dimension"),
		IsMain:    isMain,
		Content:   src,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	document, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document, "Document uploaded successfully")
}

// Update handles the document metadata update request.
func (h *DocumentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	document, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, document, "Document updated successfully")
}

// Delete handles the document delete request. The stored file is moved
// into the deleted area before the record is soft-deleted.
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted successfully")
}
