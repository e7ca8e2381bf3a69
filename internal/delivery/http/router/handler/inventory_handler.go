package handler

import (
	"log/slog"
	"net/http"

	"medifind/internal/delivery/http/response"
	"medifind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for the pharmacy stock handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddMedicine handles the creation of a new inventory item.
func (h *InventoryHandler) AddMedicine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	medicine, err := h.uc.AddMedicine(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medicine, "Medicine added successfully")
}

// ListStock handles listing the caller's own inventory.
func (h *InventoryHandler) ListStock(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.ListStockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock query")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	medicines, err := h.uc.ListStock(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "Stock retrieved successfully")
}

// GetMedicine handles retrieval of a single owned inventory item.
func (h *InventoryHandler) GetMedicine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	medicine, err := h.uc.GetMedicine(c.Request().Context(), userID, medicineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine retrieved successfully")
}

// UpdateMedicine handles full replacement of an owned inventory item.
func (h *InventoryHandler) UpdateMedicine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	var input usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	medicine, err := h.uc.UpdateMedicine(c.Request().Context(), userID, medicineID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine updated successfully")
}

// UploadMedicineImage stores a product image for an owned inventory item.
// The multipart form carries the image under "file".
func (h *InventoryHandler) UploadMedicineImage(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A product image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("Failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	input := usecase.UploadMedicineImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	medicine, err := h.uc.UploadMedicineImage(c.Request().Context(), userID, medicineID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Product image uploaded successfully")
}

// DeleteMedicine handles removal of an owned inventory item.
func (h *InventoryHandler) DeleteMedicine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	if err := h.uc.DeleteMedicine(c.Request().Context(), userID, medicineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine deleted successfully")
}
