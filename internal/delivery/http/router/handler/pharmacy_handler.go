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

// PharmacyHandler holds dependencies for the public discovery and saved
// pharmacy handlers.
type PharmacyHandler struct {
	uc     usecase.PharmacyUsecase
	logger *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler, injected by Fx.
func NewPharmacyHandler(uc usecase.PharmacyUsecase, logger *slog.Logger) *PharmacyHandler {
	return &PharmacyHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse handles the public pharmacy listing.
func (h *PharmacyHandler) Browse(c echo.Context) error {
	var input usecase.BrowsePharmaciesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid browse query")
	}

	pharmacies, err := h.uc.Browse(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacies, "Pharmacies retrieved successfully")
}

// Get handles retrieval of one pharmacy's public profile.
func (h *PharmacyHandler) Get(c echo.Context) error {
	pharmacyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	pharmacy, err := h.uc.Get(c.Request().Context(), pharmacyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacy, "Pharmacy retrieved successfully")
}

// ListMedicines handles the public stock listing for one pharmacy.
func (h *PharmacyHandler) ListMedicines(c echo.Context) error {
	pharmacyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	medicines, err := h.uc.ListMedicines(c.Request().Context(), pharmacyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "Medicines retrieved successfully")
}

// SearchMedicines handles the public cross-pharmacy medicine search.
func (h *PharmacyHandler) SearchMedicines(c echo.Context) error {
	var input usecase.SearchMedicinesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}

	medicines, err := h.uc.SearchMedicines(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "Medicines retrieved successfully")
}

// GetMedicine handles the public medicine detail lookup.
func (h *PharmacyHandler) GetMedicine(c echo.Context) error {
	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	detail, err := h.uc.GetMedicine(c.Request().Context(), medicineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Medicine retrieved successfully")
}

// Counts handles the public platform-wide totals.
func (h *PharmacyHandler) Counts(c echo.Context) error {
	counts, err := h.uc.Counts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Counts retrieved successfully")
}

// MedicineCount handles the public per-pharmacy stock count.
func (h *PharmacyHandler) MedicineCount(c echo.Context) error {
	pharmacyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	count, err := h.uc.MedicineCount(c.Request().Context(), pharmacyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"medicines": count}, "Count retrieved successfully")
}

// SavePharmacy adds a pharmacy to the caller's saved list.
func (h *PharmacyHandler) SavePharmacy(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	pharmacyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	if err := h.uc.SavePharmacy(c.Request().Context(), userID, pharmacyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Pharmacy saved successfully")
}

// UnsavePharmacy removes a pharmacy from the caller's saved list.
func (h *PharmacyHandler) UnsavePharmacy(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	pharmacyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	if err := h.uc.UnsavePharmacy(c.Request().Context(), userID, pharmacyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pharmacy removed from saved list")
}

// ListSaved retrieves the caller's saved pharmacies.
func (h *PharmacyHandler) ListSaved(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	saved, err := h.uc.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Saved pharmacies retrieved successfully")
}
