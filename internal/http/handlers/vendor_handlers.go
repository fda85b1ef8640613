package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
	repo "github.com/rogerio-castellano/erp-dashboard/internal/repo"
)

func vendorFromRequest(req VendorRequest) models.Vendor {
	vendor := models.Vendor{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		PaymentTerms: req.PaymentTerms,
		Rating:       req.Rating,
	}
	if vendor.PaymentTerms == "" {
		vendor.PaymentTerms = "Net 30"
	}
	return vendor
}

// CreateVendorHandler godoc
// @Summary Create a vendor
// @Tags purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vendor body VendorRequest true "Vendor to create"
// @Success 201 {object} models.Vendor
// @Failure 400 {object} map[string]string
// @Failure 409 {string} string "Duplicate email"
// @Router /api/purchasing/vendors [post]
func CreateVendorHandler(w http.ResponseWriter, r *http.Request) {
	var req VendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateVendor(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	vendor := vendorFromRequest(req)
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = time.Now()

	created, err := vendorRepo.Create(vendor)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not create vendor: email already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create vendor", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetVendorsHandler godoc
// @Summary List all vendors
// @Tags purchasing
// @Produce json
// @Success 200 {array} models.Vendor
// @Failure 500 {string} string "Internal error"
// @Router /api/purchasing/vendors [get]
func GetVendorsHandler(w http.ResponseWriter, r *http.Request) {
	vendors, err := vendorRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch vendors", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, vendors); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetVendorByIDHandler godoc
// @Summary Get vendor by ID
// @Tags purchasing
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} models.Vendor
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/vendors/{id} [get]
func GetVendorByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vendor ID", http.StatusBadRequest)
		return
	}

	vendor, err := vendorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch vendor", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, vendor); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateVendorHandler godoc
// @Summary Update a vendor
// @Tags purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param vendor body VendorRequest true "Updated vendor"
// @Success 200 {object} models.Vendor
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/vendors/{id} [put]
func UpdateVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vendor ID", http.StatusBadRequest)
		return
	}

	var req VendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateVendor(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	vendor := vendorFromRequest(req)
	vendor.ID = id
	vendor.UpdatedAt = time.Now()

	updated, err := vendorRepo.Update(vendor)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not update vendor: email already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update vendor", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteVendorHandler godoc
// @Summary Delete a vendor
// @Tags purchasing
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/vendors/{id} [delete]
func DeleteVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vendor ID", http.StatusBadRequest)
		return
	}
	if err := vendorRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete vendor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
