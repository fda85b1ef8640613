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

func employeeFromRequest(req EmployeeRequest) models.Employee {
	employee := models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		JoinDate:   req.JoinDate,
		Status:     req.Status,
	}
	if employee.Status == "" {
		employee.Status = models.EmployeeStatusActive
	}
	if employee.JoinDate.IsZero() {
		employee.JoinDate = time.Now()
	}
	return employee
}

// CreateEmployeeHandler godoc
// @Summary Create an employee
// @Tags hr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body EmployeeRequest true "Employee to create"
// @Success 201 {object} models.Employee
// @Failure 400 {object} map[string]string
// @Router /api/hr/employees [post]
func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateEmployee(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	employee := employeeFromRequest(req)
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	created, err := employeeRepo.Create(employee)
	if err != nil {
		http.Error(w, "could not create employee", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetEmployeesHandler godoc
// @Summary List all employees
// @Tags hr
// @Produce json
// @Success 200 {array} models.Employee
// @Failure 500 {string} string "Internal error"
// @Router /api/hr/employees [get]
func GetEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := employeeRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch employees", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, employees); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetEmployeeByIDHandler godoc
// @Summary Get employee by ID
// @Tags hr
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/hr/employees/{id} [get]
func GetEmployeeByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid employee ID", http.StatusBadRequest)
		return
	}

	employee, err := employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch employee", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, employee); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateEmployeeHandler godoc
// @Summary Update an employee
// @Tags hr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param employee body EmployeeRequest true "Updated employee"
// @Success 200 {object} models.Employee
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /api/hr/employees/{id} [put]
func UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid employee ID", http.StatusBadRequest)
		return
	}

	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateEmployee(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	employee := employeeFromRequest(req)
	employee.ID = id
	employee.UpdatedAt = time.Now()

	updated, err := employeeRepo.Update(employee)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update employee", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteEmployeeHandler godoc
// @Summary Delete an employee
// @Tags hr
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/hr/employees/{id} [delete]
func DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid employee ID", http.StatusBadRequest)
		return
	}
	if err := employeeRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete employee", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
