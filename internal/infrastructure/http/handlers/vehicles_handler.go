package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/application/vehicles"
	"github.com/carbase/carbase/internal/domain"
	domerrors "github.com/carbase/carbase/internal/domain/errors"
	"github.com/carbase/carbase/internal/infrastructure/http/middleware"
)

// VehiclesHandler handles /vehicles/*.
type VehiclesHandler struct {
	create   *vehicles.CreateVehicle
	update   *vehicles.UpdateVehicle
	remove   *vehicles.DeleteVehicle
	list     *vehicles.ListVehicles
	detail   *vehicles.GetVehicleDetail
	enqueuer ports.TaskEnqueuer
	validate *validator.Validate
	log      zerolog.Logger
}

func NewVehiclesHandler(create *vehicles.CreateVehicle, update *vehicles.UpdateVehicle, remove *vehicles.DeleteVehicle, list *vehicles.ListVehicles, detail *vehicles.GetVehicleDetail, enqueuer ports.TaskEnqueuer, log zerolog.Logger) *VehiclesHandler {
	return &VehiclesHandler{
		create:   create,
		update:   update,
		remove:   remove,
		list:     list,
		detail:   detail,
		enqueuer: enqueuer,
		validate: validator.New(),
		log:      log,
	}
}

// vehicleBody is the writable field set shared by create and update.
type vehicleBody struct {
	ModelID    string  `json:"model_id" validate:"required,uuid"`
	Plate      string  `json:"plate" validate:"required"`
	Color      string  `json:"color" validate:"required,max=32"`
	Year       int     `json:"year" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	OwnerEmail string  `json:"owner_email" validate:"required,email,max=254"`
	OwnerPhone string  `json:"owner_phone" validate:"required,max=32"`
}

// VehicleResponse is the JSON shape of a vehicle summary.
type VehicleResponse struct {
	ID         string  `json:"id"`
	ModelID    string  `json:"model_id"`
	ModelName  string  `json:"model_name"`
	BrandName  string  `json:"brand_name"`
	Plate      string  `json:"plate"`
	Color      string  `json:"color"`
	Year       int     `json:"year"`
	Price      float64 `json:"price"`
	OwnerEmail string  `json:"owner_email"`
	OwnerPhone string  `json:"owner_phone"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// VehicleDetailResponse adds the two best-effort validity flags. A false flag
// may mean the validator said no or that it was unreachable.
type VehicleDetailResponse struct {
	VehicleResponse
	RegistrationValid bool `json:"registration_valid"`
	InspectionValid   bool `json:"inspection_valid"`
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func summaryResponse(s domain.VehicleSummary) VehicleResponse {
	return VehicleResponse{
		ID:         s.ID.String(),
		ModelID:    s.ModelID.String(),
		ModelName:  s.ModelName,
		BrandName:  s.BrandName,
		Plate:      s.Plate,
		Color:      s.Color,
		Year:       s.Year,
		Price:      s.Price,
		OwnerEmail: s.OwnerEmail,
		OwnerPhone: s.OwnerPhone,
		CreatedAt:  s.CreatedAt.Format(timeFormat),
		UpdatedAt:  s.UpdatedAt.Format(timeFormat),
	}
}

// List returns all vehicle summaries. An empty store yields an empty list,
// never null.
func (h *VehiclesHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.list.Execute(r.Context())
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	items := make([]VehicleResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, summaryResponse(s))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": items})
}

// Get returns the enriched detail for one vehicle, or 404.
func (h *VehiclesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	detail, err := h.detail.Execute(r.Context(), id)
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	if detail == nil {
		writeErr(w, http.StatusNotFound, "", "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, VehicleDetailResponse{
		VehicleResponse:   summaryResponse(detail.VehicleSummary),
		RegistrationValid: detail.RegistrationValid,
		InspectionValid:   detail.InspectionValid,
	})
}

// Create inserts a new vehicle and returns its generated id.
func (h *VehiclesHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, modelID, ok := h.vehicleBody(w, r)
	if !ok {
		return
	}
	result, err := h.create.Execute(r.Context(), vehicles.CreateVehicleInput{
		ModelID:    modelID,
		Plate:      NormalizePlate(body.Plate),
		Color:      body.Color,
		Year:       body.Year,
		Price:      body.Price,
		OwnerEmail: SanitizeEmail(body.OwnerEmail),
		OwnerPhone: SanitizePhone(body.OwnerPhone),
	})
	if err != nil {
		AuditEmit(h.log, r, h.enqueuer, "vehicle.created", "", NormalizePlate(body.Plate), false, err.Error())
		middleware.RecordVehicleMutation("create", false)
		h.writeDomainErr(w, err)
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "vehicle.created", result.Vehicle.ID.String(), result.Vehicle.Plate, true, "")
	middleware.RecordVehicleMutation("create", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": result.Vehicle.ID.String()})
}

// Update mutates an existing vehicle and returns its id.
func (h *VehiclesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	body, modelID, ok := h.vehicleBody(w, r)
	if !ok {
		return
	}
	result, err := h.update.Execute(r.Context(), vehicles.UpdateVehicleInput{
		ID:         id,
		ModelID:    modelID,
		Plate:      NormalizePlate(body.Plate),
		Color:      body.Color,
		Year:       body.Year,
		Price:      body.Price,
		OwnerEmail: SanitizeEmail(body.OwnerEmail),
		OwnerPhone: SanitizePhone(body.OwnerPhone),
	})
	if err != nil {
		AuditEmit(h.log, r, h.enqueuer, "vehicle.updated", id.String(), NormalizePlate(body.Plate), false, err.Error())
		middleware.RecordVehicleMutation("update", false)
		h.writeDomainErr(w, err)
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "vehicle.updated", result.Vehicle.ID.String(), result.Vehicle.Plate, true, "")
	middleware.RecordVehicleMutation("update", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": result.Vehicle.ID.String()})
}

// Delete removes a vehicle; 204 on success, 404 when absent.
func (h *VehiclesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), id); err != nil {
		AuditEmit(h.log, r, h.enqueuer, "vehicle.deleted", id.String(), "", false, err.Error())
		middleware.RecordVehicleMutation("delete", false)
		h.writeDomainErr(w, err)
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "vehicle.deleted", id.String(), "", true, "")
	middleware.RecordVehicleMutation("delete", true)
	w.WriteHeader(http.StatusNoContent)
}

// vehicleID parses the {id} path parameter. Nil and malformed UUIDs are
// rejected before anything reaches the orchestrator.
func (h *VehiclesHandler) vehicleID(w http.ResponseWriter, r *http.Request) (domain.VehicleID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		writeErr(w, http.StatusBadRequest, "", "invalid vehicle id")
		return domain.VehicleID{}, false
	}
	return domain.NewVehicleID(id), true
}

func (h *VehiclesHandler) vehicleBody(w http.ResponseWriter, r *http.Request) (vehicleBody, domain.ModelID, bool) {
	var body vehicleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return body, domain.ModelID{}, false
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return body, domain.ModelID{}, false
	}
	if !ValidPlate(NormalizePlate(body.Plate)) {
		writeErr(w, http.StatusBadRequest, "", "plate must match the AAA-999 format")
		return body, domain.ModelID{}, false
	}
	if !ValidYear(body.Year) {
		writeErr(w, http.StatusBadRequest, "", "year out of range")
		return body, domain.ModelID{}, false
	}
	if SanitizeEmail(body.OwnerEmail) == "" || SanitizePhone(body.OwnerPhone) == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid owner email or phone")
		return body, domain.ModelID{}, false
	}
	modelID, err := uuid.Parse(body.ModelID)
	if err != nil || modelID == uuid.Nil {
		writeErr(w, http.StatusBadRequest, "", "invalid model id")
		return body, domain.ModelID{}, false
	}
	return body, domain.NewModelID(modelID), true
}

// writeDomainErr maps domain errors to HTTP outcomes. Storage faults render
// as an opaque 500; no internal detail leaks to the caller.
func (h *VehiclesHandler) writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrVehicleNotFound):
		writeErr(w, http.StatusNotFound, "", "vehicle not found")
	case errors.Is(err, domerrors.ErrModelNotFound):
		writeErr(w, http.StatusUnprocessableEntity, ErrCodeModelNotFound, "referenced model not found")
	case errors.Is(err, domerrors.ErrPlateTaken):
		writeErr(w, http.StatusConflict, "", "plate already registered")
	default:
		h.log.Error().Err(err).Msg("vehicle request failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
	}
}
