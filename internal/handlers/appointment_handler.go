package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/appointment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httpresp"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/timezone"
	ucAppointment "github.com/rafaelmaiia/mar-de-beleza-system/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	deleteUC       *ucAppointment.DeleteAppointment
	findUC         *ucAppointment.FindAppointment
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	findUC *ucAppointment.FindAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		findUC:         findUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentItemRequest struct {
	SalonServiceID uint    `json:"salon_service_id" binding:"required"`
	ProfessionalID uint    `json:"professional_id" binding:"required"`
	Price          float64 `json:"price"`
}

type AppointmentRequest struct {
	ClientID     uint   `json:"client_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Observations string `json:"observations"`
	Status       string `json:"status"`

	Items []AppointmentItemRequest `json:"items"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *AppointmentRequest) toInput() (ucAppointment.AppointmentInput, error) {
	start, err := timezone.ParseDateTime(r.Date + " " + r.Time)
	if err != nil {
		return ucAppointment.AppointmentInput{}, err
	}

	in := ucAppointment.AppointmentInput{
		ClientID:     r.ClientID,
		StartTime:    start,
		Observations: r.Observations,
	}

	if r.Status != "" {
		status := domain.Status(r.Status)
		in.Status = &status
	}

	for _, item := range r.Items {
		in.Items = append(in.Items, ucAppointment.ItemInput{
			SalonServiceID: item.SalonServiceID,
			ProfessionalID: item.ProfessionalID,
			Price:          item.Price,
		})
	}

	return in, nil
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := req.toInput()
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	actorID, requestID := actor(c)

	ap, err := h.createUC.Execute(c.Request.Context(), in, actorID, requestID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// UPDATE (substituição integral dos itens)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := req.toInput()
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	actorID, requestID := actor(c)

	ap, err := h.updateUC.Execute(c.Request.Context(), id, in, actorID, requestID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// STATUS (operação estreita, sem checagem de conflito)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actorID, requestID := actor(c)

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		actorID,
		requestID,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// GET / LIST / DELETE
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.findUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := domain.Filter{
		ProfessionalID: parseUintQuery(c, "professional_id"),
		ClientID:       parseUintQuery(c, "client_id"),
		Page:           parseIntQuery(c, "page", 1),
		PageSize:       parseIntQuery(c, "page_size", domain.DefaultPageSize),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		filter.Date = &date
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.Status(statusStr)
		if !status.IsValid() {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		filter.Status = &status
	}

	apps, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.Page(c, apps, total, filter.Page, filter.PageSize)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	actorID, requestID := actor(c)

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorID, requestID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(204)
}
