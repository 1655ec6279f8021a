package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/rafaelmaiia/mar-de-beleza-system/internal/domain/payment"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httpresp"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/timezone"
	ucPayment "github.com/rafaelmaiia/mar-de-beleza-system/internal/usecase/payment"
)

type PaymentHandler struct {
	createUC *ucPayment.CreatePayment
	updateUC *ucPayment.UpdatePayment
	cancelUC *ucPayment.CancelPayment
	findUC   *ucPayment.FindPayment
	listUC   *ucPayment.ListPayments
}

func NewPaymentHandler(
	createUC *ucPayment.CreatePayment,
	updateUC *ucPayment.UpdatePayment,
	cancelUC *ucPayment.CancelPayment,
	findUC *ucPayment.FindPayment,
	listUC *ucPayment.ListPayments,
) *PaymentHandler {
	return &PaymentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		findUC:   findUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreatePaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	TotalAmount   float64 `json:"total_amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
	Observations  string  `json:"observations"`
}

type UpdatePaymentRequest struct {
	TotalAmount  float64 `json:"total_amount" binding:"required,gt=0"`
	Method       string  `json:"method" binding:"required"`
	Observations string  `json:"observations"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actorID, requestID := actor(c)

	p, err := h.createUC.Execute(c.Request.Context(), ucPayment.CreatePaymentInput{
		AppointmentID: req.AppointmentID,
		TotalAmount:   req.TotalAmount,
		Method:        domain.Method(req.Method),
		Observations:  req.Observations,
	}, actorID, requestID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(201, p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actorID, requestID := actor(c)

	p, err := h.updateUC.Execute(c.Request.Context(), id, ucPayment.UpdatePaymentInput{
		TotalAmount:  req.TotalAmount,
		Method:       domain.Method(req.Method),
		Observations: req.Observations,
	}, actorID, requestID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	actorID, requestID := actor(c)

	if err := h.cancelUC.Execute(c.Request.Context(), id, actorID, requestID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(204)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	p, err := h.findUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	filter := domain.Filter{
		ProfessionalID: parseUintQuery(c, "professional_id"),
		Page:           parseIntQuery(c, "page", 1),
		PageSize:       parseIntQuery(c, "page_size", 20),
	}

	if raw := c.Query("start_date"); raw != "" {
		d, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Data inicial inválida.")
			return
		}
		filter.StartDate = &d
	}

	if raw := c.Query("end_date"); raw != "" {
		d, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
			return
		}
		filter.EndDate = &d
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		filter.Status = &status
	}

	payments, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.Page(c, payments, total, filter.Page, filter.PageSize)
}
