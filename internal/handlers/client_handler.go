package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httpresp"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/timezone"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

func (r *ClientRequest) apply(client *models.Client) error {
	client.Name = r.Name
	client.Phone = r.Phone
	client.Email = r.Email
	client.Gender = r.Gender

	if r.BirthDate != "" {
		birth, err := timezone.ParseDate(r.BirthDate)
		if err != nil {
			return err
		}
		client.BirthDate = &birth
	} else {
		client.BirthDate = nil
	}
	return nil
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client

	query := h.db.Order("name ASC")
	if name := c.Query("name"); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	if err := query.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := req.apply(&client); err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	if err := h.db.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "phone_already_exists", "Já existe cliente com este telefone.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	c.JSON(201, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.apply(&client); err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	if err := h.db.Save(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "phone_already_exists", "Já existe cliente com este telefone.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.Status(204)
}
