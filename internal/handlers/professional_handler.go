package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httperr"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/httpresp"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type ProfessionalRequest struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email"`
	Specialties []string `json:"specialties"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	var professionals []models.Professional

	query := h.db.Preload("Specialties").Order("name ASC")

	// Filtro por especialidade (ex.: ?specialty=LASH)
	if specialty := c.Query("specialty"); specialty != "" {
		subquery := h.db.
			Model(&models.ProfessionalSpecialty{}).
			Select("professional_id").
			Where("specialty = ?", specialty)
		query = query.Where("id IN (?)", subquery)
	}

	if err := query.Find(&professionals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, professionals)
}

func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var professional models.Professional
	if err := h.db.Preload("Specialties").First(&professional, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrada.")
		return
	}

	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	professional := models.Professional{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	for _, s := range req.Specialties {
		professional.Specialties = append(professional.Specialties, models.ProfessionalSpecialty{
			Specialty: s,
		})
	}

	if err := h.db.Create(&professional).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "phone_already_exists", "Já existe profissional com este telefone.")
			return
		}
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	c.JSON(201, professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var professional models.Professional
	if err := h.db.First(&professional, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrada.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	professional.Name = req.Name
	professional.Phone = req.Phone
	professional.Email = req.Email

	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Especialidades são substituídas por inteiro, como os itens de
		// agendamento.
		if err := tx.
			Where("professional_id = ?", professional.ID).
			Delete(&models.ProfessionalSpecialty{}).Error; err != nil {
			return err
		}

		professional.Specialties = nil
		for _, s := range req.Specialties {
			professional.Specialties = append(professional.Specialties, models.ProfessionalSpecialty{
				ProfessionalID: professional.ID,
				Specialty:      s,
			})
		}
		if len(professional.Specialties) > 0 {
			if err := tx.Create(&professional.Specialties).Error; err != nil {
				return err
			}
		}

		return tx.Omit("Specialties").Save(&professional).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "phone_already_exists", "Já existe profissional com este telefone.")
			return
		}
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Professional{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrada.")
		return
	}

	c.Status(204)
}
