package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	personRepo "deptdesk/database/repository/person"
	"deptdesk/models"
	"deptdesk/services/person"
	"deptdesk/utils"
)

// PersonHandler serves the personnel directory endpoints.
type PersonHandler struct {
	Service person.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(svc person.PersonService) *PersonHandler {
	return &PersonHandler{Service: svc}
}

func (h *PersonHandler) CreatePersonHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p models.Person
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreatePerson(c.Request.Context(), p)
	if err != nil {
		logger.Error("Failed to create person", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create person", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PersonHandler) GetPersonByIDHandler(c *gin.Context) {
	personID := c.Param("id")

	p, err := h.Service.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Person not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch person", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) ListPeopleHandler(c *gin.Context) {
	filter := personRepo.PersonFilter{
		Role:     c.Query("role"),
		Building: c.Query("building"),
		JobTitle: c.Query("jobTitle"),
	}

	people, err := h.Service.ListPeople(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list people", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"people": people})
}

func (h *PersonHandler) UpdatePersonHandler(c *gin.Context) {
	var req models.PersonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.UpdatePerson(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Person not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update person", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PersonHandler) DeletePersonHandler(c *gin.Context) {
	personID := c.Param("id")

	if err := h.Service.DeletePerson(c.Request.Context(), personID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Person not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete person", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Person deleted"})
}
