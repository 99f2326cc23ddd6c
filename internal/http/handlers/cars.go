package handlers

import (
	"net/http"
	"strings"

	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type carPayload struct {
	Name        string `json:"name"`
	ImageBase64 string `json:"imageBase64"`
	Passengers  int    `json:"passengers"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (p carPayload) validate(requireImage bool) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "car name is required"
	case requireImage && strings.TrimSpace(p.ImageBase64) == "":
		return "car image is required"
	case p.Passengers <= 0:
		return "passenger capacity must be positive"
	case strings.TrimSpace(p.Description) == "":
		return "description is required"
	case p.Status != models.CarAvailable && p.Status != models.CarNotAvailable:
		return "status must be available or not available"
	}
	return ""
}

// GET /api/cars (public)
func GetCars(c *gin.Context) {
	cars, err := repositories.CarRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

// POST /api/cars (admin)
func CreateCar(c *gin.Context) {
	var req carPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if msg := req.validate(true); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	car := models.Car{
		Name:        strings.TrimSpace(req.Name),
		ImageBase64: req.ImageBase64,
		Passengers:  req.Passengers,
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
	}
	if err := (repositories.CarRepo{}).Insert(&car); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create car", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Car added successfully",
		"car":     car,
	})
}

// PUT /api/cars/:id (admin). Image is replaced only when a new payload is sent.
func UpdateCar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req carPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if msg := req.validate(false); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	updated, err := repositories.CarRepo{}.Update(id,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.Passengers,
		req.Status,
		req.ImageBase64,
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update car", err)
		return
	}
	if !updated {
		RespondError(c, http.StatusNotFound, "car not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car updated successfully"})
}

// DELETE /api/cars/:id (admin)
func DeleteCar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := repositories.CarRepo{}.Delete(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete car", err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "car not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
