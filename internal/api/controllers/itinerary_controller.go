package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (ctrl *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ctrl.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

func (ctrl *ItineraryController) SaveItineraryHandler(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ctrl.itineraryService.SaveItinerary(c.Request.Context(), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *ItineraryController) GetItineraryHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary, err := ctrl.itineraryService.GetItineraryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

func (ctrl *ItineraryController) ListItinerariesHandler(c *gin.Context) {
	var userID *uint
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		value := uint(parsed)
		userID = &value
	}

	itineraries, err := ctrl.itineraryService.ListItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itineraries)
}
