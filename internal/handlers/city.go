package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JGSSSILVA/Personal-Kanban/internal/constants"
	apierrors "github.com/JGSSSILVA/Personal-Kanban/internal/errors"
	"github.com/JGSSSILVA/Personal-Kanban/internal/weather"
)

type CityHandler struct {
	weather *weather.Client
}

func NewCityHandler(client *weather.Client) *CityHandler {
	return &CityHandler{weather: client}
}

// SearchCities serves the location autocomplete. Queries shorter than
// three characters return no candidates rather than spamming the
// geocoding API.
func (h *CityHandler) SearchCities(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 3 {
		c.JSON(http.StatusOK, gin.H{"results": []weather.Candidate{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultCityLimit)))
	if limit < 1 || limit > constants.MaxCityLimit {
		limit = constants.DefaultCityLimit
	}

	results, err := h.weather.Geocode(c.Request.Context(), query, limit)
	if err != nil {
		apierrors.ServiceUnavailable(c, "City search is unavailable")
		return
	}
	if results == nil {
		results = []weather.Candidate{}
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
