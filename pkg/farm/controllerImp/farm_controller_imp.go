package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agroplan/entities"
	"agroplan/pkg/farm/repository"
)

type farmCtrl struct{ r repository.FarmRepository }

func New(r repository.FarmRepository) *farmCtrl { return &farmCtrl{r} }

func (h *farmCtrl) ListPlots(c echo.Context) error {
	plots, err := h.r.ListPlots()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plots)
}

func (h *farmCtrl) CreatePlot(c echo.Context) error {
	var in entities.Plot
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if in.Name == "" || !entities.ValidLandType(in.LandType) || in.AreaMu <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "need name, valid land_type, positive area_mu"})
	}
	if err := h.r.CreatePlot(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *farmCtrl) ListCrops(c echo.Context) error {
	crops, err := h.r.ListCrops()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crops)
}

func (h *farmCtrl) CropStats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop id"})
	}
	stats, err := h.r.StatsByCrop(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}
