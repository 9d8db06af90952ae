package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	ListPlots(c echo.Context) error
	CreatePlot(c echo.Context) error
	ListCrops(c echo.Context) error
	CropStats(c echo.Context) error
}
