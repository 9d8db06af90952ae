package router

import (
	"github.com/labstack/echo/v4"

	farmctrl "agroplan/pkg/farm/controller"
	marketctrl "agroplan/pkg/market/controller"
	planctrl "agroplan/pkg/plan/controller"
)

func New(
	e *echo.Echo,
	farmCtrl farmctrl.FarmController,
	planCtrl planctrl.PlanController,
	marketCtrl marketctrl.MarketController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.GET("/plots", farmCtrl.ListPlots)
	e.POST("/plots", farmCtrl.CreatePlot)
	e.GET("/crops", farmCtrl.ListCrops)
	e.GET("/crops/:id/stats", farmCtrl.CropStats)

	g := e.Group("/plans")
	g.POST("", planCtrl.Generate)
	g.GET("", planCtrl.List)
	g.GET("/:run_id", planCtrl.Get)
	g.POST("/:run_id/export", planCtrl.Export)

	e.POST("/market/refresh", marketCtrl.Refresh)
	return e
}
