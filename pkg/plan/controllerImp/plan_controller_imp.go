package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agroplan/entities"
	"agroplan/pkg/plan/service"
)

type planCtrl struct{ s service.PlanService }

func New(s service.PlanService) *planCtrl { return &planCtrl{s} }

func (h *planCtrl) Generate(c echo.Context) error {
	scenario := c.QueryParam("scenario")
	if scenario == "" {
		scenario = entities.ScenarioShortage
	}
	run, err := h.s.Generate(scenario)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, run)
}

func (h *planCtrl) List(c echo.Context) error {
	runs, err := h.s.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, runs)
}

func (h *planCtrl) Get(c echo.Context) error {
	run, cells, err := h.s.Get(c.Param("run_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "run not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"run": run, "cells": cells})
}

func (h *planCtrl) Export(c echo.Context) error {
	path, err := h.s.Export(c.Param("run_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"path": path})
}
