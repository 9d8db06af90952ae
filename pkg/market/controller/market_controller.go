package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	Refresh(c echo.Context) error
}
