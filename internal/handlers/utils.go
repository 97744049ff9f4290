package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

func getFormInt(c echo.Context, name string, defaultValue int) int {
	param := c.FormValue(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
