package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AirlineNames resolves a carrier code to a display name, falling back to
// the code itself.
type AirlineNames interface {
	AirlineName(ctx context.Context, code string) string
}

type AirlineHandler struct {
	names AirlineNames
}

func NewAirlineHandler(names AirlineNames) *AirlineHandler {
	return &AirlineHandler{names: names}
}

type airlineResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (h *AirlineHandler) Lookup(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return badRequest(c, "Airline code is required")
	}

	name := h.names.AirlineName(c.Request().Context(), code)
	return c.JSON(http.StatusOK, airlineResponse{Code: code, Name: name})
}
