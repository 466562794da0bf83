package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skysearch/internal/autocomplete"
	"skysearch/internal/models"
)

// AutocompleteHandler routes input events to the per-field controllers
// (origin and destination each own one).
type AutocompleteHandler struct {
	controllers map[string]*autocomplete.Controller
}

func NewAutocompleteHandler(controllers map[string]*autocomplete.Controller) *AutocompleteHandler {
	return &AutocompleteHandler{controllers: controllers}
}

func (h *AutocompleteHandler) controller(c echo.Context) (*autocomplete.Controller, error) {
	field := c.Param("field")
	ctrl, ok := h.controllers[field]
	if !ok {
		return nil, c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "unknown_field",
			Message: "No autocomplete input named " + field,
			Code:    http.StatusNotFound,
		})
	}
	return ctrl, nil
}

type textEventRequest struct {
	Text string `json:"text"`
}

func (h *AutocompleteHandler) Text(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	var req textEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}

	ctrl.SetText(req.Text)
	return c.JSON(http.StatusOK, ctrl.State())
}

func (h *AutocompleteHandler) Select(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	var location models.Location
	if err := c.Bind(&location); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if location.IATACode == "" {
		return badRequest(c, "Selected location needs an IATA code")
	}

	ctrl.Select(location)
	return c.JSON(http.StatusOK, ctrl.State())
}

func (h *AutocompleteHandler) Focus(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	ctrl.Focus()
	return c.JSON(http.StatusOK, ctrl.State())
}

func (h *AutocompleteHandler) Dismiss(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	ctrl.Dismiss()
	return c.JSON(http.StatusOK, ctrl.State())
}

func (h *AutocompleteHandler) State(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	return c.JSON(http.StatusOK, ctrl.State())
}
