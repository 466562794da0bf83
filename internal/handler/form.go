package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skysearch/internal/models"
	"skysearch/internal/store"
)

// FormHandler exposes the query state store's named operations over HTTP.
type FormHandler struct {
	store *store.Store
}

func NewFormHandler(s *store.Store) *FormHandler {
	return &FormHandler{store: s}
}

type formUpdateRequest struct {
	Origin        *string            `json:"origin,omitempty"`
	Destination   *string            `json:"destination,omitempty"`
	DepartureDate *string            `json:"departure_date,omitempty"`
	ReturnDate    *string            `json:"return_date,omitempty"`
	Passengers    *int               `json:"passengers,omitempty"`
	CabinClass    *models.CabinClass `json:"cabin_class,omitempty"`
}

func (h *FormHandler) Update(c echo.Context) error {
	var req formUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}

	if req.Origin != nil {
		h.store.SetOrigin(*req.Origin)
	}
	if req.Destination != nil {
		h.store.SetDestination(*req.Destination)
	}
	if req.DepartureDate != nil {
		h.store.SetDepartureDate(*req.DepartureDate)
	}
	if req.ReturnDate != nil {
		h.store.SetReturnDate(*req.ReturnDate)
	}
	if req.Passengers != nil {
		h.store.SetPassengers(*req.Passengers)
	}
	if req.CabinClass != nil {
		if !req.CabinClass.Valid() {
			return badRequest(c, "Invalid cabin class")
		}
		h.store.SetCabinClass(*req.CabinClass)
	}

	return c.JSON(http.StatusOK, h.store.Search())
}

func (h *FormHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Search())
}

func (h *FormHandler) ToggleTripType(c echo.Context) error {
	h.store.ToggleTripType()
	return c.JSON(http.StatusOK, h.store.Search())
}

func (h *FormHandler) SwapLocations(c echo.Context) error {
	h.store.SwapLocations()
	return c.JSON(http.StatusOK, h.store.Search())
}

func (h *FormHandler) Reset(c echo.Context) error {
	h.store.ResetSearch()
	return c.JSON(http.StatusOK, h.store.Search())
}

type filterUpdateRequest struct {
	PriceMin     *float64             `json:"price_min,omitempty"`
	PriceMax     *float64             `json:"price_max,omitempty"`
	ToggleStop   *models.StopCategory `json:"toggle_stop,omitempty"`
	ToggleAir    *string              `json:"toggle_airline,omitempty"`
	SortBy       *models.SortKey      `json:"sort_by,omitempty"`
	AirlineQuery *string              `json:"airline_query,omitempty"`
}

func (h *FormHandler) UpdateFilters(c echo.Context) error {
	var req filterUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}

	if req.PriceMin != nil || req.PriceMax != nil {
		current := h.store.Filter()
		low, high := current.PriceMin, current.PriceMax
		if req.PriceMin != nil {
			low = *req.PriceMin
		}
		if req.PriceMax != nil {
			high = *req.PriceMax
		}
		h.store.SetPriceRange(low, high)
	}
	if req.ToggleStop != nil {
		h.store.ToggleStop(*req.ToggleStop)
	}
	if req.ToggleAir != nil {
		h.store.ToggleAirline(*req.ToggleAir)
	}
	if req.SortBy != nil {
		h.store.SetSortBy(*req.SortBy)
	}
	if req.AirlineQuery != nil {
		h.store.SetAirlineQuery(*req.AirlineQuery)
	}

	return c.JSON(http.StatusOK, h.store.Filter())
}

func (h *FormHandler) GetFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Filter())
}

func (h *FormHandler) ResetFilters(c echo.Context) error {
	h.store.ResetFilters()
	return c.JSON(http.StatusOK, h.store.Filter())
}

type themeResponse struct {
	Mode store.ThemeMode `json:"mode"`
}

func (h *FormHandler) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeResponse{Mode: h.store.Theme()})
}

func (h *FormHandler) ToggleTheme(c echo.Context) error {
	mode := h.store.ToggleTheme(c.Request().Context())
	return c.JSON(http.StatusOK, themeResponse{Mode: mode})
}

func (h *FormHandler) SetTheme(c echo.Context) error {
	var req themeResponse
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if req.Mode != store.ThemeLight && req.Mode != store.ThemeDark {
		return badRequest(c, "Invalid theme mode")
	}

	h.store.SetTheme(c.Request().Context(), req.Mode)
	return c.JSON(http.StatusOK, themeResponse{Mode: h.store.Theme()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}
