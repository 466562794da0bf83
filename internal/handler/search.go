package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skysearch/internal/models"
	"skysearch/internal/pipeline"
	"skysearch/internal/search"
	"skysearch/internal/store"
)

type SearchHandler struct {
	controller *search.Controller
	store      *store.Store
}

func NewSearchHandler(controller *search.Controller, s *store.Store) *SearchHandler {
	return &SearchHandler{
		controller: controller,
		store:      s,
	}
}

type searchStateResponse struct {
	Phase   search.Phase            `json:"phase"`
	Error   string                  `json:"error,omitempty"`
	Results *models.ResultsResponse `json:"results,omitempty"`
}

// Submit validates the store's search partition and triggers a fetch.
// Validation failures come back as a per-field mapping and no network call
// is made.
func (h *SearchHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	query := h.store.Search()

	if fieldErrs := h.controller.Submit(ctx, query); len(fieldErrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Error:  "validation_error",
			Fields: fieldErrs,
		})
	}

	return h.Results(c)
}

// Results renders the lifecycle state with the pipeline applied to the
// fetched collection under the store's current filter criteria.
func (h *SearchHandler) Results(c echo.Context) error {
	state := h.controller.State()

	resp := searchStateResponse{
		Phase: state.Phase,
		Error: state.Error,
	}

	if state.Phase == search.PhaseSuccess {
		criteria := h.store.Filter()
		shown := pipeline.Apply(state.Offers, criteria, state.Carriers)

		resp.Results = &models.ResultsResponse{
			Query: state.Query,
			Metadata: models.ResultsMetadata{
				TotalOffers:  len(state.Offers),
				ShownOffers:  len(shown),
				CacheHit:     state.CacheHit,
				SearchTimeMs: state.TookMs,
			},
			Offers:   shown,
			Carriers: state.Carriers,
			Airlines: pipeline.UniqueAirlines(state.Offers),
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Summary aggregates the full unfiltered collection for the price chart.
func (h *SearchHandler) Summary(c echo.Context) error {
	state := h.controller.State()
	if state.Phase != search.PhaseSuccess {
		return c.JSON(http.StatusOK, pipeline.Summarize(nil))
	}
	return c.JSON(http.StatusOK, pipeline.Summarize(state.Offers))
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
