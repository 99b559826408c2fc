package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/routing"
	"ITINERARY_BACK-END/internal/store"
	"ITINERARY_BACK-END/internal/utils"
)

const destinationsPath = "/api/v1/itinerary/destinations"

// ItineraryHandler manages itinerary endpoints
type ItineraryHandler struct {
	store   store.Store
	locks   *store.KeyedMutex
	derived *itinerary.DerivedCache
	planner *routing.Planner
	config  *config.Config
}

// NewItineraryHandler creates a new ItineraryHandler. planner may be nil when
// route resolution is not configured.
func NewItineraryHandler(s store.Store, planner *routing.Planner, cfg *config.Config) *ItineraryHandler {
	return &ItineraryHandler{
		store:   s,
		locks:   store.NewKeyedMutex(),
		derived: itinerary.NewDerivedCache(cfg.Itinerary.DerivedCacheSize),
		planner: planner,
		config:  cfg,
	}
}

// Itinerary dispatches by HTTP method for /api/v1/itinerary
func (h *ItineraryHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetItinerary(w, r)
	case http.MethodPost, http.MethodPut:
		h.ReplaceItinerary(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Destinations dispatches /api/v1/itinerary/destinations and its sub paths
func (h *ItineraryHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, destinationsPath), "/")
	if rest == "" {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.AddDestination(w, r)
		return
	}

	parts := strings.Split(rest, "/")
	id, err := uuid.Parse(parts[0])
	if err != nil || len(parts) > 2 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Destination not found")
		return
	}

	if len(parts) == 2 {
		if parts[1] != "travel-mode" {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Unknown destination action")
			return
		}
		if r.Method != http.MethodPut && r.Method != http.MethodPatch {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.ChangeTravelMode(w, r, id)
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		h.UpdateDestination(w, r, id)
	case http.MethodDelete:
		h.DeleteDestination(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GetItinerary handles GET /api/v1/itinerary
// @Summary Get the itinerary with derived state and a projected view
// @Tags itinerary
// @Produce json
// @Param search query string false "Case-insensitive name or location match"
// @Param type query string false "all | attraction | restaurant | accommodation | transport"
// @Param date query []string false "Dates to include (YYYY-MM-DD), repeat or comma separate"
// @Param sort query string false "date | name | budget"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary [get]
func (h *ItineraryHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	it, err := h.store.Load(r.Context(), userID)
	if err != nil {
		log.Printf("load itinerary %s: %v", userID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp := h.response(it, false)
	view := itinerary.Project(it.Destinations, criteria)
	resp.View = &dto.ViewResponse{
		Search:       criteria.Search,
		Type:         criteria.Type,
		Dates:        criteria.Dates,
		Sort:         string(criteria.Sort),
		Destinations: view,
		Derived:      itinerary.Derive(view),
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// ReplaceItinerary handles POST /api/v1/itinerary
// @Summary Replace the whole destination list
// @Tags itinerary
// @Accept json
// @Produce json
// @Param payload body dto.ReplaceItineraryRequest true "Destinations in canonical order"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary [post]
func (h *ItineraryHandler) ReplaceItinerary(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	if req.Destinations == nil {
		req.Destinations = []models.Destination{}
	}

	h.mutate(w, r, http.StatusOK, func(it models.Itinerary) (models.Itinerary, bool, error) {
		next, err := itinerary.Replace(it, req.Destinations)
		return next, err == nil, err
	})
}

// AddDestination handles POST /api/v1/itinerary/destinations
// @Summary Add a destination
// @Tags itinerary
// @Accept json
// @Produce json
// @Param payload body dto.DestinationRequest true "Destination payload"
// @Success 201 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/destinations [post]
func (h *ItineraryHandler) AddDestination(w http.ResponseWriter, r *http.Request) {
	var req dto.DestinationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var created models.Destination
	h.mutate(w, r, http.StatusCreated, func(it models.Itinerary) (models.Itinerary, bool, error) {
		next, d, err := itinerary.Add(it, req.ToDestination())
		created = d
		return next, err == nil, err
	}, func(resp *dto.ItineraryResponse) {
		resp.Destination = &created
	})
}

// UpdateDestination handles PUT/PATCH /api/v1/itinerary/destinations/{id}
// @Summary Edit a destination's content
// @Description Travel mode is kept; change it with the travel-mode endpoint.
// @Tags itinerary
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param payload body dto.UpdateDestinationRequest true "Fields to change"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/destinations/{id} [put]
func (h *ItineraryHandler) UpdateDestination(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req dto.UpdateDestinationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	h.mutate(w, r, http.StatusOK, func(it models.Itinerary) (models.Itinerary, bool, error) {
		next, err := itinerary.Edit(it, id, req.Patch)
		return next, err == nil, err
	})
}

// DeleteDestination handles DELETE /api/v1/itinerary/destinations/{id}
// @Summary Delete a destination
// @Description Deleting an unknown id succeeds with dirty=false.
// @Tags itinerary
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/destinations/{id} [delete]
func (h *ItineraryHandler) DeleteDestination(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	h.mutate(w, r, http.StatusOK, func(it models.Itinerary) (models.Itinerary, bool, error) {
		next, dirty := itinerary.Delete(it, id)
		return next, dirty, nil
	})
}

// ChangeTravelMode handles PUT /api/v1/itinerary/destinations/{id}/travel-mode
// @Summary Change how a destination is reached from the previous one
// @Tags itinerary
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param payload body dto.TravelModeRequest true "DRIVING | WALKING | TRANSIT | NONE"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/destinations/{id}/travel-mode [put]
func (h *ItineraryHandler) ChangeTravelMode(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req dto.TravelModeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	mode := models.ParseTravelMode(req.TravelMode)

	h.mutate(w, r, http.StatusOK, func(it models.Itinerary) (models.Itinerary, bool, error) {
		return itinerary.ChangeTravelMode(it, id, mode)
	})
}

// Reorder handles POST /api/v1/itinerary/reorder
// @Summary Move a destination
// @Description Indexes refer to the view described by search/type/dates/sort when any is set, otherwise to the canonical list. A null "to" is a no-op.
// @Tags itinerary
// @Accept json
// @Produce json
// @Param payload body dto.ReorderRequest true "Reorder payload"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/reorder [post]
func (h *ItineraryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ReorderRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var criteria itinerary.Criteria
	if req.HasView() {
		var err error
		criteria, err = utils.ParseCriteria(req.Search, req.Type, req.Dates, req.Sort)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
	}

	h.mutate(w, r, http.StatusOK, func(it models.Itinerary) (models.Itinerary, bool, error) {
		if !req.HasView() {
			return itinerary.Reorder(it, req.From, req.To)
		}
		view := itinerary.Project(it.Destinations, criteria)
		return itinerary.ReorderView(it, view, req.From, req.To)
	})
}

// Routes handles GET /api/v1/itinerary/routes
// @Summary Resolve the route of every leg
// @Description Failed legs are reported as warnings. Routes computed for an itinerary that changed meanwhile are dropped.
// @Tags itinerary
// @Produce json
// @Param scope query string false "canonical (default) | view"
// @Param search query string false "View search term"
// @Param type query string false "View type filter"
// @Param date query []string false "View dates"
// @Param sort query string false "View sort"
// @Success 200 {object} dto.RoutesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/itinerary/routes [get]
func (h *ItineraryHandler) Routes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	if h.planner == nil {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Routing unavailable", "Route resolution is not configured")
		return
	}

	scope := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("scope")))
	if scope == "" {
		scope = "canonical"
	}
	if scope != "canonical" && scope != "view" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "scope must be canonical or view")
		return
	}
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	list := func(it models.Itinerary) []models.Destination {
		if scope == "view" {
			return itinerary.Project(it.Destinations, criteria)
		}
		return it.Destinations
	}

	it, err := h.store.Load(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	plan := h.planner.Resolve(r.Context(), list(it))

	// The itinerary may have changed while legs were resolving
	current, err := h.store.Load(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if current.Version != it.Version {
		plan = routing.Apply(list(current), plan)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.RoutesResponse{
		Scope:    scope,
		Version:  current.Version,
		Routes:   plan.Routes,
		Warnings: plan.Warnings,
	})
}

// mutate loads the user's itinerary under the per-user lock, applies fn and
// saves the result when it changed. decorate, if given, completes the
// response of a saved change. A no-op answers 200 with dirty false.
func (h *ItineraryHandler) mutate(w http.ResponseWriter, r *http.Request, status int, fn func(models.Itinerary) (models.Itinerary, bool, error), decorate ...func(*dto.ItineraryResponse)) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	unlock := h.locks.Lock(userID)
	defer unlock()

	it, err := h.store.Load(r.Context(), userID)
	if err != nil {
		log.Printf("load itinerary %s: %v", userID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	next, dirty, err := fn(it)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	if !dirty {
		utils.WriteJSONResponse(w, http.StatusOK, h.response(it, false))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.saveTimeout())
	defer cancel()
	if err := h.store.Save(ctx, next); err != nil {
		log.Printf("save itinerary %s v%d: %v", userID, next.Version, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	resp := h.response(next, true)
	for _, fn := range decorate {
		fn(&resp)
	}
	utils.WriteJSONResponse(w, status, resp)
}

func (h *ItineraryHandler) saveTimeout() time.Duration {
	if h.config != nil && h.config.Database.QueryTimeout > 0 {
		return h.config.Database.QueryTimeout
	}
	return 30 * time.Second
}

func (h *ItineraryHandler) response(it models.Itinerary, dirty bool) dto.ItineraryResponse {
	rate, currency, display := itinerary.DefaultExchangeRate, "JPY", "USD"
	if h.config != nil {
		rate = h.config.Itinerary.ExchangeRate
		currency = h.config.Itinerary.Currency
		display = h.config.Itinerary.DisplayCurrency
	}

	derived := h.derived.Get(it)
	resp := dto.ItineraryResponse{
		UserID:       it.UserID.String(),
		Version:      it.Version,
		Dirty:        dirty,
		Destinations: it.Destinations,
		Derived:      derived,
		Days:         itinerary.GroupByDate(it.Destinations),
		Budget: dto.BudgetSummary{
			Total:           derived.TotalBudget,
			Currency:        currency,
			Converted:       itinerary.ConvertBudget(derived.TotalBudget, rate),
			DisplayCurrency: display,
			ExchangeRate:    rate,
			ByDate:          itinerary.BudgetByDate(it.Destinations),
		},
	}
	if resp.Destinations == nil {
		resp.Destinations = []models.Destination{}
	}
	if !it.UpdatedAt.IsZero() {
		resp.UpdatedAt = utils.FormatTimestamp(it.UpdatedAt)
	}
	return resp
}

func writeMutationError(w http.ResponseWriter, err error) {
	var verr *itinerary.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:   "Validation error",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	case errors.Is(err, itinerary.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

func criteriaFromQuery(r *http.Request) (itinerary.Criteria, error) {
	q := r.URL.Query()
	return utils.ParseCriteria(q.Get("search"), q.Get("type"), q["date"], q.Get("sort"))
}
