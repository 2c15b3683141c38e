package activity

import (
	"net/http"
	"manzil/infras/otel"
	"manzil/internal/domains/activity/model"
	"manzil/internal/domains/activity/service"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/activities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetActivities)
	})
}

// GetActivities retrieves the audit trail for the back office.
// @Summary Get activity log entries
// @Description Retrieve recorded activity log entries with optional filtering and pagination.
// @Tags Activity
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by acting user ID"
// @Param entity query string false "Filter by entity name"
// @Param action query string false "Filter by action name"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse] "List of activity entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities [get]
// @Security BearerAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if r.URL.Query().Get(constant.RequestParamLimit) == "" {
		queryParams.Limit = constant.DefaultValueActivityLimit
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID := r.URL.Query().Get(constant.RequestParamUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if entity := r.URL.Query().Get(model.FieldEntity); entity != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntity,
			Operator: gDto.FilterOperatorEq,
			Value:    entity,
			Table:    model.TableName,
		})
	}

	if action := r.URL.Query().Get(model.FieldAction); action != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    action,
			Table:    model.TableName,
		})
	}

	activities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Activities retrieved successfully")

	response.WithJSON(w, http.StatusOK, activities)
}
