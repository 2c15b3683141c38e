package contact

import (
	"net/http"
	"manzil/infras/otel"
	"manzil/internal/domains/contact/model/dto"
	"manzil/internal/domains/contact/service"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/validator"
	"manzil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMessage)
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})

	router.Route("/newsletter", func(routerGroup chi.Router) {
		routerGroup.Post("/subscribe", handler.Subscribe)
		routerGroup.Post("/unsubscribe", handler.Unsubscribe)
		routerGroup.Get("/", handler.GetSubscriptions)
	})
}

// CreateMessage stores a contact form submission.
// @Summary Submit a contact message
// @Description Store a message submitted through the public contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Contact Message Request"
// @Success 201 {object} response.Message "Message submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateContactMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateMessage(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message submitted successfully")

	response.WithMessage(w, http.StatusCreated, "Message submitted successfully")
}

// GetMessages retrieves contact messages for the back office.
// @Summary Get contact messages
// @Description Retrieve submitted contact messages with pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetContactMessagesResponse] "List of contact messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	messages, err := handler.service.GetMessages(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// DeleteMessage deletes a contact message by its ID.
// @Summary Delete a contact message
// @Description Delete a contact message using its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMessage(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact message deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}

// Subscribe adds an email address to the newsletter list.
// @Summary Subscribe to the newsletter
// @Description Add an email address to the newsletter subscription list.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeNewsletterRequest true "Subscribe Request"
// @Success 201 {object} response.Message "Subscribed successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Email is already subscribed"
// @Failure 500 {object} response.Error
// @Router /v1/newsletter/subscribe [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeNewsletterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Subscribe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe to newsletter")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Newsletter subscription created successfully")

	response.WithMessage(w, http.StatusCreated, "Subscribed successfully")
}

// Unsubscribe removes an email address from the newsletter list.
// @Summary Unsubscribe from the newsletter
// @Description Remove an email address from the newsletter subscription list.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeNewsletterRequest true "Unsubscribe Request"
// @Success 200 {object} response.Message "Unsubscribed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Subscription not found"
// @Failure 500 {object} response.Error
// @Router /v1/newsletter/unsubscribe [post]
func (handler *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unsubscribe")
	defer scope.End()

	req := dto.SubscribeNewsletterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Unsubscribe(ctx, req.Email); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unsubscribe from newsletter")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Newsletter subscription removed successfully")

	response.WithMessage(w, http.StatusOK, "Unsubscribed successfully")
}

// GetSubscriptions retrieves newsletter subscriptions for the back office.
// @Summary Get newsletter subscriptions
// @Description Retrieve newsletter subscriptions with pagination.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetNewsletterSubscriptionsResponse] "List of subscriptions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/newsletter [get]
// @Security BearerAuth
func (handler *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	subscriptions, err := handler.service.GetSubscriptions(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get newsletter subscriptions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Newsletter subscriptions retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscriptions)
}
