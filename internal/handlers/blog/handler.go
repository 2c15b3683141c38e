package blog

import (
	"net/http"
	"manzil/infras/otel"
	"manzil/internal/domains/blog/model"
	"manzil/internal/domains/blog/model/dto"
	"manzil/internal/domains/blog/service"
	"manzil/shared"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/validator"
	"manzil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blogs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPublishedBlogs)
		routerGroup.Get("/all", handler.GetBlogs)
		routerGroup.Get("/slug/{slug}", handler.GetBlogBySlug)
		routerGroup.Get("/{id}", handler.GetBlogByID)
		routerGroup.Post("/", handler.CreateBlog)
		routerGroup.Patch("/{id}", handler.UpdateBlog)
		routerGroup.Delete("/{id}", handler.DeleteBlog)
	})
}

// GetPublishedBlogs lists published blog posts for the public site.
// @Summary Get published blogs
// @Description Retrieve published blog posts, optionally filtered by category.
// @Tags Blog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetBlogsResponse] "List of blogs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs [get]
func (handler *Handler) GetPublishedBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishedBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(constant.RequestParamCategory)

	blogs, err := handler.service.GetPublished(ctx, queryParams, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get published blogs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Published blogs retrieved successfully")

	response.WithJSON(w, http.StatusOK, blogs)
}

// GetBlogs retrieves all blog posts for the back office.
// @Summary Get all blogs
// @Description Retrieve all blog posts, published or not, with optional filtering and pagination.
// @Tags Blog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param published query bool false "Filter by published flag"
// @Success 200 {object} response.Data[dto.GetBlogsResponse] "List of blogs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/all [get]
// @Security BearerAuth
func (handler *Handler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	blogs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blogs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blogs retrieved successfully")

	response.WithJSON(w, http.StatusOK, blogs)
}

// GetBlogBySlug retrieves a published blog post by its slug.
// @Summary Get a blog by slug
// @Description Retrieve a published blog post by its URL slug.
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} response.Data[dto.BlogResponse] "Blog details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/slug/{slug} [get]
func (handler *Handler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogBySlug")
	defer scope.End()

	slug := chi.URLParam(r, "slug")

	blog, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog retrieved successfully")

	response.WithJSON(w, http.StatusOK, blog)
}

// GetBlogByID retrieves a blog post by its ID.
// @Summary Get a blog by ID
// @Description Retrieve a blog post by its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} response.Data[dto.BlogResponse] "Blog details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	blog, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog retrieved successfully")

	response.WithJSON(w, http.StatusOK, blog)
}

// CreateBlog handles the creation of a new blog post.
// @Summary Create a new blog
// @Description Create a new blog post with typed content blocks.
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Create Blog Request"
// @Success 201 {object} response.Message "Blog created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slug is already in use"
// @Failure 500 {object} response.Error
// @Router /v1/blogs [post]
// @Security BearerAuth
func (handler *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlog")
	defer scope.End()

	req := dto.CreateBlogRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Blog created successfully")
}

// UpdateBlog updates an existing blog post by its ID.
// @Summary Update a blog by ID
// @Description Update the details or content blocks of an existing blog post.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Update Blog Request"
// @Success 200 {object} response.Message "Blog updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBlogRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blog updated successfully")
}

// DeleteBlog deletes a blog post by its ID.
// @Summary Delete a blog by ID
// @Description Delete a blog post using its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} response.Message "Blog deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blog deleted successfully")
}
