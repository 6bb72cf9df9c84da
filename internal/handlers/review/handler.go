package review

import (
	"homestay/infras/otel"
	"homestay/internal/backoffice"
	"homestay/internal/domains/review/model"
	"homestay/internal/domains/review/model/dto"
	"homestay/internal/domains/review/service"
	"homestay/internal/form"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	"homestay/shared/validator"
	"homestay/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	queryParamRating = "rating"
	queryParamSort   = "sort"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/approved", handler.GetApprovedReviews)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Get("/{id}", handler.GetReviewByID)
		routerGroup.Put("/{id}", handler.UpdateReview)
		routerGroup.Patch("/{id}/approve", handler.ApproveReview)
		routerGroup.Patch("/{id}/reject", handler.RejectReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview submits the public testimonial form. Reviews are published after approval.
// @Summary Submit a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review form"
// @Success 201 {object} response.Data[model.Review]
// @Failure 422 {object} response.Error
// @Router /v1/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	var req dto.CreateReviewRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reviewForm := form.NewReviewForm()
	reviewForm.LoadRequest(req)

	if err := reviewForm.Err(); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Create(ctx, reviewForm.ToCreateRequest())
	if !res.Success {
		logger.FromContext(ctx).Error().Err(res.Err()).Msg("failed to submit review")
	}

	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusCreated, res)
}

// GetApprovedReviews lists published reviews, newest first unless sort=rating.
// @Summary List approved reviews
// @Tags Review
// @Produce json
// @Param sort query string false "recent or rating"
// @Success 200 {object} response.Data[[]model.Review]
// @Router /v1/reviews/approved [get]
func (handler *Handler) GetApprovedReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	res := handler.service.GetApproved(ctx, queryParams.ListParams)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	sortBy := r.URL.Query().Get(queryParamSort)
	if sortBy == "" {
		sortBy = model.SortRecent
	}

	response.WithJSON(w, http.StatusOK, model.Sort(res.Data, sortBy))
}

// ReviewsResponse carries the moderation list with its average rating.
type ReviewsResponse struct {
	Reviews       []model.Review `json:"reviews"`
	AverageRating float64        `json:"averageRating"`
}

// GetReviews
// @Summary List reviews for moderation
// @Tags Review
// @Produce json
// @Param status query string false "pending, approved, published, rejected or all"
// @Param rating query int false "Exact star rating"
// @Param search query string false "Matches name, location or text"
// @Success 200 {object} response.Data[ReviewsResponse]
// @Router /v1/admin/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res := handler.service.GetAll(ctx, queryParams.ListParams)
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	reviews := backoffice.Search(res.Data, queryParams.Search, backoffice.ReviewFields)

	rating, _ := strconv.Atoi(r.URL.Query().Get(queryParamRating))
	if keep := backoffice.RatingFilter(rating); keep != nil {
		filtered := make([]model.Review, 0, len(reviews))

		for _, review := range reviews {
			if keep(review) {
				filtered = append(filtered, review)
			}
		}

		reviews = filtered
	}

	response.WithJSON(w, http.StatusOK, ReviewsResponse{
		Reviews:       reviews,
		AverageRating: model.AverageRating(res.Data),
	})
}

func (handler *Handler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByID")
	defer scope.End()

	res := handler.service.GetByID(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	var req dto.UpdateReviewRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// ApproveReview
// @Summary Approve a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Data[model.Review]
// @Router /v1/admin/reviews/{id}/approve [patch]
func (handler *Handler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReview")
	defer scope.End()

	res := handler.service.Approve(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

// RejectReview
// @Summary Reject a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Data[model.Review]
// @Router /v1/admin/reviews/{id}/reject [patch]
func (handler *Handler) RejectReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectReview")
	defer scope.End()

	res := handler.service.Reject(ctx, chi.URLParam(r, constant.RequestParamID))
	scope.TraceIfError(res.Err())

	response.WithResult(w, http.StatusOK, res)
}

func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	res := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if !res.Success {
		scope.TraceError(res.Err())
		response.WithError(w, res.Err())

		return
	}

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
