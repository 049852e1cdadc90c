package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/pkg/errors"
	"github.com/pharmafinder-client/internal/pkg/utils"
	"github.com/pharmafinder-client/internal/pkg/validator"
	"github.com/pharmafinder-client/internal/usecase"
	"github.com/pharmafinder-client/internal/usecase/dto"
)

// PharmacyHandler - данные страницы аптеки и операции с отзывами
type PharmacyHandler struct {
	pharmacyUC *usecase.PharmacyUseCase
	ratingUC   *usecase.RatingUseCase
	reviewUC   *usecase.ReviewUseCase
	logger     *zap.Logger
}

// NewPharmacyHandler - создание нового PharmacyHandler
func NewPharmacyHandler(
	pharmacyUC *usecase.PharmacyUseCase,
	ratingUC *usecase.RatingUseCase,
	reviewUC *usecase.ReviewUseCase,
	logger *zap.Logger,
) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUC: pharmacyUC,
		ratingUC:   ratingUC,
		reviewUC:   reviewUC,
		logger:     logger,
	}
}

// GetPharmacyPage godoc
// @Summary Страница аптеки
// @Description Карточка аптеки, агрегированные оценки и первая страница отзывов
// @Tags Pages
// @Produce json
// @Param id path int true "ID аптеки"
// @Success 200 {object} utils.SuccessResponse{data=dto.PharmacyPageResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /pages/pharmacies/{id} [get]
func (h *PharmacyHandler) GetPharmacyPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPharmacyID)
	}

	ctx := c.UserContext()
	reviews := h.reviewUC.LoadReviews(ctx, id, nil)

	return utils.SendSuccess(c, dto.PharmacyPageResponse{
		Pharmacy: h.pharmacyUC.GetPharmacy(ctx, id),
		Ratings:  h.ratingUC.LoadRatings(ctx, id),
		Reviews:  reviews,
		Next:     dto.NextCursor(reviews),
	}, nil)
}

// GetReviews godoc
// @Summary Страница отзывов
// @Description Следующая страница отзывов после курсора (k = updatedAt, uk = id последнего отзыва)
// @Tags Pages
// @Produce json
// @Param id path int true "ID аптеки"
// @Param k query int false "updatedAt последнего отзыва (unix ms)"
// @Param uk query int false "ID последнего отзыва"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PharmacyReview}
// @Failure 400 {object} utils.ErrorResponse
// @Router /pages/pharmacies/{id}/reviews [get]
func (h *PharmacyHandler) GetReviews(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPharmacyID)
	}

	cursor, err := parseCursor(c.Query("k"), c.Query("uk"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCursor)
	}

	reviews := h.reviewUC.LoadReviews(c.UserContext(), id, cursor)

	return utils.SendSuccess(c, reviews, &utils.Meta{
		Total: len(reviews),
		Limit: domain.PagerLimit,
		Next:  dto.NextCursor(reviews),
	})
}

// CreateReview godoc
// @Summary Создать отзыв
// @Tags Pages
// @Accept json
// @Produce json
// @Param id path int true "ID аптеки"
// @Param request body dto.ReviewRequest true "Отзыв"
// @Success 201 {object} utils.SuccessResponse{data=domain.PharmacyReview}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /pages/pharmacies/{id}/reviews [post]
func (h *PharmacyHandler) CreateReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPharmacyID)
	}

	req, err := parseReviewRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	created, err := h.reviewUC.CreateReview(c.UserContext(), id, req.ToDomain(nil))
	if err != nil {
		return utils.SendError(c, err)
	}
	if created.ID == nil {
		return utils.SendError(c, errors.ErrReviewNotSaved)
	}

	return utils.SendCreated(c, created)
}

// UpdateReview godoc
// @Summary Изменить отзыв
// @Tags Pages
// @Accept json
// @Produce json
// @Param id path int true "ID аптеки"
// @Param reviewId path int true "ID отзыва"
// @Param request body dto.ReviewRequest true "Отзыв с кодом модификации"
// @Success 200 {object} utils.SuccessResponse{data=domain.PharmacyReview}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /pages/pharmacies/{id}/reviews/{reviewId} [patch]
func (h *PharmacyHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPharmacyID)
	}
	reviewID, err := parseID(c, "reviewId")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidReviewID)
	}

	req, err := parseReviewRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	updated, err := h.reviewUC.UpdateReview(c.UserContext(), id, req.ToDomain(&reviewID))
	if err != nil {
		return utils.SendError(c, err)
	}
	if updated.ID == nil {
		return utils.SendError(c, errors.ErrReviewNotSaved)
	}

	return utils.SendSuccess(c, updated, nil)
}

// DeleteReview godoc
// @Summary Удалить отзыв
// @Description Код модификации передается в заголовке Authorization: Bearer <modCode>
// @Tags Pages
// @Produce json
// @Param id path int true "ID аптеки"
// @Param reviewId path int true "ID отзыва"
// @Success 200 {object} utils.SuccessResponse{data=domain.PharmacyReview}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /pages/pharmacies/{id}/reviews/{reviewId} [delete]
func (h *PharmacyHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPharmacyID)
	}
	reviewID, err := parseID(c, "reviewId")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidReviewID)
	}

	modCode := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer"))
	if modCode == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "modification code required",
		}))
	}

	deleted := h.reviewUC.DeleteReview(c.UserContext(), id, reviewID, modCode)
	if deleted.ID == nil {
		return utils.SendError(c, errors.ErrReviewNotSaved)
	}

	return utils.SendSuccess(c, deleted, nil)
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// parseCursor требует оба значения или ни одного
func parseCursor(k, uk string) (*domain.ReviewCursor, error) {
	if k == "" && uk == "" {
		return nil, nil
	}
	if k == "" || uk == "" {
		return nil, errors.ErrInvalidCursor
	}

	key, err := strconv.ParseInt(k, 10, 64)
	if err != nil {
		return nil, err
	}
	uniqueKey, err := strconv.ParseInt(uk, 10, 64)
	if err != nil {
		return nil, err
	}

	return &domain.ReviewCursor{Key: key, UniqueKey: uniqueKey}, nil
}

func parseReviewRequest(c *fiber.Ctx) (*dto.ReviewRequest, error) {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		})
	}

	if err := validator.ValidateApp(&req, errors.ErrInvalidReview); err != nil {
		return nil, err
	}

	return &req, nil
}
