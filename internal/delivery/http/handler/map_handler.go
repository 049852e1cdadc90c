package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/pkg/errors"
	"github.com/pharmafinder-client/internal/pkg/utils"
	"github.com/pharmafinder-client/internal/usecase"
)

// MapHandler - данные для страницы карты и tier-листа
type MapHandler struct {
	pharmacyUC *usecase.PharmacyUseCase
	ratingUC   *usecase.RatingUseCase
	logger     *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(pharmacyUC *usecase.PharmacyUseCase, ratingUC *usecase.RatingUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		pharmacyUC: pharmacyUC,
		ratingUC:   ratingUC,
		logger:     logger,
	}
}

// GetMapPage godoc
// @Summary Аптеки для карты
// @Description Возвращает аптеки в видимой области карты. Без sw/ne возвращаются все аптеки. При недоступности API возвращается пустой список.
// @Tags Pages
// @Produce json
// @Param sw query string false "Юго-западный угол 'lat,lng'"
// @Param ne query string false "Северо-восточный угол 'lat,lng'"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PharmacyInfo}
// @Failure 400 {object} utils.ErrorResponse
// @Router /pages/map [get]
func (h *MapHandler) GetMapPage(c *fiber.Ctx) error {
	bounds, err := utils.ParseBounds(c.Query("sw"), c.Query("ne"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	pharmacies := h.pharmacyUC.ListPharmacies(c.UserContext(), bounds)

	return utils.SendSuccess(c, pharmacies, &utils.Meta{
		Total: len(pharmacies),
	})
}

// GetTierList godoc
// @Summary Tier-лист аптек
// @Description Возвращает агрегированные оценки аптек в области. Без sw/ne используется весь земной шар.
// @Tags Pages
// @Produce json
// @Param sw query string false "Юго-западный угол 'lat,lng'"
// @Param ne query string false "Северо-восточный угол 'lat,lng'"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PharmacyTierRating}
// @Failure 400 {object} utils.ErrorResponse
// @Router /pages/tier-list [get]
func (h *MapHandler) GetTierList(c *fiber.Ctx) error {
	bounds, err := utils.ParseBounds(c.Query("sw"), c.Query("ne"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	var tiers []domain.PharmacyTierRating
	if bounds != nil {
		tiers = h.ratingUC.LoadTierRatings(c.UserContext(), &bounds.SW, &bounds.NE)
	} else {
		tiers = h.ratingUC.LoadTierRatings(c.UserContext(), nil, nil)
	}

	return utils.SendSuccess(c, tiers, &utils.Meta{
		Total: len(tiers),
	})
}
