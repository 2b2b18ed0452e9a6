package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/pkg/utils"
	"github.com/route-weather-service/internal/usecase/dto"
)

type AddressSuggester interface {
	Suggest(ctx context.Context, query, clientIP string) ([]domain.Suggestion, error)
}

// AutocompleteHandler - подсказки адресов
type AutocompleteHandler struct {
	suggester AddressSuggester
	logger    *zap.Logger
}

func NewAutocompleteHandler(suggester AddressSuggester, logger *zap.Logger) *AutocompleteHandler {
	return &AutocompleteHandler{
		suggester: suggester,
		logger:    logger,
	}
}

// Suggest godoc
// @Summary Автодополнение адреса
// @Description Подсказки адресов; запросы короче 3 символов возвращают пустой список. Выдача смещается к положению клиента по IP.
// @Tags Route
// @Produce json
// @Param q query string true "Начало адреса"
// @Success 200 {object} utils.SuccessResponse{data=dto.AutocompleteResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/autocomplete [get]
func (h *AutocompleteHandler) Suggest(c *fiber.Ctx) error {
	suggestions, err := h.suggester.Suggest(c.UserContext(), c.Query("q"), c.IP())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.AutocompleteResponse{Suggestions: suggestions}, &utils.Meta{
		Total: len(suggestions),
	})
}
