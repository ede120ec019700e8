package round

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "wordle_backend/internal/api/dto/round"
	"wordle_backend/internal/config"
	"wordle_backend/internal/converter"
	"wordle_backend/internal/game"
	"wordle_backend/internal/service"
	roundserv "wordle_backend/internal/service/round"
	"wordle_backend/pkg/req"
	"wordle_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv     service.RoundService
	RoundCfg config.RoundConfig
}

type Handler struct {
	serv     service.RoundService
	roundCfg config.RoundConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:     deps.Serv,
		roundCfg: deps.RoundCfg,
	}
}

// Start принимает ставку и начинает раунд
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.StartRound(r.Context(), payload.PlayerKey, payload.Bet)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStartResponse(*result))
}

// Guess принимает догадку и возвращает оценку букв
func (h *Handler) Guess(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GuessRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.MakeGuess(r.Context(), payload.PlayerKey, payload.Word)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGuessResponse(*result))
}

// PowerUp покупает пауэрап; цена берётся из конфигурации сервера,
// клиентской цене веры нет
func (h *Handler) PowerUp(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PowerUpRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	cost, ok := h.roundCfg.PowerUpCosts()[payload.Type]
	if !ok {
		resp.WriteProblem(w, http.StatusBadRequest, "unknown power-up type")
		return
	}

	result, err := h.serv.PurchasePowerUp(
		r.Context(),
		payload.PlayerKey,
		game.PowerUpType(payload.Type),
		cost,
		payload.Input,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPowerUpResponse(*result))
}

// Finalize рассчитывает завершённый раунд с кошельком
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.FinalizeRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.FinalizeRound(r.Context(), payload.PlayerKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFinalizeResponse(*result))
}

// Balance проксирует баланс игрока из кошелькового API
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	playerKey := chi.URLParam(r, "playerKey")

	balance, err := h.serv.Balance(r.Context(), playerKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// writeServiceError Переводит ошибки оркестратора в HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roundserv.ErrRoundInProgress),
		errors.Is(err, roundserv.ErrRoundStillActive),
		errors.Is(err, roundserv.ErrAlreadySettled):
		resp.WriteProblem(w, http.StatusConflict, err.Error())
	case errors.Is(err, roundserv.ErrNoActiveRound):
		resp.WriteProblem(w, http.StatusNotFound, err.Error())
	case errors.Is(err, roundserv.ErrUnknownPowerUp),
		errors.Is(err, roundserv.ErrPowerUpAlreadyUsed),
		errors.Is(err, game.ErrInvalidWord),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrBetOutOfRange):
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
	default:
		resp.WriteProblem(w, http.StatusInternalServerError, err.Error())
	}
}
