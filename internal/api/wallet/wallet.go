package wallet

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "wordle_backend/internal/api/dto/wallet"
	"wordle_backend/internal/model"
	"wordle_backend/internal/repository/wallet_repo"
	"wordle_backend/internal/service"
	walletserv "wordle_backend/internal/service/wallet"
	"wordle_backend/pkg/req"
	"wordle_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv    service.WalletService
	GameKey string
}

type Handler struct {
	serv    service.WalletService
	gameKey string
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:    deps.Serv,
		gameKey: deps.GameKey,
	}
}

// GetPortefeuille отдаёт баланс кошелька по категории и ключу
func (h *Handler) GetPortefeuille(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	key := chi.URLParam(r, "key")

	if category != model.WalletCategoryUser && category != model.WalletCategoryGame {
		resp.WriteProblem(w, http.StatusBadRequest, "unknown wallet category")
		return
	}

	balance, err := h.serv.Balance(r.Context(), category, key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.PortefeuilleResponse{Portefeuille: balance})
}

// EchangerArgent переводит деньги между кошельком игрока и кошельком
// игры, указанной ключом в URL
func (h *Handler) EchangerArgent(w http.ResponseWriter, r *http.Request) {
	gameKey := chi.URLParam(r, "gameKey")
	if gameKey != h.gameKey {
		resp.WriteProblem(w, http.StatusForbidden, "unknown game key")
		return
	}

	payload, err := req.Decode[dto.ExchangeRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.serv.Exchange(r.Context(), gameKey, model.Exchange{
		Source:      payload.Source,
		Destination: payload.Destination,
		Amount:      payload.Montant,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ExchangeResponse{Message: message})
}

// Deposit пополняет кошелёк, служебная ручка для разработки
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.WalletKey, payload.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositResponse{Balance: balance})
}

// writeServiceError Переводит ошибки кошелькового сервиса в HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wallet_repo.ErrWalletNotFound):
		resp.WriteProblem(w, http.StatusNotFound, err.Error())
	case errors.Is(err, walletserv.ErrInvalidAmount),
		errors.Is(err, walletserv.ErrGameKeyNotInvolved):
		resp.WriteProblem(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletserv.ErrInsufficientFunds):
		resp.WriteProblem(w, http.StatusConflict, err.Error())
	default:
		resp.WriteProblem(w, http.StatusInternalServerError, err.Error())
	}
}
