package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"wordle_backend/internal/model"
	"wordle_backend/internal/repository/wallet_repo"
	walletserv "wordle_backend/internal/service/wallet"
)

type stubWalletService struct {
	balance float64
	message string
	err     error

	gotExchange model.Exchange
}

func (s *stubWalletService) Balance(_ context.Context, _, _ string) (float64, error) {
	return s.balance, s.err
}

func (s *stubWalletService) Deposit(_ context.Context, _ string, amount float64) (float64, error) {
	return s.balance + amount, s.err
}

func (s *stubWalletService) Exchange(_ context.Context, _ string, ex model.Exchange) (string, error) {
	s.gotExchange = ex
	return s.message, s.err
}

func newTestRouter(serv *stubWalletService) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv, GameKey: "GAME_KEY"})

	r := chi.NewRouter()
	r.Get("/portefeuille/{category}/{key}", h.GetPortefeuille)
	r.Post("/echangerArgent/{gameKey}", h.EchangerArgent)
	r.Post("/deposit", h.Deposit)
	return r
}

func TestGetPortefeuille(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := newTestRouter(&stubWalletService{balance: 777})

		req := httptest.NewRequest(http.MethodGet, "/portefeuille/utilisateur/p", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}

		var body map[string]float64
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["portefeuille"] != 777 {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		r := newTestRouter(&stubWalletService{})

		req := httptest.NewRequest(http.MethodGet, "/portefeuille/banque/p", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("wallet not found", func(t *testing.T) {
		r := newTestRouter(&stubWalletService{err: wallet_repo.ErrWalletNotFound})

		req := httptest.NewRequest(http.MethodGet, "/portefeuille/utilisateur/ghost", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}

		// Тело ошибки в форме title/status/detail
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["detail"] == "" || body["status"] != float64(http.StatusNotFound) {
			t.Errorf("problem body = %v", body)
		}
	})
}

func TestEchangerArgent(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		serv := &stubWalletService{message: "Transaction approved"}
		r := newTestRouter(serv)

		req := httptest.NewRequest(http.MethodPost, "/echangerArgent/GAME_KEY",
			strings.NewReader(`{"source":"p","destination":"GAME_KEY","montant":25}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if serv.gotExchange.Amount != 25 || serv.gotExchange.Destination != "GAME_KEY" {
			t.Errorf("exchange = %+v", serv.gotExchange)
		}
	})

	t.Run("wrong game key", func(t *testing.T) {
		r := newTestRouter(&stubWalletService{})

		req := httptest.NewRequest(http.MethodPost, "/echangerArgent/OTHER",
			strings.NewReader(`{"source":"p","destination":"OTHER","montant":25}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("insufficient funds", func(t *testing.T) {
		r := newTestRouter(&stubWalletService{err: walletserv.ErrInsufficientFunds})

		req := httptest.NewRequest(http.MethodPost, "/echangerArgent/GAME_KEY",
			strings.NewReader(`{"source":"p","destination":"GAME_KEY","montant":9999}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}
