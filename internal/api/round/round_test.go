package round

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	dto "wordle_backend/internal/api/dto/round"
	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
	roundserv "wordle_backend/internal/service/round"
)

type stubRoundConfig struct{}

func (c *stubRoundConfig) MinBet() float64                        { return 10 }
func (c *stubRoundConfig) MaxBet() float64                        { return 50 }
func (c *stubRoundConfig) AttemptLimit() int                      { return 4 }
func (c *stubRoundConfig) PayoutMultipliers() map[int]float64     { return map[int]float64{1: 25} }
func (c *stubRoundConfig) PowerUpCosts() map[string]float64       { return map[string]float64{"scanner": 40} }
func (c *stubRoundConfig) FirstGuessDiscounts() map[string]float64 { return map[string]float64{"scanner": 7} }

// stubRoundService Возвращает заранее заданные результаты и ошибки
type stubRoundService struct {
	startRes    *model.RoundStartResult
	guessRes    *model.GuessResult
	powerUpRes  *model.PowerUpResult
	finalizeRes *model.FinalizeResult
	balance     float64
	err         error

	gotCost float64
}

func (s *stubRoundService) StartRound(_ context.Context, _ string, _ float64) (*model.RoundStartResult, error) {
	return s.startRes, s.err
}

func (s *stubRoundService) MakeGuess(_ context.Context, _, _ string) (*model.GuessResult, error) {
	return s.guessRes, s.err
}

func (s *stubRoundService) PurchasePowerUp(_ context.Context, _ string, _ game.PowerUpType, cost float64, _ string) (*model.PowerUpResult, error) {
	s.gotCost = cost
	return s.powerUpRes, s.err
}

func (s *stubRoundService) FinalizeRound(_ context.Context, _ string) (*model.FinalizeResult, error) {
	return s.finalizeRes, s.err
}

func (s *stubRoundService) Balance(_ context.Context, _ string) (float64, error) {
	return s.balance, s.err
}

func newTestRouter(serv *stubRoundService) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv, RoundCfg: &stubRoundConfig{}})

	r := chi.NewRouter()
	r.Post("/round/start", h.Start)
	r.Post("/round/guess", h.Guess)
	r.Post("/round/power-up", h.PowerUp)
	r.Post("/round/finalize", h.Finalize)
	r.Get("/round/balance/{playerKey}", h.Balance)
	return r
}

func TestStartHandler(t *testing.T) {
	serv := &stubRoundService{
		startRes: &model.RoundStartResult{Accepted: true, MaxAttempts: 4},
	}
	r := newTestRouter(serv)

	req := httptest.NewRequest(http.MethodPost, "/round/start", strings.NewReader(`{"player_key":"p","bet":10}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body dto.StartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Accepted || body.MaxAttempts != 4 {
		t.Fatalf("body = %+v", body)
	}
}

func TestStartHandlerBadJSON(t *testing.T) {
	r := newTestRouter(&stubRoundService{})

	req := httptest.NewRequest(http.MethodPost, "/round/start", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPowerUpHandlerUsesServerPrice(t *testing.T) {
	serv := &stubRoundService{
		powerUpRes: &model.PowerUpResult{Success: true, Type: game.PowerUpScanner, Info: "E is present."},
	}
	r := newTestRouter(serv)

	// Цена в запросе не передаётся: её знает только сервер
	req := httptest.NewRequest(http.MethodPost, "/round/power-up",
		strings.NewReader(`{"player_key":"p","type":"scanner","input":"e"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if serv.gotCost != 40 {
		t.Errorf("cost = %v, expected configured 40", serv.gotCost)
	}
}

func TestPowerUpHandlerUnknownType(t *testing.T) {
	r := newTestRouter(&stubRoundService{})

	req := httptest.NewRequest(http.MethodPost, "/round/power-up",
		strings.NewReader(`{"player_key":"p","type":"teleport"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"round in progress", roundserv.ErrRoundInProgress, http.StatusConflict},
		{"already settled", roundserv.ErrAlreadySettled, http.StatusConflict},
		{"no active round", roundserv.ErrNoActiveRound, http.StatusNotFound},
		{"invalid word", game.ErrInvalidWord, http.StatusBadRequest},
		{"other", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubRoundService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/round/guess",
				strings.NewReader(`{"player_key":"p","word":"apple"}`))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status = %d, expected %d", rec.Code, tc.want)
			}
		})
	}
}

func TestBalanceHandler(t *testing.T) {
	r := newTestRouter(&stubRoundService{balance: 123.5})

	req := httptest.NewRequest(http.MethodGet, "/round/balance/p", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Balance != 123.5 {
		t.Errorf("balance = %v", body.Balance)
	}
}
