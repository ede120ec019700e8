package app

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	roundAPI "wordle_backend/internal/api/round"
	"wordle_backend/internal/client/wallet"
	"wordle_backend/internal/config"
	"wordle_backend/internal/config/env"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/repository/round_repo"
	"wordle_backend/internal/service"
	"wordle_backend/internal/service/round"
	"wordle_backend/internal/words"
)

type ServiceProvider struct {
	// Round bits
	roundCfg  config.RoundConfig
	roundRepo repository.RoundRepository
	roundServ service.RoundService
	roundHand *roundAPI.Handler

	// Wallet API client
	walletAPICfg config.WalletAPIConfig
	gateway      wallet.Gateway

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) RoundCfg() config.RoundConfig {
	if sp.roundCfg == nil {
		cfg, err := env.NewRoundConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get round config: " + err.Error())
		}

		sp.roundCfg = cfg
	}
	return sp.roundCfg
}

func (sp *ServiceProvider) WalletAPICfg() config.WalletAPIConfig {
	if sp.walletAPICfg == nil {
		cfg, err := env.NewWalletAPIConfig()
		if err != nil {
			panic("failed to get wallet api config: " + err.Error())
		}

		sp.walletAPICfg = cfg
	}
	return sp.walletAPICfg
}

func (sp *ServiceProvider) Gateway() wallet.Gateway {
	if sp.gateway == nil {
		sp.gateway = wallet.NewGateway(sp.WalletAPICfg())
	}
	return sp.gateway
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) RoundService() service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(
			sp.RoundCfg(),
			sp.RoundRepository(),
			sp.Gateway(),
			sp.WalletAPICfg().GameKey(),
			words.RandomWord,
		)
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RoundHandler() *roundAPI.Handler {
	if sp.roundHand == nil {
		sp.roundHand = roundAPI.NewHandler(roundAPI.HandlerDeps{
			Serv:     sp.RoundService(),
			RoundCfg: sp.RoundCfg(),
		})
	}
	return sp.roundHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Round endpoints
		roundHandler := sp.RoundHandler()
		r.Route("/round", func(rr chi.Router) {
			rr.Post("/start", roundHandler.Start)
			rr.Post("/guess", roundHandler.Guess)
			rr.Post("/power-up", roundHandler.PowerUp)
			rr.Post("/finalize", roundHandler.Finalize)
			rr.Get("/balance/{playerKey}", roundHandler.Balance)
		})

		sp.router = r
	}

	return sp.router
}
