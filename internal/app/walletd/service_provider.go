package walletd

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	authAPI "wordle_backend/internal/api/auth"
	walletAPI "wordle_backend/internal/api/wallet"
	"wordle_backend/internal/config"
	"wordle_backend/internal/config/env"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/repository/auth_repo"
	"wordle_backend/internal/repository/user_repo"
	"wordle_backend/internal/repository/wallet_repo"
	"wordle_backend/internal/service"
	"wordle_backend/internal/service/auth"
	"wordle_backend/internal/service/wallet"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Wallet bits
	walletdCfg   config.WalletdConfig
	walletAPICfg config.WalletAPIConfig
	walletRepo   repository.WalletRepository
	walletServ   service.WalletService
	walletHand   *walletAPI.Handler

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	userRepo  repository.UserRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) WalletdCfg() config.WalletdConfig {
	if sp.walletdCfg == nil {
		cfg, err := env.NewWalletdConfig()
		if err != nil {
			panic("failed to get walletd config: " + err.Error())
		}
		sp.walletdCfg = cfg
	}
	return sp.walletdCfg
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

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) WalletRepository(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.WalletRepository(ctx), sp.TXManager(ctx))
	}
	return sp.walletServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.WalletRepository(ctx),
			sp.JWTConfig(),
			sp.WalletdCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv:    sp.WalletService(ctx),
			GameKey: sp.WalletAPICfg().GameKey(),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewWalletdHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Get("/portefeuille/{category}/{key}", walletHandler.GetPortefeuille)
		r.Post("/echangerArgent/{gameKey}", walletHandler.EchangerArgent)
		r.Post("/deposit", walletHandler.Deposit)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		sp.router = r
	}

	return sp.router
}
