package app

import (
	"context"
	"net/http"

	authAPI "slot_reel/internal/api/auth"
	reelAPI "slot_reel/internal/api/reel"
	"slot_reel/internal/config"
	"slot_reel/internal/config/env"
	"slot_reel/internal/metrics"
	"slot_reel/internal/middleware"
	"slot_reel/internal/repository"
	"slot_reel/internal/repository/sequence_repo"
	"slot_reel/internal/repository/spin_repo"
	"slot_reel/internal/repository/user_repo"
	"slot_reel/internal/service"
	"slot_reel/internal/service/auth"
	"slot_reel/internal/service/reel"
	"slot_reel/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logging and metrics
	logCfg  config.LogConfig
	log     *zap.Logger
	metrics *metrics.Prometheus

	// Auth bits
	jwtCfg   config.JWTConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Reel bits
	gameCfg  config.GameConfig
	spinRepo repository.SpinRepository
	seqRepo  repository.SequenceRepository
	reelServ service.ReelService
	reelHand *reelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(logger.Config{
			Level:   sp.LogCfg().Level(),
			App:     "slot_server",
			Dir:     sp.LogCfg().Dir(),
			Console: true,
		})
	}
	return sp.log
}

func (sp *ServiceProvider) Metrics() *metrics.Prometheus {
	if sp.metrics == nil {
		sp.metrics = metrics.NewPrometheus()
	}
	return sp.metrics
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

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SpinRepo(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx))
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) SequenceRepo(ctx context.Context) repository.SequenceRepository {
	if sp.seqRepo == nil {
		sp.seqRepo = sequence_repo.NewSequenceRepository(sp.DBClient(ctx))
	}
	return sp.seqRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.GameCfg(),
			sp.JWTCfg(),
			sp.UserRepo(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) ReelService(ctx context.Context) service.ReelService {
	if sp.reelServ == nil {
		sp.reelServ = reel.NewReelService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.SpinRepo(ctx),
			sp.SequenceRepo(ctx),
			sp.TXManager(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.reelServ
}

func (sp *ServiceProvider) ReelHandler(ctx context.Context) *reelAPI.Handler {
	if sp.reelHand == nil {
		sp.reelHand = reelAPI.NewHandler(reelAPI.HandlerDeps{
			Serv: sp.ReelService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.reelHand
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

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Post("/auth/guest", authHandler.Guest)

		// Reel endpoints
		reelHandler := sp.ReelHandler(ctx)
		r.Route("/reel", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
			rr.Get("/sequence", reelHandler.Sequence)
			rr.Get("/balance", reelHandler.Balance)
			rr.Post("/spin", reelHandler.ConfirmSpin)
			rr.Post("/win", reelHandler.ReportWin)
		})

		r.Method(http.MethodGet, "/metrics", sp.Metrics().Handler())

		sp.router = r
	}

	return sp.router
}
