package cmd

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/driverportal/portal-api/internal/core/service"
	mongodb "github.com/driverportal/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/driverportal/portal-api/internal/infrastructure/db/redis"
	"github.com/driverportal/portal-api/internal/infrastructure/security"
	"github.com/driverportal/portal-api/internal/pkg/config"
	"github.com/driverportal/portal-api/pkg/logger"
)

const serviceName = "portal-api"

// app holds the process-wide resources shared by the commands.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	db     *mongo.Database
	users  *mongodb.UserRepository
}

// newApp loads configuration, initialises logging and connects to MongoDB.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return nil, err
	}

	users := mongodb.NewUserRepository(db)
	if err := mongodb.EnsureIndexes(ctx,
		users,
		mongodb.NewCompanyRepository(db),
		mongodb.NewDriverRepository(db),
	); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	return &app{cfg: cfg, log: log, client: client, db: db, users: users}, nil
}

// authService builds the authentication service. A nil rdb disables login
// throttling.
func (a *app) authService(rdb goredis.Cmdable) *service.AuthService {
	codec := security.NewTokenCodec([]byte(a.cfg.Auth.JWTSecret), a.cfg.TokenTTL())
	hasher := security.NewPasswordHasher(a.cfg.Auth.BcryptCost)

	var opts []service.AuthOption
	if rdb != nil {
		opts = append(opts, service.WithLoginThrottle(
			redisdb.NewLoginThrottle(rdb, a.cfg.Auth.MaxFailures, a.cfg.Auth.Lockout),
		))
	}
	return service.NewAuthService(a.users, codec, hasher, logger.Component("auth"), opts...)
}

func (a *app) close(ctx context.Context) {
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongo disconnect")
	}
}
