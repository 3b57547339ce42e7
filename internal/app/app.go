package app

import (
	"fmt"

	"ats-api/config"
	"ats-api/internal/api/handlers"
	"ats-api/internal/auth"
	"ats-api/internal/services"
	"ats-api/internal/storage"
	"ats-api/internal/storage/postgres"
	"ats-api/internal/storage/redisstore"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil when caching is disabled
	Validator   *validator.Validate
	Tokens      *auth.TokenManager

	UserService        services.UserService
	JobService         services.JobService
	ApplicationService services.ApplicationService
	ResumeService      services.ResumeService

	// Readiness lists the dependencies checked by /ready.
	Readiness map[string]storage.Pinger
}

// New wires repositories and services on top of the given connections.
// redisClient may be nil.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) (*Application, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.PreviousSecrets, cfg.JWT.Expiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	userRepo := postgres.NewUserRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)
	jobCache := redisstore.NewJobListCache(redisClient, cfg.Redis.JobListTTL)

	readiness := map[string]storage.Pinger{"postgres": pool}
	if redisClient != nil {
		readiness["redis"] = jobCache
	}

	return &Application{
		Config:             cfg,
		DBPool:             pool,
		RedisClient:        redisClient,
		Validator:          handlers.NewValidator(),
		Tokens:             tokens,
		UserService:        services.NewUserService(userRepo, tokens, pool),
		JobService:         services.NewJobService(jobRepo, jobCache),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo, jobCache),
		ResumeService:      services.NewResumeService(),
		Readiness:          readiness,
	}, nil
}
