// internal/app/app.go
package app

import (
	"fmt"

	"placement-portal/config"
	"placement-portal/internal/crypto"
	"placement-portal/internal/objectstore"
	"placement-portal/internal/services"
	"placement-portal/internal/storage"
	"placement-portal/internal/storage/postgres"
	"placement-portal/internal/storage/redisrepo"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	TokenStore storage.TokenStore

	UserService        services.UserService
	ProfileService     services.ProfileService
	DocumentService    services.DocumentService
	JobService         services.JobService
	ApplicationService services.ApplicationService
	MessageService     services.MessageService
}

// New wires repositories and services into an Application container.
func New(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) (*Application, error) {
	userRepo := postgres.NewUserRepo(dbPool)
	studentRepo := postgres.NewStudentProfileRepo(dbPool)
	recruiterRepo := postgres.NewRecruiterProfileRepo(dbPool)
	documentRepo := postgres.NewDocumentRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)
	messageRepo := postgres.NewMessageRepo(dbPool)

	tokenStore := redisrepo.NewTokenStore(redisClient)

	store, err := objectstore.NewCloudinaryStore(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	messageCipher, err := crypto.NewMessageCipher(cfg.Messaging.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize message cipher: %w", err)
	}

	return &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
		TokenStore:  tokenStore,

		UserService:     services.NewUserService(userRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.Expiration),
		ProfileService:  services.NewProfileService(studentRepo, recruiterRepo),
		DocumentService: services.NewDocumentService(documentRepo, studentRepo, recruiterRepo, store, dbPool),
		JobService:      services.NewJobService(jobRepo, recruiterRepo, documentRepo),
		ApplicationService: services.NewApplicationService(
			applicationRepo, jobRepo, studentRepo, recruiterRepo, documentRepo),
		MessageService: services.NewMessageService(
			messageRepo, applicationRepo, jobRepo, studentRepo, recruiterRepo, userRepo, messageCipher),
	}, nil
}
