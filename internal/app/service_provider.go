package app

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/clubhub/clubhub-api/internal/adapters/config"
	authHandler "github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/auth"
	clubHandler "github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/club"
	eventHandler "github.com/clubhub/clubhub-api/internal/adapters/primary/rest/handlers/event"
	"github.com/clubhub/clubhub-api/internal/adapters/secondary/postgres"
	"github.com/clubhub/clubhub-api/internal/adapters/secondary/redis"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/clubhub/clubhub-api/internal/domain/utils/clock"
	"github.com/clubhub/clubhub-api/internal/ports/primary"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db          *gorm.DB
	redisClient *redis.Client
	clock       clock.Clock

	// Storage layer
	userRepo        secondary.UserRepository
	clubRepo        secondary.ClubRepository
	clubMemberRepo  secondary.ClubMemberRepository
	eventRepo       secondary.EventRepository
	participantRepo secondary.EventParticipantRepository
	catalogRepo     secondary.CatalogRepository
	cascadeRepo     secondary.CascadeRepository

	// Service layer
	userService   primary.UserService
	clubService   primary.ClubService
	eventService  primary.EventService
	exportService primary.ExportService
	coordinator   *service.CascadeCoordinator

	// Handlers
	authHandler  *authHandler.Handler
	clubHandler  *clubHandler.Handler
	eventHandler *eventHandler.Handler
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg:   cfg,
		clock: clock.System(),
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		gormConfig := &gorm.Config{
			TranslateError: true,
		}
		if s.cfg.Logger.Debug() {
			gormConfig.Logger = gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
		}

		database, err := gorm.Open(postgresDriver.Open(s.cfg.PG.DSN()), gormConfig)
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}
		logger.Log.Info("Successfully connected to the database")

		sqlDB, err := database.DB()
		if err != nil {
			panic(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)

		if err := database.AutoMigrate(postgres.Migrations...); err != nil {
			panic(fmt.Errorf("failed to migrate database: %w", err))
		}
		if err := postgres.SeedCatalog(database); err != nil {
			panic(fmt.Errorf("failed to seed catalog tables: %w", err))
		}

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) RedisClient() *redis.Client {
	if s.redisClient == nil {
		r, err := redis.New(redis.Options{
			Host:     s.cfg.Redis.Host(),
			Port:     s.cfg.Redis.Port(),
			Password: s.cfg.Redis.Password(),
		})
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}

		s.redisClient = r
	}

	return s.redisClient
}

// Storage layer

func (s *serviceProvider) UserRepo() secondary.UserRepository {
	if s.userRepo == nil {
		s.userRepo = postgres.NewUserRepository(s.DB())
	}

	return s.userRepo
}

func (s *serviceProvider) ClubRepo() secondary.ClubRepository {
	if s.clubRepo == nil {
		s.clubRepo = postgres.NewClubRepository(s.DB())
	}

	return s.clubRepo
}

func (s *serviceProvider) ClubMemberRepo() secondary.ClubMemberRepository {
	if s.clubMemberRepo == nil {
		s.clubMemberRepo = postgres.NewClubMemberRepository(s.DB())
	}

	return s.clubMemberRepo
}

func (s *serviceProvider) EventRepo() secondary.EventRepository {
	if s.eventRepo == nil {
		s.eventRepo = postgres.NewEventRepository(s.DB())
	}

	return s.eventRepo
}

func (s *serviceProvider) ParticipantRepo() secondary.EventParticipantRepository {
	if s.participantRepo == nil {
		s.participantRepo = postgres.NewEventParticipantRepository(s.DB())
	}

	return s.participantRepo
}

func (s *serviceProvider) CatalogRepo() secondary.CatalogRepository {
	if s.catalogRepo == nil {
		s.catalogRepo = postgres.NewCatalogRepository(s.DB())
	}

	return s.catalogRepo
}

func (s *serviceProvider) CascadeRepo() secondary.CascadeRepository {
	if s.cascadeRepo == nil {
		s.cascadeRepo = postgres.NewCascadeRepository(s.DB())
	}

	return s.cascadeRepo
}

// Service layer

func (s *serviceProvider) Coordinator() *service.CascadeCoordinator {
	if s.coordinator == nil {
		s.coordinator = service.NewCascadeCoordinator(
			s.EventRepo(),
			s.ParticipantRepo(),
			s.clock,
		)
	}

	return s.coordinator
}

func (s *serviceProvider) UserService() primary.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(s.UserRepo())
	}

	return s.userService
}

func (s *serviceProvider) ClubService() primary.ClubService {
	if s.clubService == nil {
		clubLogger, err := logger.Named("club")
		if err != nil {
			panic(fmt.Errorf("failed to create club logger: %w", err))
		}

		s.clubService = service.NewClubService(
			clubLogger,
			s.ClubRepo(),
			s.ClubMemberRepo(),
			s.CascadeRepo(),
			s.Coordinator(),
			s.RedisClient().ClubDetails,
		)
	}

	return s.clubService
}

func (s *serviceProvider) EventService() primary.EventService {
	if s.eventService == nil {
		eventLogger, err := logger.Named("event")
		if err != nil {
			panic(fmt.Errorf("failed to create event logger: %w", err))
		}

		s.eventService = service.NewEventService(
			eventLogger,
			s.EventRepo(),
			s.ParticipantRepo(),
			s.CatalogRepo(),
			s.ClubRepo(),
			s.ClubMemberRepo(),
			s.clock,
		)
	}

	return s.eventService
}

func (s *serviceProvider) ExportService() primary.ExportService {
	if s.exportService == nil {
		s.exportService = service.NewExportService(
			s.EventRepo(),
			s.ParticipantRepo(),
			s.UserRepo(),
			s.cfg.HTTP.PublicURL(),
		)
	}

	return s.exportService
}

// Handlers

func (s *serviceProvider) AuthHandler() *authHandler.Handler {
	if s.authHandler == nil {
		authLogger, err := logger.Named("auth")
		if err != nil {
			panic(fmt.Errorf("failed to create auth logger: %w", err))
		}

		s.authHandler = authHandler.New(
			s.UserService(),
			authLogger,
			s.cfg.Auth.Secret(),
			s.cfg.Auth.TokenTTL(),
		)
	}

	return s.authHandler
}

func (s *serviceProvider) ClubHandler() *clubHandler.Handler {
	if s.clubHandler == nil {
		clubLogger, err := logger.Named("club-handler")
		if err != nil {
			panic(fmt.Errorf("failed to create club handler logger: %w", err))
		}

		s.clubHandler = clubHandler.New(s.ClubService(), clubLogger)
	}

	return s.clubHandler
}

func (s *serviceProvider) EventHandler() *eventHandler.Handler {
	if s.eventHandler == nil {
		eventLogger, err := logger.Named("event-handler")
		if err != nil {
			panic(fmt.Errorf("failed to create event handler logger: %w", err))
		}

		s.eventHandler = eventHandler.New(s.EventService(), s.ExportService(), eventLogger)
	}

	return s.eventHandler
}

// Cfg returns the config
func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
