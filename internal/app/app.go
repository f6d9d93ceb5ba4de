package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalsetter/internal/config"
	"github.com/templui/goalsetter/internal/db"
	"github.com/templui/goalsetter/internal/repository"
	"github.com/templui/goalsetter/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds the process-wide datastore handle and the services built on it.
type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	Mongo       *mongo.Client
	AuthService *service.AuthService
	UserService *service.UserService
	GoalService *service.GoalService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg}

	var (
		userRepository repository.UserRepository
		goalRepository repository.GoalRepository
	)

	if cfg.UsesMongo() {
		client, mdb, err := db.InitMongo(ctx, cfg.DBConnection, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		a.Mongo = client

		userRepository = repository.NewMongoUserRepository(mdb)
		goalRepository = repository.NewMongoGoalRepository(mdb)
	} else {
		database, err := db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = database

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		userRepository = repository.NewUserRepository(database)
		goalRepository = repository.NewGoalRepository(database)
	}

	a.AuthService = service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	a.UserService = service.NewUserService(userRepository)
	a.GoalService = service.NewGoalService(goalRepository, userRepository)

	return a, nil
}

func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Mongo != nil {
		errs = append(errs, a.Mongo.Disconnect(ctx))
	}
	return errors.Join(errs...)
}
