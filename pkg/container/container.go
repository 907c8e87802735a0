package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/shared/clock"

	"blog-backend/internal/domains/author"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"

	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the API process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.MongoDB
	Clock  clock.Clock

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	AuthorRepo author.Repository
	PostRepo   post.Repository

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer connects to the store and wires the dependency graph.
//
// Order matters:
// 1. Database (depends on Config)
// 2. Repositories (depend on Database and Clock)
// 3. Handlers (depend on Repositories)
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	db := database.NewMongoDB(cfg.DatabaseConfig())

	connectCtx, cancel := context.WithTimeout(ctx, connectBudget(cfg))
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("Database connected")

	if err := db.EnsureIndexes(ctx, Indexes()); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	c := Wire(cfg, db, clock.NewRealClock())

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Wire builds repositories and handlers on top of an already connected
// database handle.
func Wire(cfg *config.Config, db *database.MongoDB, clk clock.Clock) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
		Clock:  clk,
	}

	c.initRepositories()
	c.initHandlers()

	return c
}

// Indexes lists the indexes created at startup, per collection.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		post.CollectionName: postRepo.Indexes(),
	}
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewMongoRepository(c.DB.Database)
	c.PostRepo = postRepo.NewMongoRepository(c.DB.Database, c.Clock)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorRepo)
	c.PostHandler = postHandler.NewPostHandler(c.PostRepo)
}

// connectBudget bounds the whole startup connection, retries included.
func connectBudget(cfg *config.Config) time.Duration {
	m := cfg.Mongo
	attempts := m.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	budget := m.ConnectTimeout * time.Duration(attempts)
	for i := 0; i < attempts-1; i++ {
		budget += m.RetryDelay * time.Duration(1<<uint(i))
	}
	return budget
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup(ctx context.Context) {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
