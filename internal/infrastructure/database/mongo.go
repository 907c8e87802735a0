package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DBConfig holds everything needed to open the document-store connection.
type DBConfig struct {
	URI      string
	Database string

	MaxPoolSize uint64
	MinPoolSize uint64

	// Startup retry. Once connected, the driver's own server monitoring is
	// relied upon; the handle is never recreated.
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// MongoDB is the process-wide store handle. It is built once at startup and
// injected into every repository.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *DBConfig
}

// NewMongoDB creates an unconnected handle; call Connect before use.
func NewMongoDB(config *DBConfig) *MongoDB {
	return &MongoDB{Config: config}
}

func (db *MongoDB) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true)).
		SetConnectTimeout(db.Config.ConnectTimeout).
		SetServerSelectionTimeout(db.Config.ConnectTimeout)

	if db.Config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(db.Config.MaxPoolSize)
	}
	if db.Config.MinPoolSize > 0 {
		opts.SetMinPoolSize(db.Config.MinPoolSize)
	}
	return opts
}

// connectWithRetry retries with exponential backoff: delay * 2^(attempt-1).
func (db *MongoDB) connectWithRetry(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		log.Info().Int("attempt", attempt).Int("max_attempts", attempts).Msg("[DATABASE] Connecting to MongoDB")

		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()

			if err == nil {
				log.Info().Int("attempt", attempt).Msg("[DATABASE] Connected to MongoDB")
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}

		lastErr = err
		log.Error().Err(err).Int("attempt", attempt).Msg("[DATABASE] Connection attempt failed")

		if attempt < attempts {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("[DATABASE] Retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

// Connect opens the client and selects the configured database.
func (db *MongoDB) Connect(ctx context.Context) error {
	if db.Config == nil || db.Config.URI == "" {
		return fmt.Errorf("mongodb uri is not configured")
	}

	client, err := db.connectWithRetry(ctx, db.clientOptions())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Client = client
	db.Database = client.Database(db.Config.Database)
	return nil
}

// HealthCheck pings the primary with a short timeout.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client. Safe to call on an unconnected handle.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing MongoDB connection")
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	db.Client = nil
	db.Database = nil
	return nil
}

// EnsureIndexes creates the indexes listed per collection. Creating an index
// that already exists with the same definition is a no-op on the server.
func (db *MongoDB) EnsureIndexes(ctx context.Context, indexes map[string][]mongo.IndexModel) error {
	if db.Database == nil {
		return fmt.Errorf("database not initialized, call Connect first")
	}

	for collection, models := range indexes {
		if len(models) == 0 {
			continue
		}

		names, err := db.Database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}

		log.Info().Str("collection", collection).Strs("indexes", names).Msg("[DATABASE] Indexes ensured")
	}
	return nil
}
