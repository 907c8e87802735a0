package config

import (
	"blog-backend/internal/infrastructure/database"
)

// DatabaseConfig converts the Mongo section into the connection settings
// used by database.NewMongoDB.
func (c *Config) DatabaseConfig() *database.DBConfig {
	return &database.DBConfig{
		URI:            c.Mongo.ConnectionURI(),
		Database:       c.Mongo.Database,
		MaxPoolSize:    c.Mongo.MaxPoolSize,
		MinPoolSize:    c.Mongo.MinPoolSize,
		MaxRetries:     c.Mongo.MaxRetries,
		RetryDelay:     c.Mongo.RetryDelay,
		ConnectTimeout: c.Mongo.ConnectTimeout,
	}
}
