package database

import (
	"context"
	"fmt"
	"time"

	"nimbus-chat/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	connectAttempts = 5
	connectBaseWait = 500 * time.Millisecond
	pingTimeout     = 5 * time.Second
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB with a bounded exponential backoff. It fails
// terminally after connectAttempts so the supervisor can restart the
// process instead of the process retrying forever.
func Connect(cfg *config.Config) (*Mongo, error) {
	var lastErr error
	wait := connectBaseWait

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
			err = client.Ping(ctx, nil)
			cancel()
			if err == nil {
				return &Mongo{
					Client: client,
					DB:     client.Database(cfg.MongoDB),
				}, nil
			}
			_ = client.Disconnect(context.Background())
		}

		lastErr = err
		if attempt < connectAttempts {
			time.Sleep(wait)
			wait *= 2
		}
	}

	return nil, fmt.Errorf("mongo connect failed after %d attempts: %w", connectAttempts, lastErr)
}

func (m *Mongo) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
