package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ramonfbmiranda/arquivosmaverick/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// ConnectWithRetry calls ConnectMongo up to attempts times, doubling the
// wait between tries starting at one second.
func ConnectWithRetry(ctx context.Context, uri string, timeout time.Duration, attempts int) (*mongo.Client, error) {
	return retry(ctx, attempts, time.Second, func() (*mongo.Client, error) {
		return ConnectMongo(ctx, uri, timeout)
	})
}

func retry[T any](ctx context.Context, attempts int, wait time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; ; i++ {
		var v T
		if v, err = fn(); err == nil {
			return v, nil
		}
		if i >= attempts {
			break
		}
		logger.Warnf("mongo not ready (attempt %d/%d): %v", i, attempts, err)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, err)
}
