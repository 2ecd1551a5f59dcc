package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestHealthSnapshotPopulatedImmediately(t *testing.T) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetConnectTimeout(200*time.Millisecond).
		SetServerSelectionTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("failed to build mongo client: %v", err)
	}

	StartHealthMonitor(redisClient, mongoClient)

	// The first check runs on start, not after the first 60s tick.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		status := GetHealthStatus()
		if !status.CheckedAt.IsZero() {
			if status.Mongo || status.Redis {
				t.Fatalf("unreachable dependencies reported healthy: %+v", status)
			}
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("health snapshot not populated before the first ticker interval")
}
