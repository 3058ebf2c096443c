package mongo

import (
	"CandleKeeper/pkg/mongo/conf"
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Connect dials the document database authenticating with the x509 credential
// file from cfg. A missing or malformed credential file is a hard error, unlike
// config validation which only warns about it.
func Connect(ctx context.Context, logger *zap.Logger, cfg *conf.MongoRepoConfig) (*mongo.Database, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CredPath, cfg.CredPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading store credentials from %s %w", cfg.CredPath, err)
	}
	opts := options.Client().
		ApplyURI(cfg.URI.GetBaseUri()).
		SetTLSConfig(&tls.Config{Certificates: []tls.Certificate{cert}}).
		SetAuth(options.Credential{AuthMechanism: "MONGODB-X509"})
	ctxWithTimeout, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutS)*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctxWithTimeout, opts)
	if err != nil {
		return nil, fmt.Errorf("error while connecting to mongo %w", err)
	}
	ctxWithTimeout, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutS)*time.Second)
	defer cancel()
	if err = client.Ping(ctxWithTimeout, nil); err != nil {
		return nil, fmt.Errorf("error while pinging to mongo %w", err)
	}
	logger.Info("successfully connected to mongo", zap.String("database", cfg.DatabaseName))
	return client.Database(cfg.DatabaseName), nil
}
