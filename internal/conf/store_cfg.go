package conf

import (
	"CandleKeeper/pkg/conf"
	"CandleKeeper/pkg/env"
	mconf "CandleKeeper/pkg/mongo/conf"
)

type StoreConfig struct {
	ProjectId        string                 `yaml:"project.id"`
	CredPath         string                 `yaml:"cred.path"`
	CollectionPrefix string                 `yaml:"collection.prefix"`
	MongoConfig      *mconf.MongoRepoConfig `yaml:"mongo"`
}

func NewStoreConfigFromEnv() *StoreConfig {
	projectId := env.GetEnvOr("store.project.id", "autonomous-trading")
	credPath := env.GetEnvOr("store.cred.path", "./store-creds.pem")
	return &StoreConfig{
		ProjectId:        projectId,
		CredPath:         credPath,
		CollectionPrefix: env.GetEnvOr("store.collection.prefix", "trading_system"),
		MongoConfig: &mconf.MongoRepoConfig{
			TimeoutS:     int64(env.GetEnvIntOr("store.timeout.sec", 10)),
			URI:          conf.NewBaseUriConfigFromEnv("store.uri", "mongodb://", "localhost", 27017),
			DatabaseName: projectId,
			CredPath:     credPath,
		},
	}
}
