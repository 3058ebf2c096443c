package conf

import (
	"CandleKeeper/pkg/conf"
)

type MongoRepoConfig struct {
	TimeoutS     int64               `yaml:"timeout.sec"`
	URI          *conf.BaseUriConfig `yaml:"uri"`
	DatabaseName string              `yaml:"database.name"`
	CredPath     string              `yaml:"cred.path"`
}
