package mongo

import (
	pconf "CandleKeeper/pkg/conf"
	"CandleKeeper/pkg/mongo/conf"
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func testMongoCfg(credPath string) *conf.MongoRepoConfig {
	return &conf.MongoRepoConfig{
		TimeoutS:     1,
		URI:          &pconf.BaseUriConfig{Schema: "mongodb://", Host: "localhost", Port: 27017},
		DatabaseName: "test",
		CredPath:     credPath,
	}
}

func TestConnectFailsWithMissingCredentials(t *testing.T) {
	cfg := testMongoCfg(filepath.Join(t.TempDir(), "missing.pem"))
	if _, err := Connect(context.Background(), zap.NewNop(), cfg); err == nil {
		t.Error("Connect must fail when the credential file is missing")
	}
}

func TestConnectFailsWithMalformedCredentials(t *testing.T) {
	credPath := filepath.Join(t.TempDir(), "creds.pem")
	if err := os.WriteFile(credPath, []byte("not a pem bundle"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Connect(context.Background(), zap.NewNop(), testMongoCfg(credPath)); err == nil {
		t.Error("Connect must fail when the credential file is malformed")
	}
}
