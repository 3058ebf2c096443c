package log

import (
	"CandleKeeper/pkg/env"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Config struct {
	Level    string
	Encoding string
	FilePath string
}

var (
	rootMut    sync.RWMutex
	rootLogger = zap.NewNop()
)

// Init builds the process-wide root logger. Packages that grab loggers before
// Init get a nop logger, which keeps them usable from tests.
func Init(serviceName string, cfg Config) {
	var zapCfg zap.Config
	if env.GetEnvType() == env.PROD {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zapCfg.Level = level
	}
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.FilePath != "" {
		zapCfg.OutputPaths = []string{cfg.FilePath}
	}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	rootMut.Lock()
	defer rootMut.Unlock()
	rootLogger = logger.Named(serviceName)
}

func GetLogger(loggerName string) *zap.Logger {
	rootMut.RLock()
	defer rootMut.RUnlock()
	return rootLogger.Named(loggerName)
}

func GetTestLogger() *zap.Logger {
	return zap.NewNop()
}

func CreateMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("http request", zap.String("method", r.Method), zap.String("uri", r.RequestURI))
			next.ServeHTTP(w, r)
		})
	}
}
