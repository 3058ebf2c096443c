package app

import (
	"CandleKeeper/internal/conf"
	"CandleKeeper/internal/metrics"
	"CandleKeeper/internal/repo"
	"CandleKeeper/internal/svc"
	"CandleKeeper/internal/web"
	"CandleKeeper/pkg/binance"
	"CandleKeeper/pkg/log"
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type App struct {
	logger     *zap.Logger
	cfg        *conf.AppConfig
	store      *repo.MarketDataStore
	candleSvc  *svc.CandleSvc
	httpServer *http.Server
	monitorer  *metrics.SystemMonitorer
}

func NewApp(cfg *conf.AppConfig) *App {
	log.Init("keeper", log.Config{
		Level:    cfg.LoggingCfg.Level,
		Encoding: cfg.LoggingCfg.Encoding,
		FilePath: cfg.LoggingCfg.FilePath,
	})
	rawCfg, err := yaml.Marshal(cfg.Masked())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(rawCfg))
	binance.InitLogger()
	logger := log.GetLogger("App")
	cfg.Validate(log.GetLogger("Config"))
	if cfg.ExchangeCfg.ExchangeId != "binance" {
		logger.Warn(fmt.Sprintf("unsupported exchange id %q, only binance is wired", cfg.ExchangeCfg.ExchangeId))
	}
	store, err := repo.SharedStore(context.Background(), cfg.StoreCfg, metrics.NewMarketDataMetrics())
	if err != nil {
		panic(err)
	}
	binanceCfg := binance.NewBinanceHttpClientConfigFromEnv(
		"exchange.binance", cfg.ExchangeCfg.Sandbox, cfg.ExchangeCfg.ApiKey, cfg.ExchangeCfg.RateLimit)
	newSource := func(pair, timeframe string) svc.KlineSource {
		return binance.NewKlineReceiveClient(binanceCfg, pair, timeframe)
	}
	candleSvc := svc.NewCandleSvc(cfg.DataCfg, binance.NewHttpClient(binanceCfg), newSource, store)
	return &App{
		logger:    logger,
		cfg:       cfg,
		store:     store,
		candleSvc: candleSvc,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.ApiPort),
			Handler: web.InitApi(web.NewMarketDataRouter(store), metrics.NewApiMetrics(), logger),
		},
		monitorer: metrics.NewSystemMonitorer(),
	}
}

func (s *App) Start() {
	baseContext := context.Background()
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(":9001", nil)
		if err != nil {
			panic(err)
		}
	}()
	go func() {
		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()
	go s.monitorer.CronUpdateMetrics()
	s.candleSvc.Start(baseContext)
	s.logger.Info("App started")
}

func (s *App) Stop(ctx context.Context) {
	s.logger.Info("Begin of graceful shutdown")
	s.candleSvc.Stop(ctx)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error(err.Error())
	}
	if err := s.store.Disconnect(ctx); err != nil {
		s.logger.Error(err.Error())
	}
	s.logger.Info("End of graceful shutdown")
}
