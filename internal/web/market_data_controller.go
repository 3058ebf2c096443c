package web

import (
	"CandleKeeper/internal/model"
	"CandleKeeper/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type MarketDataReader interface {
	ReadMarketData(ctx context.Context, symbol, timeframe string, limit int64, orderBy string) ([]model.CandleFields, error)
}

type ApiMetrics interface {
	IncNumCallsReadMarketData()
}

type MarketDataRouter struct {
	logger *zap.Logger
	reader MarketDataReader
}

func NewMarketDataRouter(reader MarketDataReader) *MarketDataRouter {
	return &MarketDataRouter{
		logger: log.GetLogger("MarketDataRouter"),
		reader: reader,
	}
}

// GetMarketDataHandler serves the most recent records for one pair. The
// symbol path segment uses the underscore form (BTC_USDT), which derives the
// same collection as the slash form.
func (s *MarketDataRouter) GetMarketDataHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	symbol := vars["symbol"]
	timeframe := vars["timeframe"]
	var limit int64
	if limitValue := r.URL.Query().Get("limit"); limitValue != "" {
		parsed, err := strconv.ParseInt(limitValue, 10, 64)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	orderBy := r.URL.Query().Get("order_by")
	records, err := s.reader.ReadMarketData(r.Context(), symbol, timeframe, limit, orderBy)
	if err != nil {
		s.logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.logger.Debug(fmt.Sprintf("got %d records for %s %s", len(records), symbol, timeframe))
	respBody, err := json.Marshal(records)
	if err != nil {
		s.logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	sentBytes, err := w.Write(respBody)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	if sentBytes != len(respBody) {
		s.logger.Warn("not all response sent")
	}
}

func InitApi(router *MarketDataRouter, metrics ApiMetrics, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.
		HandleFunc("/market-data/{symbol}/{timeframe}", func(w http.ResponseWriter, req *http.Request) {
			metrics.IncNumCallsReadMarketData()
			router.GetMarketDataHandler(w, req)
		}).
		Methods(http.MethodGet)
	r.Use(log.CreateMiddleware(logger))
	return r
}
