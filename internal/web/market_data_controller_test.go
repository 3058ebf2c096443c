package web

import (
	"CandleKeeper/internal/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type fakeReader struct {
	records    []model.CandleFields
	err        error
	gotSymbol  string
	gotTf      string
	gotLimit   int64
	gotOrderBy string
}

func (s *fakeReader) ReadMarketData(ctx context.Context, symbol, timeframe string, limit int64, orderBy string) ([]model.CandleFields, error) {
	s.gotSymbol = symbol
	s.gotTf = timeframe
	s.gotLimit = limit
	s.gotOrderBy = orderBy
	return s.records, s.err
}

type fakeApiMetrics struct {
	calls int
}

func (s *fakeApiMetrics) IncNumCallsReadMarketData() { s.calls++ }

func TestGetMarketDataHandler(t *testing.T) {
	reader := &fakeReader{records: []model.CandleFields{{"timestamp": 2}, {"timestamp": 1}}}
	apiMetrics := &fakeApiMetrics{}
	handler := InitApi(NewMarketDataRouter(reader), apiMetrics, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/market-data/BTC_USDT/1h?limit=2&order_by=timestamp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if reader.gotSymbol != "BTC_USDT" || reader.gotTf != "1h" {
		t.Errorf("reader got (%s, %s), want (BTC_USDT, 1h)", reader.gotSymbol, reader.gotTf)
	}
	if reader.gotLimit != 2 || reader.gotOrderBy != "timestamp" {
		t.Errorf("reader got limit=%d orderBy=%q, want 2, timestamp", reader.gotLimit, reader.gotOrderBy)
	}
	var records []model.CandleFields
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
	if apiMetrics.calls != 1 {
		t.Errorf("metrics counted %d calls, want 1", apiMetrics.calls)
	}
}

func TestGetMarketDataHandlerBadLimit(t *testing.T) {
	handler := InitApi(NewMarketDataRouter(&fakeReader{}), &fakeApiMetrics{}, zap.NewNop())

	for _, limit := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/market-data/BTC_USDT/1h?limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%q: status = %d, want %d", limit, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestGetMarketDataHandlerStoreError(t *testing.T) {
	reader := &fakeReader{err: errors.New("store unavailable")}
	handler := InitApi(NewMarketDataRouter(reader), &fakeApiMetrics{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/market-data/BTC_USDT/1h", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetMarketDataHandlerDefaults(t *testing.T) {
	reader := &fakeReader{}
	handler := InitApi(NewMarketDataRouter(reader), &fakeApiMetrics{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/market-data/ETH_USDT/4h", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	// zero values delegate defaulting to the store
	if reader.gotLimit != 0 || reader.gotOrderBy != "" {
		t.Errorf("reader got limit=%d orderBy=%q, want zero values", reader.gotLimit, reader.gotOrderBy)
	}
}
