package binance

import (
	"CandleKeeper/pkg/binance/model"
	"CandleKeeper/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type KlineReceiveClient struct {
	logger   *zap.Logger
	baseUri  string
	pair     string
	interval string
	shutdown atomic.Bool
	connMut  sync.Mutex
	conn     *websocket.Conn
}

func NewKlineReceiveClient(cfg *BinanceHttpClientConfig, pair, interval string) *KlineReceiveClient {
	return &KlineReceiveClient{
		logger:   log.GetLogger(fmt.Sprintf("KlineReceiveClient[%s@%s]", pair, interval)),
		baseUri:  cfg.StreamBaseUriConfig.GetBaseUri(),
		pair:     pair,
		interval: interval,
	}
}

func (s *KlineReceiveClient) ConnectWs(ctx context.Context) error {
	if s.shutdown.Load() {
		return nil
	}
	if isBanned() {
		return RequestRejectedErr
	}
	streamName := fmt.Sprintf("%s@kline_%s", strings.ToLower(model.ExchangeSymbol(s.pair)), s.interval)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, fmt.Sprintf("%sws/%s", s.baseUri, streamName), nil)
	if err != nil {
		s.logger.Error(err.Error())
		return err
	}
	if resp.StatusCode == http.StatusTeapot {
		conn.Close()
		return banBinanceRequests(resp, TeapotErr)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		conn.Close()
		return banBinanceRequests(resp, WeightLimitExceededErr)
	}
	s.connMut.Lock()
	s.conn = conn
	s.connMut.Unlock()
	return nil
}

func (s *KlineReceiveClient) Recv(ctx context.Context) (*model.KlineMessage, error) {
	s.connMut.Lock()
	conn := s.conn
	s.connMut.Unlock()
	if conn == nil {
		return nil, fmt.Errorf("kline stream not connected")
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("error while reading kline stream %w", err)
	}
	var klineMsg model.KlineMessage
	if err = json.Unmarshal(msg, &klineMsg); err != nil {
		return nil, fmt.Errorf("error while decoding kline message %w", err)
	}
	return &klineMsg, nil
}

func (s *KlineReceiveClient) Shutdown(ctx context.Context) {
	s.shutdown.Store(true)
	s.connMut.Lock()
	defer s.connMut.Unlock()
	if s.conn != nil {
		// closing the connection unblocks a concurrent ReadMessage
		s.conn.Close()
		s.conn = nil
	}
}
