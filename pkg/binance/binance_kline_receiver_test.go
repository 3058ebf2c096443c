package binance

import (
	"context"
	"sync"
	"testing"
)

func TestKlineReceiverConcurrentRecvAndShutdown(t *testing.T) {
	cfg := NewBinanceHttpClientConfigFromEnv("test.exchange", true, "", 1200)
	client := NewKlineReceiveClient(cfg, "BTC/USDT", "1h")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = client.Recv(context.Background())
		}
	}()
	go func() {
		defer wg.Done()
		client.Shutdown(context.Background())
	}()
	wg.Wait()

	if err := client.ConnectWs(context.Background()); err != nil {
		t.Errorf("ConnectWs after Shutdown must be a no-op, got %v", err)
	}
}

func TestKlineReceiverRecvWithoutConnect(t *testing.T) {
	cfg := NewBinanceHttpClientConfigFromEnv("test.exchange", true, "", 1200)
	client := NewKlineReceiveClient(cfg, "BTC/USDT", "1h")
	if _, err := client.Recv(context.Background()); err == nil {
		t.Error("Recv before ConnectWs must fail")
	}
}
