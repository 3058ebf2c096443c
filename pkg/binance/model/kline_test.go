package model

import (
	"encoding/json"
	"testing"
)

func TestKlineUnmarshalRestArray(t *testing.T) {
	raw := `[1700000000000,"42000.1","42500.5","41800.0","42250.3","123.45",1700003599999,"5190000.5",987,"60.1","2520000.2","0"]`
	var kline Kline
	if err := json.Unmarshal([]byte(raw), &kline); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if kline.OpenTime != 1700000000000 {
		t.Errorf("OpenTime = %d, want %d", kline.OpenTime, int64(1700000000000))
	}
	if kline.Open != 42000.1 {
		t.Errorf("Open = %v, want %v", kline.Open, 42000.1)
	}
	if kline.Close != 42250.3 {
		t.Errorf("Close = %v, want %v", kline.Close, 42250.3)
	}
	if kline.Volume != 123.45 {
		t.Errorf("Volume = %v, want %v", kline.Volume, 123.45)
	}
	if kline.NumTrades != 987 {
		t.Errorf("NumTrades = %d, want %d", kline.NumTrades, int64(987))
	}
}

func TestKlineUnmarshalTooShort(t *testing.T) {
	var kline Kline
	if err := json.Unmarshal([]byte(`[1700000000000,"42000.1"]`), &kline); err == nil {
		t.Error("expected error for truncated kline array")
	}
}

func TestWsKlineToKline(t *testing.T) {
	raw := `{"e":"kline","E":1700000001000,"s":"BTCUSDT","k":{"t":1700000000000,"T":1700003599999,"s":"BTCUSDT","i":"1h","o":"42000.1","c":"42250.3","h":"42500.5","l":"41800.0","v":"123.45","n":987,"x":true,"q":"5190000.5"}}`
	var msg KlineMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	kline, err := msg.Kline.ToKline()
	if err != nil {
		t.Fatalf("ToKline failed: %v", err)
	}
	if kline.OpenTime != 1700000000000 {
		t.Errorf("OpenTime = %d, want %d", kline.OpenTime, int64(1700000000000))
	}
	if kline.High != 42500.5 {
		t.Errorf("High = %v, want %v", kline.High, 42500.5)
	}
	if kline.QuoteVolume != 5190000.5 {
		t.Errorf("QuoteVolume = %v, want %v", kline.QuoteVolume, 5190000.5)
	}
}

func TestKlineFields(t *testing.T) {
	kline := Kline{OpenTime: 1, Open: 2, High: 3, Low: 1.5, Close: 2.5, Volume: 10, CloseTime: 2, QuoteVolume: 25, NumTrades: 7}
	fields := kline.Fields()
	for _, name := range []string{"open", "high", "low", "close", "volume", "close_time", "quote_volume", "trades"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("Fields missing %q", name)
		}
	}
	if len(fields) != 8 {
		t.Errorf("Fields has %d entries, want 8", len(fields))
	}
}

func TestExchangeSymbol(t *testing.T) {
	if got := ExchangeSymbol("BTC/USDT"); got != "BTCUSDT" {
		t.Errorf("ExchangeSymbol = %q, want %q", got, "BTCUSDT")
	}
	if got := ExchangeSymbol("BTCUSDT"); got != "BTCUSDT" {
		t.Errorf("ExchangeSymbol = %q, want %q", got, "BTCUSDT")
	}
}
