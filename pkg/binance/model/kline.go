package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kline is one candle as reported by the REST klines endpoint, which encodes
// it as a positional JSON array with prices as strings.
type Kline struct {
	OpenTime    int64
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
	CloseTime   int64
	QuoteVolume float64
	NumTrades   int64
}

func (s *Kline) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 9 {
		return fmt.Errorf("kline array has %d elements, expected at least 9", len(raw))
	}
	var err error
	if s.OpenTime, err = asInt64(raw[0]); err != nil {
		return err
	}
	if s.Open, err = asFloat(raw[1]); err != nil {
		return err
	}
	if s.High, err = asFloat(raw[2]); err != nil {
		return err
	}
	if s.Low, err = asFloat(raw[3]); err != nil {
		return err
	}
	if s.Close, err = asFloat(raw[4]); err != nil {
		return err
	}
	if s.Volume, err = asFloat(raw[5]); err != nil {
		return err
	}
	if s.CloseTime, err = asInt64(raw[6]); err != nil {
		return err
	}
	if s.QuoteVolume, err = asFloat(raw[7]); err != nil {
		return err
	}
	if s.NumTrades, err = asInt64(raw[8]); err != nil {
		return err
	}
	return nil
}

// Fields returns the candle payload as stored in the document database.
func (s Kline) Fields() map[string]any {
	return map[string]any{
		"open":         s.Open,
		"high":         s.High,
		"low":          s.Low,
		"close":        s.Close,
		"volume":       s.Volume,
		"close_time":   s.CloseTime,
		"quote_volume": s.QuoteVolume,
		"trades":       s.NumTrades,
	}
}

// KlineMessage is one event of a {symbol}@kline_{interval} stream.
type KlineMessage struct {
	EventType string  `json:"e"`
	EventTime int64   `json:"E"`
	Symbol    string  `json:"s"`
	Kline     WsKline `json:"k"`
}

type WsKline struct {
	OpenTime    int64  `json:"t"`
	CloseTime   int64  `json:"T"`
	Symbol      string `json:"s"`
	Interval    string `json:"i"`
	Open        string `json:"o"`
	Close       string `json:"c"`
	High        string `json:"h"`
	Low         string `json:"l"`
	Volume      string `json:"v"`
	NumTrades   int64  `json:"n"`
	Closed      bool   `json:"x"`
	QuoteVolume string `json:"q"`
}

func (s WsKline) ToKline() (Kline, error) {
	var kline Kline
	var err error
	kline.OpenTime = s.OpenTime
	kline.CloseTime = s.CloseTime
	kline.NumTrades = s.NumTrades
	if kline.Open, err = strconv.ParseFloat(s.Open, 64); err != nil {
		return kline, err
	}
	if kline.High, err = strconv.ParseFloat(s.High, 64); err != nil {
		return kline, err
	}
	if kline.Low, err = strconv.ParseFloat(s.Low, 64); err != nil {
		return kline, err
	}
	if kline.Close, err = strconv.ParseFloat(s.Close, 64); err != nil {
		return kline, err
	}
	if kline.Volume, err = strconv.ParseFloat(s.Volume, 64); err != nil {
		return kline, err
	}
	if kline.QuoteVolume, err = strconv.ParseFloat(s.QuoteVolume, 64); err != nil {
		return kline, err
	}
	return kline, nil
}

// ExchangeSymbol converts a trading pair like "BTC/USDT" to the exchange wire
// form "BTCUSDT".
func ExchangeSymbol(pair string) string {
	return strings.ReplaceAll(pair, "/", "")
}

func asInt64(value any) (int64, error) {
	number, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", value)
	}
	return int64(number), nil
}

func asFloat(value any) (float64, error) {
	str, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("expected string-encoded number, got %T", value)
	}
	return strconv.ParseFloat(str, 64)
}
