package model

// CandleFields is the raw payload of one candle (open/high/low/close/volume
// and whatever else the exchange reports). The store does not interpret the
// field set, it only enriches it before persisting.
type CandleFields map[string]any

// MarketDataBatch maps candle open timestamps (ms) to their payloads.
type MarketDataBatch map[int64]CandleFields
