package repo

import (
	"CandleKeeper/internal/conf"
	"CandleKeeper/internal/model"
	"CandleKeeper/pkg/log"
	pmongo "CandleKeeper/pkg/mongo"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	DefaultBatchSize = 500
	DefaultReadLimit = 1000
)

var ErrInvalidArgument = errors.New("symbol and timeframe must be non-empty")

// MarketDataStore persists candles to the document database, one collection
// per (symbol, timeframe) pair.
type MarketDataStore struct {
	logger  *zap.Logger
	db      *mongo.Database
	prefix  string
	timeout time.Duration
	metrics StorageMetrics
}

func NewMarketDataStore(db *mongo.Database, cfg *conf.StoreConfig, metrics StorageMetrics) *MarketDataStore {
	if metrics == nil {
		metrics = nopStorageMetrics{}
	}
	return &MarketDataStore{
		logger:  log.GetLogger("MarketDataStore"),
		db:      db,
		prefix:  cfg.CollectionPrefix,
		timeout: time.Duration(cfg.MongoConfig.TimeoutS) * time.Second,
		metrics: metrics,
	}
}

var (
	sharedOnce  sync.Once
	sharedStore *MarketDataStore
	sharedErr   error
)

// SharedStore keeps at most one live store connection per process. The first
// call connects; later calls return the same store (or the same connect
// error) without reinitializing.
func SharedStore(ctx context.Context, cfg *conf.StoreConfig, metrics StorageMetrics) (*MarketDataStore, error) {
	sharedOnce.Do(func() {
		logger := log.GetLogger("MarketDataStore")
		db, err := pmongo.Connect(ctx, logger, cfg.MongoConfig)
		if err != nil {
			sharedErr = fmt.Errorf("store initialization failed %w", err)
			return
		}
		sharedStore = NewMarketDataStore(db, cfg, metrics)
	})
	return sharedStore, sharedErr
}

// CollectionPath derives the collection name for a (symbol, timeframe) pair.
// The scheme matches data written by earlier versions of the system and must
// not change.
func CollectionPath(prefix, symbol, timeframe string) string {
	return fmt.Sprintf("%s/market_data/%s/%s", prefix, strings.ReplaceAll(symbol, "/", "_"), timeframe)
}

// WriteMarketData upserts candles in commits of at most batchSize documents.
// Each commit is atomic on its own; a failure mid-way leaves earlier commits
// applied. An empty batch is a successful no-op.
func (s *MarketDataStore) WriteMarketData(ctx context.Context, symbol, timeframe string, data model.MarketDataBatch, batchSize int) error {
	if symbol == "" || timeframe == "" {
		return fmt.Errorf("%w, got symbol=%q timeframe=%q", ErrInvalidArgument, symbol, timeframe)
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if len(data) == 0 {
		return nil
	}
	writeModels := make([]mongo.WriteModel, 0, len(data))
	for _, ts := range sortedTimestamps(data) {
		writeModels = append(writeModels, newCandleUpsert(symbol, timeframe, ts, data[ts]))
	}
	col := s.db.Collection(CollectionPath(s.prefix, symbol, timeframe))
	for _, batch := range splitIntoBatches(writeModels, batchSize) {
		if err := s.commitBatch(ctx, col, batch); err != nil {
			s.metrics.IncWriteErrors()
			return fmt.Errorf("error while writing market data for %s %s %w", symbol, timeframe, err)
		}
	}
	s.metrics.IncSavedCandles(symbol, len(data))
	s.logger.Info(fmt.Sprintf("successfully wrote %d records for %s %s", len(data), symbol, timeframe))
	return nil
}

// ReadMarketData returns the most recent limit records ordered descending by
// orderBy. Errors propagate wrapped, same policy as writes.
func (s *MarketDataStore) ReadMarketData(ctx context.Context, symbol, timeframe string, limit int64, orderBy string) ([]model.CandleFields, error) {
	if symbol == "" || timeframe == "" {
		return nil, fmt.Errorf("%w, got symbol=%q timeframe=%q", ErrInvalidArgument, symbol, timeframe)
	}
	if limit <= 0 {
		limit = DefaultReadLimit
	}
	if orderBy == "" {
		orderBy = "timestamp"
	}
	col := s.db.Collection(CollectionPath(s.prefix, symbol, timeframe))
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: orderBy, Value: -1}}).SetLimit(limit)
	cur, err := col.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error while reading market data for %s %s %w", symbol, timeframe, err)
	}
	var records []model.CandleFields
	ctxWithTimeout, cancel = context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err = cur.All(ctxWithTimeout, &records); err != nil {
		return nil, fmt.Errorf("error while decoding market data for %s %s %w", symbol, timeframe, err)
	}
	s.metrics.IncReadQueries()
	return records, nil
}

func (s *MarketDataStore) Disconnect(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func (s *MarketDataStore) commitBatch(ctx context.Context, col *mongo.Collection, batch []mongo.WriteModel) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	startQueryMs := time.Now().UnixMilli()
	_, err := col.BulkWrite(ctxWithTimeout, batch, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return err
	}
	s.metrics.UpdInsertQueryLatency(time.Now().UnixMilli() - startQueryMs)
	return nil
}

// newCandleUpsert stages one candle keyed by the decimal string of its
// timestamp. The payload is enriched with symbol, timeframe, the integer
// timestamp and a server-assigned updated_at.
func newCandleUpsert(symbol, timeframe string, timestamp int64, fields model.CandleFields) mongo.WriteModel {
	doc := bson.M{}
	for name, value := range fields {
		doc[name] = value
	}
	doc["symbol"] = symbol
	doc["timeframe"] = timeframe
	doc["timestamp"] = timestamp
	return mongo.NewUpdateOneModel().
		SetFilter(bson.M{"_id": strconv.FormatInt(timestamp, 10)}).
		SetUpdate(bson.M{"$set": doc, "$currentDate": bson.M{"updated_at": true}}).
		SetUpsert(true)
}

func sortedTimestamps(data model.MarketDataBatch) []int64 {
	timestamps := make([]int64, 0, len(data))
	for ts := range data {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	return timestamps
}

func splitIntoBatches(writeModels []mongo.WriteModel, batchSize int) [][]mongo.WriteModel {
	var batches [][]mongo.WriteModel
	for i := 0; i < len(writeModels); i += batchSize {
		batches = append(batches, writeModels[i:min(len(writeModels), i+batchSize)])
	}
	return batches
}
