package repo

type StorageMetrics interface {
	IncSavedCandles(symbol string, count int)
	IncWriteErrors()
	IncReadQueries()
	UpdInsertQueryLatency(latencyMs int64)
}

type nopStorageMetrics struct{}

func (nopStorageMetrics) IncSavedCandles(string, int) {}

func (nopStorageMetrics) IncWriteErrors() {}

func (nopStorageMetrics) IncReadQueries() {}

func (nopStorageMetrics) UpdInsertQueryLatency(int64) {}
