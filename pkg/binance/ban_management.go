package binance

import (
	"CandleKeeper/pkg/log"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	banned    atomic.Bool
	endOfBanS atomic.Int64
	logger    = zap.NewNop()
)

func InitLogger() {
	logger = log.GetLogger("Ban manager")
}

func isBanned() bool {
	if banned.Load() == true {
		if time.Now().Unix() < endOfBanS.Load() {
			return true
		}
		banned.Store(false)
	}
	return false
}

func banBinanceRequests(response *http.Response, e error) error {
	timeoutValue := response.Header.Get("Retry-After")
	if timeoutValue == "" {
		logger.Warn(InvalidBinanceDataErr.Error())
		return InvalidBinanceDataErr
	}
	timeout, err := strconv.ParseInt(timeoutValue, 10, 64)
	if err != nil {
		logger.Warn(InvalidBinanceDataErr.Error())
		return InvalidBinanceDataErr
	}
	logger.Error(e.Error())
	setBanned(timeout)
	return e
}

// checkUsedWeight backs off for a minute once the reported request weight
// reaches the configured rate limit.
func checkUsedWeight(response *http.Response, weightLimit int) {
	if weightLimit <= 0 {
		return
	}
	usedWeightValue := response.Header.Get("X-Mbx-Used-Weight-1m")
	if usedWeightValue == "" {
		return
	}
	usedWeight, err := strconv.Atoi(usedWeightValue)
	if err != nil {
		return
	}
	if usedWeight >= weightLimit {
		logger.Warn(fmt.Sprintf("used weight %d reached limit %d", usedWeight, weightLimit))
		setBanned(60)
	}
}

func setBanned(banTimestamp int64) {
	banned.Store(true)
	endOfBanS.Store(time.Now().Unix() + banTimestamp)
}

var (
	TeapotErr              = fmt.Errorf("got teapot http response status, current IP banned by binance")
	WeightLimitExceededErr = fmt.Errorf("too many requests, weight limit exceeded")
	InvalidBinanceDataErr  = fmt.Errorf("got invalid data from binance server")
	RequestRejectedErr     = fmt.Errorf("attempt of sending request while weight limit exceeded")
)
