package pricefeed

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/pkg/metaapi"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	failing map[string]bool
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{calls: map[string]int{}, failing: map[string]bool{}}
}

func (f *fakeFetcher) CurrentPrice(ctx context.Context, symbol string) (*metaapi.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[symbol]++
	if f.failing[symbol] {
		return nil, fmt.Errorf("provider error for %s", symbol)
	}
	return &metaapi.Quote{Symbol: symbol, Bid: 1.1000, Ask: 1.1002, Time: time.Now()}, nil
}

func (f *fakeFetcher) Symbols(ctx context.Context) ([]string, error) {
	return []string{"EURUSD", "XAUUSD", "BTCUSD"}, nil
}

func (f *fakeFetcher) SymbolSpecification(ctx context.Context, symbol string) (*metaapi.Specification, error) {
	return &metaapi.Specification{Symbol: symbol, Digits: 5}, nil
}

func (f *fakeFetcher) callCount(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[symbol]
}

func testConfig() config.MetaAPIConfig {
	return config.MetaAPIConfig{
		Token:          "token",
		AccountID:      "account",
		PollInterval:   time.Hour,
		RequestSpacing: time.Millisecond,
		FreshnessTTL:   5 * time.Second,
		BatchSize:      10,
		MaxConcurrency: 4,
	}
}

func TestRelayInertWithoutCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Token = ""
	fetcher := newFakeFetcher()
	relay := NewRelay(cfg, fetcher, nopLogger{})

	relay.Start()
	defer relay.Stop()

	assert.False(t, relay.Available())

	_, err := relay.GetPrice(context.Background(), "EURUSD")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = relay.GetBatch(context.Background(), []string{"EURUSD"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	assert.Equal(t, 0, fetcher.callCount("EURUSD"))
}

func TestRelayInstrumentsFallBackWithoutCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Token = ""
	relay := NewRelay(cfg, newFakeFetcher(), nopLogger{})

	instruments := relay.Instruments(context.Background())
	assert.Len(t, instruments, len(DefaultSymbols()))
	assert.Equal(t, "EUR/USD", instruments[0].Name)
}

func TestGetPriceUsesFreshCache(t *testing.T) {
	fetcher := newFakeFetcher()
	relay := NewRelay(testConfig(), fetcher, nopLogger{})

	first, err := relay.GetPrice(context.Background(), "EURUSD")
	assert.NoError(t, err)
	assert.Equal(t, 1.1000, first.Bid)
	assert.Equal(t, 1, fetcher.callCount("EURUSD"))

	// Within the freshness window the cache answers.
	_, err = relay.GetPrice(context.Background(), "EURUSD")
	assert.NoError(t, err)
	assert.Equal(t, 1, fetcher.callCount("EURUSD"))
}

func TestGetPriceRefetchesStaleQuote(t *testing.T) {
	cfg := testConfig()
	cfg.FreshnessTTL = time.Nanosecond
	fetcher := newFakeFetcher()
	relay := NewRelay(cfg, fetcher, nopLogger{})

	_, err := relay.GetPrice(context.Background(), "EURUSD")
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = relay.GetPrice(context.Background(), "EURUSD")
	assert.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount("EURUSD"))
}

func TestGetBatchPartitionsAndToleratesFailures(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failing["GBPUSD"] = true
	relay := NewRelay(testConfig(), fetcher, nopLogger{})

	// Warm EURUSD so the batch call can serve it from cache.
	_, err := relay.GetPrice(context.Background(), "EURUSD")
	assert.NoError(t, err)

	prices, err := relay.GetBatch(context.Background(), []string{"EURUSD", "GBPUSD", "XAUUSD"})
	assert.NoError(t, err)

	assert.Contains(t, prices, "EURUSD")
	assert.Contains(t, prices, "XAUUSD")
	assert.NotContains(t, prices, "GBPUSD")

	// Cached EURUSD was not refetched.
	assert.Equal(t, 1, fetcher.callCount("EURUSD"))
	assert.Equal(t, 1, fetcher.callCount("XAUUSD"))
}

func TestSubscribersReceiveSnapshots(t *testing.T) {
	cfg := testConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.RequestSpacing = 0
	fetcher := newFakeFetcher()
	relay := NewRelay(cfg, fetcher, nopLogger{})

	ch, unsubscribe := relay.Subscribe()
	defer unsubscribe()

	relay.Start()
	defer relay.Stop()

	select {
	case snapshot := <-ch:
		assert.False(t, snapshot.Timestamp.IsZero())
		assert.Contains(t, snapshot.Prices, "EURUSD")
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	relay := NewRelay(testConfig(), newFakeFetcher(), nopLogger{})

	ch, unsubscribe := relay.Subscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
}
