package pricefeed

import (
	"context"
	"sync"
	"time"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/pkg/metaapi"

	gocache "github.com/patrickmn/go-cache"
)

// Fetcher is the provider surface the relay needs. *metaapi.Client
// satisfies it; tests plug in a fake.
type Fetcher interface {
	CurrentPrice(ctx context.Context, symbol string) (*metaapi.Quote, error)
	Symbols(ctx context.Context) ([]string, error)
	SymbolSpecification(ctx context.Context, symbol string) (*metaapi.Specification, error)
}

// Snapshot is the full cache view broadcast to subscribers after each
// polling pass.
type Snapshot struct {
	Prices    map[string]metaapi.Quote `json:"prices"`
	Timestamp time.Time                `json:"timestamp"`
}

// Relay polls the quote provider for the instrument universe and serves
// reads from its cache. Without credentials it stays inert and every read
// reports the price as not available.
type Relay struct {
	cfg     config.MetaAPIConfig
	fetcher Fetcher
	cache   *gocache.Cache
	log     logger.ILogger

	mu          sync.Mutex
	subscribers map[chan Snapshot]struct{}
	stop        chan struct{}
	running     bool
	wg          sync.WaitGroup
}

func NewRelay(cfg config.MetaAPIConfig, fetcher Fetcher, log logger.ILogger) *Relay {
	return &Relay{
		cfg:         cfg,
		fetcher:     fetcher,
		cache:       gocache.New(gocache.NoExpiration, 10*time.Minute),
		log:         log,
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// Available reports whether provider credentials are configured.
func (r *Relay) Available() bool {
	return r.cfg.Token != "" && r.cfg.AccountID != ""
}

// Start launches the polling loop. A relay without credentials logs once
// and does nothing.
func (r *Relay) Start() {
	if !r.Available() {
		r.log.Warn("pricefeed", "provider credentials missing, price relay inactive", nil)
		return
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stop = make(chan struct{})
	r.mu.Unlock()

	r.log.Info("pricefeed", "price relay started", map[string]interface{}{
		"interval": r.cfg.PollInterval.String(),
		"symbols":  len(DefaultSymbols()),
	})

	r.wg.Add(1)
	go r.pollLoop()
}

// Stop halts polling and closes subscriber channels.
func (r *Relay) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	r.mu.Unlock()

	r.wg.Wait()

	r.mu.Lock()
	for ch := range r.subscribers {
		close(ch)
		delete(r.subscribers, ch)
	}
	r.mu.Unlock()
}

func (r *Relay) pollLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	r.pollOnce()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.pollOnce()
		}
	}
}

// pollOnce walks the instrument universe sequentially with fixed spacing
// between calls so the provider's rate limit is never tripped.
func (r *Relay) pollOnce() {
	symbols := DefaultSymbols()
	fetched := 0

	for i, symbol := range symbols {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.PollInterval)
		quote, err := r.fetcher.CurrentPrice(ctx, symbol)
		cancel()
		if err == nil && quote != nil {
			r.cache.Set(symbol, *quote, gocache.NoExpiration)
			fetched++
		}

		if i < len(symbols)-1 {
			select {
			case <-r.stop:
				return
			case <-time.After(r.cfg.RequestSpacing):
			}
		}
	}

	if fetched > 0 {
		r.log.Debug("pricefeed", "polling pass complete", map[string]interface{}{
			"fetched": fetched,
			"total":   len(symbols),
		})
	}

	r.broadcast()
}

func (r *Relay) broadcast() {
	snapshot := Snapshot{Prices: r.AllPrices(), Timestamp: time.Now()}

	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Slow subscriber, drop this snapshot for it.
		}
	}
}

// Subscribe returns a channel of snapshots and an unsubscribe function.
func (r *Relay) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 4)

	r.mu.Lock()
	r.subscribers[ch] = struct{}{}
	r.mu.Unlock()

	unsubscribe := func() {
		r.mu.Lock()
		if _, ok := r.subscribers[ch]; ok {
			delete(r.subscribers, ch)
			close(ch)
		}
		r.mu.Unlock()
	}
	return ch, unsubscribe
}

func (r *Relay) cachedQuote(symbol string) (metaapi.Quote, bool) {
	if raw, found := r.cache.Get(symbol); found {
		quote := raw.(metaapi.Quote)
		if time.Since(quote.Time) < r.cfg.FreshnessTTL {
			return quote, true
		}
	}
	return metaapi.Quote{}, false
}

// GetPrice serves the cached quote when fresh, otherwise fetches directly.
func (r *Relay) GetPrice(ctx context.Context, symbol string) (*metaapi.Quote, error) {
	if !r.Available() {
		return nil, apperr.NotFound("Price not available")
	}

	if quote, ok := r.cachedQuote(symbol); ok {
		return &quote, nil
	}

	quote, err := r.fetcher.CurrentPrice(ctx, symbol)
	if err != nil {
		return nil, apperr.NotFound("Price not available")
	}
	r.cache.Set(symbol, *quote, gocache.NoExpiration)
	return quote, nil
}

// GetBatch resolves fresh symbols from cache and fetches the stale rest
// with bounded concurrency. Symbols that fail are absent from the result.
func (r *Relay) GetBatch(ctx context.Context, symbols []string) (map[string]metaapi.Quote, error) {
	if !r.Available() {
		return nil, apperr.NotFound("Price not available")
	}

	prices := make(map[string]metaapi.Quote, len(symbols))
	var stale []string
	for _, symbol := range symbols {
		if quote, ok := r.cachedQuote(symbol); ok {
			prices[symbol] = quote
		} else {
			stale = append(stale, symbol)
		}
	}

	if len(stale) == 0 {
		return prices, nil
	}

	type result struct {
		symbol string
		quote  *metaapi.Quote
	}

	sem := make(chan struct{}, r.cfg.MaxConcurrency)
	results := make(chan result, len(stale))
	var wg sync.WaitGroup

	for _, symbol := range stale {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			quote, err := r.fetcher.CurrentPrice(ctx, symbol)
			if err != nil {
				results <- result{symbol: symbol}
				return
			}
			r.cache.Set(symbol, *quote, gocache.NoExpiration)
			results <- result{symbol: symbol, quote: quote}
		}(symbol)
	}

	wg.Wait()
	close(results)

	for res := range results {
		if res.quote != nil {
			prices[res.symbol] = *res.quote
		}
	}
	return prices, nil
}

// AllPrices returns every cached quote regardless of freshness.
func (r *Relay) AllPrices() map[string]metaapi.Quote {
	items := r.cache.Items()
	prices := make(map[string]metaapi.Quote, len(items))
	for symbol, item := range items {
		prices[symbol] = item.Object.(metaapi.Quote)
	}
	return prices
}

// Instruments lists the provider's symbols enriched with display metadata,
// falling back to the static set when the provider is unreachable.
func (r *Relay) Instruments(ctx context.Context) []Instrument {
	if !r.Available() {
		return DefaultInstruments()
	}

	symbols, err := r.fetcher.Symbols(ctx)
	if err != nil || len(symbols) == 0 {
		return DefaultInstruments()
	}

	instruments := make([]Instrument, len(symbols))
	for i, s := range symbols {
		instruments[i] = buildInstrument(s)
	}
	return instruments
}
