package metaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Quote is one bid/ask pair from the provider.
type Quote struct {
	Symbol string    `json:"symbol"`
	Bid    float64   `json:"bid"`
	Ask    float64   `json:"ask"`
	Time   time.Time `json:"time"`
}

// Specification describes one tradable instrument.
type Specification struct {
	Symbol        string  `json:"symbol"`
	Description   string  `json:"description"`
	Digits        int     `json:"digits"`
	ContractSize  float64 `json:"contractSize"`
	MinVolume     float64 `json:"minVolume"`
	MaxVolume     float64 `json:"maxVolume"`
	VolumeStep    float64 `json:"volumeStep"`
	QuoteCurrency string  `json:"quoteCurrency"`
}

// Client talks to the MetaAPI market data REST endpoints. All calls carry
// the static auth-token header and are bounded by the HTTP client timeout.
type Client struct {
	baseURL   string
	token     string
	accountID string
	http      *http.Client
}

func NewClient(baseURL, token, accountID string) *Client {
	return &Client{
		baseURL:   baseURL,
		token:     token,
		accountID: accountID,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("auth-token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metaapi: unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

// CurrentPrice fetches the live quote for one symbol.
func (c *Client) CurrentPrice(ctx context.Context, symbol string) (*Quote, error) {
	var payload struct {
		Bid float64 `json:"bid"`
		Ask float64 `json:"ask"`
	}
	path := fmt.Sprintf("/users/current/accounts/%s/symbols/%s/current-price", c.accountID, symbol)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	if payload.Bid == 0 && payload.Ask == 0 {
		return nil, fmt.Errorf("metaapi: empty quote for %s", symbol)
	}
	return &Quote{
		Symbol: symbol,
		Bid:    payload.Bid,
		Ask:    payload.Ask,
		Time:   time.Now(),
	}, nil
}

// Symbols lists the instruments available on the account.
func (c *Client) Symbols(ctx context.Context) ([]string, error) {
	var symbols []string
	path := fmt.Sprintf("/users/current/accounts/%s/symbols", c.accountID)
	if err := c.get(ctx, path, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// SymbolSpecification fetches contract details for one symbol.
func (c *Client) SymbolSpecification(ctx context.Context, symbol string) (*Specification, error) {
	var spec Specification
	path := fmt.Sprintf("/users/current/accounts/%s/symbols/%s/specification", c.accountID, symbol)
	if err := c.get(ctx, path, &spec); err != nil {
		return nil, err
	}
	if spec.Symbol == "" {
		spec.Symbol = symbol
	}
	return &spec, nil
}
