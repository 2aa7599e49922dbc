package allegro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

const (
	DefaultAPIURL = "https://api.allegro.pl"
	acceptHeader  = "application/vnd.allegro.public.v1+json"
)

// TokenSource supplies a valid access token for API calls.
type TokenSource interface {
	ValidAccessToken(ctx context.Context) (string, error)
}

// FetchedOrderLine pairs a flattened order line with a stable identifier
// (checkout form ID plus line index) used for cache deduplication.
type FetchedOrderLine struct {
	ID   string
	Line domain.OrderLine
}

type Client struct {
	apiURL string
	tokens TokenSource
	client *http.Client
}

type ClientConfig struct {
	// APIURL overrides the marketplace host; tests point it at httptest.
	APIURL string
}

func NewClient(cfg ClientConfig, tokens TokenSource) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	return &Client{
		apiURL: cfg.APIURL,
		tokens: tokens,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type OrderEventsResponse struct {
	Events []struct {
		ID           string `json:"id"`
		Type         string `json:"type"`
		CheckoutForm struct {
			ID string `json:"id"`
		} `json:"checkoutForm"`
	} `json:"events"`
}

type CheckoutForm struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`
	LineItems []struct {
		Offer struct {
			Name string `json:"name"`
		} `json:"offer"`
		Quantity int `json:"quantity"`
		Price    struct {
			Amount   string `json:"amount"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"lineItems"`
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	token, err := c.tokens.ValidAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("obtain access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptHeader)

	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// GetOrderEvents lists recent order events ready for processing.
func (c *Client) GetOrderEvents(ctx context.Context, limit int) (*OrderEventsResponse, error) {
	var events OrderEventsResponse
	err := c.get(ctx, "/order/events", map[string]string{
		"type":  "READY_FOR_PROCESSING",
		"limit": strconv.Itoa(limit),
	}, &events)
	if err != nil {
		return nil, err
	}
	return &events, nil
}

// GetCheckoutForm fetches the full checkout form for one order.
func (c *Client) GetCheckoutForm(ctx context.Context, formID string) (*CheckoutForm, error) {
	var form CheckoutForm
	if err := c.get(ctx, "/order/checkout-forms/"+formID, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// FetchOrderLines lists order events, retrieves each distinct checkout form
// once, and flattens its line items into order lines. The form's updatedAt
// timestamp is converted to a local calendar date before the data reaches
// the analytics core.
func (c *Client) FetchOrderLines(ctx context.Context, limit int) ([]FetchedOrderLine, error) {
	logger := zerolog.Ctx(ctx)

	events, err := c.GetOrderEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch order events: %w", err)
	}

	seen := make(map[string]bool)
	lines := make([]FetchedOrderLine, 0)

	for _, event := range events.Events {
		formID := event.CheckoutForm.ID
		if seen[formID] {
			continue
		}
		seen[formID] = true

		form, err := c.GetCheckoutForm(ctx, formID)
		if err != nil {
			return nil, fmt.Errorf("fetch checkout form %s: %w", formID, err)
		}

		orderDate := domain.Day(form.UpdatedAt.Local())
		for i, item := range form.LineItems {
			price, err := decimal.NewFromString(item.Price.Amount)
			if err != nil {
				return nil, fmt.Errorf("parse price %q in form %s: %w", item.Price.Amount, formID, err)
			}
			lines = append(lines, FetchedOrderLine{
				ID: fmt.Sprintf("%s/%d", formID, i),
				Line: domain.OrderLine{
					Date:      orderDate,
					Product:   item.Offer.Name,
					Quantity:  item.Quantity,
					UnitPrice: price,
				},
			})
		}
	}

	logger.Info().
		Int("events", len(events.Events)).
		Int("forms", len(seen)).
		Int("lines", len(lines)).
		Msg("fetched order lines")

	return lines, nil
}
