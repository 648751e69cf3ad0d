package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ordergate/internal/model"
)

const (
	loginPath       = "/accounts/login"
	createOrderPath = "/Order/CreateNewOrder"

	invoiceFetchTimeout = 15 * time.Second
)

type IGateway interface {
	Authenticate(context.Context) (string, error)
	CreateOrder(context.Context, string, model.ExternalOrder) (json.RawMessage, error)
	FetchInvoices(context.Context, string, model.InvoiceQuery) ([]model.Invoice, error)
}

// Gateway is the client for the external order/invoice system. Every
// operation is a single attempt; there are no retries, the caller decides
// whether a failed request is worth repeating.
type Gateway struct {
	baseURL     string
	invoicePath string
	username    string
	password    string
	logger      *zap.SugaredLogger

	client *http.Client
	// the invoice endpoint gets its own client with a timeout
	invoiceClient *http.Client
}

func NewGateway(baseURL, invoicePath, username, password string, logger *zap.SugaredLogger) *Gateway {
	return &Gateway{
		baseURL:       strings.TrimRight(baseURL, "/"),
		invoicePath:   invoicePath,
		username:      username,
		password:      password,
		logger:        logger,
		client:        &http.Client{},
		invoiceClient: &http.Client{Timeout: invoiceFetchTimeout},
	}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginOutput struct {
	Token string `json:"token"`
}

// Authenticate obtains a fresh bearer token. Failures are tagged so callers
// can tell bad credentials from a malformed answer from a network error.
func (g *Gateway) Authenticate(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginInput{Username: g.username, Password: g.password})
	if err != nil {
		return "", err
	}

	req, err := g.newRequest(ctx, http.MethodPost, g.baseURL+loginPath, body, "")
	if err != nil {
		return "", err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway login: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		return "", ErrGatewayBadCredentials
	}

	var out loginOutput
	if err = json.NewDecoder(res.Body).Decode(&out); err != nil || out.Token == "" {
		return "", ErrGatewayMalformedResponse
	}

	return out.Token, nil
}

// CreateOrder posts one order and returns the external system's response
// unmodified. The external system is the order of record; nothing is written
// locally on this path.
func (g *Gateway) CreateOrder(ctx context.Context, token string, order model.ExternalOrder) (json.RawMessage, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := g.newRequest(ctx, http.MethodPost, g.baseURL+createOrderPath, body, token)
	if err != nil {
		return nil, err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway create order: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway create order: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		return nil, &ExternalRejectionError{Op: "create order", Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	return raw, nil
}

type invoiceListOutput struct {
	Invoices []model.Invoice `json:"invoices"`
}

// FetchInvoices lists invoices for a customer and date range. The filter
// travels in the body of a GET request; that is the external API's contract,
// do not move it to query parameters.
func (g *Gateway) FetchInvoices(ctx context.Context, token string, q model.InvoiceQuery) ([]model.Invoice, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}

	req, err := g.newRequest(ctx, http.MethodGet, g.baseURL+g.invoicePath, body, token)
	if err != nil {
		return nil, err
	}

	res, err := g.invoiceClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch invoices: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch invoices: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		return nil, &ExternalRejectionError{Op: "fetch invoices", Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out invoiceListOutput
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("gateway fetch invoices: %w", err)
	}

	return out.Invoices, nil
}

func (g *Gateway) newRequest(ctx context.Context, method, url string, body []byte, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	rid := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", rid)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	g.logger.Debugw("gateway request", "method", method, "url", url, "request_id", rid)
	return req, nil
}
