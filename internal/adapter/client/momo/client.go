package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.MomoGateway against the mobile-money gateway's
// REST API. The gateway reports business rejections inside a 200 body, so
// HTTP errors here always mean transport-level trouble.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a gateway client.
func New(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

type instructionRequest struct {
	CustomerName  string          `json:"customer_name"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Network       string          `json:"network"`
	Narration     string          `json:"narration"`
}

type receiptResponse struct {
	ErrorCode         string          `json:"error_code"`
	Message           string          `json:"error_message"`
	TransactionID     string          `json:"transaction_id"`
	RefNo             string          `json:"ref_no"`
	Amount            decimal.Decimal `json:"amount"`
	Network           string          `json:"network"`
	Fee               decimal.Decimal `json:"fee"`
	TransactionStatus string          `json:"transaction_status"`
}

type statusResponse struct {
	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
}

type nameEnquiryRequest struct {
	AccountNumber string `json:"account_number"`
	Network       string `json:"network"`
}

type nameEnquiryResponse struct {
	ErrorCode string `json:"error_code"`
	Name      string `json:"name"`
}

// CreditWallet pays money out to a subscriber.
func (c *Client) CreditWallet(ctx context.Context, in ports.GatewayInstruction) (*ports.GatewayReceipt, error) {
	return c.sendInstruction(ctx, "/credit-wallet", in)
}

// DebitWallet charges a subscriber.
func (c *Client) DebitWallet(ctx context.Context, in ports.GatewayInstruction) (*ports.GatewayReceipt, error) {
	return c.sendInstruction(ctx, "/debit-wallet", in)
}

func (c *Client) sendInstruction(ctx context.Context, path string, in ports.GatewayInstruction) (*ports.GatewayReceipt, error) {
	body := instructionRequest{
		CustomerName:  in.Customer,
		AccountNumber: in.MSISDN,
		Amount:        in.Amount,
		Network:       string(in.Network),
		Narration:     in.Narration,
	}

	var resp receiptResponse
	if err := c.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	return &ports.GatewayReceipt{
		ErrorCode:         resp.ErrorCode,
		Message:           resp.Message,
		TransactionID:     resp.TransactionID,
		RefNo:             resp.RefNo,
		Amount:            resp.Amount,
		Network:           resp.Network,
		Fee:               resp.Fee,
		TransactionStatus: resp.TransactionStatus,
	}, nil
}

// CheckStatus queries the state of a submitted instruction. Some gateway
// deployments only accept one of three shapes for this endpoint, so a 405 or
// 404 falls through: POST body, then GET query, then GET path.
func (c *Client) CheckStatus(ctx context.Context, refNo string) (*ports.GatewayStatus, error) {
	var resp statusResponse

	err := c.doJSON(ctx, http.MethodPost, "/transaction-status", map[string]string{"ref_no": refNo}, &resp)
	if shouldFallBack(err) {
		c.log.Debug().Str("ref_no", refNo).Msg("status POST unsupported, retrying as GET query")
		err = c.doJSON(ctx, http.MethodGet, "/transaction-status?ref_no="+url.QueryEscape(refNo), nil, &resp)
	}
	if shouldFallBack(err) {
		c.log.Debug().Str("ref_no", refNo).Msg("status GET query unsupported, retrying as GET path")
		err = c.doJSON(ctx, http.MethodGet, "/transaction-status/"+url.PathEscape(refNo), nil, &resp)
	}
	if err != nil {
		return nil, err
	}

	return &ports.GatewayStatus{Status: resp.Status, ErrorCode: resp.ErrorCode}, nil
}

// NameEnquiry resolves the account holder name for an MSISDN.
func (c *Client) NameEnquiry(ctx context.Context, msisdn string, network domain.Carrier) (string, error) {
	var resp nameEnquiryResponse
	err := c.doJSON(ctx, http.MethodPost, "/name-enquiry", nameEnquiryRequest{
		AccountNumber: msisdn,
		Network:       string(network),
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Name == "" {
		return "", fmt.Errorf("name enquiry: no name for account (code %s)", resp.ErrorCode)
	}
	return resp.Name, nil
}

// statusError marks a non-2xx gateway answer with its HTTP status, so the
// status-check fallback can distinguish 405/404 from real failures.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.code, e.body)
}

func shouldFallBack(err error) bool {
	se, ok := err.(*statusError)
	return ok && (se.code == http.StatusMethodNotAllowed || se.code == http.StatusNotFound)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling gateway request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(data))}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding gateway response: %w", err)
	}
	return nil
}
