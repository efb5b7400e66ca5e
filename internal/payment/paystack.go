package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// KoboPerNaira is Paystack's currency-unit contract: the initialize API
// takes amounts in kobo, so naira totals are multiplied by 100 before the
// call. This is an external contract, not a tunable.
const KoboPerNaira = 100

// CheckoutSession is the hosted checkout created for one order.
type CheckoutSession struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// Client talks to the Paystack transaction API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

func NewClient(baseURL, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
	}
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int    `json:"amount"`
	CallbackURL string `json:"callback_url"`
}

type initializeResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"message"`
	Data   struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// CreateSession initializes a transaction for amountKobo and returns the
// hosted checkout session. Any non-2xx response, transport error, or
// malformed body is an error; the caller decides the user-facing handling.
func (c *Client) CreateSession(ctx context.Context, amountKobo int, email, callbackURL string) (CheckoutSession, error) {
	payload, err := json.Marshal(initializeRequest{Email: email, Amount: amountKobo, CallbackURL: callbackURL})
	if err != nil {
		return CheckoutSession{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return CheckoutSession{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CheckoutSession{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return CheckoutSession{}, fmt.Errorf("paystack initialize failed: %s", strings.TrimSpace(string(b)))
	}
	var ir initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return CheckoutSession{}, fmt.Errorf("paystack initialize: bad response: %w", err)
	}
	if !ir.Status || ir.Data.AuthorizationURL == "" {
		return CheckoutSession{}, fmt.Errorf("paystack initialize rejected: %s", ir.Msg)
	}
	return CheckoutSession{
		AuthorizationURL: ir.Data.AuthorizationURL,
		AccessCode:       ir.Data.AccessCode,
		Reference:        ir.Data.Reference,
	}, nil
}
