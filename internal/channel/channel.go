package channel

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

// Sender delivers one outbound text message to an opaque recipient.
// Delivery failures are logged and dropped by callers; they are never
// surfaced back to the user.
type Sender interface {
	Send(ctx context.Context, recipient, text string) error
}

// HTTPGateway posts outbound messages to a WhatsApp provider gateway.
type HTTPGateway struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewHTTPGateway(baseURL, token string) *HTTPGateway {
	return &HTTPGateway{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type outboundMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (g *HTTPGateway) Send(ctx context.Context, recipient, text string) error {
	payload, err := json.Marshal(outboundMessage{To: recipient, Body: text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway send failed: %s", strings.TrimSpace(string(b)))
	}
	return nil
}
