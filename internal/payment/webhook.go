package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// EventChargeSuccess is the only webhook event this system reacts to.
const EventChargeSuccess = "charge.success"

// WebhookEvent is the subset of the Paystack event payload we read.
// Amount is in kobo, as delivered by the gateway.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// VerifySignature checks the hex HMAC-SHA512 of body against the
// header-supplied signature, in constant time.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(signature))
}

// ParseEvent decodes a verified webhook body.
func ParseEvent(body []byte) (WebhookEvent, error) {
	var ev WebhookEvent
	err := json.Unmarshal(body, &ev)
	return ev, err
}
