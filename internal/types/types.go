package types

// InboundMessage is what the messaging provider posts for each user message.
type InboundMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type AckResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MenuPreview is returned by the menu preview endpoint.
type MenuPreview struct {
	MenuText string `json:"menu_text"`
}
