package postage

// SendLetterInput describes one physical letter. Address is the multi-line
// destination block exactly as it should be printed.
type SendLetterInput struct {
	Address string `json:"address"`
	Content string `json:"content"`
}

type sendLetterResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
