package domain

// ScamVerdict is the result of running a message through the scam classifier.
type ScamVerdict struct {
	IsScam      bool     `json:"is_scam"`
	Probability *float64 `json:"probability"`
}

// Intent is the result of the external intent-classification service.
type Intent struct {
	Intent     string   `json:"intent,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}
