package worker

type CollectTaskPayload struct {
	// MaxItems overrides the configured collection cap when > 0.
	MaxItems int `json:"max_items,omitempty"`

	CorrelationID string `json:"correlation_id,omitempty"`
}
