package domain

import "time"

// Prioridades possíveis de um insight.
const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"
)

// Insight é um valor transitório gerado a cada requisição; nunca é
// persistido.
type Insight struct {
	Type        string         `json:"type"`
	Icon        string         `json:"icon"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    string         `json:"priority"`
	Data        map[string]any `json:"data,omitempty"`
}

type InsightsResponse struct {
	Insights    []*Insight `json:"insights"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Period      struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	} `json:"period"`
}
