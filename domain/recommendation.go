package domain

// ScoreBreakdown is the four-part decomposition of an overall score.
type ScoreBreakdown struct {
	SemanticSimilarity  float64 `json:"semantic_similarity"`
	BehavioralMatch     float64 `json:"behavioral_match"`
	ContextualRelevance float64 `json:"contextual_relevance"`
	MarketTrend         float64 `json:"market_trend"`
}

// AdvancedScore annotates a candidate with the weighted overall score, a
// confidence level and the per-component breakdown. OverallScore is always
// in [0, 1]; ConfidenceLevel in [0, 0.95].
type AdvancedScore struct {
	OverallScore    float64        `json:"overall_score"`
	ConfidenceLevel float64        `json:"confidence_level"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
}

// ScoredProduct exists for the duration of one scoring pass and is never
// persisted.
type ScoredProduct struct {
	Product   Product       `json:"product"`
	Score     AdvancedScore `json:"score"`
	Reasoning string        `json:"reasoning"`
}

// StreamConfig is the caller-tunable part of a recommendation stream.
type StreamConfig struct {
	BatchSize       int  `json:"batch_size"`
	RefreshInterval int  `json:"refresh_interval"` // seconds
	EnableRealTime  bool `json:"enable_real_time"`
}

// UpdateMetadata describes one published batch.
type UpdateMetadata struct {
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	AlgorithmVersion string `json:"algorithm_version,omitempty"`
	UpdateNumber     int    `json:"update_number,omitempty"`
	IsPeriodicUpdate bool   `json:"is_periodic_update,omitempty"`
}

// RecommendationUpdate is the pub/sub payload for one batch.
type RecommendationUpdate struct {
	Recommendations []ScoredProduct `json:"recommendations"`
	Metadata        UpdateMetadata  `json:"metadata"`
}
