package types

// LabelScore is one (label, probability) pair from the sentiment classifier
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifyRequest represents a single classification request
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassificationDetails carries the raw signals behind a verdict
type ClassificationDetails struct {
	SentimentScores   []LabelScore `json:"sentiment_scores"`
	TextLength        int          `json:"text_length"`
	CleanedTextLength int          `json:"cleaned_text_length"`
	WordCount         int          `json:"word_count"`
}

// ClassifyResponse represents a single classification result
type ClassifyResponse struct {
	Text       string                `json:"text"`
	IsArticle  bool                  `json:"is_article"`
	Confidence float64               `json:"confidence"`
	Details    ClassificationDetails `json:"classification_details"`
}

// BatchClassifyRequest represents a batch classification request
type BatchClassifyRequest struct {
	Texts []string `json:"texts"`
}

// BatchClassifyItem is one classified entry of a batch, tagged with its
// position in the submitted list
type BatchClassifyItem struct {
	Text       string  `json:"text"`
	IsArticle  bool    `json:"is_article"`
	Confidence float64 `json:"confidence"`
	Index      int     `json:"index"`
}

// BatchClassifyResponse aggregates a batch classification call
type BatchClassifyResponse struct {
	Results   []BatchClassifyItem `json:"results"`
	Count     int                 `json:"count"`
	Processed int                 `json:"processed"`
}
