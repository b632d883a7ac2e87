package types

// EmbedRequest represents a single text embedding request
type EmbedRequest struct {
	Text string `json:"text"`
}

// EmbedResponse represents the embedding response
type EmbedResponse struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
	Dimension int       `json:"dimension"`
}

// BatchEmbedRequest represents multiple text embedding request
type BatchEmbedRequest struct {
	Texts []string `json:"texts"`
}

// BatchEmbedResponse represents the batch embedding response
type BatchEmbedResponse struct {
	Texts      []string    `json:"texts"`
	Embeddings [][]float64 `json:"embeddings"`
	Count      int         `json:"count"`
	Dimension  int         `json:"dimension"`
}

// SimilarityRequest carries two embeddings to compare
type SimilarityRequest struct {
	Embedding1 []float64 `json:"embedding1"`
	Embedding2 []float64 `json:"embedding2"`
}

// SimilarityResponse carries the cosine similarity of the two embeddings
type SimilarityResponse struct {
	Similarity float64 `json:"similarity"`
}
