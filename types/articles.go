package types

// Embedding status values for article records. Rows start out pending and
// move to success or error; this service never creates or deletes rows.
const (
	EmbeddingStatusPending = "pending"
	EmbeddingStatusSuccess = "success"
	EmbeddingStatusError   = "error"
)

// StoreEmbeddingRequest is the body of a single store call; the article id
// travels in the URL path
type StoreEmbeddingRequest struct {
	Text string `json:"text"`
}

// StoreEmbeddingResponse confirms a stored embedding
type StoreEmbeddingResponse struct {
	ArticleID          string `json:"article_id"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	EmbeddingStatus    string `json:"embedding_status"`
	Message            string `json:"message"`
}

// BatchArticleItem is one (id, text) pair of a batch store request
type BatchArticleItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BatchStoreRequest represents a batch store request
type BatchStoreRequest struct {
	Articles []BatchArticleItem `json:"articles"`
}

// BatchStoreItemResult is the per-item outcome of a batch store call
type BatchStoreItemResult struct {
	ArticleID          string `json:"article_id"`
	Status             string `json:"status"`
	Message            string `json:"message,omitempty"`
	EmbeddingDimension int    `json:"embedding_dimension,omitempty"`
}

// BatchStoreResponse aggregates a batch store call
type BatchStoreResponse struct {
	TotalArticles     int                    `json:"total_articles"`
	SuccessfulUpdates int                    `json:"successful_updates"`
	Results           []BatchStoreItemResult `json:"results"`
}

// HealthResponse reports collaborator liveness
type HealthResponse struct {
	Status               string `json:"status"`
	EmbeddingModel       string `json:"embedding_model"`
	ClassifierModel      string `json:"classifier_model"`
	EmbeddingModelLoaded bool   `json:"embedding_model_loaded"`
	ClassifierLoaded     bool   `json:"classifier_loaded"`
	DatabaseHealthy      bool   `json:"database_healthy"`
}
