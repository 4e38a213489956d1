package dify

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileInput attaches a file to a message, either by remote URL or by the
// identifier of a previously uploaded file
type FileInput struct {
	Type           string `json:"type"`
	TransferMethod string `json:"transfer_method"`
	URL            string `json:"url,omitempty"`
	UploadFileId   string `json:"upload_file_id,omitempty"`
}

// Metadata carries usage and retrieval information for an answer
type Metadata struct {
	Usage              *Usage              `json:"usage,omitempty"`
	RetrieverResources []RetrieverResource `json:"retriever_resources,omitempty"`
}

// Usage reports token and cost accounting for one exchange
type Usage struct {
	PromptTokens     uint    `json:"prompt_tokens,omitempty"`
	CompletionTokens uint    `json:"completion_tokens,omitempty"`
	TotalTokens      uint    `json:"total_tokens,omitempty"`
	TotalPrice       string  `json:"total_price,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	Latency          float64 `json:"latency,omitempty"`
}

// RetrieverResource cites a knowledge-base segment used for an answer
type RetrieverResource struct {
	Position     int     `json:"position,omitempty"`
	DatasetId    string  `json:"dataset_id,omitempty"`
	DatasetName  string  `json:"dataset_name,omitempty"`
	DocumentId   string  `json:"document_id,omitempty"`
	DocumentName string  `json:"document_name,omitempty"`
	SegmentId    string  `json:"segment_id,omitempty"`
	Score        float64 `json:"score,omitempty"`
	Content      string  `json:"content,omitempty"`
}

// Message is one prior exchange within a conversation
type Message struct {
	Id             string         `json:"id"`
	ConversationId string         `json:"conversation_id"`
	Inputs         map[string]any `json:"inputs,omitempty"`
	Query          string         `json:"query,omitempty"`
	Answer         string         `json:"answer,omitempty"`
	Feedback       *struct {
		Rating Rating `json:"rating"`
	} `json:"feedback,omitempty"`
	CreatedAt int64 `json:"created_at,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TransferMethodRemoteURL = "remote_url"
	TransferMethodLocalFile = "local_file"
)
