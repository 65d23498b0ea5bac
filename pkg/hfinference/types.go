package hfinference

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Inputs    string `json:"inputs"`
	Truncate  bool   `json:"truncate"`
	RawScores bool   `json:"raw_scores"`
}

// LabelScore is a single class score as returned by the server.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Info is the subset of GET /info this service reads.
type Info struct {
	ModelID        string    `json:"model_id"`
	ModelSHA       string    `json:"model_sha,omitempty"`
	ModelDType     string    `json:"model_dtype,omitempty"`
	ModelType      ModelType `json:"model_type"`
	MaxInputLength int       `json:"max_input_length"`
	Version        string    `json:"version,omitempty"`
}

// ModelType describes the served head. Only classifiers are usable here.
type ModelType struct {
	Classifier *ClassifierInfo `json:"classifier,omitempty"`
}

// ClassifierInfo carries the model's own label mapping.
type ClassifierInfo struct {
	ID2Label map[string]string `json:"id2label"`
	Label2ID map[string]int    `json:"label2id"`
}

// ErrorResponse is the error body returned by the server.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}
