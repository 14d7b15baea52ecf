package models

type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

type LabelScore struct {
	Label string
	Score float64
}

// AnalysisResult is one of Prediction, APIError or ParseError.
type AnalysisResult interface {
	isAnalysisResult()
}

// Prediction is the first element of the inference response: the per-label
// scores for the submitted text.
type Prediction struct {
	Scores []LabelScore
}

// Top returns the first score entry. Parsing guarantees at least one.
func (p Prediction) Top() LabelScore {
	return p.Scores[0]
}

type APIError struct {
	StatusCode int
	Message    string
}

// ParseError is returned for a 200 response whose body does not have the
// expected [[{"label": ..., "score": ...}]] shape.
type ParseError struct {
	Reason string
	Body   string
}

func (e ParseError) Error() string {
	return "unexpected response: " + e.Reason
}

func (Prediction) isAnalysisResult() {}
func (APIError) isAnalysisResult()   {}
func (ParseError) isAnalysisResult() {}
