package translation

import "encoding/json"

// Config wires the fixed pipeline parameters.
type Config struct {
	SummaryMaxLength int
	SourceLang       string
}

// Request is the body accepted by the translate endpoint.
type Request struct {
	DocumentData string `json:"documentData"`
	TargetLang   string `json:"targetLang"`
}

// Result is the translation provider's payload, passed through untouched.
type Result = json.RawMessage

// SummarizeInput is sent to the summarization capability.
type SummarizeInput struct {
	InputText string `json:"input_text"`
	MaxLength int    `json:"max_length"`
}

// SummaryResult is the part of the summarization output this service reads.
type SummaryResult struct {
	Summary string `json:"summary"`
}

// TranslateInput is sent to the translation capability.
type TranslateInput struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}
