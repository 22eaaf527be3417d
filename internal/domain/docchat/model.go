package docchat

// Config controls the chat model and the prompt wrapping.
type Config struct {
	Model          string
	Temperature    float32
	SystemPrompt   string
	QuestionPrefix string
}

// Request is the body accepted by the chat endpoint.
type Request struct {
	DocumentData string `json:"documentData"`
	Question     string `json:"question"`
}

// Response carries the assistant's reply.
type Response struct {
	Message string `json:"message"`
}
