package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat-completions client
type IOpenAI interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
