package lambda

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

const invalidEventBody = `{"error":"Invalid request format."}`

// Adapter serves API Gateway proxy events through the gin engine used by the HTTP server.
type Adapter struct {
	proxy  *ginadapter.GinLambda
	logger *slog.Logger
}

// NewAdapter wraps the engine built for the long-running server.
func NewAdapter(engine *gin.Engine, logger *slog.Logger) *Adapter {
	return &Adapter{proxy: ginadapter.New(engine), logger: logger.With("component", "lambda.adapter")}
}

// Handle is the lambda.Start entry point. Events that cannot be turned into a request
// (bad base64 body, malformed path) get a 400 instead of failing the invocation.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := a.proxy.ProxyWithContext(ctx, event)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to proxy api gateway event", "error", err, "method", event.HTTPMethod, "path", event.Path)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       invalidEventBody,
		}, nil
	}
	return resp, nil
}
