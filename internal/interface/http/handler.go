package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yanqian/docbridge/internal/domain/docchat"
	"github.com/yanqian/docbridge/internal/domain/translation"
)

const (
	healthStatus = "Microservice is running"

	msgInvalidRequest  = "Invalid request format."
	msgTranslateFailed = "An error occurred during translation."
	msgChatFailed      = "An error occurred while processing the chat."
)

var errMalformedJSON = errors.New("request body is not a single valid JSON document")

// Handler wires the HTTP transport to domain services.
type Handler struct {
	translationSvc translation.Service
	chatSvc        docchat.Service
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(translationSvc translation.Service, chatSvc docchat.Service, logger *slog.Logger) *Handler {
	return &Handler{
		translationSvc: translationSvc,
		chatSvc:        chatSvc,
		logger:         logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	h.logger.Info("health check", "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, gin.H{"status": healthStatus})
}

// TranslateDocument summarizes the document and returns the provider's translation JSON verbatim.
func (h *Handler) TranslateDocument(c *gin.Context) {
	var req translation.Request
	if err := bindJSONBody(c, &req); err != nil {
		abortWithError(c, newBadRequest(err))
		return
	}

	result, err := h.translationSvc.TranslateDocument(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, newServiceError(msgTranslateFailed, err))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// ChatToDocument answers a question about the supplied document.
func (h *Handler) ChatToDocument(c *gin.Context) {
	var req docchat.Request
	if err := bindJSONBody(c, &req); err != nil {
		abortWithError(c, newBadRequest(err))
		return
	}

	resp, err := h.chatSvc.Ask(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, newServiceError(msgChatFailed, err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindJSONBody binds only when the whole body parses as JSON; gin's decoder alone stops after the first value.
func bindJSONBody(c *gin.Context, obj any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if !json.Valid(raw) {
		return errMalformedJSON
	}
	return binding.JSON.BindBody(raw, obj)
}
