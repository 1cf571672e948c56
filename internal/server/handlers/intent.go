package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/intent"
	"github.com/vzahanych/weather-answer/internal/output"
	"github.com/vzahanych/weather-answer/internal/server/utils"
)

// Answerer answers one decoded question and publishes the result.
type Answerer interface {
	Handle(ctx context.Context, msg *intent.Message) (*output.Envelope, error)
}

type IntentHandler struct {
	answerer Answerer
	decoder  intent.Decoder
	logger   *zap.Logger
}

func NewIntentHandler(answerer Answerer, decoder intent.Decoder, logger *zap.Logger) *IntentHandler {
	return &IntentHandler{
		answerer: answerer,
		decoder:  decoder,
		logger:   logger,
	}
}

// PostIntent answers a Rhasspy remote intent request. The body is decoded
// with the configured front end.
func (h *IntentHandler) PostIntent(c *gin.Context) {
	requestID := utils.GetRequestIDFromGinContext(c)
	reqLogger := h.logger.With(zap.String("request_id", requestID))

	body, err := c.GetRawData()
	if err != nil {
		reqLogger.Warn("Failed to read request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to read request body",
			Code:    "INVALID_BODY",
			Details: err.Error(),
		})
		return
	}

	msg, err := h.decoder.Decode(body)
	if err != nil {
		reqLogger.Warn("Invalid intent message",
			zap.String("decoder", h.decoder.Name()),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid intent message",
			Code:    "INVALID_INTENT",
			Details: err.Error(),
		})
		return
	}

	utils.GetSpanFromGinContext(c).SetAttributes(
		attribute.String("intent.decoder", h.decoder.Name()),
		attribute.String("intent.site_id", msg.SiteID),
	)

	h.respond(c, reqLogger, msg)
}

// GetAnswer answers a question given as query parameters.
func (h *IntentHandler) GetAnswer(c *gin.Context) {
	requestID := utils.GetRequestIDFromGinContext(c)
	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var args intent.Args
	if err := c.ShouldBindQuery(&args); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}
	if fields := utils.ValidateStruct(args); len(fields) > 0 {
		reqLogger.Warn("Invalid request parameters", zap.Int("fields", len(fields)))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid request parameters",
			Code:   "INVALID_PARAMS",
			Fields: fields,
		})
		return
	}

	h.respond(c, reqLogger, &intent.Message{Input: args.Input()})
}

func (h *IntentHandler) respond(c *gin.Context, reqLogger *zap.Logger, msg *intent.Message) {
	ctx := utils.GetContextFromGinContext(c)

	env, err := h.answerer.Handle(ctx, msg)
	if err != nil {
		// The caller still gets its answer; outputs are best effort here.
		reqLogger.Warn("Publishing answer failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, env)
}
