package handler

import (
	"context"
	"net/http"

	"ideagen-backend/internal/middleware"
	"ideagen-backend/internal/model"
	"ideagen-backend/internal/service"
	apperr "ideagen-backend/pkg/errors"
	"ideagen-backend/pkg/logger"
	"ideagen-backend/pkg/tracer"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	ideaService  *service.IdeaService
	strictStatus bool
}

// NewIdeaHandler builds the /generate handlers. With strictStatus unset every
// failure is answered with 200 and success=false.
func NewIdeaHandler(ideaService *service.IdeaService, strictStatus bool) *IdeaHandler {
	return &IdeaHandler{
		ideaService:  ideaService,
		strictStatus: strictStatus,
	}
}

func (h *IdeaHandler) Generate(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ideas, err := h.ideaService.Generate(providerContext(c), req)
	if err != nil {
		status, msg := h.failure(c, err)
		c.JSON(status, model.GenerateResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, model.GenerateResponse{
		Success: true,
		Ideas:   ideas,
	})
}

func (h *IdeaHandler) GenerateParsed(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ideas, items, err := h.ideaService.GenerateParsed(providerContext(c), req)
	if err != nil {
		status, msg := h.failure(c, err)
		c.JSON(status, model.GenerateResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, model.ParsedResponse{
		Success: true,
		Ideas:   ideas,
		Items:   items,
	})
}

// providerContext keeps the request's values and span but not its
// cancellation: a client that disconnects does not abort the completion call,
// which stays bounded by llm.timeout.
func providerContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// bind answers a malformed body itself. Failure envelopes carry no items.
func (h *IdeaHandler) bind(c *gin.Context) (model.IdeaRequest, bool) {
	var req model.IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, msg := h.failure(c, apperr.Wrap(err, apperr.KindRequestInvalid, "invalid request body"))
		c.JSON(status, model.GenerateResponse{Error: msg})
		return req, false
	}
	return req, true
}

// failure logs err and returns the status and message for the envelope.
func (h *IdeaHandler) failure(c *gin.Context, err error) (int, string) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = service.Classify(err)
	}

	entry := logger.WithFields(logger.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"trace_id":   tracer.TraceID(c.Request.Context()),
		"kind":       appErr.Kind,
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	entry.Warn(appErr.Message)

	if h.strictStatus {
		return appErr.HTTPStatus(), appErr.Error()
	}
	return http.StatusOK, appErr.Error()
}
