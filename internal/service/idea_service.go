package service

import (
	"context"
	"strings"
	"time"

	"ideagen-backend/internal/config"
	"ideagen-backend/internal/model"
	apperr "ideagen-backend/pkg/errors"
	"ideagen-backend/pkg/metrics"
	"ideagen-backend/pkg/tracer"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const outcomeSuccess = "success"

// IdeaService turns an IdeaRequest into one completion call.
type IdeaService struct {
	chatModel   einoModel.BaseChatModel
	provider    string
	model       string
	temperature float32
}

func NewIdeaService(chatModel einoModel.BaseChatModel, cfg config.LLMConfig) *IdeaService {
	return &IdeaService{
		chatModel:   chatModel,
		provider:    cfg.Provider,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Generate returns the provider's text verbatim. Failures are *apperr.AppError.
func (s *IdeaService) Generate(ctx context.Context, req model.IdeaRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "IdeaService.Generate", trace.WithAttributes(
		attribute.String("llm.provider", s.provider),
		attribute.String("llm.model", s.model),
	))
	defer span.End()

	messages := []*schema.Message{schema.UserMessage(BuildPrompt(req))}

	start := time.Now()
	out, err := s.chatModel.Generate(ctx, messages, einoModel.WithTemperature(s.temperature))
	metrics.GenerationDuration.WithLabelValues(s.provider).Observe(time.Since(start).Seconds())

	if err == nil && (out == nil || strings.TrimSpace(out.Content) == "") {
		err = apperr.ErrEmptyCompletion
	}
	if err != nil {
		appErr := Classify(err)
		span.RecordError(appErr)
		span.SetStatus(codes.Error, appErr.Message)
		metrics.GenerationTotal.WithLabelValues(s.provider, string(appErr.Kind)).Inc()
		return "", appErr
	}

	span.SetAttributes(attribute.Int("ideas.length", len(out.Content)))
	metrics.GenerationTotal.WithLabelValues(s.provider, outcomeSuccess).Inc()
	return out.Content, nil
}

// GenerateParsed is Generate plus ParseIdeas over the returned text.
func (s *IdeaService) GenerateParsed(ctx context.Context, req model.IdeaRequest) (string, []model.Idea, error) {
	text, err := s.Generate(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return text, ParseIdeas(text), nil
}
