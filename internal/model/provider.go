package model

import (
	"context"
	"fmt"
	"net/http"

	"ideagen-backend/internal/config"
	"ideagen-backend/pkg/logger"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	einoModel "github.com/cloudwego/eino/components/model"
)

const defaultQwenBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// NewChatModel builds the completion provider selected by cfg.Provider.
// A missing API key is not an error here; see unconfiguredChatModel.
func NewChatModel(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (einoModel.BaseChatModel, error) {
	if cfg.APIKey == "" {
		logger.Warnf("no API key configured for provider %s, generation requests will fail", cfg.Provider)
		return unconfiguredChatModel{}, nil
	}

	switch cfg.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		logger.Infof("using %s chat model %s at %s", cfg.Provider, cfg.Model, cfg.BaseURL)
		return newOpenAIChatModel(cfg, httpClient), nil
	case config.ProviderDoubao:
		return createDoubaoModel(ctx, cfg, httpClient)
	case config.ProviderQwen:
		return createQwenModel(ctx, cfg, httpClient)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func createDoubaoModel(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (einoModel.BaseChatModel, error) {
	logger.Infof("using doubao chat model %s", cfg.Model)

	temperature := cfg.Temperature
	// ark retries twice by default; a failed completion is reported as is.
	retryTimes := 0
	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: &temperature,
		HTTPClient:  httpClient,
		RetryTimes:  &retryTimes,
		CustomHeader: map[string]string{
			"X-Ark-Thinking-Mode": "disable",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create doubao model: %w", err)
	}
	return chatModel, nil
}

func createQwenModel(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (einoModel.BaseChatModel, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultQwenBaseURL
	}
	logger.Infof("using qwen chat model %s at %s", cfg.Model, baseURL)

	temperature := cfg.Temperature
	chatModel, err := qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
		BaseURL:     baseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temperature,
		Timeout:     cfg.Timeout,
		HTTPClient:  httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create qwen model: %w", err)
	}
	return chatModel, nil
}
