package service

import (
	"context"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// stubChatModel replays a fixed reply or error and records what it was sent.
type stubChatModel struct {
	reply string
	err   error

	calls       int
	messages    []*schema.Message
	temperature *float32
}

func (s *stubChatModel) Generate(_ context.Context, input []*schema.Message, opts ...einoModel.Option) (*schema.Message, error) {
	s.calls++
	s.messages = input
	s.temperature = einoModel.GetCommonOptions(&einoModel.Options{}, opts...).Temperature
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s *stubChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := s.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}
