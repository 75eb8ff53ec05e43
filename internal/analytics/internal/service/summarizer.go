// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrEmptySummary = errors.New("模型没有返回内容")

// Summarizer 把评委的文字评语汇总成一段结论
type Summarizer interface {
	Summarize(ctx context.Context, comments []string) (string, error)
}

type LLMSummarizer struct {
	client *openai.Client
	model  string
}

func NewLLMSummarizer(baseURL, apiKey, model string) *LLMSummarizer {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)
	return &LLMSummarizer{
		client: client,
		model:  model,
	}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, comments []string) (string, error) {
	prompt := fmt.Sprintf(
		"下面是多位评委对同一位候选人的面试评语，请汇总成一段客观的总结，"+
			"指出优势和待提升项，不超过150字：\n%s",
		strings.Join(comments, "\n"))
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(openai.ChatModel(s.model)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptySummary
	}
	return resp.Choices[0].Message.Content, nil
}
