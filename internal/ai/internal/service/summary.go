// Copyright 2025 ecodeclub
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
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ecodeclub/esgform/internal/ai/internal/domain"
	"github.com/ecodeclub/esgform/internal/ai/internal/service/llm/handler"
	"github.com/lithammer/shortuuid/v4"
)

var ErrUnexpectedLLMResponse = errors.New("不符合预期的大模型响应")

// jsonExpr 大模型经常在 JSON 外面包一层 ```json 之类的东西，用正则把对象抠出来
const jsonExpr = `\{[\s\S]*\}`

// promptTemplate 参数依次是：项目名、客户名、收件人邮箱列表、responses JSON
const promptTemplate = `All recipients have submitted their forms for project "%s" for client "%s".

Recipient Emails: %s
Responses: %s

Generate a notification message to inform the form owner that all submissions are complete and assess whether the responses appear comprehensive, highlighting any potential missing information or inconsistencies. Answer with a JSON object of the shape {"notificationMessage": string, "isComprehensive": boolean} and nothing else.`

//go:generate mockgen -source=./summary.go -package=aimocks -destination=../../mocks/summary.mock.go Service
type Service interface {
	// GenerateCompletionSummary 只会请求一次，失败了由调用方兜底，这里不重试
	GenerateCompletionSummary(ctx context.Context, req domain.CompletionRequest) (domain.CompletionNotification, error)
}

var _ Service = &summaryService{}

type summaryService struct {
	handler handler.Handler
	expr    *regexp.Regexp
	// 单次生成的超时上限，生成卡住不能拖死提交请求
	timeout time.Duration
}

func NewSummaryService(root handler.Handler, timeout time.Duration) Service {
	return &summaryService{
		handler: root,
		expr:    regexp.MustCompile(jsonExpr),
		timeout: timeout,
	}
}

func (s *summaryService) GenerateCompletionSummary(ctx context.Context,
	req domain.CompletionRequest) (domain.CompletionNotification, error) {
	prompt, err := s.buildPrompt(req)
	if err != nil {
		return domain.CompletionNotification{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	resp, err := s.handler.Handle(ctx, domain.LLMRequest{
		Tid:    shortuuid.New(),
		Prompt: prompt,
	})
	if err != nil {
		return domain.CompletionNotification{}, err
	}
	return s.parseAnswer(resp.Answer)
}

func (s *summaryService) buildPrompt(req domain.CompletionRequest) (string, error) {
	emails, err := json.Marshal(req.RecipientEmails)
	if err != nil {
		return "", err
	}
	responses, err := json.Marshal(req.Responses)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptTemplate,
		req.ProjectName, req.ClientName, emails, responses), nil
}

func (s *summaryService) parseAnswer(answer string) (domain.CompletionNotification, error) {
	data := s.expr.FindString(answer)
	if data == "" {
		return domain.CompletionNotification{}, fmt.Errorf("%w: %s", ErrUnexpectedLLMResponse, answer)
	}
	var payload struct {
		NotificationMessage string `json:"notificationMessage"`
		IsComprehensive     bool   `json:"isComprehensive"`
	}
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return domain.CompletionNotification{}, fmt.Errorf("%w: %s", ErrUnexpectedLLMResponse, answer)
	}
	if payload.NotificationMessage == "" {
		return domain.CompletionNotification{}, fmt.Errorf("%w: 缺少 notificationMessage", ErrUnexpectedLLMResponse)
	}
	return domain.CompletionNotification{
		Message:         payload.NotificationMessage,
		IsComprehensive: payload.IsComprehensive,
	}, nil
}
