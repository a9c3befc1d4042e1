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

package ai

import (
	"time"

	"github.com/ecodeclub/esgform/internal/ai/internal/service"
	"github.com/ecodeclub/esgform/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/esgform/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/esgform/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/esgform/internal/ai/internal/service/llm/handler/platform/zhipu"
)

func InitZhipuService(apikey string, model string, timeout time.Duration) (Service, error) {
	platform, err := zhipu.NewHandler(apikey, model)
	if err != nil {
		return nil, err
	}
	return newService(platform, timeout), nil
}

func InitOpenAIService(apikey string, baseURL string, model string, timeout time.Duration) Service {
	return newService(openai.NewHandler(apikey, baseURL, model), timeout)
}

func newService(platform handler.Handler, timeout time.Duration) Service {
	root := log.NewHandler().Next(platform)
	return service.NewSummaryService(root, timeout)
}
