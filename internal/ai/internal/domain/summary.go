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

package domain

// CompletionRequest 所有收件人交卷之后，用来生成完整性分析的输入
type CompletionRequest struct {
	ProjectName     string
	ClientName      string
	RecipientEmails []string
	// Responses 收件人邮箱 -> 该收件人的回答。
	// 值要么是 map[问题id]回答文本，要么是一个说明性的字符串
	Responses map[string]any
}

type CompletionNotification struct {
	Message         string
	IsComprehensive bool
}
