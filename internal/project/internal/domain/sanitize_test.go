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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuestionIDs(t *testing.T) {
	testCases := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "字符串切片原样去重",
			input: []string{"GA1", "CR1", "GA1"},
			want:  []string{"GA1", "CR1"},
		},
		{
			name:  "混合数组只留字符串",
			input: []any{"GA1", 123, nil, "CR1", true},
			want:  []string{"GA1", "CR1"},
		},
		{
			name:  "JSON 数组",
			input: json.RawMessage(`["ER1","ER2","ER1"]`),
			want:  []string{"ER1", "ER2"},
		},
		{
			name:  "JSON 不是数组",
			input: json.RawMessage(`{"GA1": true}`),
			want:  []string{},
		},
		{
			name:  "JSON 解析失败",
			input: []byte(`not json`),
			want:  []string{},
		},
		{
			name:  "完全不认识的类型",
			input: 42,
			want:  []string{},
		},
		{
			name:  "nil",
			input: nil,
			want:  []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeQuestionIDs(tc.input))
		})
	}
}

// TestSanitizeQuestionIDs_Idempotent 清洗结果再清洗一遍不变
func TestSanitizeQuestionIDs_Idempotent(t *testing.T) {
	input := []any{"GA1", "CR1", "GA1", 7, nil}
	once := SanitizeQuestionIDs(input)
	twice := SanitizeQuestionIDs(once)
	assert.Equal(t, once, twice)
}

func TestSanitizeAnswers(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Answer
	}{
		{
			name:  "规范的对象数组",
			input: `[{"questionId":"GA1","textAnswer":"sim"},{"questionId":"CR1","fileAnswer":"fatura.pdf"}]`,
			want: []Answer{
				{QuestionID: "GA1", TextAnswer: "sim"},
				{QuestionID: "CR1", FileAnswer: "fatura.pdf"},
			},
		},
		{
			name:  "没有 questionId 的条目丢掉",
			input: `[{"textAnswer":"sim"},{"questionId":"","textAnswer":"x"},{"questionId":"GA2"}]`,
			want: []Answer{
				{QuestionID: "GA2"},
			},
		},
		{
			name:  "数组里混入非对象",
			input: `["GA1",{"questionId":"GA2","textAnswer":"ok"},42]`,
			want: []Answer{
				{QuestionID: "GA2", TextAnswer: "ok"},
			},
		},
		{
			name:  "老版本映射形状字符串值",
			input: `{"GA1":"resposta"}`,
			want: []Answer{
				{QuestionID: "GA1", TextAnswer: "resposta"},
			},
		},
		{
			name:  "老版本映射形状对象值",
			input: `{"CR1":{"textAnswer":"100 m³","fileAnswer":"conta.pdf"}}`,
			want: []Answer{
				{QuestionID: "CR1", TextAnswer: "100 m³", FileAnswer: "conta.pdf"},
			},
		},
		{
			name:  "老版本映射形状数字值序列化",
			input: `{"CR3":12345}`,
			want: []Answer{
				{QuestionID: "CR3", TextAnswer: "12345"},
			},
		},
		{
			name:  "顶层是标量",
			input: `"GA1"`,
			want:  []Answer{},
		},
		{
			name:  "不是 JSON",
			input: `oops`,
			want:  []Answer{},
		},
		{
			name:  "空输入",
			input: ``,
			want:  []Answer{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeAnswers([]byte(tc.input)))
		})
	}
}

// TestSanitizeAnswers_Idempotent 清洗结果按规范形状重新序列化再清洗，结果不变
func TestSanitizeAnswers_Idempotent(t *testing.T) {
	input := []byte(`{"GA1":"sim","CR1":{"fileAnswer":"a.pdf"},"CR3":true}`)
	once := SanitizeAnswers(input)
	rows := make([]map[string]string, 0, len(once))
	for _, ans := range once {
		rows = append(rows, map[string]string{
			"questionId": ans.QuestionID,
			"textAnswer": ans.TextAnswer,
			"fileAnswer": ans.FileAnswer,
		})
	}
	data, err := json.Marshal(rows)
	assert.NoError(t, err)
	twice := SanitizeAnswers(data)
	assert.Equal(t, once, twice)
}
