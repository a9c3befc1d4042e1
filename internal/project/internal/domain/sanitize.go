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

import "encoding/json"

// SanitizeQuestionIDs 从任意输入里面提取问题 id，去重，保持第一次出现的顺序。
// 不是数组，或者数组里面没有字符串，返回空切片。
// 这里只管形状，id 是否真的在目录里面由 catalog.Service.Filter 决定
func SanitizeQuestionIDs(raw any) []string {
	switch val := raw.(type) {
	case []string:
		return dedupe(val)
	case []any:
		res := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				res = append(res, s)
			}
		}
		return dedupe(res)
	case json.RawMessage:
		return sanitizeQuestionJSON(val)
	case []byte:
		return sanitizeQuestionJSON(val)
	default:
		return []string{}
	}
}

func sanitizeQuestionJSON(data []byte) []string {
	var val []any
	if err := json.Unmarshal(data, &val); err != nil {
		return []string{}
	}
	return SanitizeQuestionIDs(val)
}

func dedupe(ids []string) []string {
	res := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

// SanitizeAnswers 把提交或者落库的 answers 归一化成规范形状。
// 兼容两种历史形状：
//   - 对象数组 [{questionId, textAnswer?, fileAnswer?}]
//   - 老版本的映射 {questionId: 值}，字符串值当 textAnswer，
//     对象值取 textAnswer/fileAnswer，其它 JSON 值序列化之后塞进 textAnswer
//
// 没有 questionId 的条目直接丢掉。对自己的输出再跑一遍结果不变
func SanitizeAnswers(raw []byte) []Answer {
	if len(raw) == 0 {
		return []Answer{}
	}
	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return []Answer{}
	}
	switch v := val.(type) {
	case []any:
		return sanitizeAnswerArray(v)
	case map[string]any:
		return sanitizeAnswerMap(v)
	default:
		return []Answer{}
	}
}

func sanitizeAnswerArray(items []any) []Answer {
	res := make([]Answer, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		qid, ok := record["questionId"].(string)
		if !ok || qid == "" {
			continue
		}
		ans := Answer{QuestionID: qid}
		if text, ok := record["textAnswer"].(string); ok {
			ans.TextAnswer = text
		}
		if file, ok := record["fileAnswer"].(string); ok {
			ans.FileAnswer = file
		}
		res = append(res, ans)
	}
	return res
}

func sanitizeAnswerMap(m map[string]any) []Answer {
	res := make([]Answer, 0, len(m))
	for qid, val := range m {
		if qid == "" {
			continue
		}
		ans := Answer{QuestionID: qid}
		switch v := val.(type) {
		case string:
			ans.TextAnswer = v
		case map[string]any:
			if text, ok := v["textAnswer"].(string); ok {
				ans.TextAnswer = text
			}
			if file, ok := v["fileAnswer"].(string); ok {
				ans.FileAnswer = file
			}
		default:
			data, err := json.Marshal(v)
			if err != nil {
				continue
			}
			ans.TextAnswer = string(data)
		}
		res = append(res, ans)
	}
	return res
}
