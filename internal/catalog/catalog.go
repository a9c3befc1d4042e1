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

package catalog

// Question 问卷目录里面的一个问题。目录是静态的，进程启动的时候就固定下来了
type Question struct {
	ID       string
	Category string
	Text     string
}

type Service interface {
	List() []Question
	// IDs 返回目录里面全部问题的 id，顺序和 List 一致
	IDs() []string
	Has(id string) bool
	// Filter 去重，并且丢掉目录里面不存在的 id
	Filter(ids []string) []string
}

var _ Service = &service{}

type service struct {
	questions []Question
	ids       []string
	idSet     map[string]struct{}
}

func NewService() Service {
	return newService(questions)
}

func newService(qs []Question) *service {
	ids := make([]string, 0, len(qs))
	idSet := make(map[string]struct{}, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
		idSet[q.ID] = struct{}{}
	}
	return &service{
		questions: qs,
		ids:       ids,
		idSet:     idSet,
	}
}

func (s *service) List() []Question {
	res := make([]Question, len(s.questions))
	copy(res, s.questions)
	return res
}

func (s *service) IDs() []string {
	res := make([]string, len(s.ids))
	copy(res, s.ids)
	return res
}

func (s *service) Has(id string) bool {
	_, ok := s.idSet[id]
	return ok
}

func (s *service) Filter(ids []string) []string {
	res := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.idSet[id]; !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
