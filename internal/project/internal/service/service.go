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

	"github.com/ecodeclub/esgform/internal/ai"
	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project/internal/domain"
	"github.com/ecodeclub/esgform/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrProjectNotFound   = repository.ErrProjectNotFound
	ErrRecipientNotFound = repository.ErrRecipientNotFound
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=../../mocks/project.mock.go Service
type Service interface {
	// Save id 为空就新建，否则按三个集合（新增、更新、删除）对收件人做对账。
	// 收件人的 status 永远不会被 Save 改写，只有发送和提交流程能动它
	Save(ctx context.Context, prj domain.Project) (domain.Project, error)
	Detail(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Project, error)
	Total(ctx context.Context) (int64, error)

	// AssignQuestions 清洗之后原样替换，哪怕结果是空集
	AssignQuestions(ctx context.Context, pid, rid string, questionIDs []string) (domain.Project, error)
	// MarkSent 幂等。收件人没分配问题或者已经交卷就什么都不做
	MarkSent(ctx context.Context, pid, rid string) (domain.Project, error)
	// SubmitResponse 整体覆盖该收件人的提交，然后跑完结判定
	SubmitResponse(ctx context.Context, sub domain.Submission) (domain.Project, error)
	ListSubmissions(ctx context.Context, pid string) (map[string]domain.Submission, error)
}

var _ Service = &service{}

type service struct {
	repo    repository.Repository
	catalog catalog.Service
	aiSvc   ai.Service
	logger  *elog.Component
}

func NewService(repo repository.Repository,
	catalogSvc catalog.Service,
	aiSvc ai.Service) Service {
	return &service{
		repo:    repo,
		catalog: catalogSvc,
		aiSvc:   aiSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, prj domain.Project) (domain.Project, error) {
	if err := validateProject(prj); err != nil {
		return domain.Project{}, err
	}
	if prj.ID == "" {
		return s.create(ctx, prj)
	}
	return s.update(ctx, prj)
}

func (s *service) create(ctx context.Context, prj domain.Project) (domain.Project, error) {
	prj.ID = shortuuid.New()
	prj.Status = domain.ProjectStatusDraft
	for i := range prj.Recipients {
		r := &prj.Recipients[i]
		if r.ID == "" {
			r.ID = shortuuid.New()
		}
		r.Token = shortuuid.New()
		r.Status = domain.RecipientStatusPending
		// 没有显式指定问题集的收件人默认拿整个目录
		if len(r.Questions) == 0 {
			r.Questions = s.catalog.IDs()
		} else {
			r.Questions = s.catalog.Filter(r.Questions)
		}
	}
	if err := s.repo.Create(ctx, prj); err != nil {
		return domain.Project{}, err
	}
	return s.repo.FindById(ctx, prj.ID)
}

func (s *service) update(ctx context.Context, prj domain.Project) (domain.Project, error) {
	existing, err := s.repo.FindById(ctx, prj.ID)
	if err != nil {
		return domain.Project{}, err
	}
	existingByID := make(map[string]domain.Recipient, len(existing.Recipients))
	for _, r := range existing.Recipients {
		existingByID[r.ID] = r
	}

	incoming := make(map[string]struct{}, len(prj.Recipients))
	upserts := make([]domain.Recipient, 0, len(prj.Recipients))
	for _, r := range prj.Recipients {
		old, exists := existingByID[r.ID]
		if r.ID == "" || !exists {
			if r.ID == "" {
				r.ID = shortuuid.New()
			}
			r.Token = shortuuid.New()
			r.Status = domain.RecipientStatusPending
		} else {
			// 存量收件人保留原有的状态和凭证
			r.Token = old.Token
			r.Status = old.Status
		}
		r.Questions = s.resolveQuestions(r.Questions, old.Questions)
		incoming[r.ID] = struct{}{}
		upserts = append(upserts, r)
	}

	removed := make([]string, 0, len(existing.Recipients))
	for _, r := range existing.Recipients {
		if _, ok := incoming[r.ID]; !ok {
			removed = append(removed, r.ID)
		}
	}

	err = s.repo.Update(ctx, prj, upserts, removed)
	if err != nil {
		return domain.Project{}, err
	}
	return s.repo.FindById(ctx, prj.ID)
}

// resolveQuestions 新传的集合清洗之后非空就用新的，否则保留旧的，都没有就给整个目录
func (s *service) resolveQuestions(provided, existing []string) []string {
	cleaned := s.catalog.Filter(provided)
	if len(cleaned) > 0 {
		return cleaned
	}
	if len(existing) > 0 {
		return existing
	}
	return s.catalog.IDs()
}

func (s *service) Detail(ctx context.Context, id string) (domain.Project, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context, offset int, limit int) ([]domain.Project, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Total(ctx context.Context) (int64, error) {
	return s.repo.Total(ctx)
}

func (s *service) AssignQuestions(ctx context.Context, pid, rid string, questionIDs []string) (domain.Project, error) {
	if _, err := s.repo.RecipientOf(ctx, pid, rid); err != nil {
		return domain.Project{}, err
	}
	err := s.repo.UpdateRecipientQuestions(ctx, pid, rid, s.catalog.Filter(questionIDs))
	if err != nil {
		return domain.Project{}, err
	}
	return s.repo.FindById(ctx, pid)
}

func (s *service) MarkSent(ctx context.Context, pid, rid string) (domain.Project, error) {
	rcpt, err := s.repo.RecipientOf(ctx, pid, rid)
	if err != nil {
		return domain.Project{}, err
	}
	if len(rcpt.Questions) > 0 && rcpt.Status != domain.RecipientStatusCompleted {
		err = s.repo.UpdateRecipientStatus(ctx, pid, rid, domain.RecipientStatusSent)
		if err != nil {
			return domain.Project{}, err
		}
	}
	prj, err := s.repo.FindById(ctx, pid)
	if err != nil {
		return domain.Project{}, err
	}
	// 晋升与否从全量收件人重新推导，不依赖刚改过的那一个
	if prj.HasActivity() && prj.Status == domain.ProjectStatusDraft {
		err = s.repo.UpdateProjectStatus(ctx, pid, domain.ProjectStatusInProgress)
		if err != nil {
			return domain.Project{}, err
		}
		return s.repo.FindById(ctx, pid)
	}
	return prj, nil
}

func (s *service) SubmitResponse(ctx context.Context, sub domain.Submission) (domain.Project, error) {
	if _, err := s.repo.RecipientOf(ctx, sub.ProjectID, sub.RecipientID); err != nil {
		return domain.Project{}, err
	}
	if err := s.repo.SaveSubmission(ctx, sub); err != nil {
		return domain.Project{}, err
	}
	err := s.repo.UpdateRecipientStatus(ctx, sub.ProjectID, sub.RecipientID,
		domain.RecipientStatusCompleted)
	if err != nil {
		return domain.Project{}, err
	}
	prj, err := s.repo.FindById(ctx, sub.ProjectID)
	if err != nil {
		return domain.Project{}, err
	}
	return s.evaluate(ctx, prj)
}

func (s *service) ListSubmissions(ctx context.Context, pid string) (map[string]domain.Submission, error) {
	subs, err := s.repo.Submissions(ctx, pid)
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.Submission, len(subs))
	for _, sub := range subs {
		res[sub.Key()] = sub
	}
	return res, nil
}
