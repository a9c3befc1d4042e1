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

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project/internal/domain"
	"github.com/ecodeclub/esgform/internal/project/internal/repository/dao"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProjectNotFound   = errors.New("项目不存在")
	ErrRecipientNotFound = errors.New("收件人不存在")
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/repository.mock.go Repository
type Repository interface {
	Create(ctx context.Context, prj domain.Project) error
	// Update 按 id upsert rcpts，删掉 removed。增删改的集合由调用方算好
	Update(ctx context.Context, prj domain.Project, rcpts []domain.Recipient, removed []string) error
	// FindById 项目连同收件人一起取出来
	FindById(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Project, error)
	Total(ctx context.Context) (int64, error)

	RecipientOf(ctx context.Context, pid, rid string) (domain.Recipient, error)
	UpdateRecipientQuestions(ctx context.Context, pid, rid string, questions []string) error
	UpdateRecipientStatus(ctx context.Context, pid, rid string, status domain.RecipientStatus) error

	UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) error
	CompleteProject(ctx context.Context, id string, n domain.Notification) error

	Submissions(ctx context.Context, pid string) ([]domain.Submission, error)
	SaveSubmission(ctx context.Context, sub domain.Submission) error
}

var _ Repository = &projectRepository{}

type projectRepository struct {
	dao     dao.ProjectDAO
	catalog catalog.Service
}

func NewRepository(d dao.ProjectDAO, catalogSvc catalog.Service) Repository {
	return &projectRepository{
		dao:     d,
		catalog: catalogSvc,
	}
}

func (repo *projectRepository) Create(ctx context.Context, prj domain.Project) error {
	entity, rcpts := repo.toEntity(prj)
	return pkgerrors.WithMessage(repo.dao.Create(ctx, entity, rcpts), "创建项目失败")
}

func (repo *projectRepository) Update(ctx context.Context, prj domain.Project,
	rcpts []domain.Recipient, removed []string) error {
	entity, _ := repo.toEntity(prj)
	entities := slice.Map(rcpts, func(idx int, src domain.Recipient) dao.Recipient {
		return repo.rcptToEntity(prj.ID, src)
	})
	err := repo.dao.Update(ctx, entity, entities, removed)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	return pkgerrors.WithMessage(err, "更新项目失败")
}

func (repo *projectRepository) FindById(ctx context.Context, id string) (domain.Project, error) {
	var (
		eg    errgroup.Group
		prj   dao.Project
		rcpts []dao.Recipient
	)
	eg.Go(func() error {
		var err error
		prj, err = repo.dao.GetById(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		rcpts, err = repo.dao.Recipients(ctx, id)
		return err
	})
	err := eg.Wait()
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, pkgerrors.WithMessage(err, "查询项目失败")
	}
	return repo.prjToDomain(prj, rcpts), nil
}

func (repo *projectRepository) List(ctx context.Context, offset int, limit int) ([]domain.Project, error) {
	res, err := repo.dao.List(ctx, offset, limit)
	return slice.Map(res, func(idx int, src dao.Project) domain.Project {
		return repo.prjToDomain(src, nil)
	}), err
}

func (repo *projectRepository) Total(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *projectRepository) RecipientOf(ctx context.Context, pid, rid string) (domain.Recipient, error) {
	r, err := repo.dao.RecipientById(ctx, pid, rid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Recipient{}, ErrRecipientNotFound
	}
	if err != nil {
		return domain.Recipient{}, pkgerrors.WithMessage(err, "查询收件人失败")
	}
	return repo.rcptToDomain(r), nil
}

func (repo *projectRepository) UpdateRecipientQuestions(ctx context.Context, pid, rid string, questions []string) error {
	return repo.dao.UpdateRecipientQuestions(ctx, pid, rid, questions)
}

func (repo *projectRepository) UpdateRecipientStatus(ctx context.Context, pid, rid string, status domain.RecipientStatus) error {
	return repo.dao.UpdateRecipientStatus(ctx, pid, rid, status.ToUint8())
}

func (repo *projectRepository) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) error {
	return repo.dao.UpdateProjectStatus(ctx, id, status.ToUint8())
}

func (repo *projectRepository) CompleteProject(ctx context.Context, id string, n domain.Notification) error {
	return repo.dao.CompleteProject(ctx, id,
		domain.ProjectStatusCompleted.ToUint8(),
		dao.Notification{
			Message:         n.Message,
			IsComprehensive: n.IsComprehensive,
		})
}

func (repo *projectRepository) Submissions(ctx context.Context, pid string) ([]domain.Submission, error) {
	rows, err := repo.dao.Submissions(ctx, pid)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "查询提交记录失败")
	}
	return slice.Map(rows, func(idx int, src dao.Submission) domain.Submission {
		return domain.Submission{
			ProjectID:   src.Pid,
			RecipientID: src.Rid,
			Answers:     domain.SanitizeAnswers([]byte(src.Answers)),
		}
	}), nil
}

func (repo *projectRepository) SaveSubmission(ctx context.Context, sub domain.Submission) error {
	data, err := json.Marshal(slice.Map(sub.Answers, func(idx int, src domain.Answer) answerJSON {
		return answerJSON{
			QuestionID: src.QuestionID,
			TextAnswer: src.TextAnswer,
			FileAnswer: src.FileAnswer,
		}
	}))
	if err != nil {
		return err
	}
	return repo.dao.UpsertSubmission(ctx, dao.Submission{
		Pid:     sub.ProjectID,
		Rid:     sub.RecipientID,
		Answers: string(data),
	})
}

// answerJSON 落库的 JSON 形状，和前端提交的对象数组保持一致
type answerJSON struct {
	QuestionID string `json:"questionId"`
	TextAnswer string `json:"textAnswer,omitempty"`
	FileAnswer string `json:"fileAnswer,omitempty"`
}

func (repo *projectRepository) toEntity(prj domain.Project) (dao.Project, []dao.Recipient) {
	entity := dao.Project{
		Id:          prj.ID,
		ProjectName: prj.ProjectName,
		ClientName:  prj.ClientName,
		Status:      prj.Status.ToUint8(),
	}
	rcpts := slice.Map(prj.Recipients, func(idx int, src domain.Recipient) dao.Recipient {
		return repo.rcptToEntity(prj.ID, src)
	})
	return entity, rcpts
}

func (repo *projectRepository) rcptToEntity(pid string, r domain.Recipient) dao.Recipient {
	return dao.Recipient{
		Id:       r.ID,
		Pid:      pid,
		Name:     r.Name,
		Position: r.Position,
		Email:    r.Email,
		Token:    r.Token,
		Status:   r.Status.ToUint8(),
		Questions: sqlx.JsonColumn[[]string]{
			Val:   r.Questions,
			Valid: true,
		},
	}
}

func (repo *projectRepository) prjToDomain(prj dao.Project, rcpts []dao.Recipient) domain.Project {
	res := domain.Project{
		ID:          prj.Id,
		ProjectName: prj.ProjectName,
		ClientName:  prj.ClientName,
		Status:      domain.ProjectStatus(prj.Status),
		Utime:       prj.Utime,
		Recipients: slice.Map(rcpts, func(idx int, src dao.Recipient) domain.Recipient {
			return repo.rcptToDomain(src)
		}),
	}
	if prj.Notification.Valid && prj.Notification.Val.Message != "" {
		res.Notification = &domain.Notification{
			Message:         prj.Notification.Val.Message,
			IsComprehensive: prj.Notification.Val.IsComprehensive,
		}
	}
	return res
}

func (repo *projectRepository) rcptToDomain(r dao.Recipient) domain.Recipient {
	// 历史数据里面的 questions 形状不可信，读出来统一清洗一遍
	questions := repo.catalog.Filter(domain.SanitizeQuestionIDs(r.Questions.Val))
	return domain.Recipient{
		ID:        r.Id,
		Name:      r.Name,
		Position:  r.Position,
		Email:     r.Email,
		Token:     r.Token,
		Status:    domain.RecipientStatus(r.Status),
		Questions: questions,
	}
}
