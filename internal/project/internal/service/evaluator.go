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
	"github.com/ecodeclub/esgform/internal/project/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// 提示给表单负责人看的占位文案，产品要求葡萄牙语
const (
	notAnswered  = "Não respondido"
	noSubmission = "Nenhuma submissão"
	fallbackMsg  = "Falha ao gerar a análise de completude das respostas."
)

// evaluate 完结判定。所有收件人都交卷（或者没分配问题）就生成完整性分析并完结项目；
// 还没齐但项目还是草稿态，说明已经有动静了，晋升成进行中。
// 生成失败绝不能挡住完结，兜底写一条固定通知
func (s *service) evaluate(ctx context.Context, prj domain.Project) (domain.Project, error) {
	if !prj.AllDone() {
		if prj.Status == domain.ProjectStatusDraft {
			err := s.repo.UpdateProjectStatus(ctx, prj.ID, domain.ProjectStatusInProgress)
			if err != nil {
				return domain.Project{}, err
			}
			return s.repo.FindById(ctx, prj.ID)
		}
		return prj, nil
	}
	if prj.Status == domain.ProjectStatusCompleted {
		return prj, nil
	}
	subs, err := s.repo.Submissions(ctx, prj.ID)
	if err != nil {
		return domain.Project{}, err
	}
	notification := s.generateNotification(ctx, prj, subs)
	if err = s.repo.CompleteProject(ctx, prj.ID, notification); err != nil {
		return domain.Project{}, err
	}
	return s.repo.FindById(ctx, prj.ID)
}

func (s *service) generateNotification(ctx context.Context,
	prj domain.Project, subs []domain.Submission) domain.Notification {
	n, err := s.aiSvc.GenerateCompletionSummary(ctx, ai.CompletionRequest{
		ProjectName: prj.ProjectName,
		ClientName:  prj.ClientName,
		RecipientEmails: slice.Map(prj.Recipients, func(idx int, src domain.Recipient) string {
			return src.Email
		}),
		Responses: buildResponses(prj, subs),
	})
	if err != nil {
		s.logger.Error("生成完整性分析失败",
			elog.FieldErr(err),
			elog.String("pid", prj.ID))
		return domain.Notification{
			Message:         fallbackMsg,
			IsComprehensive: false,
		}
	}
	return domain.Notification{
		Message:         n.Message,
		IsComprehensive: n.IsComprehensive,
	}
}

// buildResponses 收件人邮箱 -> 问题id -> 回答。优先文字回答，然后是附件名，
// 都没有给占位文案；整个人都没提交就标记成没有提交
func buildResponses(prj domain.Project, subs []domain.Submission) map[string]any {
	byRecipient := make(map[string][]domain.Answer, len(subs))
	for _, sub := range subs {
		byRecipient[sub.RecipientID] = sub.Answers
	}
	res := make(map[string]any, len(prj.Recipients))
	for _, r := range prj.Recipients {
		answers := byRecipient[r.ID]
		if len(answers) == 0 {
			res[r.Email] = noSubmission
			continue
		}
		m := make(map[string]string, len(answers))
		for _, ans := range answers {
			switch {
			case ans.TextAnswer != "":
				m[ans.QuestionID] = ans.TextAnswer
			case ans.FileAnswer != "":
				m[ans.QuestionID] = ans.FileAnswer
			default:
				m[ans.QuestionID] = notAnswered
			}
		}
		res[r.Email] = m
	}
	return res
}
