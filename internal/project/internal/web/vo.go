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

package web

import (
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/esgform/internal/project/internal/domain"
)

type SaveReq struct {
	Data      ProjectFormData `json:"data"`
	ProjectID string          `json:"projectId"`
}

type ProjectFormData struct {
	ProjectName string          `json:"projectName"`
	ClientName  string          `json:"clientName"`
	Recipients  []RecipientForm `json:"recipients"`
}

type RecipientForm struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	// 表单传什么形状的都有，进来先清洗
	Questions json.RawMessage `json:"questions"`
	// Status 兼容老前端还会带这个字段，这边不认。
	// 状态只能走发送和提交流程
	Status string `json:"status"`
}

func (req SaveReq) toDomain() domain.Project {
	return domain.Project{
		ID:          req.ProjectID,
		ProjectName: req.Data.ProjectName,
		ClientName:  req.Data.ClientName,
		Recipients: slice.Map(req.Data.Recipients, func(idx int, src RecipientForm) domain.Recipient {
			return domain.Recipient{
				ID:        src.ID,
				Name:      src.Name,
				Position:  src.Position,
				Email:     src.Email,
				Questions: domain.SanitizeQuestionIDs(src.Questions),
			}
		}),
	}
}

type Project struct {
	ID           string        `json:"id"`
	ProjectName  string        `json:"projectName"`
	ClientName   string        `json:"clientName"`
	Recipients   []Recipient   `json:"recipients"`
	Status       string        `json:"status"`
	Notification *Notification `json:"notification,omitempty"`
	Utime        int64         `json:"utime,omitempty"`
}

type Recipient struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Position  string   `json:"position"`
	Email     string   `json:"email"`
	Token     string   `json:"token,omitempty"`
	Questions []string `json:"questions"`
	Status    string   `json:"status"`
}

type Notification struct {
	Message         string `json:"message"`
	IsComprehensive bool   `json:"isComprehensive"`
}

func newProject(p domain.Project) Project {
	res := Project{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		ClientName:  p.ClientName,
		Status:      p.Status.String(),
		Utime:       p.Utime,
		Recipients: slice.Map(p.Recipients, func(idx int, src domain.Recipient) Recipient {
			return newRecipient(src)
		}),
	}
	if p.Notification != nil {
		res.Notification = &Notification{
			Message:         p.Notification.Message,
			IsComprehensive: p.Notification.IsComprehensive,
		}
	}
	return res
}

func newRecipient(r domain.Recipient) Recipient {
	return Recipient{
		ID:        r.ID,
		Name:      r.Name,
		Position:  r.Position,
		Email:     r.Email,
		Token:     r.Token,
		Questions: r.Questions,
		Status:    r.Status.String(),
	}
}

type MarkSentReq struct {
	ProjectID   string `json:"projectId"`
	RecipientID string `json:"recipientId"`
}

type AssignQuestionsReq struct {
	ProjectID   string          `json:"projectId"`
	RecipientID string          `json:"recipientId"`
	Questions   json.RawMessage `json:"questions"`
}

type SubmitReq struct {
	Submission *SubmissionPayload `json:"submission"`
}

type SubmissionPayload struct {
	ProjectID   string          `json:"projectId"`
	RecipientID string          `json:"recipientId"`
	Answers     json.RawMessage `json:"answers"`
}

func (p SubmissionPayload) toDomain() domain.Submission {
	return domain.Submission{
		ProjectID:   p.ProjectID,
		RecipientID: p.RecipientID,
		// 对象数组和老的映射形状都认，出了这里只有规范形状
		Answers: domain.SanitizeAnswers(p.Answers),
	}
}

type Submission struct {
	ProjectID   string   `json:"projectId"`
	RecipientID string   `json:"recipientId"`
	Answers     []Answer `json:"answers"`
}

type Answer struct {
	QuestionID string `json:"questionId"`
	TextAnswer string `json:"textAnswer,omitempty"`
	FileAnswer string `json:"fileAnswer,omitempty"`
}

func newSubmission(sub domain.Submission) Submission {
	return Submission{
		ProjectID:   sub.ProjectID,
		RecipientID: sub.RecipientID,
		Answers: slice.Map(sub.Answers, func(idx int, src domain.Answer) Answer {
			return Answer{
				QuestionID: src.QuestionID,
				TextAnswer: src.TextAnswer,
				FileAnswer: src.FileAnswer,
			}
		}),
	}
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IdReq struct {
	ID string `json:"id"`
}

type ProjectList struct {
	Total    int64     `json:"total,omitempty"`
	Projects []Project `json:"projects,omitempty"`
}
