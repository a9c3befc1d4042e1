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

type Project struct {
	ID          string
	ProjectName string
	ClientName  string
	Recipients  []Recipient
	Status      ProjectStatus
	// Notification 只会在项目变成 completed 的时候设置一次
	Notification *Notification
	Utime        int64
}

// AllDone 所有收件人都交卷了，或者压根没分配到问题，就算整个项目做完了
func (p Project) AllDone() bool {
	for _, r := range p.Recipients {
		if !r.Done() {
			return false
		}
	}
	return true
}

// HasActivity 有没有收件人已经收到邮件或者已经交卷
func (p Project) HasActivity() bool {
	for _, r := range p.Recipients {
		if r.Status == RecipientStatusSent || r.Status == RecipientStatusCompleted {
			return true
		}
	}
	return false
}

type ProjectStatus uint8

func (s ProjectStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ProjectStatusUnknown ProjectStatus = iota
	ProjectStatusDraft
	ProjectStatusInProgress
	ProjectStatusCompleted
)

func (s ProjectStatus) String() string {
	switch s {
	case ProjectStatusDraft:
		return "draft"
	case ProjectStatusInProgress:
		return "in_progress"
	case ProjectStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type Notification struct {
	Message         string
	IsComprehensive bool
}

type Recipient struct {
	ID       string
	Name     string
	Position string
	Email    string
	// Token 答题链接里面的访问凭证，插入的时候生成，之后不变
	Token     string
	Questions []string
	Status    RecipientStatus
}

func (r Recipient) Done() bool {
	return r.Status == RecipientStatusCompleted || len(r.Questions) == 0
}

type RecipientStatus uint8

func (s RecipientStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	RecipientStatusUnknown RecipientStatus = iota
	RecipientStatusPending
	RecipientStatusSent
	RecipientStatusCompleted
)

func (s RecipientStatus) String() string {
	switch s {
	case RecipientStatusPending:
		return "pending"
	case RecipientStatusSent:
		return "sent"
	case RecipientStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type Answer struct {
	QuestionID string
	TextAnswer string
	FileAnswer string
}

type Submission struct {
	ProjectID   string
	RecipientID string
	Answers     []Answer
}

// Key 历史遗留的前端约定，submissions 映射的 key 是 projectId_recipientId
func (s Submission) Key() string {
	return s.ProjectID + "_" + s.RecipientID
}
