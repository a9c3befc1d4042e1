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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProjectDAO interface {
	Create(ctx context.Context, prj Project, rcpts []Recipient) error
	// Update 更新项目基本信息，按 id upsert 收件人，删掉 removed 里面的收件人。
	// 收件人的 status 和 token 不在 upsert 列里面，保存操作永远不会覆盖它们
	Update(ctx context.Context, prj Project, rcpts []Recipient, removed []string) error
	GetById(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, offset int, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)

	Recipients(ctx context.Context, pid string) ([]Recipient, error)
	RecipientById(ctx context.Context, pid, rid string) (Recipient, error)
	UpdateRecipientQuestions(ctx context.Context, pid, rid string, questions []string) error
	UpdateRecipientStatus(ctx context.Context, pid, rid string, status uint8) error

	UpdateProjectStatus(ctx context.Context, id string, status uint8) error
	// CompleteProject 置为完结态并写入通知，一个事务里面完成
	CompleteProject(ctx context.Context, id string, status uint8, n Notification) error

	Submissions(ctx context.Context, pid string) ([]Submission, error)
	UpsertSubmission(ctx context.Context, sub Submission) error
}

var _ ProjectDAO = &GORMProjectDAO{}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (d *GORMProjectDAO) Create(ctx context.Context, prj Project, rcpts []Recipient) error {
	now := time.Now().UnixMilli()
	prj.Ctime = now
	prj.Utime = now
	for i := range rcpts {
		rcpts[i].Pid = prj.Id
		rcpts[i].Ctime = now
		rcpts[i].Utime = now
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&prj).Error; err != nil {
			return err
		}
		if len(rcpts) == 0 {
			return nil
		}
		return tx.Create(&rcpts).Error
	})
}

func (d *GORMProjectDAO) Update(ctx context.Context, prj Project, rcpts []Recipient, removed []string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Project{}).Where("id = ?", prj.Id).Updates(map[string]any{
			"project_name": prj.ProjectName,
			"client_name":  prj.ClientName,
			"utime":        now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Updates 在值没变的时候也可能报 0，这里再确认一次
			var cnt int64
			if err := tx.Model(&Project{}).Where("id = ?", prj.Id).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return ErrRecordNotFound
			}
		}
		if len(rcpts) > 0 {
			for i := range rcpts {
				rcpts[i].Pid = prj.Id
				rcpts[i].Ctime = now
				rcpts[i].Utime = now
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "position", "email", "questions", "utime",
				}),
			}).Create(&rcpts).Error
			if err != nil {
				return err
			}
		}
		if len(removed) > 0 {
			// 收件人删掉之后它的提交记录就没有归属了，一起删
			err := tx.Where("pid = ? AND rid IN ?", prj.Id, removed).
				Delete(&Submission{}).Error
			if err != nil {
				return err
			}
			err = tx.Where("pid = ? AND id IN ?", prj.Id, removed).
				Delete(&Recipient{}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *GORMProjectDAO) GetById(ctx context.Context, id string) (Project, error) {
	var prj Project
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&prj).Error
	return prj, err
}

func (d *GORMProjectDAO) List(ctx context.Context, offset int, limit int) ([]Project, error) {
	var res []Project
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("utime DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMProjectDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Project{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMProjectDAO) Recipients(ctx context.Context, pid string) ([]Recipient, error) {
	var res []Recipient
	err := d.db.WithContext(ctx).Where("pid = ?", pid).
		Order("ctime ASC, id ASC").Find(&res).Error
	return res, err
}

func (d *GORMProjectDAO) RecipientById(ctx context.Context, pid, rid string) (Recipient, error) {
	var r Recipient
	err := d.db.WithContext(ctx).Where("pid = ? AND id = ?", pid, rid).First(&r).Error
	return r, err
}

func (d *GORMProjectDAO) UpdateRecipientQuestions(ctx context.Context, pid, rid string, questions []string) error {
	return d.db.WithContext(ctx).Model(&Recipient{}).
		Where("pid = ? AND id = ?", pid, rid).
		Updates(map[string]any{
			"questions": jsonColumn(questions),
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (d *GORMProjectDAO) UpdateRecipientStatus(ctx context.Context, pid, rid string, status uint8) error {
	return d.db.WithContext(ctx).Model(&Recipient{}).
		Where("pid = ? AND id = ?", pid, rid).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMProjectDAO) UpdateProjectStatus(ctx context.Context, id string, status uint8) error {
	return d.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMProjectDAO) CompleteProject(ctx context.Context, id string, status uint8, n Notification) error {
	return d.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"notification": jsonColumn(n),
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *GORMProjectDAO) Submissions(ctx context.Context, pid string) ([]Submission, error) {
	var res []Submission
	err := d.db.WithContext(ctx).Where("pid = ?", pid).Find(&res).Error
	return res, err
}

func (d *GORMProjectDAO) UpsertSubmission(ctx context.Context, sub Submission) error {
	now := time.Now().UnixMilli()
	sub.Ctime = now
	sub.Utime = now
	// 重复提交就整体覆盖 answers，不做合并
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pid"}, {Name: "rid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answers", "utime",
		}),
	}).Create(&sub).Error
}
