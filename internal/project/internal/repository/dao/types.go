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

import "github.com/ecodeclub/ekit/sqlx"

func jsonColumn[T any](val T) sqlx.JsonColumn[T] {
	return sqlx.JsonColumn[T]{Val: val, Valid: true}
}

type Project struct {
	Id          string `gorm:"primaryKey;type:varchar(64)"`
	ProjectName string `gorm:"type:varchar(256)"`
	ClientName  string `gorm:"type:varchar(256)"`
	Status      uint8
	// 项目完结的时候写入，之后不再变
	Notification sqlx.JsonColumn[Notification] `gorm:"type:varchar(4096)"`
	Ctime        int64
	Utime        int64
}

type Notification struct {
	Message         string `json:"message"`
	IsComprehensive bool   `json:"isComprehensive"`
}

type Recipient struct {
	Id       string `gorm:"primaryKey;type:varchar(64)"`
	Pid      string `gorm:"index;type:varchar(64)"`
	Name     string `gorm:"type:varchar(256)"`
	Position string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256)"`
	// Token 答题链接的访问凭证
	Token     string                    `gorm:"type:varchar(64)"`
	Status    uint8
	Questions sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Ctime     int64
	Utime     int64
}

type Submission struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Pid string `gorm:"uniqueIndex:uidx_pid_rid;type:varchar(64)"`
	Rid string `gorm:"uniqueIndex:uidx_pid_rid;type:varchar(64)"`
	// 原样存 JSON，读出来的时候再清洗成规范形状
	Answers string `gorm:"type:text"`
	Ctime   int64
	Utime   int64
}
