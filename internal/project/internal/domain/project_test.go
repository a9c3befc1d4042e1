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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_AllDone(t *testing.T) {
	testCases := []struct {
		name string
		prj  Project
		want bool
	}{
		{
			name: "没有收件人空泛地算完成",
			prj:  Project{},
			want: true,
		},
		{
			name: "所有人都交卷了",
			prj: Project{Recipients: []Recipient{
				{Questions: []string{"GA1"}, Status: RecipientStatusCompleted},
				{Questions: []string{"CR1"}, Status: RecipientStatusCompleted},
			}},
			want: true,
		},
		{
			name: "没分配问题的收件人不算拦路",
			prj: Project{Recipients: []Recipient{
				{Questions: []string{"GA1"}, Status: RecipientStatusCompleted},
				{Questions: []string{}, Status: RecipientStatusPending},
			}},
			want: true,
		},
		{
			name: "还有人没交卷",
			prj: Project{Recipients: []Recipient{
				{Questions: []string{"GA1"}, Status: RecipientStatusCompleted},
				{Questions: []string{"CR1"}, Status: RecipientStatusSent},
			}},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.prj.AllDone())
		})
	}
}

func TestProject_HasActivity(t *testing.T) {
	testCases := []struct {
		name string
		prj  Project
		want bool
	}{
		{
			name: "全部还在等待",
			prj: Project{Recipients: []Recipient{
				{Status: RecipientStatusPending},
				{Status: RecipientStatusPending},
			}},
			want: false,
		},
		{
			name: "有人收到了邮件",
			prj: Project{Recipients: []Recipient{
				{Status: RecipientStatusPending},
				{Status: RecipientStatusSent},
			}},
			want: true,
		},
		{
			name: "有人已经交卷",
			prj: Project{Recipients: []Recipient{
				{Status: RecipientStatusCompleted},
			}},
			want: true,
		},
		{
			name: "没有收件人",
			prj:  Project{},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.prj.HasActivity())
		})
	}
}

func TestSubmission_Key(t *testing.T) {
	sub := Submission{ProjectID: "p1", RecipientID: "r1"}
	assert.Equal(t, "p1_r1", sub.Key())
}
