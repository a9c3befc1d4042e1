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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/esgform/internal/ai"
	aimocks "github.com/ecodeclub/esgform/internal/ai/mocks"
	"github.com/ecodeclub/esgform/internal/project/internal/domain"
	"github.com/ecodeclub/esgform/internal/project/internal/integration/startup"
	"github.com/ecodeclub/esgform/internal/project/internal/repository/dao"
	"github.com/ecodeclub/esgform/internal/project/internal/web"
	"github.com/ecodeclub/esgform/internal/test"
	testioc "github.com/ecodeclub/esgform/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	admin  *egin.Component
	db     *egorm.Component
	dao    dao.ProjectDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())
	aiSvc := aimocks.NewMockService(ctrl)
	aiSvc.EXPECT().GenerateCompletionSummary(gomock.Any(), gomock.Any()).
		Return(ai.CompletionNotification{
			Message:         "Análise pronta",
			IsComprehensive: true,
		}, nil).AnyTimes()

	m, err := startup.InitModule(s.db, aiSvc)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server

	admin := egin.Load("server").Build()
	m.AdminHdl.Routes(admin.Engine)
	s.admin = admin

	s.dao = dao.NewGORMProjectDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `projects`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `recipients`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `submissions`").Error)
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `projects`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `recipients`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `submissions`").Error)
}

// seed 直接往库里写一个进行中的项目，绕开 HTTP 入口
func (s *HandlerTestSuite) seed(pid string, status domain.ProjectStatus, rcpts ...dao.Recipient) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.dao.Create(ctx, dao.Project{
		Id:          pid,
		ProjectName: "Auditoria ESG 2026",
		ClientName:  "Acme",
		Status:      status.ToUint8(),
	}, rcpts)
	require.NoError(t, err)
}

func rcptRow(id string, status domain.RecipientStatus, questions []string) dao.Recipient {
	return dao.Recipient{
		Id:       id,
		Name:     "Maria Silva",
		Position: "Gerente Ambiental",
		Email:    id + "@acme.com",
		Token:    "tok-" + id,
		Status:   status.ToUint8(),
		Questions: sqlx.JsonColumn[[]string]{
			Val:   questions,
			Valid: true,
		},
	}
}

type projectResp struct {
	Project web.Project `json:"project"`
}

func (s *HandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	saveReq := web.SaveReq{
		Data: web.ProjectFormData{
			ProjectName: "Auditoria ESG 2026",
			ClientName:  "Acme",
			Recipients: []web.RecipientForm{
				{
					Name:     "Maria Silva",
					Position: "Gerente Ambiental",
					Email:    "maria@acme.com",
					// 带重复和不存在的 id，存进去之前要清洗掉
					Questions: json.RawMessage(`["GA1","GA1","XX9","CR1"]`),
				},
				{
					Name:     "João Souza",
					Position: "Analista",
					Email:    "joao@acme.com",
				},
			},
		},
	}
	req, err := http.NewRequest(http.MethodPost, "/projects", iox.NewJSONReader(saveReq))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[projectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	prj := recorder.MustScan().Project
	assert.NotEmpty(t, prj.ID)
	assert.Equal(t, "draft", prj.Status)
	require.Len(t, prj.Recipients, 2)
	byEmail := make(map[string]web.Recipient, len(prj.Recipients))
	for _, r := range prj.Recipients {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Token)
		assert.Equal(t, "pending", r.Status)
		byEmail[r.Email] = r
	}
	assert.Equal(t, []string{"GA1", "CR1"}, byEmail["maria@acme.com"].Questions)
	// 没显式给问题集的收件人默认拿整个目录
	assert.Len(t, byEmail["joao@acme.com"].Questions, 17)

	req, err = http.NewRequest(http.MethodGet, "/projects/"+prj.ID, nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[projectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, prj.ID, recorder.MustScan().Project.ID)
}

func (s *HandlerTestSuite) TestSave_RemoveRecipient() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusInProgress,
		rcptRow("r1", domain.RecipientStatusSent, []string{"GA1"}),
		rcptRow("r2", domain.RecipientStatusCompleted, []string{"CR1"}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.dao.UpsertSubmission(ctx, dao.Submission{
		Pid:     "p1",
		Rid:     "r2",
		Answers: `[{"questionId":"CR1","textAnswer":"100"}]`,
	})
	require.NoError(t, err)

	saveReq := web.SaveReq{
		ProjectID: "p1",
		Data: web.ProjectFormData{
			ProjectName: "Auditoria ESG 2026",
			ClientName:  "Acme",
			Recipients: []web.RecipientForm{
				{ID: "r1", Name: "Maria Silva", Position: "Gerente Ambiental", Email: "r1@acme.com"},
			},
		},
	}
	req, err := http.NewRequest(http.MethodPost, "/projects", iox.NewJSONReader(saveReq))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[projectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	prj := recorder.MustScan().Project
	require.Len(t, prj.Recipients, 1)
	assert.Equal(t, "r1", prj.Recipients[0].ID)
	// 保存不会动存量收件人的状态和凭证
	assert.Equal(t, "sent", prj.Recipients[0].Status)
	assert.Equal(t, "tok-r1", prj.Recipients[0].Token)
	assert.Equal(t, []string{"GA1"}, prj.Recipients[0].Questions)

	// 被删掉的收件人连同它的提交一起没了
	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	rows, err := s.dao.Submissions(ctx2, "p1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func (s *HandlerTestSuite) TestSave_Validation() {
	t := s.T()
	saveReq := web.SaveReq{
		Data: web.ProjectFormData{
			ProjectName: "ab",
			ClientName:  "Acme",
			Recipients: []web.RecipientForm{
				{Name: "Maria Silva", Position: "Gerente", Email: "maria@acme.com"},
			},
		},
	}
	req, err := http.NewRequest(http.MethodPost, "/projects", iox.NewJSONReader(saveReq))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[map[string]string]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 400, recorder.Code)
	assert.Equal(t, "O nome do projeto deve ter pelo menos 3 caracteres.",
		recorder.MustScan()["error"])
}

func (s *HandlerTestSuite) TestDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/projects/nao-existe", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[map[string]string]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 404, recorder.Code)
	assert.Equal(t, "Projeto não encontrado.", recorder.MustScan()["error"])
}

func (s *HandlerTestSuite) TestMarkSent() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusDraft,
		rcptRow("r1", domain.RecipientStatusPending, []string{"GA1"}),
		rcptRow("r2", domain.RecipientStatusPending, []string{"CR1"}),
	)

	markSent := func() web.Project {
		req, err := http.NewRequest(http.MethodPost, "/recipients/mark-sent",
			iox.NewJSONReader(web.MarkSentReq{ProjectID: "p1", RecipientID: "r1"}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[projectResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder.MustScan().Project
	}

	prj := markSent()
	assert.Equal(t, "in_progress", prj.Status)
	assert.Equal(t, "sent", prj.Recipients[0].Status)
	assert.Equal(t, "pending", prj.Recipients[1].Status)

	// 再标一次结果不变
	prj = markSent()
	assert.Equal(t, "in_progress", prj.Status)
	assert.Equal(t, "sent", prj.Recipients[0].Status)
}

func (s *HandlerTestSuite) TestMarkSent_NoQuestions() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusDraft,
		rcptRow("r1", domain.RecipientStatusPending, []string{}),
	)
	req, err := http.NewRequest(http.MethodPost, "/recipients/mark-sent",
		iox.NewJSONReader(web.MarkSentReq{ProjectID: "p1", RecipientID: "r1"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[projectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	// 没分配问题，什么都不会发生
	prj := recorder.MustScan().Project
	assert.Equal(t, "draft", prj.Status)
	assert.Equal(t, "pending", prj.Recipients[0].Status)
}

func (s *HandlerTestSuite) TestAssignQuestions() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusDraft,
		rcptRow("r1", domain.RecipientStatusPending, []string{"GA1", "GA2"}),
	)
	req, err := http.NewRequest(http.MethodPost, "/recipients/questions",
		iox.NewJSONReader(web.AssignQuestionsReq{
			ProjectID:   "p1",
			RecipientID: "r1",
			Questions:   json.RawMessage(`["CR1","XX9","CR1","ER3"]`),
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[projectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, []string{"CR1", "ER3"}, recorder.MustScan().Project.Recipients[0].Questions)
}

func (s *HandlerTestSuite) TestSubmit_CompletesProject() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusInProgress,
		rcptRow("r1", domain.RecipientStatusSent, []string{"GA1", "CR1"}),
	)

	type submitResp struct {
		Success bool        `json:"success"`
		Project web.Project `json:"project"`
	}
	req, err := http.NewRequest(http.MethodPost, "/submissions",
		iox.NewJSONReader(web.SubmitReq{
			Submission: &web.SubmissionPayload{
				ProjectID:   "p1",
				RecipientID: "r1",
				// 老的映射形状也要认
				Answers: json.RawMessage(`{"GA1":"sim","CR1":{"fileAnswer":"fatura.pdf"}}`),
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[submitResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan()
	assert.True(t, res.Success)
	assert.Equal(t, "completed", res.Project.Status)
	assert.Equal(t, "completed", res.Project.Recipients[0].Status)
	require.NotNil(t, res.Project.Notification)
	assert.Equal(t, "Análise pronta", res.Project.Notification.Message)
	assert.True(t, res.Project.Notification.IsComprehensive)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	rows, err := s.dao.Submissions(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].Rid)
}

func (s *HandlerTestSuite) TestSubmit_Overwrites() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusInProgress,
		rcptRow("r1", domain.RecipientStatusSent, []string{"GA1"}),
		rcptRow("r2", domain.RecipientStatusSent, []string{"CR1"}),
	)
	submit := func(answers string) {
		req, err := http.NewRequest(http.MethodPost, "/submissions",
			iox.NewJSONReader(web.SubmitReq{
				Submission: &web.SubmissionPayload{
					ProjectID:   "p1",
					RecipientID: "r1",
					Answers:     json.RawMessage(answers),
				},
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[map[string]any]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
	}
	submit(`[{"questionId":"GA1","textAnswer":"primeira"}]`)
	submit(`[{"questionId":"GA1","textAnswer":"segunda"}]`)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	rows, err := s.dao.Submissions(ctx, "p1")
	require.NoError(t, err)
	// 重复提交整体覆盖，不会多出一行
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Answers, "segunda")
}

func (s *HandlerTestSuite) TestListSubmissions() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusInProgress,
		rcptRow("r1", domain.RecipientStatusSent, []string{"GA1"}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.dao.UpsertSubmission(ctx, dao.Submission{
		Pid:     "p1",
		Rid:     "r1",
		Answers: `[{"questionId":"GA1","textAnswer":"sim"}]`,
	})
	require.NoError(t, err)

	type listResp struct {
		Submissions map[string]web.Submission `json:"submissions"`
	}
	req, err := http.NewRequest(http.MethodGet, "/submissions?projectId=p1", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[listResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	subs := recorder.MustScan().Submissions
	require.Len(t, subs, 1)
	sub, ok := subs["p1_r1"]
	require.True(t, ok)
	assert.Equal(t, []web.Answer{{QuestionID: "GA1", TextAnswer: "sim"}}, sub.Answers)
}

func (s *HandlerTestSuite) TestAdminList() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusDraft)
	s.seed("p2", domain.ProjectStatusInProgress)

	req, err := http.NewRequest(http.MethodPost, "/project/list",
		iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[test.Result[web.ProjectList]]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	data := recorder.MustScan().Data
	assert.Equal(t, int64(2), data.Total)
	assert.Len(t, data.Projects, 2)
}

func (s *HandlerTestSuite) TestAdminDetail() {
	t := s.T()
	s.seed("p1", domain.ProjectStatusDraft,
		rcptRow("r1", domain.RecipientStatusPending, []string{"GA1"}),
	)
	req, err := http.NewRequest(http.MethodPost, "/project/detail",
		iox.NewJSONReader(web.IdReq{ID: "p1"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[test.Result[web.Project]]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "p1", recorder.MustScan().Data.ID)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
