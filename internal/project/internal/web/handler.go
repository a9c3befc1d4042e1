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
	"errors"
	"net/http"

	"github.com/ecodeclub/esgform/internal/project/internal/domain"
	"github.com/ecodeclub/esgform/internal/project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 对外的答题和管理流程接口。
// 响应形状是和前端约死的：成功 {project: ...}，失败 {error: 文案} 配 400/404/500
type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/projects", h.Save)
	server.GET("/projects/:id", h.Detail)
	server.POST("/recipients/mark-sent", h.MarkSent)
	server.POST("/recipients/questions", h.AssignQuestions)
	server.GET("/submissions", h.ListSubmissions)
	server.POST("/submissions", h.Submit)
}

func (h *Handler) Save(ctx *gin.Context) {
	var req SaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.badRequest(ctx, "Payload inválido.")
		return
	}
	prj, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		h.writeError(ctx, err, "Não foi possível salvar o projeto.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"project": newProject(prj)})
}

func (h *Handler) Detail(ctx *gin.Context) {
	prj, err := h.svc.Detail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		h.writeError(ctx, err, "Não foi possível carregar o projeto.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"project": newProject(prj)})
}

func (h *Handler) MarkSent(ctx *gin.Context) {
	var req MarkSentReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ProjectID == "" || req.RecipientID == "" {
		h.badRequest(ctx, "Payload inválido.")
		return
	}
	prj, err := h.svc.MarkSent(ctx.Request.Context(), req.ProjectID, req.RecipientID)
	if err != nil {
		h.writeError(ctx, err, "Não foi possível marcar o e-mail como enviado.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"project": newProject(prj)})
}

func (h *Handler) AssignQuestions(ctx *gin.Context) {
	var req AssignQuestionsReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ProjectID == "" || req.RecipientID == "" {
		h.badRequest(ctx, "Payload inválido.")
		return
	}
	prj, err := h.svc.AssignQuestions(ctx.Request.Context(),
		req.ProjectID, req.RecipientID,
		domain.SanitizeQuestionIDs(req.Questions))
	if err != nil {
		h.writeError(ctx, err, "Não foi possível atualizar as perguntas.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"project": newProject(prj)})
}

func (h *Handler) ListSubmissions(ctx *gin.Context) {
	pid := ctx.Query("projectId")
	if pid == "" {
		h.badRequest(ctx, "Parâmetros inválidos.")
		return
	}
	subs, err := h.svc.ListSubmissions(ctx.Request.Context(), pid)
	if err != nil {
		h.writeError(ctx, err, "Não foi possível carregar as submissões.")
		return
	}
	res := make(map[string]Submission, len(subs))
	for key, sub := range subs {
		res[key] = newSubmission(sub)
	}
	ctx.JSON(http.StatusOK, gin.H{"submissions": res})
}

func (h *Handler) Submit(ctx *gin.Context) {
	var req SubmitReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Submission == nil ||
		req.Submission.ProjectID == "" || req.Submission.RecipientID == "" {
		h.badRequest(ctx, "Payload inválido.")
		return
	}
	prj, err := h.svc.SubmitResponse(ctx.Request.Context(), req.Submission.toDomain())
	if err != nil {
		h.writeError(ctx, err, "Não foi possível enviar suas respostas.")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": newProject(prj),
	})
}

func (h *Handler) badRequest(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// writeError 校验错误回 400，找不到回 404，其它一律 500 配一条笼统文案，
// 存储层的细节只进日志不出去
func (h *Handler) writeError(ctx *gin.Context, err error, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Projeto não encontrado."})
	case errors.Is(err, service.ErrRecipientNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Destinatário não encontrado."})
	default:
		h.logger.Error("处理请求失败",
			elog.FieldErr(err),
			elog.String("path", ctx.Request.URL.Path))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
