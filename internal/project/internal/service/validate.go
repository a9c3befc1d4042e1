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
	"regexp"
	"unicode/utf8"

	"github.com/ecodeclub/esgform/internal/project/internal/domain"
)

// ValidationError 校验不通过。Msg 是直接回给用户的文案
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var emailExpr = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateProject 校验规则和前端表单一致，错误文案直接回给用户，所以是葡萄牙语
func validateProject(prj domain.Project) error {
	if utf8.RuneCountInString(prj.ProjectName) < 3 {
		return invalid("O nome do projeto deve ter pelo menos 3 caracteres.")
	}
	if utf8.RuneCountInString(prj.ClientName) < 2 {
		return invalid("O nome do cliente deve ter pelo menos 2 caracteres.")
	}
	if len(prj.Recipients) == 0 {
		return invalid("Adicione pelo menos um destinatário.")
	}
	for _, r := range prj.Recipients {
		if utf8.RuneCountInString(r.Name) < 2 {
			return invalid("O nome do destinatário é obrigatório.")
		}
		if utf8.RuneCountInString(r.Position) < 2 {
			return invalid("O cargo é obrigatório.")
		}
		if !emailExpr.MatchString(r.Email) {
			return invalid("O e-mail é inválido.")
		}
	}
	return nil
}

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
