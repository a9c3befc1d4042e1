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

package catalog

// questions ESG 问卷的全部问题。客户那边要求用葡萄牙语
var questions = []Question{
	// 环境管理与战略
	{ID: "GA1", Category: "Gestão Ambiental", Text: "A empresa possui uma política ambiental formalizada? Se sim, anexe o documento."},
	{ID: "GA2", Category: "Gestão Ambiental", Text: "Descreva os principais objetivos e metas ambientais para o próximo ano."},
	{ID: "GA3", Category: "Gestão Ambiental", Text: "Existem responsáveis ou uma equipe dedicada à gestão ambiental? Quem são?"},

	// 资源消耗
	{ID: "CR1", Category: "Recursos Hídricos", Text: "Qual o consumo total de água nos últimos 12 meses (em m³)? Anexe as faturas."},
	{ID: "CR2", Category: "Recursos Hídricos", Text: "Existem medidas para a redução do consumo de água ou de reuso? Descreva-as."},
	{ID: "CR3", Category: "Energia", Text: "Descreva o consumo de energia elétrica da sua unidade nos últimos 12 meses (em kWh)."},
	{ID: "CR4", Category: "Energia", Text: "A empresa utiliza fontes de energia renovável? Se sim, quais e em que proporção?"},
	{ID: "CR5", Category: "Matérias-Primas", Text: "Quais as principais matérias-primas utilizadas no processo produtivo e suas origens?"},

	// 排放与废弃物
	{ID: "ER1", Category: "Emissões Atmosféricas", Text: "Quais são as principais fontes de emissões atmosféricas e os poluentes associados?"},
	{ID: "ER2", Category: "Emissões Atmosféricas", Text: "A empresa realiza monitoramento das suas emissões? Anexe os últimos relatórios."},
	{ID: "ER3", Category: "Gestão de Resíduos", Text: "Qual a quantidade total de resíduos gerados (separados por tipo: perigoso e não perigoso) nos últimos 12 meses?"},
	{ID: "ER4", Category: "Gestão de Resíduos", Text: "Descreva o processo de segregação, armazenamento e destinação final dos resíduos."},
	{ID: "ER5", Category: "Efluentes", Text: "Descreva o sistema de tratamento de efluentes líquidos da empresa."},

	// 生物多样性与供应链
	{ID: "BF1", Category: "Biodiversidade", Text: "A operação da empresa está localizada em ou perto de áreas de alta importância para a biodiversidade? Detalhe."},
	{ID: "BF2", Category: "Cadeia de Fornecimento", Text: "Existem critérios ambientais para a seleção e avaliação de fornecedores? Quais são?"},

	// 合规与风险
	{ID: "CRF1", Category: "Conformidade Legal", Text: "Liste as principais licenças ambientais que a empresa possui e suas validades."},
	{ID: "CRF2", Category: "Riscos e Oportunidades", Text: "Quais são os principais riscos e oportunidades ambientais identificados para o negócio?"},
}
