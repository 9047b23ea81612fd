package chi

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/marcelsud/locadora-web/ator"
	"github.com/marcelsud/locadora-web/classe"
	"github.com/marcelsud/locadora-web/cliente"
	"github.com/marcelsud/locadora-web/dialog"
	"github.com/marcelsud/locadora-web/locacao"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/marcelsud/locadora-web/table"
)

const (
	clientesPath = "/clientes"
	atoresPath   = "/atores"
	classesPath  = "/classes"
	locacoesPath = "/locacoes"
)

func dialogHref(path, dialogName, id string) string {
	q := url.Values{}
	q.Set("dialog", dialogName)
	q.Set("id", id)
	return path + "?" + q.Encode()
}

func clientePage(a *app, client *resource.Client[cliente.Cliente, cliente.Create, cliente.Update], service *cliente.Service) *entityPage[cliente.Cliente, cliente.Create, cliente.Update] {
	t := table.New(cliente.Cliente.Key,
		table.Int("numInscricao", "Número de Inscrição", func(c cliente.Cliente) int { return c.NumInscricao }),
		table.Text("nome", "Nome do Cliente", func(c cliente.Cliente) string { return c.Nome }),
		table.Date("dtNascimento", "Data de Nascimento", func(c cliente.Cliente) resource.Date { return c.DtNascimento }),
		table.Text("sexo", "Sexo", func(c cliente.Cliente) string { return c.Sexo.Label() }),
		table.StatusColumn("estahAtivo", "Status", func(c cliente.Cliente) bool { return c.EstahAtivo }),
		table.Actions("Ações", func(c cliente.Cliente) []table.Action {
			toggle := table.Action{Label: "Desativar", Icon: "power-off", Href: dialogHref(clientesPath, "ativo", c.Key())}
			if !c.EstahAtivo {
				toggle.Label = "Ativar"
				toggle.Icon = "power"
			}
			dependentes := table.Action{Label: "Add/Editar dependentes", Icon: "users", Href: clientesPath + "/" + c.Key()}
			return []table.Action{
				toggle,
				{Label: "Editar Cliente", Icon: "pencil", Href: dialogHref(clientesPath, "editar", c.Key())},
				dependentes,
				{Label: "Remover Cliente", Icon: "trash", Href: dialogHref(clientesPath, "remover", c.Key())},
			}
		}),
	)

	return &entityPage[cliente.Cliente, cliente.Create, cliente.Update]{
		app:         a,
		path:        clientesPath,
		title:       "Clientes",
		newLabel:    "Novo Cliente",
		filter:      "nome",
		filterLabel: "Filtrar por nome...",
		client:      client,
		table:       t,
		form: &formConfig[cliente.Cliente, cliente.Create, cliente.Update, cliente.Draft]{
			newTitle:  "Novo Cliente",
			editTitle: "Editar Cliente",
			newDraft:  cliente.NewDraft,
			fromForm:  cliente.DraftFromForm,
			fields:    clienteFields,
			messages: dialog.FormMessages{
				Created: "Cliente criado com sucesso",
				Updated: "Cliente editado com sucesso",
				Failed:  "Erro ao salvar cliente. Tente novamente mais tarde.",
			},
		},
		removal: dialog.RemovalMessages{
			Removed: "O cliente foi removido com sucesso!",
			Failed:  "Não foi possível remover este cliente. Verifique se ele possui locações ativas ou tente novamente mais tarde.",
		},
		removalQuestion: "Tem certeza que deseja remover este cliente?",
		toggle: &toggleConfig[cliente.Cliente]{
			toggler: service,
			active:  func(c cliente.Cliente) bool { return c.EstahAtivo },
			messages: dialog.ToggleMessages{
				ActivateQuestion:   "Tem certeza que deseja ativar este cliente?",
				DeactivateQuestion: "Tem certeza que deseja desativar este cliente?",
				Activated:          "Cliente ativado com sucesso",
				Deactivated:        "Cliente desativado com sucesso",
				Failed:             "Não foi possível alterar o status do cliente. Tente novamente mais tarde.",
			},
		},
		detail: func(ctx context.Context, id string) (detailView, error) {
			c, err := service.Dependentes(ctx, id)
			if err != nil {
				return detailView{}, err
			}
			deps := table.New(cliente.Cliente.Key,
				table.Int("numInscricao", "Número de Inscrição", func(c cliente.Cliente) int { return c.NumInscricao }),
				table.Text("nome", "Nome do Dependente", func(c cliente.Cliente) string { return c.Nome }),
				table.Date("dtNascimento", "Data de Nascimento", func(c cliente.Cliente) resource.Date { return c.DtNascimento }),
				table.StatusColumn("estahAtivo", "Status", func(c cliente.Cliente) bool { return c.EstahAtivo }),
			)
			return detailView{
				Title:    "Dependentes",
				Subtitle: fmt.Sprintf("%d - %s", c.NumInscricao, c.Nome),
				Table:    deps.Apply(c.Dependentes, table.State{PageSize: max(len(c.Dependentes), 1)}),
			}, nil
		},
	}
}

func clienteFields(d cliente.Draft, edit bool) []fieldView {
	num := ""
	if d.NumInscricao != 0 {
		num = strconv.Itoa(d.NumInscricao)
	}
	return []fieldView{
		{Name: "numInscricao", Label: "Número de Inscrição", Type: "number", Value: num, ReadOnly: true},
		{Name: "nome", Label: "Nome", Type: "text", Value: d.Nome},
		{Name: "dtNascimento", Label: "Data de Nascimento", Type: "date", Value: resource.NewDate(d.DtNascimento).Input()},
		{Name: "sexo", Label: "Sexo", Type: "radio", Options: []option{
			{Value: cliente.Masculino.String(), Label: cliente.Masculino.Label(), Checked: d.Sexo == cliente.Masculino},
			{Value: cliente.Feminino.String(), Label: cliente.Feminino.Label(), Checked: d.Sexo == cliente.Feminino},
		}},
	}
}

func atorPage(a *app, client *resource.Client[ator.Ator, ator.Create, ator.Update]) *entityPage[ator.Ator, ator.Create, ator.Update] {
	t := table.New(ator.Ator.Key,
		table.Text("nome", "Nome do Ator", func(x ator.Ator) string { return x.Nome }),
		table.Actions("Ações", func(x ator.Ator) []table.Action {
			return []table.Action{
				{Label: "Editar Ator", Icon: "pencil", Href: dialogHref(atoresPath, "editar", x.Key())},
				{Label: "Remover Ator", Icon: "trash", Href: dialogHref(atoresPath, "remover", x.Key())},
			}
		}),
	)

	return &entityPage[ator.Ator, ator.Create, ator.Update]{
		app:         a,
		path:        atoresPath,
		title:       "Atores",
		newLabel:    "Novo Ator",
		filter:      "nome",
		filterLabel: "Filtrar por nome...",
		client:      client,
		table:       t,
		form: &formConfig[ator.Ator, ator.Create, ator.Update, ator.Draft]{
			newTitle:  "Novo Ator",
			editTitle: "Editar Ator",
			newDraft:  func(existing *ator.Ator, _ []ator.Ator) ator.Draft { return ator.NewDraft(existing) },
			fromForm:  ator.DraftFromForm,
			fields: func(d ator.Draft, _ bool) []fieldView {
				return []fieldView{{Name: "nome", Label: "Nome", Type: "text", Value: d.Nome}}
			},
			messages: dialog.FormMessages{
				Created: "Ator criado com sucesso",
				Updated: "Ator editado com sucesso",
				Failed:  "Erro ao salvar ator. Tente novamente mais tarde.",
			},
		},
		removal: dialog.RemovalMessages{
			Removed: "O ator foi removido com sucesso!",
			Failed:  "Não foi possível remover este ator. Tente novamente mais tarde.",
		},
		removalQuestion: "Tem certeza que deseja remover este ator?",
	}
}

func classePage(a *app, client *resource.Client[classe.Classe, classe.Create, classe.Update]) *entityPage[classe.Classe, classe.Create, classe.Update] {
	t := table.New(classe.Classe.Key,
		table.Text("nome", "Nome da Classe", func(c classe.Classe) string { return c.Nome }),
		table.Actions("Ações", func(c classe.Classe) []table.Action {
			return []table.Action{
				{Label: "Atores", Icon: "users", Href: classesPath + "/" + url.PathEscape(c.Key())},
				{Label: "Editar Classe", Icon: "pencil", Href: dialogHref(classesPath, "editar", c.Key())},
				{Label: "Remover Classe", Icon: "trash", Href: dialogHref(classesPath, "remover", c.Key())},
			}
		}),
	)

	return &entityPage[classe.Classe, classe.Create, classe.Update]{
		app:         a,
		path:        classesPath,
		title:       "Classes",
		newLabel:    "Nova Classe",
		filter:      "nome",
		filterLabel: "Filtrar por nome...",
		client:      client,
		table:       t,
		form: &formConfig[classe.Classe, classe.Create, classe.Update, classe.Draft]{
			newTitle:  "Nova Classe",
			editTitle: "Editar Classe",
			newDraft:  func(existing *classe.Classe, _ []classe.Classe) classe.Draft { return classe.NewDraft(existing) },
			fromForm:  classe.DraftFromForm,
			fields: func(d classe.Draft, _ bool) []fieldView {
				return []fieldView{{Name: "nome", Label: "Nome", Type: "text", Value: d.Nome}}
			},
			messages: dialog.FormMessages{
				Created: "Classe criada com sucesso",
				Updated: "Classe editada com sucesso",
				Failed:  "Erro ao salvar classe. Tente novamente mais tarde.",
			},
		},
		removal: dialog.RemovalMessages{
			Removed: "A classe foi removida com sucesso!",
			Failed:  "Não foi possível remover esta classe. Tente novamente mais tarde.",
		},
		removalQuestion: "Tem certeza que deseja remover esta classe?",
		detail: func(ctx context.Context, id string) (detailView, error) {
			c, err := client.Select(ctx, id)
			if err != nil {
				return detailView{}, err
			}
			atores := table.New(ator.Ator.Key,
				table.Text("nome", "Nome do Ator", func(x ator.Ator) string { return x.Nome }),
			)
			return detailView{
				Title:    "Atores da Classe",
				Subtitle: c.Nome,
				Table:    atores.Apply(c.Atores, table.State{PageSize: max(len(c.Atores), 1)}),
			}, nil
		},
	}
}

func locacaoPage(a *app, client *resource.Client[locacao.Locacao, locacao.Create, locacao.Update]) *entityPage[locacao.Locacao, locacao.Create, locacao.Update] {
	valor := table.Text("valorCobrado", "Valor Cobrado", locacao.Locacao.Valor)
	valor.Compare = func(a, b locacao.Locacao) int { return cmp.Compare(a.ValorCobrado, b.ValorCobrado) }

	t := table.New(locacao.Locacao.Key,
		table.Int("numInscricao", "Número de Inscrição", func(l locacao.Locacao) int { return l.NumInscricao }),
		table.Date("dtLocacao", "Data da Locação", func(l locacao.Locacao) resource.Date { return l.DtLocacao }),
		table.Date("dtDevolucaoPrevista", "Devolução Prevista", func(l locacao.Locacao) resource.Date { return l.DtDevolucaoPrevista }),
		valor,
		table.StatusColumn("estahAtiva", "Status", func(l locacao.Locacao) bool { return l.EstahAtiva }),
		table.Actions("Ações", func(l locacao.Locacao) []table.Action {
			return []table.Action{
				{Label: "Remover Locação", Icon: "trash", Href: dialogHref(locacoesPath, "remover", l.Key())},
			}
		}),
	)

	return &entityPage[locacao.Locacao, locacao.Create, locacao.Update]{
		app:         a,
		path:        locacoesPath,
		title:       "Locações",
		filter:      "numInscricao",
		filterLabel: "Filtrar por inscrição...",
		client:      client,
		table:       t,
		removal: dialog.RemovalMessages{
			Removed: "A locação foi removida com sucesso!",
			Failed:  "Não foi possível remover esta locação. Verifique se ela está ativa ou tente novamente mais tarde.",
		},
		removalQuestion: "Tem certeza que deseja remover esta locação?",
	}
}
