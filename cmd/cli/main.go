package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/marcelsud/locadora-web/ator"
	"github.com/marcelsud/locadora-web/classe"
	"github.com/marcelsud/locadora-web/cliente"
	"github.com/marcelsud/locadora-web/config"
	"github.com/marcelsud/locadora-web/endpoints"
	"github.com/marcelsud/locadora-web/locacao"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/marcelsud/locadora-web/session"
	"github.com/spf13/cobra"
)

/* cli - operações de manutenção contra a mesma API REST que o front usa
 * Usage:
 *   cli listar <cliente|ator|classe|locacao>
 *   cli remover <entidade> <id>
 *   cli dependentes <numInscricao>
 *   cli segredo
 */

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// clients is built lazily so segredo runs without a config
type clients struct {
	clientes *resource.Client[cliente.Cliente, cliente.Create, cliente.Update]
	atores   *resource.Client[ator.Ator, ator.Create, ator.Update]
	classes  *resource.Client[classe.Classe, classe.Create, classe.Update]
	locacoes *resource.Client[locacao.Locacao, locacao.Create, locacao.Update]
}

func newClients() (*clients, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	loader := endpoints.NewLoader()
	if err := loader.Load(cfg.EndpointsFile); err != nil {
		loader = endpoints.Default()
	}
	api, err := resource.NewAPI(cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}

	get := func(entity string) endpoints.Endpoint {
		src := loader
		if !src.Exists(entity) {
			src = endpoints.Default()
		}
		ep, _ := src.Get(entity)
		return *ep
	}
	return &clients{
		clientes: resource.New[cliente.Cliente, cliente.Create, cliente.Update](api, get("cliente")),
		atores:   resource.New[ator.Ator, ator.Create, ator.Update](api, get("ator")),
		classes:  resource.New[classe.Classe, classe.Create, classe.Update](api, get("classe")),
		locacoes: resource.New[locacao.Locacao, locacao.Create, locacao.Update](api, get("locacao")),
	}, nil
}

// remover returns the Delete of the entity client
func (c *clients) remover(entity string) (func(ctx context.Context, id string) error, error) {
	switch entity {
	case "cliente":
		return c.clientes.Delete, nil
	case "ator":
		return c.atores.Delete, nil
	case "classe":
		return c.classes.Delete, nil
	case "locacao":
		return c.locacoes.Delete, nil
	}
	return nil, fmt.Errorf("entidade desconhecida: %s", entity)
}

// list fetches entity and writes it as a table
func (c *clients) list(ctx context.Context, entity string, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch entity {
	case "cliente":
		if err := c.clientes.List(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "INSCRIÇÃO\tNOME\tNASCIMENTO\tSEXO\tSTATUS")
		for _, x := range c.clientes.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", x.NumInscricao, x.Nome, x.DtNascimento.BR(), x.Sexo.Label(), x.Status())
		}
	case "ator":
		if err := c.atores.List(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNOME")
		for _, x := range c.atores.Items() {
			fmt.Fprintf(w, "%s\t%s\n", x.ID, x.Nome)
		}
	case "classe":
		if err := c.classes.List(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNOME")
		for _, x := range c.classes.Items() {
			fmt.Fprintf(w, "%s\t%s\n", x.ID, x.Nome)
		}
	case "locacao":
		if err := c.locacoes.List(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tINSCRIÇÃO\tLOCAÇÃO\tDEVOLUÇÃO\tVALOR\tSTATUS")
		for _, x := range c.locacoes.Items() {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", x.ID, x.NumInscricao, x.DtLocacao.BR(), x.DtDevolucaoPrevista.BR(), x.Valor(), x.Status())
		}
	default:
		return fmt.Errorf("entidade desconhecida: %s", entity)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cli",
		Short:        "Manutenção da locadora pela API REST",
		SilenceUsage: true,
	}
	root.AddCommand(newListarCmd(), newRemoverCmd(), newDependentesCmd(), newSegredoCmd())
	return root
}

func newListarCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "listar <entidade>",
		Short:     "Lista cliente, ator, classe ou locacao",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cliente", "ator", "classe", "locacao"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClients()
			if err != nil {
				return err
			}
			return c.list(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func newRemoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remover <entidade> <id>",
		Short: "Remove um registro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClients()
			if err != nil {
				return err
			}
			remove, err := c.remover(args[0])
			if err != nil {
				return err
			}
			if err := remove(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s removido\n", args[0], args[1])
			return nil
		},
	}
}

func newDependentesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dependentes <numInscricao>",
		Short: "Mostra os dependentes de um cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClients()
			if err != nil {
				return err
			}
			titular, err := cliente.NewService(c.clientes).Dependentes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d - %s\n", titular.NumInscricao, titular.Nome)
			for _, d := range titular.Dependentes {
				fmt.Fprintf(out, "  %d - %s (%s)\n", d.NumInscricao, d.Nome, d.Status())
			}
			return nil
		},
	}
}

func newSegredoCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "segredo",
		Short: "Gera um SESSION_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := session.GenerateSecret(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "bytes", 32, "tamanho do segredo em bytes")
	return cmd
}
