package commands

import (
	"context"
	"fmt"

	"ofrendas/internal/app"

	"github.com/spf13/cobra"
)

func newSemillaCommand(abrir Abridor) *cobra.Command {
	return &cobra.Command{
		Use:   "semilla",
		Short: "Insert the default categories and seed members into the remote tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return conApp(cmd, abrir, func(ctx context.Context, a *app.App) error {
				res, err := a.Admin.Semilla(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d filas insertadas\n", res.Insertados)
				if res.Advertencia != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "advertencia: %s\n", res.Advertencia)
				}
				return nil
			})
		},
	}
}

func newSincronizarCommand(abrir Abridor) *cobra.Command {
	return &cobra.Command{
		Use:   "sincronizar",
		Short: "Refresh the local member, category and comisionado lists from the remote tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return conApp(cmd, abrir, func(ctx context.Context, a *app.App) error {
				res, err := a.Admin.Sincronizar(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "miembros: %d\ncategorias: %d\ncomisionados: %d\n",
					res.Miembros, res.Categorias, res.Comisionados)
				return nil
			})
		},
	}
}
