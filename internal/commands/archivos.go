package commands

import (
	"context"
	"errors"
	"fmt"

	"ofrendas/internal/app"
	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/service"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newExportarSemanaCommand(abrir Abridor) *cobra.Command {
	var id, salida string

	cmd := &cobra.Command{
		Use:   "exportar-semana",
		Short: "Write a saved weekly record as an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return conApp(cmd, abrir, func(ctx context.Context, a *app.App) error {
				archivo, err := a.Registros.Exportar(ctx, id)
				if err != nil {
					return err
				}
				return guardar(cmd, salida, archivo)
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "weekly record id (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&salida, "salida", "", "output path, \"-\" for stdout (default: generated file name)")

	return cmd
}

func newInformePDFCommand(abrir Abridor) *cobra.Command {
	var mes, anio int
	var salida string

	cmd := &cobra.Command{
		Use:   "informe-pdf",
		Short: "Render the monthly report as PDF",
		Long: "Renders the saved monthly report draft for the period. When no draft " +
			"exists the form is filled from the month's weekly records.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return conApp(cmd, abrir, func(ctx context.Context, a *app.App) error {
				f, err := formularioDelMes(ctx, a, mes, anio)
				if err != nil {
					return err
				}
				archivo, err := a.Informes.GenerarPDF(ctx, f)
				if err != nil {
					return err
				}
				return guardar(cmd, salida, archivo)
			})
		},
	}

	cmd.Flags().IntVar(&mes, "mes", 0, "month, 1-12 (required)")
	cmd.Flags().IntVar(&anio, "anio", 0, "year (required)")
	_ = cmd.MarkFlagRequired("mes")
	_ = cmd.MarkFlagRequired("anio")
	cmd.Flags().StringVar(&salida, "salida", "", "output path, \"-\" for stdout (default: generated file name)")

	return cmd
}

func newCargarNubeCommand(abrir Abridor) *cobra.Command {
	var archivo string
	var sobrescribir bool

	cmd := &cobra.Command{
		Use:   "cargar-nube",
		Short: "Import a weekly workbook from the remote bucket as a saved record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return conApp(cmd, abrir, func(ctx context.Context, a *app.App) error {
				res, err := a.Nube.Cargar(ctx, dto.CargarNubeRequest{Archivo: archivo, Sobrescribir: sobrescribir})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Mensaje)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&archivo, "archivo", "", "file name in the weekly bucket (required)")
	_ = cmd.MarkFlagRequired("archivo")
	cmd.Flags().BoolVar(&sobrescribir, "sobrescribir", false, "replace a saved record with the same date")

	return cmd
}

func formularioDelMes(ctx context.Context, a *app.App, mes, anio int) (model.FormularioInforme, error) {
	inf, err := a.Informes.Obtener(ctx, model.InformeID(mes, anio))
	if err == nil {
		return inf.Formulario, nil
	}
	if !errors.Is(err, service.ErrInformeNoEncontrado) {
		return model.FormularioInforme{}, err
	}
	datos, err := a.Informes.CargarDatos(ctx, dto.CargarDatosRequest{Mes: mes, Anio: anio})
	if err != nil {
		return model.FormularioInforme{}, err
	}
	return datos.Formulario, nil
}

func guardar(cmd *cobra.Command, salida string, archivo dto.ArchivoResponse) error {
	if salida == "" {
		salida = archivo.Nombre
	}
	if err := escribirArchivo(cmd, salida, archivo.Datos); err != nil {
		return err
	}
	if salida != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", salida, humanize.Bytes(uint64(len(archivo.Datos))))
	}
	return nil
}
