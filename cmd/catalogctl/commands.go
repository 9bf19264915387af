package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/perfectpolymers-api/docs"
	"github.com/jhoicas/perfectpolymers-api/internal/app"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

type rootOptions struct {
	catalogFile string
	baseURL     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Herramientas de operación del catálogo de Perfect Polymers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "catálogo YAML alternativo (por defecto el incrustado)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "https://perfectpolymers.co", "URL pública del sitio")

	root.AddCommand(
		newValidateCmd(opts),
		newSitemapCmd(opts),
		newExportCmd(opts),
		newDatasheetCmd(opts),
		newOpenAPICmd(),
	)
	return root
}

func (o *rootOptions) load() (*seed.Catalog, error) {
	if o.catalogFile == "" {
		return seed.Load()
	}
	data, err := os.ReadFile(o.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}
	return seed.Parse(data)
}

func (o *rootOptions) container() (*app.Container, error) {
	cat, err := o.load()
	if err != nil {
		return nil, err
	}
	return app.New(cat, app.Options{BaseURL: o.baseURL}), nil
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Valida el catálogo (grados, categorías, slugs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.load()
			if err != nil {
				return err
			}
			active := 0
			for _, p := range cat.Products {
				if p.IsActive {
					active++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catálogo %s válido: %d categorías, %d productos (%d activos), %d artículos\n",
				cat.Version, len(cat.Categories), len(cat.Products), active, len(cat.Posts))
			return nil
		},
	}
}

func newSitemapCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Genera sitemap.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			doc, err := c.SiteUC.Sitemap()
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, doc)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta los productos activos en CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := c.CatalogUC.ExportCSV(&buf); err != nil {
				return err
			}
			return writeOutput(cmd, out, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}

func newDatasheetCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "datasheet <product-id>",
		Short: "Genera la ficha técnica PDF de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			pdf, filename, err := c.CatalogUC.Datasheet(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ficha escrita en %s (%d bytes)\n", out, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (por defecto <código>-datasheet.pdf)")
	return cmd
}

func newOpenAPICmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Escribe el documento OpenAPI registrado (docs/swagger.json)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd, out, []byte(docs.SwaggerInfo.ReadDoc()+"\n"))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "docs/swagger.json", "archivo de salida; - = stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" && path != "-" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		return nil
	}
	_, err := w.Write(data)
	return err
}
