package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/paths"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if genDocDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
		}

		if err := paths.EnsureDir(genDocDir, paths.DefaultDirPerm); err != nil {
			return err
		}

		switch genDocFormat {
		case "markdown", "md":
			if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler); err != nil {
				return errors.Wrap(err, "generating markdown")
			}
		case "man":
			header := &doc.GenManHeader{Title: "DEV-AGENTS", Section: "1"}
			if err := doc.GenManTree(rootCmd, header, genDocDir); err != nil {
				return errors.Wrap(err, "generating man pages")
			}
		default:
			return errors.NewUserError(errors.Newf("unknown format %q", genDocFormat), "Use markdown or man")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "Output format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// dev-agents_init.md -> dev-agents init
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
