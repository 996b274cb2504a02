package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
	"orbdyn/internal/codec"
)

var (
	exportFormat string
	exportOut    string
	exportCopy   bool
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a resource as JSON, Markdown or PDF text",
	Long: `Export one resource. The text goes to stdout unless --out or --copy
is given. When --out names a directory the file is named after the title.

Examples:
  orbdyn export 1b9d6bcd
  orbdyn export 1b9d6bcd --format md --out ~/Documents
  orbdyn export 1b9d6bcd --format md --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}
		format, err := codec.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		result, err := commands.NewExportCommand(GetApp().Resources, id, format).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if exportCopy {
			if err := clipboard.WriteAll(result.Content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(out, "Copied %s to clipboard\n", result.FileName)
		}

		if exportOut != "" {
			path, err := exportPath(exportOut, result.FileName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(result.Content), 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(out, "%s to %s\n", result.Message, path)
		}

		if !exportCopy && exportOut == "" {
			fmt.Fprint(out, result.Content)
		}
		return nil
	},
}

// exportPath resolves --out: a directory receives fileName, anything else is
// the file itself
func exportPath(out, fileName string) (string, error) {
	info, err := os.Stat(out)
	if err == nil && info.IsDir() {
		return filepath.Join(out, fileName), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return out, nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import resources from a file",
	Long: `Import resources. A JSON file holds one resource object or an array
of them; a Markdown or PDF text file becomes one note titled after the file.
Resources whose title already exists are skipped. Use - to read stdin.

Examples:
  orbdyn import backup.json
  orbdyn import "Meeting notes.md"
  cat export.json | orbdyn import - --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		var format codec.Format
		if importFormat != "" {
			if format, err = codec.ParseFormat(importFormat); err != nil {
				return err
			}
		}

		fileName := args[0]
		if fileName == "-" {
			fileName = ""
		}

		a := GetApp()
		importCmd := commands.NewImportCommand(a.Resources, a.Importer, a.Logger, string(raw), fileName, format)
		result, err := importCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(codec.FormatJSON), "json, md or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file or directory")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy the exported text to the clipboard")

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "json, md or pdf (default: from the file extension)")
}
