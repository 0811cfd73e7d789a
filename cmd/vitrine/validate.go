package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/config"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/preload"
)

type validateOptions struct {
	checkFiles bool
	jsonOutput bool
}

// itemReport is one row of validate output.
type itemReport struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Source string `json:"source,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Error  string `json:"error,omitempty"`
}

type catalogReport struct {
	Catalog string       `json:"catalog"`
	Name    string       `json:"name,omitempty"`
	Valid   bool         `json:"valid"`
	Items   []itemReport `json:"items"`
}

func newValidateCmd(app *appContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog document without opening it",
		Long: `Validate parses the catalog and reports schema errors. With --check-files
every local source is opened and its content compared against the declared
kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.close()
			return runValidate(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.checkFiles, "check-files", false, "Open every local source and check its content type")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, app *appContext, path string, opts *validateOptions) error {
	if err := app.load(cmd, false); err != nil {
		return err
	}
	log := app.log.Component("validate")

	doc, err := config.ParseCatalog(path)
	if err != nil {
		log.Warn("catalog rejected", "catalog", path, "error", err.Error())
		return withCode(newCommandError("validate", fmt.Sprintf("parsing catalog %q", path), err,
			"Fix the catalog errors shown above and try again."), exitInvalid)
	}

	root := app.settings.Media.Root
	if root == "" {
		root = doc.BaseDir
	}
	loader := preload.FileLoader{Root: root}

	report := catalogReport{Catalog: path, Name: doc.Name, Valid: true}
	for index, item := range doc.Catalog().Items() {
		row := itemReport{
			Index:  index,
			Kind:   item.Kind().String(),
			Source: media.SourceOf(item),
			Alt:    item.Alt(),
		}
		if opts.checkFiles {
			if err := loader.Load(cmd.Context(), index, item); err != nil {
				row.Error = err.Error()
				report.Valid = false
			}
		}
		report.Items = append(report.Items, row)
	}
	log.Debug("catalog checked", "catalog", path, "items", len(report.Items), "valid", report.Valid)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return newCommandError("validate", "encoding report", err, "")
		}
	} else {
		renderReport(out, report, isTerminal(out))
	}

	if !report.Valid {
		return withCode(newCommandError("validate", fmt.Sprintf("checking files of %q", path),
			errMediaProblems, "Fix or remove the items marked above."), exitInvalid)
	}
	return nil
}

var errMediaProblems = errors.New("some media could not be loaded")

func renderReport(out io.Writer, report catalogReport, useUnicode bool) {
	okMark, failMark := "[OK]", "[XX]"
	if useUnicode {
		okMark, failMark = "✓", "✗"
	}

	name := report.Name
	if name == "" {
		name = report.Catalog
	}
	fmt.Fprintf(out, "%s: %d items\n\n", name, len(report.Items))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tSOURCE\tSTATUS")
	for _, item := range report.Items {
		status := okMark
		if item.Error != "" {
			status = failMark + " " + item.Error
		}
		source := item.Source
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.Index+1, item.Kind, source, status)
	}
	_ = w.Flush()
}
