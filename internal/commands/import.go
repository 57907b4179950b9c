package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/auditlog"
	"github.com/nairabooks/nairabooks/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement CSVs from the import directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, format)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&format, "format", "gtbank", "bank statement format")

	return cmd
}

func runImport(dir, format string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	p, err := openProject(dir)
	if err != nil {
		return err
	}
	defer p.Close()

	srcDir := filepath.Join(p.Dir, importDir)
	files, err := importer.Scan(srcDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		txns, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		applied, rejected := p.Engine.RecordAll(txns)
		for _, recErr := range rejected {
			fmt.Fprintf(os.Stderr, "skipped: %v\n", recErr)
		}

		if err := importer.MarkProcessed(srcDir, file.Name); err != nil {
			return err
		}

		p.audit(auditlog.ActionImport,
			fmt.Sprintf("Imported %d of %d transactions from %s", len(applied), len(txns), file.Name), "")
		fmt.Printf("%s: %d recorded, %d skipped\n", file.Name, len(applied), len(rejected))
	}
	return nil
}
