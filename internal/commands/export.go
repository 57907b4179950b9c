package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/auditlog"
	"github.com/nairabooks/nairabooks/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the books as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func runExport(dir string) error {
	p, err := openProject(dir)
	if err != nil {
		return err
	}
	defer p.Close()

	st := p.Engine.State()
	dest := filepath.Join(p.Dir, exportDir)
	if err := export.WriteBooks(dest, st); err != nil {
		return err
	}
	fmt.Printf("Exported %d journal entries to %s\n", len(st.JournalEntries), dest)

	p.audit(auditlog.ActionExport,
		fmt.Sprintf("Exported %d journal entries", len(st.JournalEntries)), "")

	if p.Config.Git.AutoCommit && export.IsRepo(p.Dir) {
		msg := export.SnapshotMessage(time.Now(), len(st.JournalEntries))
		hash, err := export.Snapshot(p.Dir, msg, p.Config.Git.AuthorName, p.Config.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if hash != "" {
			fmt.Printf("Committed snapshot %s\n", hash)
		}
	}
	return nil
}
