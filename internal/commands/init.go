package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/config"
	"github.com/nairabooks/nairabooks/internal/export"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string
	var vatRegistered bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new nairabooks project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, entityType, vatRegistered)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "limited_company", "limited_company or sole_proprietor")
	cmd.Flags().BoolVar(&vatRegistered, "vat-registered", false, "business is registered for VAT")

	return cmd
}

func runInit(dir, name, entityType string, vatRegistered bool) error {
	dirs := []string{
		importDir,
		filepath.Join(importDir, "processed"),
		"rules",
		"logs",
		exportDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, entityType)
	cfg.Business.VATRegistered = vatRegistered
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	rulesContent := "rules: []\n"
	if err := os.WriteFile(filepath.Join(dir, rulesFile), []byte(rulesContent), 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	gitignore := cfg.Storage.Path + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, importDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := export.InitRepo(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := export.Snapshot(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized nairabooks project at %s (%s)\n", dir, hash)
	return nil
}
