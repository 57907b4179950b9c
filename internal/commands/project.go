package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nairabooks/nairabooks/internal/auditlog"
	"github.com/nairabooks/nairabooks/internal/classify"
	"github.com/nairabooks/nairabooks/internal/config"
	"github.com/nairabooks/nairabooks/internal/engine"
	"github.com/nairabooks/nairabooks/internal/logging"
	"github.com/nairabooks/nairabooks/internal/store"
)

const (
	rulesFile = "rules/classification-rules.yaml"
	importDir = "import"
	exportDir = "exports"
)

// project is an opened nairabooks directory: its config, the engine restored
// from the snapshot store, and the store handle to close when done.
type project struct {
	Dir    string
	Config *config.Config
	Engine *engine.Engine

	blob *store.Bolt
}

// openProject loads the project at dir and restores the engine state.
func openProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a nairabooks project (run 'nairabooks init' first): %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	rules, err := classify.LoadRulesFile(filepath.Join(absDir, rulesFile))
	if err != nil {
		return nil, err
	}

	blob, err := store.OpenBolt(filepath.Join(absDir, cfg.Storage.Path))
	if err != nil {
		return nil, err
	}

	eng := engine.New(cfg.Business, classify.New(rules), blob)
	if err := eng.Load(); err != nil {
		blob.Close()
		return nil, err
	}

	return &project{Dir: absDir, Config: cfg, Engine: eng, blob: blob}, nil
}

func (p *project) Close() error {
	return p.blob.Close()
}

// audit best-effort appends to the audit trail; a failed append never fails
// the command that did the real work.
func (p *project) audit(action, details, entryID string) {
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Actor:     actor(),
		Action:    action,
		Details:   details,
		EntryID:   entryID,
	}
	if err := auditlog.Append(p.Dir, []auditlog.Entry{entry}); err != nil {
		log := logging.WithComponent("commands")
		log.Warn().Err(err).Msg("audit log append failed")
	}
}

func actor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "nairabooks"
}
