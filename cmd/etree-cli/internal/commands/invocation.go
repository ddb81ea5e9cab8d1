package commands

import (
	"os"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
)

// Invocation is the per-run context shared by every verb. It is built once
// from the global switches and passed by value.
type Invocation struct {
	Actor   string
	Target  string
	Verbose bool
}

// globalFlags holds the raw values of the persistent switches.
type globalFlags struct {
	verbose    bool
	target     string
	configPath string
	actor      string
}

// newInvocation resolves the acting user and database target.
func newInvocation(g *globalFlags, cfg *config.CLIConfig) (Invocation, error) {
	actor := firstNonEmpty(g.actor, os.Getenv("ETREE_USER"), os.Getenv("USER"))
	if actor == "" {
		return Invocation{}, apperr.InvalidInput("cannot determine the acting user; set --actor or ETREE_USER")
	}

	target := strings.ToUpper(g.target)
	if target == "" {
		target = cfg.DefaultTarget
	}
	if _, err := cfg.Database(target); err != nil {
		return Invocation{}, apperr.Wrap(apperr.CodeInvalidConfiguration, err, "invalid --db")
	}

	return Invocation{Actor: actor, Target: target, Verbose: g.verbose}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
