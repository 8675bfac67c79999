// Package runtime provides the per-invocation context that bundles the
// repository, configuration and engines used by commands.
package runtime

import (
	"os"

	"github.com/huguesb/preparator/internal/config"
	"github.com/huguesb/preparator/internal/engine"
	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/internal/selector"
	"github.com/huguesb/preparator/internal/shell"
	"github.com/huguesb/preparator/internal/tui"
)

// Context provides access to the repository and engines for commands.
// It is constructed once per invocation; nothing is cached across runs.
type Context struct {
	Git      git.Runner
	RepoRoot string
	Base     string
	Splog    *tui.Splog
	Applier  *engine.Applier
	Replayer *engine.Replayer
	Rewriter *engine.Rewriter
	Resolver *selector.Resolver
}

// NewContext opens the repository containing the current directory and
// wires up the engines.
func NewContext() (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewContextAt(wd)
}

// NewContextAt opens the repository containing dir and wires up the engines
func NewContextAt(dir string) (*Context, error) {
	repo, err := git.Open(dir)
	if err != nil {
		return nil, err
	}

	base, err := config.GetBase(repo.Root())
	if err != nil {
		return nil, err
	}

	splog := tui.NewSplog()

	applier := &engine.Applier{
		Git:     repo,
		Shell:   shell.New(),
		Confirm: tui.Confirm,
		Splog:   splog,
	}
	replayer := &engine.Replayer{
		Git:     repo,
		Applier: applier,
		Splog:   splog,
	}
	rewriter := &engine.Rewriter{
		Git:      repo,
		Replayer: replayer,
		Splog:    splog,
	}

	return &Context{
		Git:      repo,
		RepoRoot: repo.Root(),
		Base:     base,
		Splog:    splog,
		Applier:  applier,
		Replayer: replayer,
		Rewriter: rewriter,
		Resolver: &selector.Resolver{Git: repo, Base: base},
	}, nil
}
