// Package generator orchestrates a wrapper-generation run: it resolves
// the requested architecture once, then fans the requested tools out
// over a worker pool, normalizing, blacklist-checking, classifying and
// emitting each one.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/o11c/toolchain-arch-wrappers/pkg/arch"
	"github.com/o11c/toolchain-arch-wrappers/pkg/catalog"
	"github.com/o11c/toolchain-arch-wrappers/pkg/safety"
	"github.com/o11c/toolchain-arch-wrappers/pkg/toolname"
	"github.com/o11c/toolchain-arch-wrappers/pkg/wrapper"
)

// Request describes one generation run.
type Request struct {
	// Arch is the triple wrappers install under, as requested.
	Arch string
	// Tools restricts generation; empty means the full catalog.
	Tools []string
	// Absolute hard-codes the search-path lookup result instead of
	// deferring to the caller's runtime PATH.
	Absolute bool
	// Symlinks prefers symbolic links where no flags and no warning are
	// needed. Implies Absolute.
	Symlinks bool
	// OutputDir receives the artifacts.
	OutputDir string
	// Jobs bounds the worker pool; 0 means one worker per CPU.
	Jobs int
}

// Generator runs wrapper generation against a fixed set of tables.
type Generator struct {
	Tables catalog.Tables
	Logger *slog.Logger

	// Lookup overrides the emitter's search-path lookup, for tests.
	Lookup func(name string) (string, error)
}

// Run performs one generation pass. Architecture resolution failure is
// fatal and emits nothing; per-tool failures are collected and joined
// so no tool's failure is masked by another's success.
func (g *Generator) Run(req Request) error {
	logger := g.logger().With("run_id", uuid.NewString(), "arch", req.Arch)

	info, err := arch.Resolve(req.Arch, g.Tables.Arches)
	if err != nil {
		return err
	}

	if req.Symlinks {
		req.Absolute = true
	}
	if req.OutputDir == "" {
		req.OutputDir = "bin"
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tools := req.Tools
	if len(tools) == 0 {
		tools = g.Tables.Tools
	}

	emitter := &wrapper.Emitter{
		OutputDir: req.OutputDir,
		Prefix:    req.Arch,
		Info:      info,
		Absolute:  req.Absolute,
		Symlinks:  req.Symlinks,
		Lookup:    g.Lookup,
	}

	logger.Info("generating wrappers",
		"wraps", info.Wraps,
		"tools", len(tools),
		"output", req.OutputDir)

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	work := make(chan string)

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tool := range work {
				if err := g.wrapTool(logger, emitter, tool); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}
	for _, tool := range tools {
		work <- tool
	}
	close(work)
	wg.Wait()

	return errors.Join(errs...)
}

// wrapTool handles one tool end to end. The canonical name drives the
// blacklist check and classification; the original name drives the
// artifact path and executable reference.
func (g *Generator) wrapTool(logger *slog.Logger, emitter *wrapper.Emitter, tool string) error {
	canonical := toolname.Normalize(tool)

	if g.Tables.Blacklisted(canonical) {
		if err := emitter.Remove(tool); err != nil {
			return fmt.Errorf("tool %s: %w", tool, err)
		}
		logger.Debug("skipped blacklisted tool", "tool", tool, "canonical", canonical)
		return nil
	}

	class := safety.Classify(canonical, g.Tables.Safety)
	artifact, err := emitter.Emit(tool, class)
	if err != nil {
		logger.Error("wrapper emission failed", "tool", tool, "error", err)
		return fmt.Errorf("tool %s: %w", tool, err)
	}

	kind := "script"
	if artifact.Symlink {
		kind = "symlink"
	}
	logger.Debug("emitted wrapper",
		"tool", tool,
		"canonical", canonical,
		"kind", kind,
		"path", artifact.Path,
		"target", artifact.Target,
		"safety", class.String())
	return nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
