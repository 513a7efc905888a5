// Package wrapper emits the per-tool indirection artifacts: executable
// shell scripts, or symbolic links when nothing needs to be injected.
package wrapper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"github.com/o11c/toolchain-arch-wrappers/pkg/arch"
	"github.com/o11c/toolchain-arch-wrappers/pkg/safety"
)

// DefaultFeedbackURL is where wrappers for untested tools ask users to
// report results.
const DefaultFeedbackURL = "https://github.com/o11c/toolchain-arch-wrappers"

// ExecutableNotFoundError reports that absolute or symlink mode could
// not locate the wrapped binary on the search path. A wrapper must
// never reference an unresolved path, so the tool's artifact is not
// emitted.
type ExecutableNotFoundError struct {
	Tool string
	Ref  string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable %q for tool %q not found on PATH: %v", e.Ref, e.Tool, e.Err)
}

func (e *ExecutableNotFoundError) Unwrap() error { return e.Err }

// Artifact describes one emitted wrapper.
type Artifact struct {
	Path    string
	Target  string
	Symlink bool
}

// Emitter writes wrapper artifacts for one resolved architecture.
// Prefix is the triple as requested (wrappers install under it
// verbatim); Info is the resolved metadata.
type Emitter struct {
	OutputDir   string
	Prefix      string
	Info        arch.Info
	Absolute    bool
	Symlinks    bool
	FeedbackURL string

	// Lookup resolves an executable name on the search path. Defaults
	// to exec.LookPath.
	Lookup func(name string) (string, error)
}

// Path returns the artifact path for a tool. Artifacts are always named
// after the original tool name, never the canonical one.
func (e *Emitter) Path(originalTool string) string {
	return filepath.Join(e.OutputDir, e.Prefix+"-"+originalTool)
}

// Remove deletes any existing artifact for the tool. A missing artifact
// is not an error.
func (e *Emitter) Remove(originalTool string) error {
	if err := os.Remove(e.Path(originalTool)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale wrapper: %w", err)
	}
	return nil
}

// Emit regenerates the tool's artifact: any stale artifact is removed
// first, then either a symlink (symlink mode, known-safe, no flags) or
// an executable script is written.
func (e *Emitter) Emit(originalTool string, class safety.Classification) (Artifact, error) {
	path := e.Path(originalTool)
	if err := e.Remove(originalTool); err != nil {
		return Artifact{}, err
	}

	ref := e.Info.Wraps + "-" + originalTool
	if e.Absolute || e.Symlinks {
		resolved, err := e.lookup(ref)
		if err != nil {
			return Artifact{}, &ExecutableNotFoundError{Tool: originalTool, Ref: ref, Err: err}
		}
		ref = resolved
	}

	if e.Symlinks && class.Kind == safety.SafeNoFlags {
		if err := os.Symlink(ref, path); err != nil {
			return Artifact{}, fmt.Errorf("symlink wrapper: %w", err)
		}
		return Artifact{Path: path, Target: ref, Symlink: true}, nil
	}

	flags := ""
	if class.Kind == safety.SafeNamedFlags {
		flags = e.Info.FlagSet(class.FlagSet)
	}

	if err := writeScript(path, e.script(originalTool, ref, flags, class)); err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, Target: ref}, nil
}

func (e *Emitter) script(originalTool, ref, flags string, class safety.Classification) string {
	var banner string
	if class.Kind == safety.Unknown {
		banner = warningLine(originalTool, e.feedbackURL())
	} else {
		banner = fmt.Sprintf("# tool %q is believed to be safe", originalTool)
	}

	execLine := []string{"exec", ref}
	if flags != "" {
		execLine = append(execLine, flags)
	}
	execLine = append(execLine, `"$@"`)

	return "#!/bin/sh\n" + banner + "\n" + strings.Join(execLine, " ") + "\n"
}

func (e *Emitter) feedbackURL() string {
	if e.FeedbackURL != "" {
		return e.FeedbackURL
	}
	return DefaultFeedbackURL
}

func (e *Emitter) lookup(name string) (string, error) {
	if e.Lookup != nil {
		return e.Lookup(name)
	}
	return exec.LookPath(name)
}

// warningLine builds the runtime warning an untested tool's wrapper
// prints to stderr on every invocation.
func warningLine(originalTool, feedbackURL string) string {
	msg := fmt.Sprintf("Warning: untested tool %q. Please report your results to %s", originalTool, feedbackURL)
	return "echo " + shellescape.Quote(msg) + " >&2"
}

func writeScript(path, body string) error {
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write wrapper: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat wrapper: %w", err)
	}
	if err := os.Chmod(path, info.Mode()|0o111); err != nil {
		return fmt.Errorf("chmod wrapper: %w", err)
	}
	return nil
}
