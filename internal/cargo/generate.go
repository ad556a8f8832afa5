// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"fmt"
	"io"

	"github.com/ginit/ginit/internal/toolchain"

	"github.com/charmbracelet/log"
)

type (
	// PathResolver maps a project-relative name to an absolute directory.
	PathResolver interface {
		Resolve(logical string) (string, error)
	}

	// Generator runs the whole pipeline: build the target map, render it and
	// write it to <project>/.cargo/config.
	Generator struct {
		builder  *toolchain.Builder
		resolver PathResolver
		writer   *Writer
		logger   *log.Logger
	}

	// Result describes a completed generation run.
	Result struct {
		// Path is the file that was written.
		Path string
		// Targets is the pruned map that was rendered.
		Targets *toolchain.Map
		// Content is the exact text written to Path.
		Content []byte
	}
)

// NewGenerator creates a Generator. A nil writer writes to the OS filesystem
// and a nil logger discards output.
func NewGenerator(builder *toolchain.Builder, resolver PathResolver, writer *Writer, logger *log.Logger) *Generator {
	if writer == nil {
		writer = NewWriter(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{builder: builder, resolver: resolver, writer: writer, logger: logger}
}

// Generate recomputes the configuration from scratch and overwrites the
// output file. Any failure aborts the run; a file from an earlier run is
// left untouched unless the failure happens while writing it.
func (g *Generator) Generate() (*Result, error) {
	targets, err := g.builder.Build()
	if err != nil {
		return nil, err
	}

	content, err := Serialize(targets)
	if err != nil {
		return nil, err
	}

	dir, err := g.resolver.Resolve(DirName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s directory: %w", DirName, err)
	}

	path, err := g.writer.Write(content, dir)
	if err != nil {
		return nil, err
	}

	g.logger.Info("wrote cargo config", "path", path, "targets", targets.Len())
	return &Result{Path: path, Targets: targets, Content: content}, nil
}
