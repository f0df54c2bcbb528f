// Package pipeline builds executable shader programs from vertex and
// fragment sources and keeps them rebuildable while the demo is running.
// A rebuild is strictly build-then-swap: the previous program is not touched
// until the replacement has compiled and linked, so a failed hot reload
// always leaves the last working program active.
package pipeline

import (
	"fmt"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/shader"
)

// SourceLoader produces a shader source on demand. File-backed loaders
// re-read the file on every call, which is what makes hot reload pick up
// on-disk edits.
type SourceLoader func() (shader.Source, error)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	vertexLoader   SourceLoader
	fragmentLoader SourceLoader
	watchPaths     []string
	program        *shader.Program
}

// Pipeline owns the linked program built from a vertex/fragment source pair
// and can rebuild it in place without losing the previous program on
// failure.
type Pipeline interface {
	// Program retrieves the currently linked program.
	//
	// Returns:
	//   - *shader.Program: the live program
	Program() *shader.Program

	// Rebuild recompiles and relinks the pipeline from its source loaders.
	// The replacement is built first; only on success is it activated and
	// the previous program destroyed. On failure the previous program is
	// left intact and active, and the compile or link error is returned.
	//
	// Parameters:
	//   - ctx: the driver context
	//
	// Returns:
	//   - error: *shader.CompileError or *shader.LinkError on failure
	Rebuild(ctx driver.Context) error

	// WatchPaths retrieves the source file paths suitable for a hot-reload
	// watcher. Empty for pipelines built from in-memory sources.
	//
	// Returns:
	//   - []string: the file paths backing this pipeline's sources
	WatchPaths() []string

	// Destroy releases the linked program.
	//
	// Parameters:
	//   - ctx: the driver context
	Destroy(ctx driver.Context)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a Pipeline from the provided options, performs the
// initial compile and link, and activates the resulting program.
// Both a vertex and a fragment source must be configured.
//
// Parameters:
//   - ctx: the driver context
//   - options: functional options configuring the shader sources
//
// Returns:
//   - Pipeline: the built pipeline with its program active
//   - error: compile, link, or source read error from the initial build
func NewPipeline(ctx driver.Context, options ...PipelineBuilderOption) (Pipeline, error) {
	p := &pipeline{}
	for _, opt := range options {
		opt(p)
	}
	if p.vertexLoader == nil || p.fragmentLoader == nil {
		return nil, fmt.Errorf("pipeline requires both a vertex and a fragment source")
	}

	prog, err := p.build(ctx)
	if err != nil {
		return nil, err
	}
	p.program = prog
	p.program.Activate(ctx)
	return p, nil
}

func (p *pipeline) Program() *shader.Program {
	return p.program
}

func (p *pipeline) WatchPaths() []string {
	return p.watchPaths
}

func (p *pipeline) Rebuild(ctx driver.Context) error {
	next, err := p.build(ctx)
	if err != nil {
		return err
	}

	old := p.program
	p.program = next
	p.program.Activate(ctx)
	if old != nil {
		old.Destroy(ctx)
	}
	return nil
}

func (p *pipeline) Destroy(ctx driver.Context) {
	if p.program != nil {
		p.program.Destroy(ctx)
		p.program = nil
	}
}

// build compiles both stages and links them into a fresh program. The
// compiled shader objects are released once the link outcome is known; a
// successful link keeps its own copy of the executable, and a failure must
// not leak the stage objects either.
func (p *pipeline) build(ctx driver.Context) (*shader.Program, error) {
	vertSrc, err := p.vertexLoader()
	if err != nil {
		return nil, err
	}
	fragSrc, err := p.fragmentLoader()
	if err != nil {
		return nil, err
	}

	vert, err := shader.Compile(ctx, vertSrc, shader.StageVertex)
	if err != nil {
		return nil, err
	}
	defer vert.Destroy(ctx)

	frag, err := shader.Compile(ctx, fragSrc, shader.StageFragment)
	if err != nil {
		return nil, err
	}
	defer frag.Destroy(ctx)

	return shader.Link(ctx, vert, frag)
}
