package pipeline

import (
	"github.com/Carmen-Shannon/oxygl/engine/renderer/shader"
)

// PipelineBuilderOption is a functional option for configuring a pipeline.
// Use the With* functions to create options.
type PipelineBuilderOption func(p *pipeline)

// WithVertexSourcePath sets a file-backed vertex source. The file is
// re-read on every rebuild and registered for hot-reload watching.
//
// Parameters:
//   - path: the vertex shader source file path
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexSourcePath(path string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLoader = func() (shader.Source, error) {
			return shader.FromFile(path)
		}
		p.watchPaths = append(p.watchPaths, path)
	}
}

// WithFragmentSourcePath sets a file-backed fragment source. The file is
// re-read on every rebuild and registered for hot-reload watching.
//
// Parameters:
//   - path: the fragment shader source file path
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFragmentSourcePath(path string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentLoader = func() (shader.Source, error) {
			return shader.FromFile(path)
		}
		p.watchPaths = append(p.watchPaths, path)
	}
}

// WithVertexSource sets an in-memory vertex source, e.g. one embedded at
// build time. Rebuilds reuse the same text.
//
// Parameters:
//   - src: the vertex shader source
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexSource(src shader.Source) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLoader = func() (shader.Source, error) {
			return src, nil
		}
	}
}

// WithFragmentSource sets an in-memory fragment source, e.g. one embedded
// at build time. Rebuilds reuse the same text.
//
// Parameters:
//   - src: the fragment shader source
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFragmentSource(src shader.Source) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentLoader = func() (shader.Source, error) {
			return src, nil
		}
	}
}

// WithVertexSourceLoader sets a custom vertex source loader.
//
// Parameters:
//   - loader: the source loader to call on every build
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexSourceLoader(loader SourceLoader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLoader = loader
	}
}

// WithFragmentSourceLoader sets a custom fragment source loader.
//
// Parameters:
//   - loader: the source loader to call on every build
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFragmentSourceLoader(loader SourceLoader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentLoader = loader
	}
}
