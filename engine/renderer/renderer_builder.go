package renderer

// RendererBuilderOption is a functional option applied to a renderer during
// construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithClearColor sets the color the renderer clears each frame with.
// Defaults to dark gray (0.1, 0.1, 0.1, 1.0).
//
// Parameters:
//   - r, g, b, a: color components in [0,1]
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithClearColor(r, g, b, a float32) RendererBuilderOption {
	return func(rd *renderer) {
		rd.clearColor = [4]float32{r, g, b, a}
	}
}

// WithViewport sets the initial viewport dimensions in pixels. Typically
// the window's framebuffer size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithViewport(width, height int) RendererBuilderOption {
	return func(rd *renderer) {
		rd.width = width
		rd.height = height
	}
}
