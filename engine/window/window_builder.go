package window

import "time"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		if title != "" {
			w.title = title
		}
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width: initial width in screen coordinates
//   - height: initial height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithMinSize sets the minimum size the user may shrink the window to.
//
// Parameters:
//   - minWidth: minimum width in screen coordinates, or NoSizeLimit
//   - minHeight: minimum height in screen coordinates, or NoSizeLimit
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(minWidth, minHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = minWidth
		w.minHeight = minHeight
	}
}

// WithMaxSize sets the maximum size the user may grow the window to.
//
// Parameters:
//   - maxWidth: maximum width in screen coordinates, or NoSizeLimit
//   - maxHeight: maximum height in screen coordinates, or NoSizeLimit
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = maxWidth
		w.maxHeight = maxHeight
	}
}

// WithEventWait makes each message loop iteration block for up to d waiting for input
// instead of polling. Suited to on-demand rendering where nothing changes without input.
//
// Parameters:
//   - d: maximum wait per iteration; zero polls
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithEventWait(d time.Duration) WindowBuilderOption {
	return func(w *engineWindow) {
		w.eventWait = max(d, 0)
	}
}
