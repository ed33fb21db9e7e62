package ebiten_host

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - HostOption: option function to apply
func WithTitle(title string) HostOption {
	return func(h *Host) {
		if title != "" {
			h.title = title
		}
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width, height: initial size in pixels
//
// Returns:
//   - HostOption: option function to apply
func WithSize(width, height int) HostOption {
	return func(h *Host) {
		if width > 0 && height > 0 {
			h.width = width
			h.height = height
		}
	}
}

// WithHUD sets a function whose text is printed in the top-left corner of every drawn frame.
//
// Parameters:
//   - hud: returns the overlay text
//
// Returns:
//   - HostOption: option function to apply
func WithHUD(hud func() string) HostOption {
	return func(h *Host) {
		h.hud = hud
	}
}
