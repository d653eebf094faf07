//go:build !windows

package overlay

// Fyne has no portable always-on-top; other platforms keep the default
// stacking.
func (overlay *Window) applyTopmost() {}
