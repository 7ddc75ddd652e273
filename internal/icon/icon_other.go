//go:build !windows

package icon

// noopProvider is used on platforms without native icon extraction.
type noopProvider struct{}

func (noopProvider) FileIcon(string) string { return "" }

// Default returns the provider for the current platform.
func Default() Provider { return noopProvider{} }
