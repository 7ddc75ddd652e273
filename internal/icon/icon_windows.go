//go:build windows

package icon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// windowsProvider queries the shell's file-type association by creating an
// empty placeholder file with the requested extension and extracting the
// icon associated with it.
type windowsProvider struct{}

// Default returns the provider for the current platform.
func Default() Provider { return windowsProvider{} }

func (windowsProvider) FileIcon(ext string) string {
	safe := sanitizeExt(ext)
	if safe == "" {
		return ""
	}

	dummy := filepath.Join(os.TempDir(), "notefold-icon-dummy."+safe)

	created := false
	if _, err := os.Stat(dummy); os.IsNotExist(err) {
		if err := os.WriteFile(dummy, nil, 0o644); err != nil {
			return ""
		}
		created = true
	}
	if created {
		// Only remove the placeholder this invocation created.
		defer os.Remove(dummy)
	}

	b64, err := extractIconBase64(dummy)
	if err != nil {
		return ""
	}
	return b64
}

// extractIconBase64 asks the shell for the icon associated with path and
// returns it as a base64 PNG.
func extractIconBase64(path string) (string, error) {
	escaped := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Drawing; "+
			"$icon = [System.Drawing.Icon]::ExtractAssociatedIcon('%s'); "+
			"$stream = New-Object System.IO.MemoryStream; "+
			"$icon.ToBitmap().Save($stream, [System.Drawing.Imaging.ImageFormat]::Png); "+
			"[Convert]::ToBase64String($stream.ToArray())",
		escaped,
	)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("extract icon for %q: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}
