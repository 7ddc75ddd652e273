// Package icon resolves OS file-type icons, best effort.
package icon

import "strings"

// Provider resolves the OS icon associated with a file extension, encoded
// as base64 text. Implementations never fail the caller: any error yields
// an empty string.
type Provider interface {
	FileIcon(ext string) string
}

// Lookup resolves ext through the platform default provider.
func Lookup(ext string) string {
	return Default().FileIcon(ext)
}

// sanitizeExt lowercases ext, takes at most 20 characters, and keeps only
// ASCII alphanumerics and dots. Anything else is dropped so the extension
// is safe to embed in a temp file name.
func sanitizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))

	var b strings.Builder
	taken := 0
	for _, r := range ext {
		if taken >= 20 {
			break
		}
		taken++
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
