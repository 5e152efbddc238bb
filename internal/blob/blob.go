// Package blob stores uploaded files and hands back the URL they are served from.
package blob

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// Store writes an object under key, replacing any previous object, and returns its public URL.
//
//go:generate mockery --name Store --inpackage
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// AvatarKey is the object key of a profile avatar. The extension comes from the uploaded
// file name, falling back to the content type.
func AvatarKey(profileID uuid.UUID, filename, contentType string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = strings.TrimPrefix(exts[0], ".")
		}
	}
	if ext == "" {
		ext = "bin"
	}
	return "avatars/" + profileID.String() + "." + strings.ToLower(ext)
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
