package storage

import (
	"net/url"
	"strings"
)

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base clients use to fetch objects, e.g. a CDN or the
	// bucket behind a reverse proxy. Empty means scheme://Endpoint/Bucket.
	PublicURL string
}

// Enabled reports whether uploads can be served.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// ObjectURL returns the public URL of key.
func (c MinIOConfig) ObjectURL(key string) string {
	base := strings.TrimRight(c.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if c.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + c.Endpoint + "/" + c.Bucket
	}
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return base + "/" + strings.Join(parts, "/")
}
