package imagesource

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const fetchTimeout = 60 * time.Second

// IsURL reports whether src names an http(s) resource rather than a file.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Fetch downloads the image at url into destDir and returns the saved path. The file name comes
// from Content-Disposition or the URL path; the extension from Content-Type, else from that name.
// destDir is created if needed. Responses that are not images are rejected.
func Fetch(ctx context.Context, url, destDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("imagesource: fetch: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagesource: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imagesource: fetch %s: HTTP %d", url, resp.StatusCode)
	}

	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(url)
	}
	ext := extensionFromContentType(resp.Header.Get("Content-Type"))
	if ext == "" {
		ext = extensionFromURL(name)
	}
	if ext == "" {
		ext = extensionFromURL(url)
	}
	if ext == "" {
		return "", fmt.Errorf("imagesource: fetch %s: not an image (%q)", url, resp.Header.Get("Content-Type"))
	}
	name = sanitizeFilename(strings.TrimSuffix(name, filepath.Ext(name))) + ext

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("imagesource: fetch: %w", err)
	}
	saved := filepath.Join(destDir, name)
	out, err := os.Create(saved)
	if err != nil {
		return "", fmt.Errorf("imagesource: fetch: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(saved)
		return "", fmt.Errorf("imagesource: fetch: %w", err)
	}
	return saved, out.Close()
}

func filenameFromContentDisposition(cd string) string {
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return ""
	}
	return params["filename"]
}

var imageExts = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
	"image/webp": ".webp",
}

func extensionFromContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return imageExts[strings.ToLower(mt)]
}

func extensionFromURL(url string) string {
	ext := strings.ToLower(path.Ext(urlPath(url)))
	switch ext {
	case ".jpeg":
		return ".jpg"
	case ".tif":
		return ".tiff"
	}
	for _, known := range imageExts {
		if ext == known {
			return ext
		}
	}
	return ""
}

func filenameFromURL(url string) string {
	base := path.Base(urlPath(url))
	if base == "." || base == "/" {
		return ""
	}
	return base
}

func urlPath(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if i := strings.Index(url, "://"); i >= 0 {
		url = url[i+3:]
		if j := strings.Index(url, "/"); j >= 0 {
			return url[j:]
		}
		return "/"
	}
	return url
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		return "image"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
