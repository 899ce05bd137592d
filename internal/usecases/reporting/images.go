package reporting

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	maxImageBytes       = 5 << 20
	defaultImageTimeout = 5 * time.Second
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
)

// Images associa a URL de origem ao conteúdo já baixado
type Images map[string][]byte

type ImageLoader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// HTTPImageLoader baixa imagens http(s) e decodifica data URLs em base64
type HTTPImageLoader struct {
	client *http.Client
}

func NewHTTPImageLoader(timeout time.Duration) *HTTPImageLoader {
	if timeout <= 0 {
		timeout = defaultImageTimeout
	}
	return &HTTPImageLoader{client: &http.Client{Timeout: timeout}}
}

func (l *HTTPImageLoader) Load(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "data:") {
		return decodeDataURL(url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request failed with status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxImageBytes {
		return nil, ErrImageTooLarge
	}
	return content, nil
}

// decodeDataURL aceita apenas "data:<mime>;base64,<conteúdo>"
func decodeDataURL(url string) ([]byte, error) {
	meta, payload, found := strings.Cut(strings.TrimPrefix(url, "data:"), ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrUnsupportedImage
	}
	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	if len(content) > maxImageBytes {
		return nil, ErrImageTooLarge
	}
	return content, nil
}

// imageType traduz o conteúdo para o tipo aceito pelo gofpdf; SVG e outros formatos ficam de fora
func imageType(content []byte) (string, bool) {
	switch http.DetectContentType(content) {
	case "image/png":
		return "PNG", true
	case "image/jpeg":
		return "JPG", true
	case "image/gif":
		return "GIF", true
	default:
		return "", false
	}
}

// registerImage registra a imagem no documento e devolve o nome usado em pdf.ImageOptions
func registerImage(pdf *gofpdf.Fpdf, images Images, url string) (string, bool) {
	content, ok := images[url]
	if url == "" || !ok {
		return "", false
	}
	kind, ok := imageType(content)
	if !ok {
		return "", false
	}

	info := pdf.RegisterImageOptionsReader(url, gofpdf.ImageOptions{ImageType: kind, ReadDpi: true}, bytes.NewReader(content))
	if !pdf.Ok() || info == nil {
		pdf.ClearError()
		return "", false
	}
	return url, true
}
