package reporting

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 79, G: 70, B: 229, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fakeLoader struct {
	images map[string][]byte
	calls  []string
}

func (f *fakeLoader) Load(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	content, ok := f.images[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return content, nil
}

func TestHTTPImageLoader(t *testing.T) {
	content := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cover.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(content)
	}))
	defer server.Close()

	loader := NewHTTPImageLoader(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		url     string
		want    []byte
		wantErr error
		anyErr  bool
	}{
		{name: "baixa imagem http", url: server.URL + "/cover.png", want: content},
		{name: "status diferente de 200", url: server.URL + "/missing.png", anyErr: true},
		{name: "data url em base64", url: "data:image/png;base64," + base64.StdEncoding.EncodeToString(content), want: content},
		{name: "data url sem base64", url: "data:text/plain,ola", wantErr: ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.Load(ctx, tt.url)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestImageType(t *testing.T) {
	kind, ok := imageType(pngBytes(t))
	assert.True(t, ok)
	assert.Equal(t, "PNG", kind)

	_, ok = imageType([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.False(t, ok)
}

func TestService_RenderPDFImages(t *testing.T) {
	ctx := context.Background()
	settings := domain.DefaultSettings()
	report := Compose(demoClient(), settings, domain.DefaultReportingPeriod())

	t.Run("capa e logo entram no documento", func(t *testing.T) {
		loader := &fakeLoader{images: map[string][]byte{
			settings.ReportSettings.CoverImage: pngBytes(t),
			settings.AgencyLogo:                pngBytes(t),
		}}
		s := NewService(nil, WithImageLoader(loader))

		content, err := s.RenderPDF(ctx, &report)
		require.NoError(t, err)
		assert.True(t, bytes.Contains(content, []byte("/Subtype /Image")))
		assert.ElementsMatch(t, []string{settings.ReportSettings.CoverImage, settings.AgencyLogo}, loader.calls)
	})

	t.Run("imagem indisponível ou SVG é ignorada", func(t *testing.T) {
		loader := &fakeLoader{images: map[string][]byte{
			settings.AgencyLogo: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		}}
		s := NewService(nil, WithImageLoader(loader))

		content, err := s.RenderPDF(ctx, &report)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
		assert.False(t, bytes.Contains(content, []byte("/Subtype /Image")))
	})

	t.Run("sem loader o PDF sai só com texto", func(t *testing.T) {
		content, err := NewService(nil).RenderPDF(ctx, &report)
		require.NoError(t, err)
		assert.False(t, bytes.Contains(content, []byte("/Subtype /Image")))
	})
}
