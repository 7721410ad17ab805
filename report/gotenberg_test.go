package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderDocumentMultipart(t *testing.T) {
	var (
		gotFiles  map[string]string
		gotFields map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/chromium/convert/html", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotFiles = map[string]string{}
		for _, headers := range r.MultipartForm.File {
			for _, h := range headers {
				f, err := h.Open()
				require.NoError(t, err)
				buf := make([]byte, h.Size)
				_, _ = f.Read(buf)
				_ = f.Close()
				gotFiles[h.Filename] = string(buf)
			}
		}
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		_, _ = w.Write([]byte("%PDF-stub"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	pdf, err := client.RenderDocument(context.Background(), Document{
		HTML:       "<html>body</html>",
		HeaderHTML: "<div>header</div>",
		FooterHTML: "<div>footer</div>",
		Page:       A4Portrait(),
	})
	require.NoError(t, err)
	require.Equal(t, "%PDF-stub", string(pdf))

	require.Equal(t, "<html>body</html>", gotFiles["index.html"])
	require.Equal(t, "<div>header</div>", gotFiles["header.html"])
	require.Equal(t, "<div>footer</div>", gotFiles["footer.html"])

	require.Equal(t, "8.27", gotFields["paperWidth"])
	require.Equal(t, "11.69", gotFields["paperHeight"])
	require.Equal(t, "1.38", gotFields["marginTop"])
	require.Equal(t, "0.47", gotFields["marginRight"])
	require.Equal(t, "0.71", gotFields["marginBottom"])
	require.Equal(t, "0.47", gotFields["marginLeft"])
	require.Equal(t, "true", gotFields["printBackground"])
	require.Equal(t, "false", gotFields["landscape"])
}

func TestRenderDocumentErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.RenderDocument(context.Background(), Document{HTML: "<html></html>", Page: A4Portrait()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestSharedReturnsSameClient(t *testing.T) {
	a := Shared("http://gotenberg.local")
	b := Shared("http://other.local")
	require.Same(t, a, b)
}
