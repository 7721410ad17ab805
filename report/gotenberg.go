// Package report wraps the Gotenberg HTML-to-PDF service. The rest of the
// application depends on the Renderer interface so the backend can be
// swapped.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// PageParams are the Chromium print parameters. Dimensions are inches, the
// unit Gotenberg accepts.
type PageParams struct {
	PaperWidth      float64
	PaperHeight     float64
	MarginTop       float64
	MarginRight     float64
	MarginBottom    float64
	MarginLeft      float64
	PrintBackground bool
	Landscape       bool
}

const mmPerInch = 25.4

func mm(v float64) float64 { return v / mmPerInch }

// A4Portrait returns the fixed page setup used by both documents:
// A4 portrait with 35/12/18/12 mm margins and printed backgrounds.
func A4Portrait() PageParams {
	return PageParams{
		PaperWidth:      mm(210),
		PaperHeight:     mm(297),
		MarginTop:       mm(35),
		MarginRight:     mm(12),
		MarginBottom:    mm(18),
		MarginLeft:      mm(12),
		PrintBackground: true,
	}
}

// Document is one render request: the main HTML plus repeating header and
// footer fragments.
type Document struct {
	HTML       string
	HeaderHTML string
	FooterHTML string
	Page       PageParams
}

// Renderer produces PDF bytes from a composed document.
type Renderer interface {
	RenderDocument(ctx context.Context, doc Document) ([]byte, error)
}

// Client wraps interactions with the Gotenberg API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Ping checks if the remote Gotenberg service is available.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/health", c.baseURL), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("gotenberg returned status %d", resp.StatusCode)
	}
	return nil
}

// RenderDocument converts the document into a PDF using Gotenberg's
// Chromium route. Header and footer fragments repeat on every page.
func (c *Client) RenderDocument(ctx context.Context, doc Document) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	files := map[string]string{
		"index.html": doc.HTML,
	}
	if doc.HeaderHTML != "" {
		files["header.html"] = doc.HeaderHTML
	}
	if doc.FooterHTML != "" {
		files["footer.html"] = doc.FooterHTML
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(part, content); err != nil {
			return nil, err
		}
	}

	fields := map[string]string{
		"paperWidth":      formatInches(doc.Page.PaperWidth),
		"paperHeight":     formatInches(doc.Page.PaperHeight),
		"marginTop":       formatInches(doc.Page.MarginTop),
		"marginRight":     formatInches(doc.Page.MarginRight),
		"marginBottom":    formatInches(doc.Page.MarginBottom),
		"marginLeft":      formatInches(doc.Page.MarginLeft),
		"printBackground": strconv.FormatBool(doc.Page.PrintBackground),
		"landscape":       strconv.FormatBool(doc.Page.Landscape),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/forms/chromium/convert/html", c.baseURL), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("render failed with status %d: %s", resp.StatusCode, string(data))
	}
	return io.ReadAll(resp.Body)
}

func formatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
