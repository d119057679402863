package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/dmitrijs2005/medianest/internal/mimex"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	mimeMode   string
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		if c != nil {
			h.httpClient = c
		}
	}
}

// WithMimeDetection selects the mimex detection mode for uploads.
func WithMimeDetection(mode string) Option {
	return func(h *HTTPClient) {
		h.mimeMode = mode
	}
}

func NewHTTPClient(baseURL, apiKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		mimeMode:   mimex.ModeExtension,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	return req, nil
}

// do sends req and returns the response body of a 2xx answer. Non-2xx
// answers become *StoreError tagged with op.
func (c *HTTPClient) do(req *http.Request, op string) (body []byte, retErr error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrTransport, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			retErr = errors.Join(retErr, closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StoreError{Op: op, StatusCode: resp.StatusCode, Body: string(b)}
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w: %w", op, common.ErrTransport, err)
	}
	return body, nil
}

// List returns the store's files in the order the store sent them.
func (c *HTTPClient) List(ctx context.Context) ([]models.MediaItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req, "list")
	if err != nil {
		return nil, err
	}

	var resp models.ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("list: decode response: %w", err)
	}
	if resp.Files == nil {
		return []models.MediaItem{}, nil
	}
	return resp.Files, nil
}

// Upload sends the asset as the "file" field of a multipart form.
func (c *HTTPClient) Upload(ctx context.Context, asset models.LocalAsset) error {
	body, contentType, err := c.multipartBody(asset)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	_, err = c.do(req, "upload")
	return err
}

func (c *HTTPClient) multipartBody(asset models.LocalAsset) (*bytes.Buffer, string, error) {
	f, err := os.Open(asset.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, "", fmt.Errorf("open %s: %w: %w", asset.Path, common.ErrPermissionDenied, err)
		}
		return nil, "", fmt.Errorf("open %s: %w", asset.Path, err)
	}
	defer f.Close()

	name := asset.FileName()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		common.UploadFieldName, escapeQuotes(name)))
	h.Set("Content-Type", mimex.Detect(asset.Path, name, c.mimeMode))

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", asset.Path, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// Delete removes one file by id. A store-side not-found is reported as a
// *StoreError like any other rejection.
func (c *HTTPClient) Delete(ctx context.Context, fileID string) error {
	payload, err := json.Marshal(models.DeleteRequest{FileID: fileID})
	if err != nil {
		return fmt.Errorf("delete: encode request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodDelete, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req, "delete")
	return err
}
