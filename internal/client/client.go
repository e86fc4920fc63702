// Package client drives the multi-step reader flows that no single backend
// call performs atomically: upload/extract/persist, the per-user library, and
// on-demand page playback.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"book-reader-server/internal/domain"
)

// Client calls the backend proxy's endpoints. Every request carries the
// shared secret; responses use the {content}/{error} envelope.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     domain.Logger
}

// NewClient creates a new API client
func NewClient(baseURL, apiKey string, logger domain.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// SetHTTPClient overrides the underlying HTTP client, e.g. to bound waits.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

type envelope struct {
	Content json.RawMessage `json:"content"`
	Error   string          `json:"error"`
}

// CreateUser registers the signed-in identity and returns the backend's
// confirmation string.
func (c *Client) CreateUser(ctx context.Context, id, email string) (string, error) {
	query := url.Values{}
	query.Set("id", id)
	query.Set("email", email)

	var confirmation string
	if err := c.postJSON(ctx, "/users?"+query.Encode(), nil, &confirmation); err != nil {
		return "", err
	}
	return confirmation, nil
}

// UserExists reports whether the identity has been registered before.
func (c *Client) UserExists(ctx context.Context, id string) (bool, error) {
	query := url.Values{}
	query.Set("id", id)

	var exists bool
	if err := c.postJSON(ctx, "/user-exists?"+query.Encode(), nil, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UploadPDF sends the binary as the multipart field "pdf" and returns the
// stored object's URL/key pair.
func (c *Client) UploadPDF(ctx context.Context, filename string, file io.Reader) (*domain.StoredObject, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename=%q`, filename))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-pdf", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-KEY", c.apiKey)

	var object domain.StoredObject
	if err := c.do(req, &object); err != nil {
		return nil, err
	}
	return &object, nil
}

// UploadPDFMetadata persists the extracted per-page text with the rest of the
// document row.
func (c *Client) UploadPDFMetadata(ctx context.Context, userID, key, name, pdfURL string, text []string) error {
	payload := map[string]interface{}{
		"userId":   userID,
		"pdf_key":  key,
		"pdf_name": name,
		"pdf_url":  pdfURL,
		"pdf_text": text,
	}
	return c.postJSON(ctx, "/upload-pdf-metadata", payload, nil)
}

// ListPDFs returns the user's documents; the list may be empty.
func (c *Client) ListPDFs(ctx context.Context, userID string) ([]*domain.Document, error) {
	payload := map[string]interface{}{"userId": userID}

	var documents []*domain.Document
	if err := c.postJSON(ctx, "/list-pdfs", payload, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// DeletePDF removes the document's binary and metadata as a unit.
func (c *Client) DeletePDF(ctx context.Context, key string) error {
	payload := map[string]interface{}{"key": key}
	return c.postJSON(ctx, "/delete-pdf", payload, nil)
}

// TextToSpeech requests audio for the text and returns the unread stream plus
// its content type. The caller must close the stream; cancelling ctx aborts
// the transfer.
func (c *Client) TextToSpeech(ctx context.Context, text string) (io.ReadCloser, string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text-to-speech", bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, "", decodeError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// FetchBinary downloads the stored PDF bytes from the object store URL.
func (c *Client) FetchBinary(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching pdf returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, content interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	return c.do(req, content)
}

func (c *Client) do(req *http.Request, content interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if content == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(env.Content, content); err != nil {
		return fmt.Errorf("failed to decode response content: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, env.Error)
	}
	return fmt.Errorf("backend returned status %d", resp.StatusCode)
}
