package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"life-balance-planner/pkg/metrics"
)

type agentImpl struct {
	apiURL     string
	timeout    time.Duration
	httpClient *http.Client
	now        func() time.Time
}

func newAgentImpl(cfg Config) *agentImpl {
	return &agentImpl{
		apiURL:     cfg.APIURL,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		now:        time.Now,
	}
}

// Run posts the document to /run and normalizes the answer. The call is
// bounded by the configured timeout on top of ctx.
func (a *agentImpl) Run(ctx context.Context, req RunRequest) (*Result, error) {
	if req.FileName == "" {
		return nil, ErrMissingFileName
	}
	if len(req.Content) == 0 {
		return nil, ErrMissingFile
	}
	if req.Metadata.CurrentDate == "" {
		req.Metadata.CurrentDate = a.now().Format(DateLayout)
	}

	body, contentType, err := buildMultipart(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL+RunPath, body)
	if err != nil {
		return nil, fmt.Errorf("agent: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordAgentCall(RunPath, "transport_error", time.Since(start))
		return nil, fmt.Errorf("agent: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.RecordAgentCall(RunPath, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("agent: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	return Normalize(raw)
}

func buildMultipart(req RunRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldFile, req.FileName))
	header.Set("Content-Type", PDFContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("agent: failed to create file part: %w", err)
	}
	if _, err := part.Write(req.Content); err != nil {
		return nil, "", fmt.Errorf("agent: failed to write file part: %w", err)
	}

	meta, err := json.Marshal(req.Metadata)
	if err != nil {
		return nil, "", fmt.Errorf("agent: failed to marshal metadata: %w", err)
	}
	if err := w.WriteField(fieldOtherData, string(meta)); err != nil {
		return nil, "", fmt.Errorf("agent: failed to write metadata part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("agent: failed to close multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
