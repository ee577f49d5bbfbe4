package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/newsdesk/internal/logging"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxBodyBytes = 10 << 20
)

// TokenSource yields the current bearer token. It is consulted on every
// request, so a sign-in or sign-out takes effect on the next call.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Executor performs one round-trip and normalizes its outcome.
type Executor interface {
	Execute(ctx context.Context, req Request) Result[*Payload]
}

type HTTPExecutor struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
	metrics *Metrics
}

type Option func(*HTTPExecutor)

// WithHTTPClient replaces the default client. Its cookie jar, if any, is
// dropped: credentials travel only in the Authorization header.
func WithHTTPClient(c *http.Client) Option {
	return func(e *HTTPExecutor) {
		cp := *c
		cp.Jar = nil
		e.http = &cp
	}
}

func WithLogger(l logging.Logger) Option {
	return func(e *HTTPExecutor) { e.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(e *HTTPExecutor) { e.metrics = m }
}

// NewHTTPExecutor resolves relative request paths against baseURL.
// tokens may be nil for anonymous use. The default client has no timeout;
// calls are bounded only by the caller's context.
func NewHTTPExecutor(baseURL string, tokens TokenSource, opts ...Option) (*HTTPExecutor, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host required", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	e := &HTTPExecutor{
		baseURL: u,
		http:    &http.Client{},
		tokens:  tokens,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *HTTPExecutor) BaseURL() string { return e.baseURL.String() }

// Execute never returns a Go error; see Result.
func (e *HTTPExecutor) Execute(ctx context.Context, req Request) Result[*Payload] {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := uuid.NewString()
	start := time.Now()
	res := e.execute(ctx, method, requestID, req)
	elapsed := time.Since(start)
	e.metrics.observe(method, res.Kind, elapsed)

	if res.Success {
		e.logger.Debug(ctx, "api call finished",
			"method", method, "path", req.Path, "status", res.Status,
			"request_id", requestID, "duration", elapsed)
	} else {
		e.logger.Warn(ctx, "api call failed",
			"method", method, "path", req.Path, "status", res.Status,
			"request_id", requestID, "duration", elapsed,
			"kind", res.Kind.String(), "error", res.Error)
	}
	return res
}

func (e *HTTPExecutor) execute(ctx context.Context, method, requestID string, req Request) Result[*Payload] {
	target, err := e.resolve(req)
	if err != nil {
		return Result[*Payload]{Kind: KindInvalidRequest, Error: err.Error()}
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return Result[*Payload]{Kind: KindInvalidRequest, Error: fmt.Sprintf("encode body: %v", err)}
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Result[*Payload]{Kind: KindInvalidRequest, Error: err.Error()}
	}
	e.setHeaders(ctx, httpReq, requestID, req.Headers)

	resp, err := e.http.Do(httpReq)
	if err != nil {
		return Result[*Payload]{Kind: KindTransport, Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result[*Payload]{Kind: KindTransport, Status: resp.StatusCode, Error: fmt.Sprintf("read body: %v", err)}
	}

	return Normalize(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
}

func (e *HTTPExecutor) resolve(req Request) (string, error) {
	if strings.TrimSpace(req.Path) == "" {
		return "", fmt.Errorf("empty request path")
	}
	ref, err := url.Parse(req.Path)
	if err != nil {
		return "", fmt.Errorf("parse path: %w", err)
	}
	var u *url.URL
	if ref.IsAbs() {
		u = ref
	} else {
		// A leading slash would escape the base path.
		ref.Path = strings.TrimPrefix(ref.Path, "/")
		u = e.baseURL.ResolveReference(ref)
	}
	if q := req.Query.Encode(); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}
	return u.String(), nil
}

func (e *HTTPExecutor) setHeaders(ctx context.Context, r *http.Request, requestID string, overrides map[string]string) {
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	r.Header.Set(HeaderRequestID, requestID)
	for k, v := range overrides {
		r.Header.Set(k, v)
	}
	r.Header.Del("Authorization")
	if e.tokens == nil {
		return
	}
	if token, ok := e.tokens.Token(ctx); ok {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// Normalize classifies a received response. The body is treated as JSON
// only when contentType declares it and it parses; otherwise it is text.
func Normalize(status int, contentType string, body []byte) Result[*Payload] {
	p := &Payload{ContentType: contentType, Body: body}
	if isJSON(contentType) && json.Valid(body) {
		p.JSON = true
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var env Envelope
			if err := json.Unmarshal(trimmed, &env); err == nil {
				p.Envelope = &env
			}
		}
	}

	ok := status >= 200 && status < 300
	if p.Envelope != nil && p.Envelope.Failed() {
		ok = false
	}

	var message string
	if p.Envelope != nil {
		message = p.Envelope.MessageText()
	}

	if ok {
		return Result[*Payload]{Success: true, Data: p, Message: message, Status: status, Payload: p}
	}
	return Result[*Payload]{
		Error:   failureMessage(p, status),
		Message: message,
		Kind:    KindRemote,
		Status:  status,
		Payload: p,
	}
}

func failureMessage(p *Payload, status int) string {
	if p.Envelope != nil {
		if m := p.Envelope.MessageText(); m != "" {
			return m
		}
		if m := p.Envelope.ErrorText(); m != "" {
			return m
		}
	}
	return fmt.Sprintf("HTTP Error: %d", status)
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
