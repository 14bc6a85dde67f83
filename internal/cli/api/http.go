package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"HBnB/internal/cli/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Surface is a page of the client the user is on.
type Surface string

const (
	// SurfaceLogin — точка входа для неаутентифицированного пользователя.
	SurfaceLogin Surface = "login.html"
	// SurfaceIndex — стартовая страница после входа.
	SurfaceIndex Surface = "index.html"
)

// maxBodySize ограничивает размер читаемого тела ответа.
const maxBodySize = 10 << 20

// API is the capability the services depend on.
type API interface {
	Get(ctx context.Context, url string, out any) error
	Post(ctx context.Context, url string, body, out any) error
}

// Request is a single call through the façade.
type Request struct {
	Method string
	URL    string
	// Body is JSON-encoded when non-nil.
	Body any
	// Token is sent as a bearer credential when non-empty.
	Token string
	// Surface is where the caller currently is; it decides whether a 401 asks for a redirect.
	Surface Surface
}

// Client is the single entry point for HTTP calls to the API.
type Client struct {
	http   *http.Client
	tokens auth.TokenStore
	log    *zap.SugaredLogger
}

// NewClient creates a façade. A nil httpClient means http.DefaultClient.
func NewClient(httpClient *http.Client, tokens auth.TokenStore, log *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{http: httpClient, tokens: tokens, log: log}
}

// Do sends r and decodes a successful JSON response into out (out may be nil).
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	log := c.log.With("request_id", reqID, "method", r.Method, "url", r.URL)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnw("request: transport failure", "error", err)
		return &Error{Kind: ErrNetwork, Method: r.Method, URL: r.URL, Err: err}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	log.Debugw("request: done", "status", resp.StatusCode, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return c.unauthorized(r, resp, data, log)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg := errorMessage(data, resp)
		log.Infow("request: failed", "status", resp.StatusCode, "message", msg)
		return &Error{Kind: ErrRequestFailed, Method: r.Method, URL: r.URL, Status: resp.StatusCode, Message: msg}
	}

	if readErr != nil {
		return &Error{Kind: ErrNetwork, Method: r.Method, URL: r.URL, Status: resp.StatusCode, Err: readErr}
	}
	if err := decode(resp.StatusCode, data, out); err != nil {
		log.Warnw("request: malformed response", "status", resp.StatusCode, "error", err)
		return &Error{Kind: ErrMalformedResponse, Method: r.Method, URL: r.URL, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// unauthorized clears the credential once and reports where the caller should go.
func (c *Client) unauthorized(r Request, resp *http.Response, data []byte, log *zap.SugaredLogger) error {
	if c.tokens != nil {
		c.tokens.Delete()
	}
	e := &Error{
		Kind:    ErrUnauthorized,
		Method:  r.Method,
		URL:     r.URL,
		Status:  resp.StatusCode,
		Message: errorMessage(data, resp),
	}
	if r.Surface != SurfaceLogin {
		e.Redirect = SurfaceLogin
	}
	log.Infow("request: unauthorized, credential cleared", "redirect", string(e.Redirect))
	return e
}

// On returns the API bound to a surface. Calls read the credential from the token store.
func (c *Client) On(surface Surface) API {
	return boundAPI{c: c, surface: surface}
}

type boundAPI struct {
	c       *Client
	surface Surface
}

func (b boundAPI) token() string {
	if b.c.tokens == nil {
		return ""
	}
	tok, _ := b.c.tokens.Get()
	return tok
}

func (b boundAPI) Get(ctx context.Context, url string, out any) error {
	return b.c.Do(ctx, Request{Method: http.MethodGet, URL: url, Token: b.token(), Surface: b.surface}, out)
}

func (b boundAPI) Post(ctx context.Context, url string, body, out any) error {
	return b.c.Do(ctx, Request{Method: http.MethodPost, URL: url, Body: body, Token: b.token(), Surface: b.surface}, out)
}

func decode(status int, data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		if status == http.StatusNoContent || status == http.StatusResetContent {
			return nil
		}
		return fmt.Errorf("empty body")
	}
	if out == nil {
		if !json.Valid(data) {
			return fmt.Errorf("invalid JSON")
		}
		return nil
	}
	return json.Unmarshal(data, out)
}

// errorMessage достаёт сообщение из JSON-тела ошибки, иначе возвращает текст статуса.
func errorMessage(data []byte, resp *http.Response) string {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		for _, k := range []string{"message", "error", "msg"} {
			if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return strings.TrimSpace(resp.Status)
}
