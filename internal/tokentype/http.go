package tokentype

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/suryansh-23/revoker/internal/types"
)

const maxResponseBytes = 1 << 20

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

// do sends req and reads at most maxResponseBytes of the body.
func (e Env) do(req *http.Request) (response, error) {
	req.Header.Set("User-Agent", e.userAgent())
	resp, err := e.client().Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{status: resp.StatusCode}, fmt.Errorf("read response: %w", err)
	}
	return response{status: resp.StatusCode, body: body}, nil
}

func (e Env) bearer(ctx context.Context, method, endpoint, token string, body io.Reader) (response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.do(req)
}

func (e Env) postForm(ctx context.Context, endpoint string, form url.Values, header http.Header) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return response{}, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

// fail logs and reports an unexpected error, then converts it into a failed
// outcome. Cancellation is not reported.
func (e Env) fail(id types.TypeID, stage string, err error) Outcome {
	e.logger().Error("revoke request failed", "token_type", id, "stage", stage, "err", err)
	if !errors.Is(err, context.Canceled) {
		e.reporter().Capture(err, map[string]string{"token_type": string(id), "stage": stage})
	}
	return Failed("%s: %v", stage, err)
}
