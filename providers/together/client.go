package together

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/tessera-ai/tessera/core"
)

const (
	chatCompletionsPath = "/chat/completions"
	modelsPath          = "/models"
)

// doComplete performs a non-streaming chat completion request.
func (p *Together) doComplete(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error) {
	togetherReq, err := buildRequest(req, false)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(togetherReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	respBody, err := p.doJSON(ctx, http.MethodPost, chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var togetherResp togetherResponse
	if err := json.Unmarshal(respBody, &togetherResp); err != nil {
		return nil, newDecodeError(err)
	}
	return mapResponse(&togetherResp), nil
}

// doListModels queries the live model listing endpoint.
func (p *Together) doListModels(ctx context.Context) ([]core.ModelInfo, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	respBody, err := p.doJSON(ctx, http.MethodGet, modelsPath, nil)
	if err != nil {
		return nil, err
	}

	var list togetherModelList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, newDecodeError(err)
	}
	return mapModelList(&list), nil
}

// doJSON executes one bounded request and returns the response body, with
// error statuses normalized into the unified taxonomy.
func (p *Together) doJSON(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, p.baseURL()+path, body)
	if err != nil {
		return nil, newNetworkError(err)
	}
	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}
	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody, retryAfterFrom(resp.Header))
	}
	return respBody, nil
}
