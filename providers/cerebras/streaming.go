package cerebras

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/tessera-ai/tessera/core"
)

// doStream performs a streaming chat completion request.
func (p *Cerebras) doStream(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error) {
	cerebrasReq, err := buildRequest(req, true)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(cerebrasReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	sctx, cancel := context.WithCancel(ctx)

	httpReq, err := http.NewRequestWithContext(sctx, http.MethodPost, p.baseURL()+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		cancel()
		return nil, newNetworkError(err)
	}
	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		defer cancel()
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		return nil, normalizeError(resp.StatusCode, respBody, retryAfterFrom(resp.Header))
	}

	chunkCh := make(chan core.ChatChunk, 16)
	errCh := make(chan error, 1)
	finalCh := make(chan *core.ChatResponse, 1)

	go p.processSSEStream(sctx, resp.Body, chunkCh, errCh, finalCh)

	return core.NewChatStream(chunkCh, errCh, finalCh, cancel), nil
}

// processSSEStream reads the SSE stream and emits chunks in provider
// emission order.
func (p *Cerebras) processSSEStream(
	ctx context.Context,
	body io.ReadCloser,
	chunkCh chan<- core.ChatChunk,
	errCh chan<- error,
	finalCh chan<- *core.ChatResponse,
) {
	defer body.Close()
	defer close(chunkCh)
	defer close(errCh)
	defer close(finalCh)

	reader := bufio.NewReader(body)

	var responseID string
	var responseModel string
	var finishReason string
	var usage *cerebrasUsage

	for {
		select {
		case <-ctx.Done():
			errCh <- ctx.Err()
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			errCh <- newNetworkError(err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk cerebrasStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			errCh <- newDecodeError(err)
			return
		}

		if chunk.ID != "" {
			responseID = chunk.ID
		}
		if chunk.Model != "" {
			responseModel = chunk.Model
		}
		if chunk.Usage != nil {
			usage = chunk.Usage
		}

		for _, choice := range chunk.Choices {
			if choice.FinishReason != nil && *choice.FinishReason != "" {
				finishReason = *choice.FinishReason
			}
			if choice.Delta.Content == "" {
				continue
			}
			select {
			case chunkCh <- core.ChatChunk{Delta: choice.Delta.Content}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}

	finalResp := &core.ChatResponse{
		ID:           responseID,
		Model:        responseModel,
		Provider:     core.ProviderCerebras,
		FinishReason: finishReason,
	}
	if usage != nil {
		finalResp.Usage = mapUsage(usage)
	}
	finalCh <- finalResp
}
