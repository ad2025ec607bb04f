package core

import (
	"context"
	"strings"
)

// ChatStream represents a streaming completion in progress.
//
// Channel rules for adapters:
//   - Ch, Err, and Final MUST all be closed when the stream ends.
//   - Err emits at most one error.
//   - Final emits exactly once on success (or zero times on failure) and
//     carries usage totals when the provider supplies them at stream end.
//   - Chunks are delivered in provider emission order, never reordered.
//
// Consumers that stop reading early MUST call Close so the underlying
// network connection is released promptly; Collect does this automatically.
type ChatStream struct {
	// Ch emits text deltas in order. Closed when the stream ends.
	Ch <-chan ChatChunk

	// Err emits at most one error, then the stream's channels close.
	Err <-chan error

	// Final is sent exactly once after successful completion. Its Content
	// may be empty; the accumulated deltas are authoritative.
	Final <-chan *ChatResponse

	stop func()
}

// NewChatStream assembles a ChatStream from adapter-owned channels and an
// optional stop function invoked by Close.
func NewChatStream(ch <-chan ChatChunk, errCh <-chan error, final <-chan *ChatResponse, stop func()) *ChatStream {
	return &ChatStream{Ch: ch, Err: errCh, Final: final, stop: stop}
}

// Close releases the stream's underlying resources. It is safe to call
// multiple times and after the stream has finished. A stream cannot be
// resumed after Close; reissue the request instead.
func (s *ChatStream) Close() {
	if s.stop != nil {
		s.stop()
	}
}

// Collect drains the stream and returns the final ChatResponse with Content
// set to the concatenation of all deltas in emission order. It blocks until
// the stream completes, errors, or ctx is done, and closes the stream on
// every exit path.
//
// When the stream fails after partial delivery, the partial text collected
// so far is returned alongside the error.
func Collect(ctx context.Context, s *ChatStream) (*ChatResponse, error) {
	if s == nil {
		return nil, ErrNoMessages
	}
	defer s.Close()

	var accumulated strings.Builder
	var streamErr error
	var finalResp *ChatResponse

	ch, errCh, final := s.Ch, s.Err, s.Final
	for ch != nil || errCh != nil || final != nil {
		select {
		case <-ctx.Done():
			return partial(&accumulated, finalResp), ctx.Err()

		case chunk, ok := <-ch:
			if !ok {
				ch = nil
				continue
			}
			accumulated.WriteString(chunk.Delta)

		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			streamErr = err

		case resp, ok := <-final:
			if !ok {
				final = nil
				continue
			}
			finalResp = resp
		}
	}

	if streamErr != nil {
		return partial(&accumulated, finalResp), streamErr
	}

	if finalResp == nil {
		finalResp = &ChatResponse{}
	}
	finalResp.Content = accumulated.String()
	return finalResp, nil
}

// partial builds the best-effort response surfaced with a stream error,
// since already-yielded chunks cannot be un-yielded.
func partial(acc *strings.Builder, finalResp *ChatResponse) *ChatResponse {
	if acc.Len() == 0 && finalResp == nil {
		return nil
	}
	if finalResp == nil {
		finalResp = &ChatResponse{}
	}
	finalResp.Content = acc.String()
	return finalResp
}
