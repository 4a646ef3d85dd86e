package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler writes into a buffer; if it
// has not returned when the deadline passes, the buffer is discarded, a 504
// problem is sent and later writes fail with http.ErrHandlerTimeout.
//
// A mutation that already holds the engine lock runs to completion, so a 504
// does not mean the write was dropped. Handler panics are re-raised on the
// serving goroutine where Recovery can see them.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			held := &heldResponse{header: http.Header{}}
			finished := make(chan any, 1)

			go func() {
				var p any
				defer func() { finished <- p }()
				defer func() { p = recover() }()
				next.ServeHTTP(held, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				held.release(w)
			case <-ctx.Done():
				held.expire()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded "+d.String())
			}
		})
	}
}

// heldResponse buffers what the handler writes until Timeout decides whether
// it reaches the client.
type heldResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (h *heldResponse) Header() http.Header {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.header
}

func (h *heldResponse) WriteHeader(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 {
		h.status = code
	}
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.expired {
		return 0, http.ErrHandlerTimeout
	}
	if h.status == 0 {
		h.status = http.StatusOK
	}
	return h.body.Write(b)
}

func (h *heldResponse) expire() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.expired = true
}

// release copies the held response to w.
func (h *heldResponse) release(w http.ResponseWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	maps.Copy(w.Header(), h.header)
	if h.status != 0 {
		w.WriteHeader(h.status)
	}
	if h.body.Len() > 0 {
		_, _ = w.Write(h.body.Bytes())
	}
}
