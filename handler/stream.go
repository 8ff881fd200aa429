package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext sends datastar events over the response of the current request.
type StreamContext interface {
	Context
	// SendMultiple sends one element patch per entry, in order.
	SendMultiple(patches ...TemplPatch) error
	// SendSignals merges signals (any JSON-marshalable value) into the client store.
	SendSignals(signals any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

// SSEHandler produces the events of an SSE response.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// SSE returns a datastar-only response driven by h. Rendering it for a
// regular request fails with ErrNotDataStar.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
