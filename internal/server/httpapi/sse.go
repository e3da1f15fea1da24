package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const sseHeartbeat = 25 * time.Second

// handleEvents streams change-feed events as server-sent events. The
// dashboard re-fetches the list on every event; payloads carry only the
// operation and record identity. Comment lines keep idle connections open
// through proxies.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "streaming unsupported"})
		return
	}

	events, cancel, err := h.feed.Subscribe(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case ev, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error(r.Context(), "encoding feed event failed", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
