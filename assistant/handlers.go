package assistant

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"pondilore/models"
	"pondilore/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{Resolver: resolver}
}

// POST /api/assistant/ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Ask me something about Puducherry")
		return
	}

	answer, err := h.Resolver.Resolve(r.Context(), req.Question)
	if err != nil {
		var genErr *models.GenerationError
		if errors.As(err, &genErr) {
			utils.RespondWithError(w, http.StatusBadGateway, genErr.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, answer)
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsInbound struct {
	Question string `json:"question"`
}

type wsOutbound struct {
	Type    string `json:"type"` // "chunk", "done", "error"
	Content string `json:"content,omitempty"`
	Source  string `json:"source,omitempty"`
}

// GET /api/assistant/stream — the dedicated chat page. Each question streams back
// as chunks appended to one growing message; there is no client-side abort
// once a question is sent.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var in wsInbound
		if err := json.Unmarshal(raw, &in); err != nil || strings.TrimSpace(in.Question) == "" {
			writeWS(conn, wsOutbound{Type: "error", Content: "Ask me something about Puducherry"})
			continue
		}

		h.streamAnswer(conn, r, in.Question)
	}
}

func (h *Handler) streamAnswer(conn *websocket.Conn, r *http.Request, question string) {
	ctx := r.Context()

	// the first two short-circuits answer in one piece
	if text, ok := lookupKnowledge(question); ok {
		writeWS(conn, wsOutbound{Type: "chunk", Content: text})
		writeWS(conn, wsOutbound{Type: "done", Source: SourceKnowledge})
		return
	}
	key := cacheKey(question)
	if h.Resolver.Cache != nil {
		if text, ok := h.Resolver.Cache.Get(ctx, key); ok {
			writeWS(conn, wsOutbound{Type: "chunk", Content: text})
			writeWS(conn, wsOutbound{Type: "done", Source: SourceCache})
			return
		}
	}

	chunks, errs := h.Resolver.Gateway.CompleteStream(ctx, question)

	var full strings.Builder
	for chunk := range chunks {
		full.WriteString(chunk)
		writeWS(conn, wsOutbound{Type: "chunk", Content: chunk})
	}

	select {
	case err := <-errs:
		writeWS(conn, wsOutbound{Type: "error", Content: err.Error()})
		return
	default:
	}

	if h.Resolver.Cache != nil && full.Len() > 0 {
		if err := h.Resolver.Cache.Set(ctx, key, full.String()); err != nil {
			log.Printf("answer cache write failed: %v", err)
		}
	}
	writeWS(conn, wsOutbound{Type: "done", Source: SourceAI})
}

func writeWS(conn *websocket.Conn, out wsOutbound) {
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println("ws write:", err)
	}
}
