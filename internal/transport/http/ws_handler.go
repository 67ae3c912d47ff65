package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"guidance-service/internal/app"
	"guidance-service/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.AssessmentService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AssessmentService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Value int `json:"value"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives one assessment
// session per connection. The client answers each prompt with a 1-5 rating;
// the final answer yields the ranked recommendations.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	gradeRaw := r.URL.Query().Get("grade")
	if userID == "" || gradeRaw == "" {
		http.Error(w, "missing userId or grade", http.StatusBadRequest)
		return
	}
	grade, err := strconv.Atoi(gradeRaw)
	if err != nil {
		http.Error(w, "grade must be an integer", http.StatusBadRequest)
		return
	}
	var subjectIDs []string
	if raw := r.URL.Query().Get("subjects"); raw != "" {
		subjectIDs = strings.Split(raw, ",")
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID, prompt, err := h.service.Start(r.Context(), userID, grade, subjectIDs)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.Abandon(sessionID)

	if err := conn.WriteJSON(outboundMessage[app.Prompt]{Type: "question", Payload: prompt}); err != nil {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.writeError(conn, "invalid answer payload")
				continue
			}
			next, result, err := h.service.Answer(r.Context(), sessionID, payload.Value)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			if result != nil {
				_ = conn.WriteJSON(outboundMessage[domain.AssessmentResult]{Type: "results", Payload: *result})
				continue
			}
			_ = conn.WriteJSON(outboundMessage[app.Prompt]{Type: "question", Payload: next})
		case "previous":
			prompt, err := h.service.Previous(sessionID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[app.Prompt]{Type: "question", Payload: prompt})
		case "retake":
			prompt, err := h.service.Retake(r.Context(), sessionID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[app.Prompt]{Type: "question", Payload: prompt})
		default:
			h.writeError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) writeError(conn *websocket.Conn, message string) {
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: message}})
}
