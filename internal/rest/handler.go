package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-sync/internal/config"
)

type Handler struct {
	engine    SyncEngine
	validator Validator
}

func New(engine SyncEngine, validator Validator) *Handler {
	return &Handler{
		engine:    engine,
		validator: validator,
	}
}

func (h *Handler) Register(router chi.Router) {
	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/conversations", h.GetConversations)
		r.Post("/conversations/deselect", h.DeselectConversation)
		r.Route("/conversations/{conversation_id}", func(r chi.Router) {
			r.Post("/select", h.SelectConversation)
			r.Get("/view", h.GetView)
			r.Post("/messages", h.SubmitMessage)
			r.Patch("/messages/{message_id}", h.EditMessage)
			r.Post("/typing", h.Typing)
		})
	})
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	previews, err := h.engine.Conversations(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversations: %v", err), http.StatusBadGateway)
		return
	}

	h.writeJSON(w, GetConversationsResponse{Conversations: previews}, http.StatusOK)
}

func (h *Handler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SelectConversation")

	conversationID := chi.URLParam(r, "conversation_id")
	if conversationID == "" {
		logger.Error("conversation_id is required")
		h.writeError(w, "conversation_id is required", http.StatusBadRequest)
		return
	}

	if err := h.engine.Select(r.Context(), conversationID); err != nil {
		// The room is joined and live events flow; only the snapshot seed
		// failed, which the UI may retry with another select.
		logger.Error(fmt.Sprintf("failed to select conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to select conversation: %v", err), http.StatusBadGateway)
		return
	}

	view, _ := h.engine.Snapshot()
	h.writeJSON(w, view, http.StatusOK)
}

func (h *Handler) DeselectConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeselectConversation")

	h.engine.Deselect(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetView")

	conversationID := chi.URLParam(r, "conversation_id")

	view, ok := h.engine.Snapshot()
	if !ok || view.ConversationID != conversationID {
		logger.Error(fmt.Sprintf("conversation %s is not active", conversationID))
		h.writeError(w, "conversation is not active", http.StatusNotFound)
		return
	}

	h.writeJSON(w, view, http.StatusOK)
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitMessage")

	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSubmitMessage(req.Content); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	msg, err := h.engine.Submit(r.Context(), req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to submit message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to submit message: %v", err), http.StatusConflict)
		return
	}

	h.writeJSON(w, SubmitMessageResponse{Message: msg}, http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	messageID := chi.URLParam(r, "message_id")

	var req EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateEditMessage(messageID, req.Content); err != nil {
		logger.Error(fmt.Sprintf("edit validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("edit validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.engine.SubmitEdit(r.Context(), messageID, req.Content); err != nil {
		logger.Error(fmt.Sprintf("failed to submit edit: %v", err))
		h.writeError(w, fmt.Sprintf("failed to submit edit: %v", err), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Typing(w http.ResponseWriter, r *http.Request) {
	h.engine.Keystroke(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
