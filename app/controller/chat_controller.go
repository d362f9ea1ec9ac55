package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"outfit-assistant/app/middleware"
	"outfit-assistant/models"
	"outfit-assistant/service"
	"outfit-assistant/utils"
)

// ChatController handles HTTP requests for the chat assistant
type ChatController struct {
	assistant service.AssistantServiceInterface
	lookbook  service.LookbookServiceInterface
}

// NewChatController creates a new ChatController. lookbook may be nil.
func NewChatController(assistant service.AssistantServiceInterface, lookbook service.LookbookServiceInterface) *ChatController {
	return &ChatController{
		assistant: assistant,
		lookbook:  lookbook,
	}
}

const maxChatBodyBytes = 64 << 10

// decodeChatRequest reads the message from the body. Malformed or empty
// bodies are treated as an empty message; bodies over maxChatBodyBytes are an error.
func decodeChatRequest(w http.ResponseWriter, r *http.Request) (models.ChatRequest, error) {
	var req models.ChatRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes)).Decode(&req)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.ChatRequest{}, err
		}
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("Chat body is not valid JSON, treating as empty message")
		return models.ChatRequest{}, nil
	}
	return req, nil
}

// Chat handles POST /chat
// Returns {reply, html} for a free-text message
func (c *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeChatRequest(w, r)
	if err != nil {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	resp := c.assistant.Reply(r.Context(), req.Message, middleware.ClientIP(r))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("❌ Chat: Error encoding response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Lookbook handles POST /chat/lookbook
// Runs the same recommendation as /chat and returns it as a PDF
func (c *ChatController) Lookbook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.lookbook == nil {
		http.Error(w, "Lookbook export is not available", http.StatusServiceUnavailable)
		return
	}

	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, err := decodeChatRequest(w, r)
	if err != nil {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	rec := c.assistant.Recommend(ctx, utils.ParseUserInput(message), middleware.ClientIP(r))
	if rec.Err != nil {
		http.Error(w, rec.Reply, http.StatusInternalServerError)
		return
	}

	pdf, err := c.lookbook.GeneratePDF(ctx, rec)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Lookbook: PDF generation failed")
		http.Error(w, fmt.Sprintf("Failed to generate lookbook: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="lookbook.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logger.Error().Err(err).Msg("❌ Lookbook: Error writing response")
	}
}
