package service

import (
	"context"

	"outfit-assistant/models"
)

// AssistantServiceInterface defines the contract for answering chat messages
type AssistantServiceInterface interface {
	Reply(ctx context.Context, message, clientIP string) models.ChatResponse
	Recommend(ctx context.Context, intent models.ChatIntent, clientIP string) *Recommendation
}

// ImageServiceInterface defines the contract for outfit thumbnails
type ImageServiceInterface interface {
	Thumbnail(ctx context.Context, src string, size string) ([]byte, error)
}

// LookbookServiceInterface defines the contract for PDF export of a recommendation
type LookbookServiceInterface interface {
	GeneratePDF(ctx context.Context, rec *Recommendation) ([]byte, error)
}
