package controller_test

import (
	"context"

	"outfit-assistant/models"
	"outfit-assistant/service"
)

type fakeAssistant struct {
	reply     models.ChatResponse
	rec       *service.Recommendation
	messages  []string
	intents   []models.ChatIntent
	clientIPs []string
}

func (f *fakeAssistant) Reply(_ context.Context, message, clientIP string) models.ChatResponse {
	f.messages = append(f.messages, message)
	f.clientIPs = append(f.clientIPs, clientIP)
	return f.reply
}

func (f *fakeAssistant) Recommend(_ context.Context, intent models.ChatIntent, clientIP string) *service.Recommendation {
	f.intents = append(f.intents, intent)
	f.clientIPs = append(f.clientIPs, clientIP)
	return f.rec
}

type fakeLookbook struct {
	pdf []byte
	err error
}

func (f *fakeLookbook) GeneratePDF(context.Context, *service.Recommendation) ([]byte, error) {
	return f.pdf, f.err
}

type fakeImages struct {
	data  []byte
	err   error
	sizes []string
}

func (f *fakeImages) Thumbnail(_ context.Context, _ string, size string) ([]byte, error) {
	f.sizes = append(f.sizes, size)
	return f.data, f.err
}

type fakeSync struct {
	total, inserted int
	err             error
}

func (f *fakeSync) SyncCatalog(context.Context) (int, int, error) {
	return f.total, f.inserted, f.err
}
