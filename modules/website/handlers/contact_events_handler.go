package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/pkg/application"
)

type ContactEventsHandler struct {
	logger *logrus.Logger
}

func RegisterContactEventHandlers(app application.Application) *ContactEventsHandler {
	handler := &ContactEventsHandler{logger: app.Logger()}
	app.EventPublisher().Subscribe(handler.onMessageSubmitted)
	return handler
}

// The sender address is not logged.
func (h *ContactEventsHandler) onMessageSubmitted(ev *contactmessage.MessageSubmittedEvent) {
	if h == nil || ev == nil {
		return
	}
	h.logger.WithFields(logrus.Fields{
		"message-id": ev.MessageID,
		"subject":    ev.Subject,
		"at":         ev.At,
	}).Info("contact message submitted")
}
