package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/pkg/application"
)

type ToggleEventsHandler struct {
	logger *logrus.Logger
}

func RegisterToggleEventHandlers(app application.Application) *ToggleEventsHandler {
	handler := &ToggleEventsHandler{logger: app.Logger()}
	app.EventPublisher().Subscribe(handler.onNodeToggled)
	return handler
}

func (h *ToggleEventsHandler) onNodeToggled(ev *hierarchy.NodeToggledEvent) {
	if h == nil || ev == nil {
		return
	}
	h.logger.WithFields(logrus.Fields{
		"view-id":  ev.ViewID,
		"node-id":  ev.NodeID,
		"expanded": ev.Expanded,
	}).Debug("org chart node toggled")
}
