package contactmessage

import (
	"time"

	"github.com/google/uuid"
)

type MessageSubmittedEvent struct {
	MessageID uuid.UUID
	Email     string
	Subject   string
	At        time.Time
}
