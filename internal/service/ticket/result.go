package ticket

import (
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// ScanResult is a successful entry scan.
type ScanResult struct {
	Ticket *domain.Ticket
	Scan   *domain.TicketScan
	// PreviousScanAt is the time of the most recent earlier scan of any
	// kind, nil on the first scan.
	PreviousScanAt *time.Time
}

// EventID returns the event the ticket admits to.
func (r ScanResult) EventID() uuid.UUID {
	return r.Ticket.EventID
}
