package models

import (
	"fmt"

	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketResolved TicketStatus = "resolved"
	TicketReopened TicketStatus = "reopened"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:     {TicketResolved},
	TicketResolved: {TicketReopened},
	TicketReopened: {TicketResolved},
}

// Ticket is a support request, owned by a user via email match.
type Ticket struct {
	gorm.Model
	Email       string       `json:"email"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	Response    string       `json:"response"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = TicketOpen
	}
	return nil
}

func (t *Ticket) CanTransition(newStatus TicketStatus) bool {
	for _, s := range ticketTransitions[t.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// UpdateStatus applies a guarded transition; a non-empty response is stored
// alongside it.
func (t *Ticket) UpdateStatus(tx *gorm.DB, newStatus TicketStatus, response string) error {
	if !t.CanTransition(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", t.Status, newStatus)
	}
	updates := map[string]interface{}{"status": newStatus}
	if response != "" {
		updates["response"] = response
		t.Response = response
	}
	t.Status = newStatus
	return tx.Model(t).Updates(updates).Error
}
