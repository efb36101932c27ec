package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

const ticketChannel = "ticket-events"

// TicketEvent is published whenever a ticket's status or response changes.
type TicketEvent struct {
	TicketID uint                `json:"ticket_id"`
	Email    string              `json:"email"`
	Subject  string              `json:"subject"`
	Status   models.TicketStatus `json:"status"`
	Response string              `json:"response"`
}

// PublishTicketEvent pushes a ticket update onto the event channel. Publish
// failures are logged and swallowed: the DB write already happened and the
// notification is best effort.
func PublishTicketEvent(ticket *models.Ticket) {
	event := TicketEvent{
		TicketID: ticket.ID,
		Email:    ticket.Email,
		Subject:  ticket.Subject,
		Status:   ticket.Status,
		Response: ticket.Response,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal ticket event: %v", err)
		return
	}
	if err := Client.Publish(Ctx, ticketChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish ticket event: %v", err)
	}
}

// StartTicketSubscriber listens for ticket updates and emails the owner
// when an admin responds. Runs until the process exits.
func StartTicketSubscriber() {
	sub := Client.Subscribe(Ctx, ticketChannel)
	log.Println("Ticket event subscriber started")

	go func() {
		for msg := range sub.Channel() {
			var event TicketEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Bad ticket event payload: %v", err)
				continue
			}
			if event.Status != models.TicketResolved || event.Response == "" {
				continue
			}

			body := fmt.Sprintf(`
				<p>Hello,</p>
				<p>Your support ticket <strong>%s</strong> has been resolved.</p>
				<p><strong>Response:</strong> %s</p>
				<p>If this does not solve your problem, you can reopen the ticket from your account.</p>
				<p>Best regards,</p>
				<p>The DocSpot Team</p>
			`, event.Subject, event.Response)

			if err := utils.SendEmail(event.Email, "Your support ticket was resolved", body); err != nil {
				log.Printf("Failed to send ticket email for ticket %d: %v", event.TicketID, err)
			}
		}
	}()
}
