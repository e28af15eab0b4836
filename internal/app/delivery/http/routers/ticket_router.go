package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/tickets"

	"github.com/go-chi/chi/v5"
)

func attachTicketRoutes(router chi.Router, middlewares *middlewares.Middlewares, ticketController *tickets.TicketController) {
	router.Post("/", ticketController.CreateTicket)
	router.Get("/", ticketController.FindTicketsByStatus)
	router.Get("/{ticket_id}", ticketController.FindTicketByID)
	router.Put("/{ticket_id}", ticketController.UpdateTicket)
}
