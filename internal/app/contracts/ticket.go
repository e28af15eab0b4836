package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type TicketUsecase interface {
	CreateTicket(ctx context.Context, request *requests.CreateTicket) (*responses.Ticket, error)
	UpdateTicket(ctx context.Context, request *requests.UpdateTicket) (*responses.Ticket, error)
	FindTicketByID(ctx context.Context, ticketID string) (*responses.Ticket, error)
	FindTicketsByStatus(ctx context.Context, status string) ([]responses.Ticket, error)
}

type TicketRepository interface {
	Insert(ctx context.Context, ticket *models.Ticket) (string, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, ticketID string) (*models.Ticket, error)
	FindByStatus(ctx context.Context, status string) ([]models.Ticket, error)
}
