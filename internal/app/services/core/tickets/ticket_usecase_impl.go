package tickets

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ticketUsecaseInstance contracts.TicketUsecase
	onceTicketUsecase     sync.Once
)

type ticketUsecase struct {
	TicketRepository    contracts.TicketRepository
	PatientRepository   contracts.PatientRepository
	NotificationService contracts.NotificationService
	Log                 *zap.Logger
}

func NewTicketUsecase(
	ticketRepository contracts.TicketRepository,
	patientRepository contracts.PatientRepository,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.TicketUsecase {
	onceTicketUsecase.Do(func() {
		ticketUsecaseInstance = &ticketUsecase{
			TicketRepository:    ticketRepository,
			PatientRepository:   patientRepository,
			NotificationService: notificationService,
			Log:                 logger,
		}
	})
	return ticketUsecaseInstance
}

func (uc *ticketUsecase) CreateTicket(ctx context.Context, request *requests.CreateTicket) (*responses.Ticket, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ticketUsecase.CreateTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", request.PatientID))
	}

	now := time.Now()
	ticket := &models.Ticket{
		PatientID: request.PatientID,
		Subject:   request.Subject,
		Body:      request.Body,
		Status:    constvars.TicketStatusOpen,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	ticketID, err := uc.TicketRepository.Insert(ctx, ticket)
	if err != nil {
		return nil, err
	}
	ticket.ID = ticketID

	response := mapTicketToResponse(ticket)
	return &response, nil
}

// UpdateTicket moves a ticket through its open, in_progress and closed
// states. Closed tickets are immutable.
func (uc *ticketUsecase) UpdateTicket(ctx context.Context, request *requests.UpdateTicket) (*responses.Ticket, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ticketUsecase.UpdateTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	ticket, err := uc.TicketRepository.FindByID(ctx, request.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotFound(fmt.Errorf("no ticket with id %s", request.TicketID))
	}
	if ticket.Status == constvars.TicketStatusClosed {
		return nil, exceptions.ErrTicketAlreadyClosed(fmt.Errorf("ticket %s is closed", ticket.ID))
	}

	ticket.Status = request.Status
	ticket.Response = request.Response
	ticket.AdminID = request.AdminID
	ticket.UpdatedAt = time.Now()

	if err := uc.TicketRepository.Update(ctx, ticket); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your support ticket %q is now %s", ticket.Subject, ticket.Status)
	if err := uc.NotificationService.Notify(ctx, ticket.PatientID, constvars.NotificationKindTicketUpdate, message); err != nil {
		uc.Log.Warn("ticketUsecase.UpdateTicket patient notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := mapTicketToResponse(ticket)
	return &response, nil
}

func (uc *ticketUsecase) FindTicketByID(ctx context.Context, ticketID string) (*responses.Ticket, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ticketUsecase.FindTicketByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ticket, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotFound(fmt.Errorf("no ticket with id %s", ticketID))
	}

	response := mapTicketToResponse(ticket)
	return &response, nil
}

func (uc *ticketUsecase) FindTicketsByStatus(ctx context.Context, status string) ([]responses.Ticket, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ticketUsecase.FindTicketsByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tickets, err := uc.TicketRepository.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Ticket, 0, len(tickets))
	for i := range tickets {
		result = append(result, mapTicketToResponse(&tickets[i]))
	}
	return result, nil
}

func mapTicketToResponse(ticket *models.Ticket) responses.Ticket {
	return responses.Ticket{
		TicketID:  ticket.ID,
		PatientID: ticket.PatientID,
		Subject:   ticket.Subject,
		Body:      ticket.Body,
		Status:    ticket.Status,
		Response:  ticket.Response,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}
