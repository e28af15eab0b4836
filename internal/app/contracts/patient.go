package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindAllPatients(ctx context.Context, page, pageSize int) ([]responses.Patient, int64, error)
	BuildPatientDashboard(ctx context.Context, patientID string) (*responses.PatientDashboard, error)
}

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int64, error)
}
