package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	DashboardStats(ctx context.Context) (*responses.DashboardStats, error)
	FindDoctors(ctx context.Context, query *requests.AdminDoctorListQuery) ([]responses.Doctor, *responses.Pagination, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
	VerifyDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindPatients(ctx context.Context, query *requests.AdminPatientListQuery) ([]responses.User, *responses.Pagination, error)
	FindAppointments(ctx context.Context, query *requests.AdminAppointmentListQuery) ([]responses.Appointment, *responses.Pagination, error)
}
