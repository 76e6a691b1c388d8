package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentRepository interface {
	// CreateAppointment inserts a pending appointment. The partial unique index
	// on (doctor, date, slot) over active statuses is the authoritative
	// double-booking guard; a duplicate-key failure surfaces as a Conflict.
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	// ExistsActive is the fast pre-flight slot check: true iff a pending or
	// approved appointment occupies the exact (doctor, date, slot) triple.
	ExistsActive(ctx context.Context, doctorID primitive.ObjectID, date time.Time, slot string) (bool, error)
	// UpdateStatus performs a conditional transition: the write only applies
	// while the stored status still equals expectedStatus. Returns false when
	// no document matched, in which case the caller re-reads to classify.
	UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, expectedStatus string, set map[string]interface{}) (bool, error)
	FindForPatient(ctx context.Context, patientID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error)
	FindForDoctor(ctx context.Context, doctorID primitive.ObjectID, query *requests.AppointmentListQuery) ([]models.Appointment, error)
	FindAdmin(ctx context.Context, query *requests.AdminAppointmentListQuery) ([]models.Appointment, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, session *models.Session, query *requests.AppointmentListQuery) ([]responses.Appointment, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	Approve(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	Reject(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
	Complete(ctx context.Context, session *models.Session, appointmentID string, request *requests.CompleteAppointment) (*responses.Appointment, error)
}
