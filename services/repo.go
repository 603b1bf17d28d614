package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GormBookingRepo implements BookingRepo on the Postgres store.
type GormBookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *GormBookingRepo {
	return &GormBookingRepo{db: db}
}

func (r *GormBookingRepo) GetRequest(id string) (*models.AppointmentRequest, error) {
	var req models.AppointmentRequest
	if err := r.db.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request %s", utils.ErrReference, id)
		}
		return nil, err
	}
	return &req, nil
}

func (r *GormBookingRepo) CreateRequest(req *models.AppointmentRequest) error {
	return r.db.Create(req).Error
}

// SavePendingRequest writes the client-editable fields, conditioned on the
// request still being pending so an edit cannot revive a resolved request.
func (r *GormBookingRepo) SavePendingRequest(req *models.AppointmentRequest) (bool, error) {
	res := r.db.Model(&models.AppointmentRequest{}).
		Where("id = ? AND status = ?", req.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"description":    req.Description,
			"requested_date": req.RequestedDate,
			"requested_time": req.RequestedTime,
		})
	return res.RowsAffected > 0, res.Error
}

// TransitionRequest performs a status-conditioned update so racing writers
// cannot both succeed.
func (r *GormBookingRepo) TransitionRequest(id string, from, to models.AppointmentStatus, message string) (bool, error) {
	res := r.db.Model(&models.AppointmentRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":           to,
			"response_message": message,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *GormBookingRepo) ListRequestsByLawyer(lawyerID string, statuses []models.AppointmentStatus) ([]models.AppointmentRequest, error) {
	var requests []models.AppointmentRequest
	query := r.db.Preload("Client").Where("lawyer_id = ?", lawyerID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *GormBookingRepo) ListRequestsByClient(clientID string) ([]models.AppointmentRequest, error) {
	var requests []models.AppointmentRequest
	err := r.db.Preload("Lawyer").
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (r *GormBookingRepo) ListStalePendingRequests(before string) ([]models.AppointmentRequest, error) {
	var requests []models.AppointmentRequest
	err := r.db.
		Where("status = ? AND requested_date < ?", models.StatusPending, before).
		Find(&requests).Error
	return requests, err
}

func (r *GormBookingRepo) GetAppointment(id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment %s", utils.ErrReference, id)
		}
		return nil, err
	}
	return &appt, nil
}

func (r *GormBookingRepo) CreateAppointment(a *models.Appointment) error {
	return r.db.Create(a).Error
}

func (r *GormBookingRepo) TransitionAppointment(id string, from []models.AppointmentStatus, to models.AppointmentStatus) (bool, error) {
	res := r.db.Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

func (r *GormBookingRepo) SaveAppointmentNotes(id, notes string) (bool, error) {
	res := r.db.Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", id,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Update("notes", notes)
	return res.RowsAffected > 0, res.Error
}

func (r *GormBookingRepo) ListAppointmentsByLawyer(lawyerID string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := r.db.Preload("Client").Where("lawyer_id = ?", lawyerID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("appointment_date asc, appointment_time asc").Find(&appointments).Error
	return appointments, err
}

func (r *GormBookingRepo) ListAppointmentsByClient(clientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Lawyer").
		Where("client_id = ?", clientID).
		Order("appointment_date asc, appointment_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (r *GormBookingRepo) ProfileExists(profileID string, userType models.UserType) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).
		Where("id = ? AND user_type = ?", profileID, userType).
		Count(&count).Error
	return count > 0, err
}

func (r *GormBookingRepo) InTx(fn func(BookingRepo) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormBookingRepo{db: tx})
	})
}
