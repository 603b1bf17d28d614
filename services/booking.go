package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/utils"
)

// BookingRepo is the persistence boundary for the request/appointment
// lifecycle. Transition methods are status-conditioned: they report false
// when the record was not in the expected state, which the service surfaces
// as a conflict when two writers race.
type BookingRepo interface {
	GetRequest(id string) (*models.AppointmentRequest, error)
	CreateRequest(req *models.AppointmentRequest) error
	SavePendingRequest(req *models.AppointmentRequest) (bool, error)
	TransitionRequest(id string, from, to models.AppointmentStatus, message string) (bool, error)
	ListRequestsByLawyer(lawyerID string, statuses []models.AppointmentStatus) ([]models.AppointmentRequest, error)
	ListRequestsByClient(clientID string) ([]models.AppointmentRequest, error)
	ListStalePendingRequests(before string) ([]models.AppointmentRequest, error)

	GetAppointment(id string) (*models.Appointment, error)
	CreateAppointment(a *models.Appointment) error
	TransitionAppointment(id string, from []models.AppointmentStatus, to models.AppointmentStatus) (bool, error)
	SaveAppointmentNotes(id, notes string) (bool, error)
	ListAppointmentsByLawyer(lawyerID string, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	ListAppointmentsByClient(clientID string) ([]models.Appointment, error)

	ProfileExists(profileID string, userType models.UserType) (bool, error)
	InTx(fn func(BookingRepo) error) error
}

// BookingService owns the appointment lifecycle rules: who may move a record
// and which status transitions are legal.
type BookingService struct {
	repo BookingRepo
}

func NewBookingService(repo BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

// RequestPatch carries the fields the authoring client may still edit while
// the request is pending.
type RequestPatch struct {
	Description   *string `json:"description"`
	RequestedDate *string `json:"requested_date"`
	RequestedTime *string `json:"requested_time"`
}

// CreateRequest validates and stores a client's booking proposal.
func (s *BookingService) CreateRequest(clientID string, req *models.AppointmentRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", utils.ErrValidation)
	}
	if !req.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", utils.ErrValidation, req.AppointmentType)
	}
	if _, err := time.Parse("2006-01-02", req.RequestedDate); err != nil {
		return fmt.Errorf("%w: invalid requested date %q", utils.ErrValidation, req.RequestedDate)
	}
	if _, err := time.Parse("15:04", req.RequestedTime); err != nil {
		return fmt.Errorf("%w: invalid requested time %q", utils.ErrValidation, req.RequestedTime)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", utils.ErrValidation)
	}

	ok, err := s.repo.ProfileExists(req.LawyerID, models.UserTypeLawyer)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: lawyer %s", utils.ErrReference, req.LawyerID)
	}

	req.ClientID = clientID
	req.Status = models.StatusPending
	req.ResponseMessage = ""
	return s.repo.CreateRequest(req)
}

// UpdateRequest lets the authoring client amend description, date or time
// while the request is still pending.
func (s *BookingService) UpdateRequest(clientID, id string, patch RequestPatch) (*models.AppointmentRequest, error) {
	req, err := s.repo.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != clientID {
		return nil, fmt.Errorf("%w: only the requesting client may edit this request", utils.ErrAuthorization)
	}
	if req.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: request is already %s", utils.ErrInvalidTransition, req.Status)
	}

	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, fmt.Errorf("%w: description is required", utils.ErrValidation)
		}
		req.Description = *patch.Description
	}
	if patch.RequestedDate != nil {
		if _, err := time.Parse("2006-01-02", *patch.RequestedDate); err != nil {
			return nil, fmt.Errorf("%w: invalid requested date %q", utils.ErrValidation, *patch.RequestedDate)
		}
		req.RequestedDate = *patch.RequestedDate
	}
	if patch.RequestedTime != nil {
		if _, err := time.Parse("15:04", *patch.RequestedTime); err != nil {
			return nil, fmt.Errorf("%w: invalid requested time %q", utils.ErrValidation, *patch.RequestedTime)
		}
		req.RequestedTime = *patch.RequestedTime
	}

	ok, err := s.repo.SavePendingRequest(req)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request was already actioned", utils.ErrConflict)
	}
	return req, nil
}

// Approve confirms a pending request and produces the matching appointment
// in one transaction. The request keeps its date/time/duration/type fields;
// the appointment starts confirmed.
func (s *BookingService) Approve(lawyerID, id string) (*models.Appointment, error) {
	req, err := s.repo.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if req.LawyerID != lawyerID {
		return nil, fmt.Errorf("%w: only the requested lawyer may respond", utils.ErrAuthorization)
	}
	if err := models.CheckTransition(req.Status, models.StatusConfirmed); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTransition, err)
	}

	var appt *models.Appointment
	err = s.repo.InTx(func(r BookingRepo) error {
		ok, err := r.TransitionRequest(id, models.StatusPending, models.StatusConfirmed, req.ResponseMessage)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: request was already actioned", utils.ErrConflict)
		}
		appt = models.FromRequest(req)
		return r.CreateAppointment(appt)
	})
	if err != nil {
		return nil, err
	}
	req.Status = models.StatusConfirmed
	return appt, nil
}

// Decline cancels a pending request. A non-empty message for the client is
// mandatory and is stored on the request.
func (s *BookingService) Decline(lawyerID, id, message string) (*models.AppointmentRequest, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: a response message is required to decline", utils.ErrValidation)
	}

	req, err := s.repo.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if req.LawyerID != lawyerID {
		return nil, fmt.Errorf("%w: only the requested lawyer may respond", utils.ErrAuthorization)
	}
	if err := models.CheckTransition(req.Status, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTransition, err)
	}

	ok, err := s.repo.TransitionRequest(id, models.StatusPending, models.StatusCancelled, message)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request was already actioned", utils.ErrConflict)
	}

	req.Status = models.StatusCancelled
	req.ResponseMessage = message
	return req, nil
}

// CancelRequest cancels a request on behalf of either referenced party. A
// confirmed request can only be cancelled before its requested date.
func (s *BookingService) CancelRequest(actorID, id string, now time.Time) (*models.AppointmentRequest, error) {
	req, err := s.repo.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != actorID && req.LawyerID != actorID {
		return nil, fmt.Errorf("%w: you are not a party to this request", utils.ErrAuthorization)
	}
	if err := models.CheckTransition(req.Status, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTransition, err)
	}
	if req.Status == models.StatusConfirmed {
		at, err := req.RequestedAt()
		if err == nil && !now.Before(at) {
			return nil, fmt.Errorf("%w: a confirmed booking can only be cancelled before its date", utils.ErrInvalidTransition)
		}
	}

	ok, err := s.repo.TransitionRequest(id, req.Status, models.StatusCancelled, req.ResponseMessage)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request status changed", utils.ErrConflict)
	}

	req.Status = models.StatusCancelled
	return req, nil
}

// CompleteAppointment marks a confirmed appointment done. Lawyer only.
func (s *BookingService) CompleteAppointment(lawyerID, id string) (*models.Appointment, error) {
	appt, err := s.repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt.LawyerID != lawyerID {
		return nil, fmt.Errorf("%w: only the appointed lawyer may complete this booking", utils.ErrAuthorization)
	}
	if err := models.CheckTransition(appt.Status, models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTransition, err)
	}

	ok, err := s.repo.TransitionAppointment(id, []models.AppointmentStatus{models.StatusConfirmed}, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: appointment status changed", utils.ErrConflict)
	}

	appt.Status = models.StatusCompleted
	return appt, nil
}

// CancelAppointment cancels a pending or confirmed appointment for either
// party, before the appointment date.
func (s *BookingService) CancelAppointment(actorID, id string, now time.Time) (*models.Appointment, error) {
	appt, err := s.repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt.ClientID != actorID && appt.LawyerID != actorID {
		return nil, fmt.Errorf("%w: you are not a party to this appointment", utils.ErrAuthorization)
	}
	if err := models.CheckTransition(appt.Status, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTransition, err)
	}
	if appt.Status == models.StatusConfirmed {
		at, err := appt.ScheduledAt()
		if err == nil && !now.Before(at) {
			return nil, fmt.Errorf("%w: a confirmed booking can only be cancelled before its date", utils.ErrInvalidTransition)
		}
	}

	ok, err := s.repo.TransitionAppointment(id,
		[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: appointment status changed", utils.ErrConflict)
	}

	appt.Status = models.StatusCancelled
	return appt, nil
}

// UpdateNotes stores lawyer notes on a non-terminal appointment.
func (s *BookingService) UpdateNotes(lawyerID, id, notes string) (*models.Appointment, error) {
	appt, err := s.repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt.LawyerID != lawyerID {
		return nil, fmt.Errorf("%w: only the appointed lawyer may edit notes", utils.ErrAuthorization)
	}
	if appt.Status.Terminal() {
		return nil, fmt.Errorf("%w: appointment is already %s", utils.ErrInvalidTransition, appt.Status)
	}

	ok, err := s.repo.SaveAppointmentNotes(id, notes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: appointment status changed", utils.ErrConflict)
	}
	appt.Notes = notes
	return appt, nil
}

// BookDirect creates a confirmed appointment on behalf of the lawyer,
// skipping the request step.
func (s *BookingService) BookDirect(lawyerID string, appt *models.Appointment) error {
	if strings.TrimSpace(appt.Description) == "" {
		return fmt.Errorf("%w: description is required", utils.ErrValidation)
	}
	if !appt.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", utils.ErrValidation, appt.AppointmentType)
	}
	if _, err := time.Parse("2006-01-02", appt.AppointmentDate); err != nil {
		return fmt.Errorf("%w: invalid appointment date %q", utils.ErrValidation, appt.AppointmentDate)
	}
	if _, err := time.Parse("15:04", appt.AppointmentTime); err != nil {
		return fmt.Errorf("%w: invalid appointment time %q", utils.ErrValidation, appt.AppointmentTime)
	}

	ok, err := s.repo.ProfileExists(appt.ClientID, models.UserTypeClient)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: client %s", utils.ErrReference, appt.ClientID)
	}

	appt.LawyerID = lawyerID
	appt.Status = models.StatusConfirmed
	return s.repo.CreateAppointment(appt)
}

// ExpireStaleRequests cancels pending requests whose requested date is in
// the past. Returns how many were swept.
func (s *BookingService) ExpireStaleRequests(now time.Time) (int, error) {
	stale, err := s.repo.ListStalePendingRequests(now.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, req := range stale {
		ok, err := s.repo.TransitionRequest(req.ID, models.StatusPending, models.StatusCancelled, "Request expired")
		if err != nil {
			return expired, err
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}
