package decide_room_request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/ptr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	staffID    = int64(100)
	outsiderID = int64(200)
	clinicID   = int64(10)
)

type fakeAppointments struct {
	items map[int64]domain.Appointment
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (f *fakeAppointments) UpdateRoomAssignment(_ context.Context, id int64, assignment domain.RoomAssignment) error {
	a := f.items[id]
	if !a.Room.IsPending() {
		return appointmentRepo.ErrRoomRequestNotPending
	}
	a.Room = assignment
	f.items[id] = a
	return nil
}

type fakeRooms struct {
	items map[int64]*domain.Room
}

func (f *fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return r, nil
}

type fakeDirectory struct {
	err error
}

func (f *fakeDirectory) GetClinic(_ context.Context, id int64) (*directoryservice.Clinic, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &directoryservice.Clinic{ID: id, StaffIDs: []int64{staffID}}, nil
}

type fakeApprovals struct {
	events []domain.RoomRequestApproved
	err    error
}

func (f *fakeApprovals) HandleRoomRequestApproved(_ context.Context, event domain.RoomRequestApproved) (*domain.Sublease, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.events = append(f.events, event)
	return &domain.Sublease{ID: 1, AppointmentID: event.AppointmentID, RoomID: event.RoomID}, nil
}

// fakeTx восстанавливает записи при ошибке, как откат транзакции
type fakeTx struct {
	appointments *fakeAppointments
}

func (tx *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[int64]domain.Appointment, len(tx.appointments.items))
	for k, v := range tx.appointments.items {
		snapshot[k] = v
	}
	if err := fn(ctx); err != nil {
		tx.appointments.items = snapshot
		return err
	}
	return nil
}

type fakeMetrics struct {
	counts map[string]int
}

func (m *fakeMetrics) IncRoomDecision(action, result string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[action+"/"+result]++
}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	approvals    *fakeApprovals
	directory    *fakeDirectory
	metrics      *fakeMetrics
}

func newFixture() *fixture {
	date := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	appointments := &fakeAppointments{items: map[int64]domain.Appointment{
		1: {ID: 1, PatientID: 7, PsychologistID: 3, Date: date, Type: domain.TypeInPerson, Room: domain.PendingRoom(5)},
		2: {ID: 2, PatientID: 7, PsychologistID: 3, Date: date, Type: domain.TypeInPerson, Room: domain.ApprovedRoom(5)},
		3: {ID: 3, PatientID: 7, PsychologistID: 3, Date: date, Type: domain.TypeInPerson, Room: domain.RejectedRoom(), ClinicID: ptr.Ptr(clinicID)},
		4: {ID: 4, PatientID: 7, PsychologistID: 3, Date: date, Type: domain.TypeOnline, ClinicID: ptr.Ptr(clinicID)},
		9: {ID: 9, PatientID: 7, PsychologistID: 3, Date: date, Type: domain.TypeOnline},
	}}
	rooms := &fakeRooms{items: map[int64]*domain.Room{
		5: {ID: 5, ClinicID: clinicID, IsActive: true, SubleasePrice: decimal.NewNullDecimal(decimal.NewFromInt(80))},
		6: {ID: 6, ClinicID: clinicID, IsActive: true},
		7: {ID: 7, ClinicID: clinicID, IsActive: false},
		8: {ID: 8, ClinicID: 99, IsActive: true},
	}}
	approvals := &fakeApprovals{}
	directory := &fakeDirectory{}
	metrics := &fakeMetrics{}

	uc := NewUseCase(appointments, rooms, directory, approvals, &fakeTx{appointments: appointments}, metrics, logger.Nop())
	return &fixture{uc: uc, appointments: appointments, approvals: approvals, directory: directory, metrics: metrics}
}

func TestExecute_Approve(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionApprove})
	require.NoError(t, err)

	assert.Equal(t, domain.ApprovedRoom(5), resp.Appointment.Room)
	assert.Equal(t, domain.ApprovedRoom(5), f.appointments.items[1].Room)
	require.Len(t, f.approvals.events, 1)
	assert.Equal(t, domain.RoomRequestApproved{
		AppointmentID:   1,
		RoomID:          5,
		RoomClinicID:    clinicID,
		PsychologistID:  3,
		PatientID:       7,
		AppointmentDate: f.appointments.items[1].Date,
	}, f.approvals.events[0])
	assert.NotNil(t, resp.Sublease)
	assert.Equal(t, 1, f.metrics.counts["approve/ok"])
}

func TestExecute_Reject(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionReject})
	require.NoError(t, err)

	assert.Equal(t, domain.RejectedRoom(), f.appointments.items[1].Room)
	_, hasRoom := resp.Appointment.Room.RoomID()
	assert.False(t, hasRoom)
	assert.Empty(t, f.approvals.events)
	assert.Nil(t, resp.Sublease)
}

func TestExecute_Change(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionChange, NewRoomID: ptr.Ptr(int64(6)),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ApprovedRoom(6), resp.Appointment.Room)
	assert.Equal(t, domain.ApprovedRoom(6), f.appointments.items[1].Room)
	require.Len(t, f.approvals.events, 1)
	assert.Equal(t, int64(6), f.approvals.events[0].RoomID)
}

func TestExecute_NotPendingIsNoOp(t *testing.T) {
	for _, id := range []int64{2, 3, 4} {
		for _, action := range []domain.RoomAction{domain.RoomActionApprove, domain.RoomActionReject, domain.RoomActionChange} {
			f := newFixture()
			before := f.appointments.items[id]

			_, err := f.uc.Execute(context.Background(), &Request{
				ActorID: staffID, AppointmentID: id, Action: action, NewRoomID: ptr.Ptr(int64(6)),
			})
			assert.ErrorIs(t, err, ErrRequestNotPending)
			assert.Equal(t, before, f.appointments.items[id])
			assert.Empty(t, f.approvals.events)
		}
	}
}

func TestExecute_Forbidden(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: outsiderID, AppointmentID: 1, Action: domain.RoomActionApprove})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.True(t, f.appointments.items[1].Room.IsPending())
	assert.Equal(t, 1, f.metrics.counts["approve/forbidden"])
}

func TestExecute_ForbiddenBeforeStatus(t *testing.T) {
	for _, id := range []int64{2, 3, 4} {
		f := newFixture()
		before := f.appointments.items[id]

		_, err := f.uc.Execute(context.Background(), &Request{ActorID: outsiderID, AppointmentID: id, Action: domain.RoomActionApprove})
		assert.ErrorIs(t, err, ErrForbidden, "appointment %d", id)
		assert.NotErrorIs(t, err, ErrRequestNotPending)
		assert.Equal(t, before, f.appointments.items[id])
	}

	f := newFixture()
	_, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 9, Action: domain.RoomActionApprove})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_InvalidNewRoom(t *testing.T) {
	for _, newRoomID := range []int64{5, 7, 8, 404} {
		f := newFixture()

		_, err := f.uc.Execute(context.Background(), &Request{
			ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionChange, NewRoomID: ptr.Ptr(newRoomID),
		})
		assert.ErrorIs(t, err, ErrInvalidNewRoom, "room %d", newRoomID)
		assert.True(t, f.appointments.items[1].Room.IsPending())
	}

	f := newFixture()
	_, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionChange})
	assert.ErrorIs(t, err, ErrInvalidNewRoom)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 42, Action: domain.RoomActionApprove})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ApprovalFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.approvals.err = errors.New("insert sublease failed")

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionApprove})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.PendingRoom(5), f.appointments.items[1].Room)
}

func TestExecute_DirectoryUnavailable(t *testing.T) {
	f := newFixture()
	f.directory.err = directoryservice.ErrInternal

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: domain.RoomActionReject})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.True(t, f.appointments.items[1].Room.IsPending())
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 0, AppointmentID: 1, Action: domain.RoomActionApprove})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{ActorID: staffID, AppointmentID: 1, Action: "changed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
