package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
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

type fakeRooms struct {
	items  map[int64]*domain.Room
	nextID int64
}

func (f *fakeRooms) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	f.nextID++
	created := *room
	created.ID = f.nextID
	f.items[created.ID] = &created
	return &created, nil
}

func (f *fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRooms) ListByClinic(_ context.Context, clinicID int64, includeInactive bool) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range f.items {
		if r.ClinicID == clinicID && (includeInactive || r.IsActive) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) Update(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if _, ok := f.items[room.ID]; !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	updated := *room
	f.items[room.ID] = &updated
	return &updated, nil
}

func (f *fakeRooms) Deactivate(_ context.Context, id int64) error {
	r, ok := f.items[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	r.IsActive = false
	return nil
}

func (f *fakeRooms) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeAppointments struct {
	referenced map[int64]bool
}

func (f *fakeAppointments) HasRoomReferences(_ context.Context, roomID int64) (bool, error) {
	return f.referenced[roomID], nil
}

type fakeDirectory struct {
	patients map[int64]*directoryservice.Patient
	err      error
}

func (f *fakeDirectory) GetClinic(_ context.Context, id int64) (*directoryservice.Clinic, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id != clinicID {
		return nil, directoryservice.ErrClinicNotFound
	}
	return &directoryservice.Clinic{ID: id, StaffIDs: []int64{staffID}}, nil
}

func (f *fakeDirectory) GetPatient(_ context.Context, id int64) (*directoryservice.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.patients[id]
	if !ok {
		return nil, directoryservice.ErrPatientNotFound
	}
	return p, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc          *Service
	rooms        *fakeRooms
	appointments *fakeAppointments
	directory    *fakeDirectory
}

func newFixture() *fixture {
	rooms := &fakeRooms{nextID: 10, items: map[int64]*domain.Room{
		1: {ID: 1, ClinicID: clinicID, Name: "Azul", Capacity: 2, IsActive: true,
			SubleasePrice: decimal.NewNullDecimal(decimal.NewFromInt(80))},
		2: {ID: 2, ClinicID: clinicID, Name: "Verde", Capacity: 4, IsActive: true},
		3: {ID: 3, ClinicID: clinicID, Name: "Velha", Capacity: 1, IsActive: false},
	}}
	appointments := &fakeAppointments{referenced: map[int64]bool{1: true}}
	directory := &fakeDirectory{patients: map[int64]*directoryservice.Patient{
		7: {ID: 7, ClinicID: ptr.Ptr(clinicID)},
		8: {ID: 8, ClinicID: ptr.Ptr(int64(99))},
		9: {ID: 9},
	}}

	svc := NewService(rooms, appointments, directory, fakeTx{}, logger.Nop())
	return &fixture{svc: svc, rooms: rooms, appointments: appointments, directory: directory}
}

func validInput() *models.RoomInput {
	return &models.RoomInput{
		Name:          "  Sala Norte ",
		Capacity:      3,
		Amenities:     []string{"wifi", "couch", "wifi"},
		SubleasePrice: ptr.Ptr(decimal.RequireFromString("45.50")),
	}
}

func TestListByClinic(t *testing.T) {
	f := newFixture()

	active, err := f.svc.ListByClinic(context.Background(), clinicID, false)
	require.NoError(t, err)
	assert.Len(t, active.Rooms, 2)

	all, err := f.svc.ListByClinic(context.Background(), clinicID, true)
	require.NoError(t, err)
	assert.Len(t, all.Rooms, 3)

	_, err = f.svc.ListByClinic(context.Background(), 0, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate(t *testing.T) {
	t.Run("staff creates room", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.Create(context.Background(), staffID, clinicID, validInput())
		require.NoError(t, err)

		assert.Equal(t, "Sala Norte", resp.Name)
		assert.True(t, resp.IsActive)
		assert.Equal(t, []string{"wifi", "couch"}, resp.Amenities)
		require.NotNil(t, resp.SubleasePrice)
		assert.Equal(t, "45.50", resp.SubleasePrice.String())
		assert.Equal(t, "45,50", resp.SubleasePriceDisplay)
		assert.Contains(t, f.rooms.items, resp.ID)
	})

	t.Run("outsider is denied", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Create(context.Background(), outsiderID, clinicID, validInput())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Len(t, f.rooms.items, 3)
	})

	t.Run("unknown clinic", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Create(context.Background(), staffID, 42, validInput())
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})

	t.Run("directory failure", func(t *testing.T) {
		f := newFixture()
		f.directory.err = errors.New("timeout")

		_, err := f.svc.Create(context.Background(), staffID, clinicID, validInput())
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	})
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.RoomInput)
	}{
		{"empty name", func(in *models.RoomInput) { in.Name = "   " }},
		{"long name", func(in *models.RoomInput) { in.Name = string(make([]rune, domain.MaxRoomNameLength+1)) }},
		{"long number", func(in *models.RoomInput) { in.Number = ptr.Ptr("123456789012345678901") }},
		{"zero capacity", func(in *models.RoomInput) { in.Capacity = 0 }},
		{"capacity over limit", func(in *models.RoomInput) { in.Capacity = domain.MaxRoomCapacity + 1 }},
		{"unknown amenity", func(in *models.RoomInput) { in.Amenities = []string{"sauna"} }},
		{"negative price", func(in *models.RoomInput) { in.SubleasePrice = ptr.Ptr(decimal.NewFromInt(-1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			in := validInput()
			tt.mutate(in)

			_, err := f.svc.Create(context.Background(), staffID, clinicID, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Len(t, f.rooms.items, 3)
		})
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture()
	in := validInput()
	in.SubleasePrice = nil
	in.IsActive = ptr.Ptr(false)

	resp, err := f.svc.Update(context.Background(), staffID, 1, in)
	require.NoError(t, err)

	assert.Equal(t, "Sala Norte", resp.Name)
	assert.False(t, resp.IsActive)
	assert.Nil(t, resp.SubleasePrice)
	assert.False(t, f.rooms.items[1].HasSubleaseFee())

	_, err = f.svc.Update(context.Background(), outsiderID, 2, validInput())
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Update(context.Background(), staffID, 404, validInput())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDelete(t *testing.T) {
	t.Run("referenced room is deactivated", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.Delete(context.Background(), staffID, 1)
		require.NoError(t, err)

		assert.True(t, resp.Deactivated)
		assert.False(t, resp.Deleted)
		require.Contains(t, f.rooms.items, int64(1))
		assert.False(t, f.rooms.items[1].IsActive)
	})

	t.Run("unreferenced room is removed", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.Delete(context.Background(), staffID, 2)
		require.NoError(t, err)

		assert.True(t, resp.Deleted)
		assert.NotContains(t, f.rooms.items, int64(2))
	})

	t.Run("outsider is denied", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Delete(context.Background(), outsiderID, 2)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Contains(t, f.rooms.items, int64(2))
	})
}

func TestCheckSubleaseApplicability(t *testing.T) {
	tests := []struct {
		name      string
		roomID    int64
		patientID int64
		clinicID  *int64
		applies   bool
	}{
		{"own clinic patient", 1, 7, nil, false},
		{"other clinic patient", 1, 8, nil, true},
		{"independent patient", 1, 9, nil, true},
		{"room without fee", 2, 8, nil, false},
		{"explicit clinic overrides room clinic", 1, 7, ptr.Ptr(int64(55)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.svc.CheckSubleaseApplicability(context.Background(), tt.roomID, tt.patientID, tt.clinicID)
			require.NoError(t, err)
			assert.Equal(t, tt.applies, resp.Applies)
			if tt.applies {
				require.NotNil(t, resp.Price)
				assert.Equal(t, "80.00", resp.Price.String())
			} else {
				assert.Nil(t, resp.Price)
			}
		})
	}

	f := newFixture()
	_, err := f.svc.CheckSubleaseApplicability(context.Background(), 1, 404, nil)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.svc.CheckSubleaseApplicability(context.Background(), 404, 7, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
