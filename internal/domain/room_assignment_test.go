package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomAssignment_Approve(t *testing.T) {
	approved, err := PendingRoom(7).Approve()
	require.NoError(t, err)

	id, ok := approved.RoomID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.True(t, approved.IsApproved())
}

func TestRoomAssignment_Reject(t *testing.T) {
	rejected, err := PendingRoom(7).Reject()
	require.NoError(t, err)

	_, ok := rejected.RoomID()
	assert.False(t, ok)
	status, ok := rejected.Status()
	assert.True(t, ok)
	assert.Equal(t, RoomStatusRejected, status)
}

func TestRoomAssignment_Change(t *testing.T) {
	changed, err := PendingRoom(7).Change(9)
	require.NoError(t, err)

	id, _ := changed.RoomID()
	assert.Equal(t, int64(9), id)
	assert.True(t, changed.IsApproved())
}

func TestRoomAssignment_ChangeInvalidRoom(t *testing.T) {
	for _, newRoomID := range []int64{0, -1, 7} {
		_, err := PendingRoom(7).Change(newRoomID)
		assert.ErrorIs(t, err, ErrInvalidNewRoom, "room %d", newRoomID)
	}
}

func TestRoomAssignment_TransitionsRequirePending(t *testing.T) {
	states := []RoomAssignment{Unassigned(), ApprovedRoom(3), RejectedRoom()}

	for _, state := range states {
		for _, action := range []RoomAction{RoomActionApprove, RoomActionReject, RoomActionChange} {
			next, err := state.Apply(action, 11)
			assert.ErrorIs(t, err, ErrRoomRequestNotPending)
			assert.Equal(t, state, next)
		}
	}
}

func TestRestoreRoomAssignment(t *testing.T) {
	roomID := int64(4)
	pending := RoomStatusPending
	approved := RoomStatusApproved
	rejected := RoomStatusRejected
	unknown := RoomStatus("changed")

	tests := []struct {
		name    string
		roomID  *int64
		status  *RoomStatus
		want    RoomAssignment
		wantErr bool
	}{
		{name: "unassigned", want: Unassigned()},
		{name: "pending", roomID: &roomID, status: &pending, want: PendingRoom(4)},
		{name: "approved", roomID: &roomID, status: &approved, want: ApprovedRoom(4)},
		{name: "rejected", status: &rejected, want: RejectedRoom()},
		{name: "room without status", roomID: &roomID, wantErr: true},
		{name: "pending without room", status: &pending, wantErr: true},
		{name: "unknown status", roomID: &roomID, status: &unknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RestoreRoomAssignment(tt.roomID, tt.status)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoomAssignment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomAssignment_ColumnsRoundTrip(t *testing.T) {
	for _, a := range []RoomAssignment{Unassigned(), PendingRoom(1), ApprovedRoom(2), RejectedRoom()} {
		got, err := RestoreRoomAssignment(a.Columns())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}
