package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomRequestNotPending is returned when a decision is applied to a non-pending request
	ErrRoomRequestNotPending = errors.New("domain: room request is not pending")

	// ErrInvalidNewRoom is returned when a change targets a missing or the same room
	ErrInvalidNewRoom = errors.New("domain: invalid new room")

	// ErrInvalidRoomAssignment is returned when stored room columns are inconsistent
	ErrInvalidRoomAssignment = errors.New("domain: invalid room assignment")
)

// RoomStatus is the stored status of a room request
type RoomStatus string

const (
	RoomStatusPending  RoomStatus = "pending"
	RoomStatusApproved RoomStatus = "approved"
	RoomStatusRejected RoomStatus = "rejected"
)

// IsValid returns true if the room status is known
func (s RoomStatus) IsValid() bool {
	return s == RoomStatusPending || s == RoomStatusApproved || s == RoomStatusRejected
}

// RoomAction is a decision taken by clinic staff on a pending room request.
// "change" is an action only, after it the stored status is approved.
type RoomAction string

const (
	RoomActionApprove RoomAction = "approve"
	RoomActionReject  RoomAction = "reject"
	RoomActionChange  RoomAction = "change"
)

// IsValid returns true if the action is known
func (a RoomAction) IsValid() bool {
	return a == RoomActionApprove || a == RoomActionReject || a == RoomActionChange
}

// RoomAssignment is the room state of an appointment:
// Unassigned | Pending(roomID) | Approved(roomID) | Rejected.
// The zero value is Unassigned. Values are built only by the constructors and transitions below.
type RoomAssignment struct {
	roomID int64
	status RoomStatus
}

// Unassigned returns an assignment without room
func Unassigned() RoomAssignment {
	return RoomAssignment{}
}

// PendingRoom returns a room request waiting for a clinic decision
func PendingRoom(roomID int64) RoomAssignment {
	return RoomAssignment{roomID: roomID, status: RoomStatusPending}
}

// ApprovedRoom returns a confirmed room
func ApprovedRoom(roomID int64) RoomAssignment {
	return RoomAssignment{roomID: roomID, status: RoomStatusApproved}
}

// RejectedRoom returns a rejected request, the room is cleared
func RejectedRoom() RoomAssignment {
	return RoomAssignment{status: RoomStatusRejected}
}

// RestoreRoomAssignment rebuilds an assignment from the nullable storage columns
func RestoreRoomAssignment(roomID *int64, status *RoomStatus) (RoomAssignment, error) {
	switch {
	case roomID == nil && status == nil:
		return Unassigned(), nil
	case status == nil:
		return RoomAssignment{}, fmt.Errorf("%w: room %d without status", ErrInvalidRoomAssignment, *roomID)
	case *status == RoomStatusRejected:
		return RejectedRoom(), nil
	case roomID == nil:
		return RoomAssignment{}, fmt.Errorf("%w: status %s without room", ErrInvalidRoomAssignment, *status)
	case *status == RoomStatusPending:
		return PendingRoom(*roomID), nil
	case *status == RoomStatusApproved:
		return ApprovedRoom(*roomID), nil
	}
	return RoomAssignment{}, fmt.Errorf("%w: unknown status %s", ErrInvalidRoomAssignment, *status)
}

// RoomID returns the assigned room, if any
func (r RoomAssignment) RoomID() (int64, bool) {
	return r.roomID, r.roomID > 0
}

// Status returns the room status, if the assignment has one
func (r RoomAssignment) Status() (RoomStatus, bool) {
	return r.status, r.status != ""
}

// IsUnassigned returns true if no room was ever requested
func (r RoomAssignment) IsUnassigned() bool {
	return r.status == ""
}

// IsPending returns true if the request is waiting for a decision
func (r RoomAssignment) IsPending() bool {
	return r.status == RoomStatusPending
}

// IsApproved returns true if the room is confirmed
func (r RoomAssignment) IsApproved() bool {
	return r.status == RoomStatusApproved
}

// Approve confirms the requested room as is
func (r RoomAssignment) Approve() (RoomAssignment, error) {
	if !r.IsPending() {
		return r, ErrRoomRequestNotPending
	}
	return ApprovedRoom(r.roomID), nil
}

// Reject clears the room and marks the request rejected
func (r RoomAssignment) Reject() (RoomAssignment, error) {
	if !r.IsPending() {
		return r, ErrRoomRequestNotPending
	}
	return RejectedRoom(), nil
}

// Change replaces the requested room and approves the new one directly
func (r RoomAssignment) Change(newRoomID int64) (RoomAssignment, error) {
	if !r.IsPending() {
		return r, ErrRoomRequestNotPending
	}
	if newRoomID <= 0 || newRoomID == r.roomID {
		return r, fmt.Errorf("%w: room %d", ErrInvalidNewRoom, newRoomID)
	}
	return ApprovedRoom(newRoomID), nil
}

// Apply runs the transition that corresponds to the action
func (r RoomAssignment) Apply(action RoomAction, newRoomID int64) (RoomAssignment, error) {
	switch action {
	case RoomActionApprove:
		return r.Approve()
	case RoomActionReject:
		return r.Reject()
	case RoomActionChange:
		return r.Change(newRoomID)
	}
	return r, fmt.Errorf("%w: unknown action %s", ErrInvalidRoomAssignment, action)
}

// Columns returns the nullable storage representation
func (r RoomAssignment) Columns() (*int64, *RoomStatus) {
	var roomID *int64
	var status *RoomStatus
	if id, ok := r.RoomID(); ok {
		roomID = &id
	}
	if s, ok := r.Status(); ok {
		status = &s
	}
	return roomID, status
}
