// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"
)

// TripStatus is the state of a trip. The valid transitions are
// Scheduled → InTransit → Completed with Scheduled → Canceled and
// InTransit → Canceled as side exits. Completed and Canceled trips
// are terminal.
type TripStatus int

// Valid values for the TripStatus enum.
const (
	TripStatusInvalid TripStatus = iota // zero value is invalid

	TripScheduled
	TripInTransit
	TripCompleted
	TripCanceled
)

var tripStatusNames = enumNames[TripStatus]{
	enum: "trip status",
	names: map[TripStatus]string{
		TripScheduled: "scheduled",
		TripInTransit: "in_transit",
		TripCompleted: "completed",
		TripCanceled:  "canceled",
	},
}

func (s TripStatus) Validate() error {
	return tripStatusNames.validate(s)
}

func (s TripStatus) String() string {
	return tripStatusNames.name(s)
}

func (s TripStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *TripStatus) UnmarshalText(text []byte) error {
	return tripStatusNames.unmarshal(s, text)
}

func ParseTripStatus(s string) (TripStatus, error) {
	return tripStatusNames.parse(s)
}

// Terminal reports whether no further mutation is permitted.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCanceled
}

// Started reports whether the trip progressed past Scheduled, so its
// readings and alerts are meaningful. A trip which was canceled before
// departure counts as started too because its cancellation alert is
// relevant.
func (s TripStatus) Started() bool {
	return s != TripScheduled && s != TripStatusInvalid
}

// CanTransitionTo reports whether the state machine has an edge from
// s to the to status. Staying in the same status is not a transition.
func (s TripStatus) CanTransitionTo(to TripStatus) bool {
	switch s {
	case TripScheduled:
		return to == TripInTransit || to == TripCanceled
	case TripInTransit:
		return to == TripCompleted || to == TripCanceled
	default:
		return false
	}
}

// TransitionError describes a rejected trip status transition.
type TransitionError struct {
	From, To TripStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf(
		"trip may not go from %s to %s", e.From.String(), e.To.String(),
	)
}

// CheckTransition returns a *TransitionError if s may not move to the
// to status.
func (s TripStatus) CheckTransition(to TripStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(to) {
		return &TransitionError{From: s, To: to}
	}
	return nil
}

// TripField is a bit set of the trip fields which admins may edit.
type TripField uint8

// Editable trip fields.
const (
	FieldDeparture TripField = 1 << iota
	FieldArrival
	FieldStatus
)

// Has reports whether all fields of other are included in f.
func (f TripField) Has(other TripField) bool {
	return f&other == other
}

// String lists the names of the fields, comma separated.
func (f TripField) String() string {
	s := ""
	for _, n := range []struct {
		f    TripField
		name string
	}{
		{FieldDeparture, "departure"},
		{FieldArrival, "arrival"},
		{FieldStatus, "status"},
	} {
		if !f.Has(n.f) {
			continue
		}
		if s != "" {
			s += ","
		}
		s += n.name
	}
	return s
}

// EditableFields returns the trip fields which may be changed while
// the trip is in the s status. The schedule window may only change
// before departure and terminal trips accept no change at all.
func EditableFields(s TripStatus) TripField {
	switch s {
	case TripScheduled:
		return FieldDeparture | FieldArrival | FieldStatus
	case TripInTransit:
		return FieldStatus
	default:
		return 0
	}
}

// Errors which are reported for invalid schedule windows.
var (
	ErrArrivalNotAfterDeparture = errors.New(
		"arrival must be after departure",
	)
	ErrDepartureInPast = errors.New("departure is in the past")

	// ErrNotStarted is reported when the readings or alerts of a trip
	// are asked before its departure.
	ErrNotStarted = errors.New("trip has not started yet")
)

// Schedule is the planned departure/arrival window of a trip.
type Schedule struct {
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
}

// Validate checks that arrival follows departure and that departure
// is not before now.
func (s Schedule) Validate(now time.Time) error {
	if !s.Arrival.After(s.Departure) {
		return ErrArrivalNotAfterDeparture
	}
	if s.Departure.Before(now) {
		return ErrDepartureInPast
	}
	return nil
}

// Trip is a scheduled movement of a box via a truck and a driver
// along a route.
type Trip struct {
	ID int64 `json:"id"`
	Schedule

	ActualDeparture   *time.Time `json:"actualDeparture"`
	ActualArrival     *time.Time `json:"actualArrival"`
	EstimatedDistance float64    `json:"estimatedDistance"`
	Status            TripStatus `json:"status"`

	DriverID    int64 `json:"driverId"`
	AdminID     int64 `json:"adminId"`
	BoxID       int64 `json:"boxId"`
	RouteID     int64 `json:"routeId"`
	TruckID     int64 `json:"truckId"`
	CargoTypeID int64 `json:"cargoTypeId"`
}

// TripDraft contains the admin provided fields of a new trip.
type TripDraft struct {
	Schedule
	EstimatedDistance float64

	DriverID    int64
	AdminID     int64
	BoxID       int64
	RouteID     int64
	TruckID     int64
	CargoTypeID int64
}

// Validate checks the draft fields which do not need the store.
func (d *TripDraft) Validate(now time.Time) error {
	if d.EstimatedDistance < 0 {
		return errors.New("estimated distance is negative")
	}
	return d.Schedule.Validate(now)
}

// TripPatch contains the optional fields of a trip update request.
// Nil fields are left unchanged.
type TripPatch struct {
	Departure *time.Time
	Arrival   *time.Time
	Status    *TripStatus
}

// Fields returns the set of fields which the patch touches.
func (p *TripPatch) Fields() TripField {
	var f TripField
	if p.Departure != nil {
		f |= FieldDeparture
	}
	if p.Arrival != nil {
		f |= FieldArrival
	}
	if p.Status != nil {
		f |= FieldStatus
	}
	return f
}

// Tracking is a GPS fix of a trip, as reported by the driver device.
type Tracking struct {
	ID     int64      `json:"id"`
	TripID int64      `json:"tripId"`
	Point  Coordinate `json:"point"`
	At     time.Time  `json:"at"`
}

// CheckStarted returns ErrNotStarted if the trip is still scheduled.
func (t *Trip) CheckStarted() error {
	if !t.Status.Started() {
		return fmt.Errorf("trip %d: %w", t.ID, ErrNotStarted)
	}
	return nil
}
