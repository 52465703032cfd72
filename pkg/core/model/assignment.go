// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"sort"
	"time"
)

// Assignment is a time-bounded link between one sensor and one box,
// also known as a Sensor_Box record. A nil End indicates an open
// assignment which is currently in effect.
type Assignment struct {
	ID       int64      `json:"id"`
	BoxID    int64      `json:"boxId"`
	SensorID string     `json:"sensorId"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
}

// Open reports whether the assignment is still in effect.
func (a *Assignment) Open() bool {
	return a.End == nil
}

// Resolution is the result of resolving the active assignment among
// a set of assignment records of one box (or one sensor).
type Resolution struct {
	// Active is the open assignment with the latest start or nil if
	// there is no open assignment.
	Active *Assignment

	// OpenCount is the number of open assignments which were seen.
	// Values greater than one indicate a data-integrity fault.
	OpenCount int
}

// Faulty reports whether more than one open assignment was seen.
func (r Resolution) Faulty() bool {
	return r.OpenCount > 1
}

// ResolveActive picks the open assignment with the latest start among
// the given records. Closed records are ignored. Equal start times are
// tie-broken by the larger ID (the later insertion). The given slice
// is not modified.
func ResolveActive(as []Assignment) Resolution {
	var r Resolution
	for i := range as {
		a := &as[i]
		if !a.Open() {
			continue
		}
		r.OpenCount++
		if r.Active == nil || a.Start.After(r.Active.Start) ||
			(a.Start.Equal(r.Active.Start) && a.ID > r.Active.ID) {
			r.Active = a
		}
	}
	if r.Active != nil {
		cp := *r.Active
		r.Active = &cp
	}
	return r
}

// SortNewestFirst sorts assignments by their start time in descending
// order, so an assignment history can be displayed.
func SortNewestFirst(as []Assignment) {
	sort.SliceStable(as, func(i, j int) bool {
		if as[i].Start.Equal(as[j].Start) {
			return as[i].ID > as[j].ID
		}
		return as[i].Start.After(as[j].Start)
	})
}

// BoxSensorView describes the sensor history of one box and its
// currently active sensor (if any).
type BoxSensorView struct {
	BoxID        int64        `json:"boxId"`
	ActiveSensor *string      `json:"activeSensor"`
	History      []Assignment `json:"history"`
}
