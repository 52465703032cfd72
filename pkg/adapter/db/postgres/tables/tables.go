// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tables contains the gorm row structs of the database schema.
// They are shared by the repository packages and the migration package
// which creates them. Enums are stored by their names, so the tables
// remain readable with plain SQL clients, and timestamps are stored
// in UTC.
package tables

import (
	"fmt"
	"time"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// All lists one instance of each row struct in their creation order.
func All() []any {
	return []any{
		&Admin{}, &Box{}, &Sensor{}, &SensorBox{}, &Truck{}, &Driver{},
		&CargoType{}, &Route{}, &Trip{}, &Tracking{}, &SensorReading{},
		&AlertDefinition{}, &AlertEvent{},
	}
}

type Admin struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (a *Admin) Model() *model.Admin {
	return &model.Admin{ID: a.ID, Name: a.Name}
}

type Box struct {
	ID        int64 `gorm:"primaryKey"`
	Length    float64
	Width     float64
	Height    float64
	MaxWeight float64
	Status    string `gorm:"not null;index"`
	AdminID   int64
}

func (b *Box) Model() (*model.Box, error) {
	s, err := model.ParseAssetStatus(b.Status)
	if err != nil {
		return nil, fmt.Errorf("box %d status %q: %w", b.ID, b.Status, err)
	}
	return &model.Box{
		ID:        b.ID,
		Length:    b.Length,
		Width:     b.Width,
		Height:    b.Height,
		MaxWeight: b.MaxWeight,
		Status:    s,
		AdminID:   b.AdminID,
	}, nil
}

func NewBox(b *model.Box) *Box {
	return &Box{
		ID:        b.ID,
		Length:    b.Length,
		Width:     b.Width,
		Height:    b.Height,
		MaxWeight: b.MaxWeight,
		Status:    b.Status.String(),
		AdminID:   b.AdminID,
	}
}

type Sensor struct {
	ID     string `gorm:"primaryKey"`
	Type   string `gorm:"not null"`
	Status string `gorm:"not null;index"`
}

func (s *Sensor) Model() (*model.Sensor, error) {
	t, err := model.ParseSensorType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("sensor %q type %q: %w", s.ID, s.Type, err)
	}
	st, err := model.ParseSensorStatus(s.Status)
	if err != nil {
		return nil, fmt.Errorf(
			"sensor %q status %q: %w", s.ID, s.Status, err,
		)
	}
	return &model.Sensor{ID: s.ID, Type: t, Status: st}, nil
}

func NewSensor(s *model.Sensor) *Sensor {
	return &Sensor{
		ID:     s.ID,
		Type:   s.Type.String(),
		Status: s.Status.String(),
	}
}

// SensorBox is an assignment interval. The partial unique indexes
// which keep at most one open row per box and per sensor are created
// by the migration package because gorm tags can not express them
// portably.
type SensorBox struct {
	ID        int64     `gorm:"primaryKey"`
	BoxID     int64     `gorm:"not null;index"`
	SensorID  string    `gorm:"not null;index"`
	StartedAt time.Time `gorm:"not null"`
	EndedAt   *time.Time
}

func (SensorBox) TableName() string {
	return "sensor_box"
}

func (sb *SensorBox) Model() *model.Assignment {
	return &model.Assignment{
		ID:       sb.ID,
		BoxID:    sb.BoxID,
		SensorID: sb.SensorID,
		Start:    sb.StartedAt.UTC(),
		End:      utcPtr(sb.EndedAt),
	}
}

type Truck struct {
	ID     int64 `gorm:"primaryKey"`
	Plate  string
	Status string `gorm:"not null;index"`
}

func (t *Truck) Model() (*model.Truck, error) {
	s, err := model.ParseAssetStatus(t.Status)
	if err != nil {
		return nil, fmt.Errorf(
			"truck %d status %q: %w", t.ID, t.Status, err,
		)
	}
	return &model.Truck{ID: t.ID, Plate: t.Plate, Status: s}, nil
}

type Driver struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (d *Driver) Model() *model.Driver {
	return &model.Driver{ID: d.ID, Name: d.Name}
}

type CargoType struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func (c *CargoType) Model() *model.CargoType {
	return &model.CargoType{ID: c.ID, Name: c.Name}
}

// Route keeps the historical "rute" table name.
type Route struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	AdminID     int64
	Origin      model.Coordinate `gorm:"embedded;embeddedPrefix:origin_"`
	Destination model.Coordinate `gorm:"embedded;embeddedPrefix:destination_"`
	MinTemp     float64
	MaxTemp     float64
	MinHum      float64
	MaxHum      float64
}

func (Route) TableName() string {
	return "rute"
}

func (r *Route) Model() *model.Route {
	return &model.Route{
		ID:          r.ID,
		Name:        r.Name,
		AdminID:     r.AdminID,
		Origin:      r.Origin,
		Destination: r.Destination,
		EnvBounds: model.EnvBounds{
			MinTemp: r.MinTemp,
			MaxTemp: r.MaxTemp,
			MinHum:  r.MinHum,
			MaxHum:  r.MaxHum,
		},
	}
}

func NewRoute(r *model.Route) *Route {
	return &Route{
		ID:          r.ID,
		Name:        r.Name,
		AdminID:     r.AdminID,
		Origin:      r.Origin,
		Destination: r.Destination,
		MinTemp:     r.MinTemp,
		MaxTemp:     r.MaxTemp,
		MinHum:      r.MinHum,
		MaxHum:      r.MaxHum,
	}
}

type Trip struct {
	ID                int64     `gorm:"primaryKey"`
	Departure         time.Time `gorm:"not null"`
	Arrival           time.Time `gorm:"not null"`
	ActualDeparture   *time.Time
	ActualArrival     *time.Time
	EstimatedDistance float64
	Status            string `gorm:"not null;index"`
	DriverID          int64  `gorm:"not null"`
	AdminID           int64  `gorm:"not null"`
	BoxID             int64  `gorm:"not null;index"`
	RouteID           int64  `gorm:"not null"`
	TruckID           int64  `gorm:"not null;index"`
	CargoTypeID       int64  `gorm:"not null"`
}

func (t *Trip) Model() (*model.Trip, error) {
	s, err := model.ParseTripStatus(t.Status)
	if err != nil {
		return nil, fmt.Errorf("trip %d status %q: %w", t.ID, t.Status, err)
	}
	return &model.Trip{
		ID: t.ID,
		Schedule: model.Schedule{
			Departure: t.Departure.UTC(),
			Arrival:   t.Arrival.UTC(),
		},
		ActualDeparture:   utcPtr(t.ActualDeparture),
		ActualArrival:     utcPtr(t.ActualArrival),
		EstimatedDistance: t.EstimatedDistance,
		Status:            s,
		DriverID:          t.DriverID,
		AdminID:           t.AdminID,
		BoxID:             t.BoxID,
		RouteID:           t.RouteID,
		TruckID:           t.TruckID,
		CargoTypeID:       t.CargoTypeID,
	}, nil
}

// Tracking is a GPS fix of a trip.
type Tracking struct {
	ID         int64            `gorm:"primaryKey"`
	TripID     int64            `gorm:"not null;index"`
	Point      model.Coordinate `gorm:"embedded"`
	RecordedAt time.Time        `gorm:"not null"`
}

func (Tracking) TableName() string {
	return "tracking"
}

func (t *Tracking) Model() *model.Tracking {
	return &model.Tracking{
		ID:     t.ID,
		TripID: t.TripID,
		Point:  t.Point,
		At:     t.RecordedAt.UTC(),
	}
}

type SensorReading struct {
	ID          int64 `gorm:"primaryKey"`
	Temperature *float64
	Humidity    *float64
	RecordedAt  time.Time `gorm:"not null"`
	SensorID    string    `gorm:"not null"`
	TripID      *int64    `gorm:"index"`
}

func (r *SensorReading) Model() *model.Reading {
	return &model.Reading{
		ID:          r.ID,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		At:          r.RecordedAt.UTC(),
		SensorID:    r.SensorID,
		TripID:      r.TripID,
	}
}

type AlertDefinition struct {
	ID          int64  `gorm:"primaryKey"`
	Type        string `gorm:"not null"`
	Description string
}

func (d *AlertDefinition) Model() *model.AlertDefinition {
	return &model.AlertDefinition{
		ID:          d.ID,
		Type:        d.Type,
		Description: d.Description,
	}
}

type AlertEvent struct {
	ID           int64     `gorm:"primaryKey"`
	DefinitionID int64     `gorm:"not null"`
	TripID       int64     `gorm:"not null;index"`
	RaisedAt     time.Time `gorm:"not null"`
	Temperature  *float64
	Humidity     *float64
}

func (e *AlertEvent) Model() *model.AlertEvent {
	return &model.AlertEvent{
		ID:           e.ID,
		DefinitionID: e.DefinitionID,
		TripID:       e.TripID,
		At:           e.RaisedAt.UTC(),
		Temperature:  e.Temperature,
		Humidity:     e.Humidity,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
