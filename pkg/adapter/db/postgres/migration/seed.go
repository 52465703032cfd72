// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlertDefinitions is the static alert catalog.
var AlertDefinitions = []tables.AlertDefinition{
	{Type: "High Temperature", Description: "Temperature exceeded the maximum bound of the route."},
	{Type: "Low Temperature", Description: "Temperature fell below the minimum bound of the route."},
	{Type: "High Humidity", Description: "Humidity exceeded the maximum bound of the route."},
	{Type: "Low Humidity", Description: "Humidity fell below the minimum bound of the route."},
	{Type: "Cancellation", Description: "The trip was canceled."},
	{Type: "Route Started", Description: "The truck departed from the origin."},
	{Type: "Route Ended", Description: "The truck arrived at the destination."},
}

// InsertReferenceData inserts the missing alert definitions. Existing
// definitions are matched by their type and kept unchanged.
func InsertReferenceData(ctx context.Context, gdb *gorm.DB) error {
	gdb = gdb.WithContext(ctx)
	for _, d := range AlertDefinitions {
		row := tables.AlertDefinition{}
		err := gdb.Where(
			"type = ?", d.Type,
		).Attrs(tables.AlertDefinition{
			Type: d.Type, Description: d.Description,
		}).FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("alert definition %q: %w", d.Type, err)
		}
	}
	return nil
}

// InsertDevelopmentData inserts sample reference rows, boxes, sensors,
// and routes in addition to the reference data. Tables which already
// have rows are skipped, so generated ids never collide with the ids
// of rows which were created by users.
func InsertDevelopmentData(ctx context.Context, gdb *gorm.DB) error {
	if err := InsertReferenceData(ctx, gdb); err != nil {
		return err
	}
	gdb = gdb.WithContext(ctx)
	available := model.AssetAvailable.String()
	samples := []struct {
		name string
		rows any
	}{
		{"admins", &[]tables.Admin{{Name: "Dispatch"}, {Name: "Night shift"}}},
		{"boxes", &[]tables.Box{
			{Length: 6, Width: 2.4, Height: 2.6, MaxWeight: 26000, Status: available, AdminID: 1},
			{Length: 12, Width: 2.4, Height: 2.6, MaxWeight: 28000, Status: available, AdminID: 1},
			{Length: 6, Width: 2.4, Height: 2.6, MaxWeight: 26000, Status: model.AssetUnderMaintenance.String(), AdminID: 2},
		}},
		{"trucks", &[]tables.Truck{
			{Plate: "34-TR-101", Status: available},
			{Plate: "34-TR-102", Status: available},
		}},
		{"drivers", &[]tables.Driver{{Name: "Ada Brooks"}, {Name: "Sam Ortiz"}}},
		{"cargo types", &[]tables.CargoType{
			{Name: "Frozen fish"}, {Name: "Vaccines"}, {Name: "Fresh produce"},
		}},
		{"routes", &[]tables.Route{
			{
				Name: "Port to central depot", AdminID: 1,
				Origin:      model.Coordinate{Lat: 41.0082, Lon: 28.9784},
				Destination: model.Coordinate{Lat: 39.9334, Lon: 32.8597},
				MinTemp:     -25, MaxTemp: -18, MinHum: 10, MaxHum: 60,
			},
			{
				Name: "Pharma express", AdminID: 2,
				Origin:      model.Coordinate{Lat: 38.4237, Lon: 27.1428},
				Destination: model.Coordinate{Lat: 37.0000, Lon: 35.3213},
				MinTemp:     2, MaxTemp: 8, MinHum: 30, MaxHum: 65,
			},
		}},
	}
	for _, s := range samples {
		if err := insertIfEmpty(gdb, s.rows); err != nil {
			return fmt.Errorf("inserting sample %s: %w", s.name, err)
		}
	}
	sensors := []tables.Sensor{
		{ID: "TH-0001", Type: model.SensorTempAndHumidity.String(), Status: model.SensorActive.String()},
		{ID: "TH-0002", Type: model.SensorTempAndHumidity.String(), Status: model.SensorActive.String()},
		{ID: "T-0001", Type: model.SensorTemperature.String(), Status: model.SensorActive.String()},
		{ID: "H-0001", Type: model.SensorHumidity.String(), Status: model.SensorOutOfService.String()},
	}
	err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&sensors).Error
	if err != nil {
		return fmt.Errorf("inserting sample sensors: %w", err)
	}
	return nil
}

func insertIfEmpty(gdb *gorm.DB, rows any) error {
	var n int64
	if err := gdb.Model(rows).Count(&n).Error; err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}
	if n > 0 {
		return nil
	}
	return gdb.Create(rows).Error
}
