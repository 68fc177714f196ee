package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(newStubStore(), zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings != domain.DefaultSettings() {
		t.Fatalf("expected defaults on an empty store, got %+v", settings)
	}
	if settings.ParkingName != "AeroPark GOMA" || settings.TotalSpots != 50 || settings.RatePerHour != 1000 {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
}

func TestSettingsService_Update_RoundTrip(t *testing.T) {
	svc := NewSettingsService(newStubStore(), zerolog.Nop())
	ctx := context.Background()

	rate := 1500.0
	name := "AeroPark GOMA II"
	updated, err := svc.Update(ctx, domain.SettingsPatch{RatePerHour: &rate, ParkingName: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.RatePerHour != 1500 || updated.ParkingName != "AeroPark GOMA II" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.TotalSpots != 50 {
		t.Fatalf("untouched fields must keep their defaults, got %d", updated.TotalSpots)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != updated {
		t.Fatalf("Get after Update mismatch: %+v vs %+v", got, updated)
	}
}

func TestSettingsService_Reset(t *testing.T) {
	svc := NewSettingsService(newStubStore(), zerolog.Nop())
	ctx := context.Background()

	rate := 9999.0
	if _, err := svc.Update(ctx, domain.SettingsPatch{RatePerHour: &rate}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reset, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if reset != domain.DefaultSettings() {
		t.Fatalf("expected defaults after reset, got %+v", reset)
	}
	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Fatalf("expected stored record reset too, got %+v", got)
	}
}
