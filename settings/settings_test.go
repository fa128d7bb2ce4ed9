package settings

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()

	if s.SettingsID != singletonID {
		t.Fatalf("expected singleton id %q, got %q", singletonID, s.SettingsID)
	}
	if s.ParkInfo.Name == "" {
		t.Fatal("expected a default park name")
	}
	if s.OpeningHours.Weekdays == "" || s.OpeningHours.Weekends == "" {
		t.Fatal("expected default opening hours")
	}
}
