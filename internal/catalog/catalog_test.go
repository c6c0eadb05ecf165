package catalog_test

import (
	"testing"

	"barbershop-booking-api/internal/catalog"
)

func TestServices(t *testing.T) {
	services := catalog.Services()
	if len(services) == 0 {
		t.Fatal("empty catalog")
	}

	seen := map[int]bool{}
	for _, s := range services {
		if seen[s.ID] {
			t.Errorf("duplicate service id %d", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" || s.Category == "" {
			t.Errorf("service %d missing name or category", s.ID)
		}
		if s.Price <= 0 {
			t.Errorf("service %q has price %.2f", s.Name, s.Price)
		}
		if s.DurationMin <= 0 {
			t.Errorf("service %q has duration %d", s.Name, s.DurationMin)
		}
	}
}

func TestBarbers(t *testing.T) {
	barbers := catalog.Barbers()
	if len(barbers) != 3 {
		t.Fatalf("got %d barbers, want 3", len(barbers))
	}
	for _, b := range barbers {
		if b.Name == "" || b.Specialty == "" {
			t.Errorf("barber %d missing name or specialty", b.ID)
		}
	}
}

func TestSlots(t *testing.T) {
	slots := catalog.Slots()
	if len(slots) == 0 {
		t.Fatal("empty slot grid")
	}
	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	if available == 0 {
		t.Fatal("no bookable slots")
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	a := catalog.Services()
	a[0].Price = -1
	b := catalog.Services()
	if b[0].Price < 0 {
		t.Fatal("catalog data mutated through a returned slice")
	}
}
