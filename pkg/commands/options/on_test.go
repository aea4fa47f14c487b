package options

import (
	"testing"
	"time"

	"tableflip.dev/planmate/pkg/timeutil"
)

func TestGetOnBucketsToRequestedLocalDay(t *testing.T) {
	o := &OnOptions{OnString: "2024-3-1"}
	on, err := o.GetOn()
	if err != nil {
		t.Fatal(err)
	}
	if on == nil {
		t.Fatal("expected a date")
	}
	// The day key must be the local calendar day the user asked for,
	// regardless of the process timezone.
	if got := timeutil.DayKey(*on); got != "Fri Mar 01 2024" {
		t.Fatalf("day key = %q, want %q", got, "Fri Mar 01 2024")
	}
}

func TestGetOnShortForm(t *testing.T) {
	o := &OnOptions{OnString: "3/1"}
	on, err := o.GetOn()
	if err != nil {
		t.Fatal(err)
	}
	if on == nil {
		t.Fatal("expected a date")
	}
	if on.Month() != time.March || on.Day() != 1 {
		t.Fatalf("got %v, want March 1", on)
	}
	if on.Year() != time.Now().Year() {
		t.Fatalf("year = %d, want %d", on.Year(), time.Now().Year())
	}
	want := timeutil.DayKey(time.Date(on.Year(), time.March, 1, 0, 0, 0, 0, time.Local))
	if got := timeutil.DayKey(*on); got != want {
		t.Fatalf("day key = %q, want %q", got, want)
	}
}

func TestGetOnEmptyIsNil(t *testing.T) {
	o := &OnOptions{}
	on, err := o.GetOn()
	if err != nil {
		t.Fatal(err)
	}
	if on != nil {
		t.Fatalf("expected nil, got %v", on)
	}
}
