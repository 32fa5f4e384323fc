package gtfsrt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

type testVehicle struct {
	entity, id, label, trip string
	pos                     bool
}

func buildFeed(t *testing.T, vehicles ...testVehicle) []byte {
	t.Helper()
	fm := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
	}
	for _, v := range vehicles {
		vp := &gtfs.VehiclePosition{
			Vehicle:   &gtfs.VehicleDescriptor{},
			Timestamp: proto.Uint64(1699999990),
		}
		if v.id != "" {
			vp.Vehicle.Id = proto.String(v.id)
		}
		if v.label != "" {
			vp.Vehicle.Label = proto.String(v.label)
		}
		if v.trip != "" {
			vp.Trip = &gtfs.TripDescriptor{TripId: proto.String(v.trip), RouteId: proto.String("C4")}
		}
		if v.pos {
			vp.Position = &gtfs.Position{Latitude: proto.Float32(38.9), Longitude: proto.Float32(-77.03)}
		}
		fm.Entity = append(fm.Entity, &gtfs.FeedEntity{Id: proto.String(v.entity), Vehicle: vp})
	}
	// an alert-only entity must be skipped
	fm.Entity = append(fm.Entity, &gtfs.FeedEntity{Id: proto.String("alert-1"), Alert: &gtfs.Alert{}})

	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshal feed: %v", err)
	}
	return b
}

func TestDecodeVehicles(t *testing.T) {
	data := buildFeed(t,
		testVehicle{entity: "e1", id: "v-1042", label: "1042", trip: "T1", pos: true},
		testVehicle{entity: "e2", id: "3000"},
	)
	feed, err := DecodeVehicles(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if feed.HeaderTimestamp != 1700000000 {
		t.Errorf("unexpected header timestamp %d", feed.HeaderTimestamp)
	}
	if len(feed.Vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(feed.Vehicles))
	}
	v := feed.Vehicles[0]
	if v.Label != "1042" || v.TripID != "T1" || v.RouteID != "C4" || v.Latitude == nil {
		t.Errorf("unexpected vehicle %+v", v)
	}
	if feed.Vehicles[1].Latitude != nil {
		t.Error("vehicle without position should have nil coordinates")
	}
	t.Logf("✓ Decoded %d vehicles", len(feed.Vehicles))
}

func TestDecodeVehicles_Garbage(t *testing.T) {
	if _, err := DecodeVehicles([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Error("expected decode error")
	}
}

func TestVehicle_FleetNumber(t *testing.T) {
	tests := []struct {
		v    Vehicle
		want string
	}{
		{Vehicle{EntityID: "e", VehicleID: "v", Label: "l"}, "l"},
		{Vehicle{EntityID: "e", VehicleID: "v"}, "v"},
		{Vehicle{EntityID: "e"}, "e"},
	}
	for _, tt := range tests {
		if got := tt.v.FleetNumber(); got != tt.want {
			t.Errorf("FleetNumber() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	feed, err := DecodeVehicles(buildFeed(t,
		testVehicle{entity: "e1", label: "1042", pos: true},
		testVehicle{entity: "e2", id: "3000"},
		testVehicle{entity: "e3", label: "99999"},
		testVehicle{entity: "e4", label: "bus-A"},
	))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := Annotate(fleet.Default(), "wmata", feed)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	want := []string{"found", "not_found_with_suggestions", "not_found", OutcomeInvalidNumber}
	if len(got) != len(want) {
		t.Fatalf("expected %d annotations, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Outcome != w {
			t.Errorf("vehicle %d: expected %s, got %s", i, w, got[i].Outcome)
		}
	}
	if got[0].Spec == nil || got[0].Spec.Make != "Nova Bus" {
		t.Errorf("expected Nova Bus spec, got %+v", got[0].Spec)
	}
	if got[1].Spec != nil || len(got[1].OtherAgencies) != 2 {
		t.Errorf("unexpected suggestion annotation %+v", got[1])
	}

	sum := Summarize(got)
	if sum != (Summary{Total: 4, Matched: 1, Suggested: 1, Unmatched: 2}) {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestAnnotate_UnknownAgency(t *testing.T) {
	_, err := Annotate(fleet.Default(), " nope ", Feed{})
	if !errors.Is(err, fleet.ErrAgencyNotFound) {
		t.Fatalf("expected ErrAgencyNotFound, got %v", err)
	}
	var anf *fleet.AgencyNotFoundError
	if !errors.As(err, &anf) || anf.Key != "NOPE" {
		t.Errorf("expected normalized key NOPE, got %+v", anf)
	}
	_, lookupErr := fleet.Default().Lookup(" nope ", "1")
	var fromLookup *fleet.AgencyNotFoundError
	if errors.As(lookupErr, &fromLookup) && fromLookup.Key != anf.Key {
		t.Errorf("annotate and lookup disagree: %q vs %q", anf.Key, fromLookup.Key)
	}
}

func TestClient_FetchHTTP(t *testing.T) {
	payload := buildFeed(t, testVehicle{entity: "e1", label: "1042"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	got, err := c.Fetch(context.Background(), srv.URL+"/vehicles.pb")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != len(payload) {
		t.Errorf("expected %d bytes, got %d", len(payload), len(got))
	}
	if _, err := c.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestClient_FetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.pb")
	payload := buildFeed(t, testVehicle{entity: "e1", label: "5061"})
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}
	c := NewClient(time.Second)
	got, err := c.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	feed, err := DecodeVehicles(got)
	if err != nil || len(feed.Vehicles) != 1 {
		t.Fatalf("unexpected feed %+v %v", feed, err)
	}
	if _, err := c.Fetch(context.Background(), ""); err == nil {
		t.Error("expected error for empty source")
	}
	if _, err := c.Fetch(context.Background(), path+".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}
