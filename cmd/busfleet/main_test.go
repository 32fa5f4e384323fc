package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/busfleet/config"
	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := config.Config
	t.Cleanup(func() { config.Config = orig })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCmd_Found(t *testing.T) {
	out, err := run(t, "lookup", "WMATA", "1042")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"make": "Nova Bus"`) || !strings.Contains(out, `"also_found_in"`) {
		t.Errorf("unexpected output %s", out)
	}
	t.Logf("✓ lookup printed %d bytes", len(out))
}

func TestLookupCmd_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "suggestion", args: []string{"lookup", "WMATA", "3000"}, want: `"suggested_agency": "FAIRFAX_CONNECTOR"`},
		{name: "plain miss", args: []string{"lookup", "WMATA", "99999"}, want: `"detail": "Bus not found in fleet."`},
		{name: "unknown agency", args: []string{"lookup", "NOPE", "1"}, want: `"detail": "Agency not found."`},
		{name: "bad id", args: []string{"lookup", "ART", "x1"}, want: `"detail": "Bus ID must be numeric."`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err == nil {
				t.Error("expected non-nil error for non-zero exit")
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in %s", tt.want, out)
			}
		})
	}
}

func TestLookupCmd_Args(t *testing.T) {
	if _, err := run(t, "lookup", "WMATA"); err == nil {
		t.Error("expected argument count error")
	}
}

func TestAgenciesCmd(t *testing.T) {
	out, err := run(t, "agencies")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 || !strings.HasPrefix(lines[1], "WMATA") || !strings.HasPrefix(lines[6], "NYCTA_EXPRESS") {
		t.Errorf("unexpected table:\n%s", out)
	}

	out, err = run(t, "agencies", "--json")
	if err != nil || !strings.Contains(out, `"display_name": "Ride On (MCDOT)"`) {
		t.Errorf("unexpected json output %s (%v)", out, err)
	}
}

func TestAgenciesDump_LoadsBack(t *testing.T) {
	out, err := run(t, "agencies", "--dump")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fleet.yml")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "--registry", path, "lookup", "art", "5061")
	if err != nil {
		t.Fatalf("lookup against dumped registry: %v", err)
	}
	if !strings.Contains(out, `"model": "Gen III"`) {
		t.Errorf("unexpected output %s", out)
	}
}

func TestAuditCmd(t *testing.T) {
	reg := fleet.Default()
	out, err := run(t, "audit")
	if len(reg.Overlaps()) == 0 {
		if err != nil || !strings.Contains(out, "no overlapping ranges") {
			t.Errorf("expected clean audit, got %v: %s", err, out)
		}
	} else if err == nil {
		t.Error("expected non-zero exit for overlaps")
	}

	path := filepath.Join(t.TempDir(), "overlap.yml")
	doc := `agencies:
  - key: DASH
    displayName: DASH
    ranges:
      - {lo: 100, hi: 199, make: GILLIG, propulsion: Diesel}
      - {lo: 150, hi: 249, make: New Flyer, propulsion: CNG}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "--registry", path, "audit")
	if err == nil {
		t.Fatal("expected non-zero exit for overlapping ranges")
	}
	if !strings.Contains(out, "DASH") || !strings.Contains(out, "150-199") {
		t.Errorf("unexpected audit output %s", out)
	}
}

func TestAnnotateCmd(t *testing.T) {
	fm := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{GtfsRealtimeVersion: proto.String("2.0"), Timestamp: proto.Uint64(1700000000)},
		Entity: []*gtfs.FeedEntity{
			{Id: proto.String("1"), Vehicle: &gtfs.VehiclePosition{Vehicle: &gtfs.VehicleDescriptor{Label: proto.String("5061")}}},
			{Id: proto.String("2"), Vehicle: &gtfs.VehiclePosition{Vehicle: &gtfs.VehicleDescriptor{Label: proto.String("5060")}}},
		},
	}
	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "vehicles.pb")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "annotate", "--agency", "art", "--feed", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"agency": "ART"`, `"feed_timestamp": "2023-11-14T22:13:20Z"`, `"matched": 1`, `"suggested": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	if _, err := run(t, "annotate", "--agency", "NOPE", "--feed", path); err == nil {
		t.Error("expected error for unknown agency")
	}
	if _, err := run(t, "annotate", "--feed", path); err == nil {
		t.Error("expected error when --agency is missing")
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yml"), "agencies"); err == nil {
		t.Error("expected error for explicit missing config")
	}
}
