package gtfsrt

import (
	"fmt"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Vehicle is one VehiclePosition entity reduced to what annotation needs
type Vehicle struct {
	EntityID  string   `json:"entity_id"`
	VehicleID string   `json:"vehicle_id,omitempty"`
	Label     string   `json:"label,omitempty"`
	TripID    string   `json:"trip_id,omitempty"`
	RouteID   string   `json:"route_id,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
	Timestamp int64    `json:"timestamp,omitempty"`
}

// FleetNumber is the label, else the vehicle id, else the entity id
func (v Vehicle) FleetNumber() string {
	switch {
	case v.Label != "":
		return v.Label
	case v.VehicleID != "":
		return v.VehicleID
	default:
		return v.EntityID
	}
}

// Feed is a decoded vehicle positions feed
type Feed struct {
	HeaderTimestamp int64
	Vehicles        []Vehicle
}

// DecodeVehicles unmarshals a FeedMessage and keeps its vehicle entities in
// feed order. Entities without a vehicle position are skipped.
func DecodeVehicles(data []byte) (Feed, error) {
	var fm gtfs.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return Feed{}, fmt.Errorf("decode feed: %w", err)
	}
	feed := Feed{HeaderTimestamp: int64(fm.GetHeader().GetTimestamp())}
	for _, e := range fm.GetEntity() {
		vp := e.GetVehicle()
		if vp == nil || e.GetIsDeleted() {
			continue
		}
		v := Vehicle{
			EntityID:  e.GetId(),
			VehicleID: vp.GetVehicle().GetId(),
			Label:     vp.GetVehicle().GetLabel(),
			TripID:    vp.GetTrip().GetTripId(),
			RouteID:   vp.GetTrip().GetRouteId(),
			Timestamp: int64(vp.GetTimestamp()),
		}
		if pos := vp.GetPosition(); pos != nil {
			lat, lon := float64(pos.GetLatitude()), float64(pos.GetLongitude())
			v.Latitude, v.Longitude = &lat, &lon
		}
		feed.Vehicles = append(feed.Vehicles, v)
	}
	return feed, nil
}
