// Package gtfsrt reads GTFS-Realtime vehicle position feeds and annotates each
// vehicle with its fleet specification.
//
// A feed is fetched with Client.Fetch from an HTTP(S) URL or a local file,
// decoded with DecodeVehicles, then passed to Annotate together with the
// agency whose numbering the feed uses. The vehicle label is taken as the
// fleet number, falling back to the vehicle id and then the entity id.
package gtfsrt
