package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// GeoPoint is a bare latitude/longitude pair
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodePoint converts a point to a geohash string at the given precision
func EncodePoint(p GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) GeoPoint {
	lat, lng := geohash.Decode(hash)
	return GeoPoint{Latitude: lat, Longitude: lng}
}

// NeighborCells returns the 8 geohash cells surrounding hash
func NeighborCells(hash string) []string {
	return geohash.Neighbors(hash)
}

// HaversineKm calculates the great-circle distance between two points in
// kilometers
func HaversineKm(p1, p2 GeoPoint) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidCoordinate reports whether the pair is a usable WGS84 coordinate
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
