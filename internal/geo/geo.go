package geo

import (
	"math"
	"sort"
	"strings"

	"github.com/makmour/WasteBinTracker/internal/gazetteer"
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// earthRadiusKm is the sphere radius used by the haversine formula.
const earthRadiusKm = 6371

// Limits applied by the street selection modes.
const (
	NearbyRadiusKm = 2.0
	NearbyLimit    = 15
	SearchLimit    = 20
	AllLimit       = 50
)

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// StreetCoordinates maps a street name to a synthetic coordinate near the
// municipal center. There is no real street geometry available, so the name
// is hashed (sum of character codes) into small offsets of up to ±0.05
// degrees. The same name always yields the same point; nearby results
// depend on that staying true across runs.
func StreetCoordinates(street string, center Point) Point {
	hash := 0
	for _, r := range street {
		hash += int(r)
	}
	latOffset := float64((hash%100)-50) * 0.001
	lonOffset := float64(((hash*7)%100)-50) * 0.001
	return Point{
		Latitude:  center.Latitude + latOffset,
		Longitude: center.Longitude + lonOffset,
	}
}

// StreetDistance pairs a street name with its estimated distance from a fix.
type StreetDistance struct {
	Street     string  `json:"street"`
	DistanceKm float64 `json:"distance_km"`
}

// Nearby ranks the municipality's streets by estimated distance from the
// given GPS fix. Streets farther than NearbyRadiusKm are dropped and at
// most NearbyLimit results are returned, nearest first.
func Nearby(m gazetteer.Municipality, fix Point) []StreetDistance {
	center := Point{Latitude: m.Latitude, Longitude: m.Longitude}

	result := make([]StreetDistance, 0, NearbyLimit)
	for _, street := range m.Streets {
		d := Haversine(fix, StreetCoordinates(street, center))
		if d <= NearbyRadiusKm {
			result = append(result, StreetDistance{Street: street, DistanceKm: d})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})
	if len(result) > NearbyLimit {
		result = result[:NearbyLimit]
	}
	return result
}

// Search filters the municipality's streets by a case-insensitive substring
// match. An empty query returns the first SearchLimit streets unfiltered.
func Search(m gazetteer.Municipality, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return firstN(m.Streets, SearchLimit)
	}

	lower := strings.ToLower(query)
	matches := make([]string, 0, SearchLimit)
	for _, street := range m.Streets {
		if strings.Contains(strings.ToLower(street), lower) {
			matches = append(matches, street)
			if len(matches) == SearchLimit {
				break
			}
		}
	}
	return matches
}

// All returns the first AllLimit streets in the gazetteer's static order.
func All(m gazetteer.Municipality) []string {
	return firstN(m.Streets, AllLimit)
}

func firstN(streets []string, n int) []string {
	if len(streets) > n {
		streets = streets[:n]
	}
	out := make([]string, len(streets))
	copy(out, streets)
	return out
}
