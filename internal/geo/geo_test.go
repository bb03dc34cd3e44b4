package geo

import (
	"math"
	"strings"
	"testing"

	"github.com/makmour/WasteBinTracker/internal/gazetteer"
)

const epsilon = 1e-9

// TestHaversine_ZeroAndSymmetry verifies distance(A,A)==0 and
// distance(A,B)==distance(B,A).
func TestHaversine_ZeroAndSymmetry(t *testing.T) {
	a := Point{Latitude: 37.8667, Longitude: 23.7667}
	b := Point{Latitude: 37.9838, Longitude: 23.7275}

	if d := Haversine(a, a); d > epsilon {
		t.Errorf("distance(A,A) = %v, expected 0", d)
	}
	ab := Haversine(a, b)
	ba := Haversine(b, a)
	if math.Abs(ab-ba) > epsilon {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

// TestHaversine_KnownDistance checks the formula against the
// Glyfada-to-central-Athens leg, roughly 13.4 km.
func TestHaversine_KnownDistance(t *testing.T) {
	glyfada := Point{Latitude: 37.8667, Longitude: 23.7667}
	athens := Point{Latitude: 37.9838, Longitude: 23.7275}

	d := Haversine(glyfada, athens)
	if d < 13 || d > 14 {
		t.Errorf("expected ~13.4 km, got %v", d)
	}
}

// TestStreetCoordinates_Deterministic verifies the same name always maps
// to the same pseudo-coordinate; nearby results depend on it.
func TestStreetCoordinates_Deterministic(t *testing.T) {
	center := Point{Latitude: 37.8667, Longitude: 23.7667}
	for _, street := range []string{"Metaxa", "Leoforos Vouliagmenis", "Agiou Nikolaou Avenue"} {
		first := StreetCoordinates(street, center)
		for i := 0; i < 3; i++ {
			again := StreetCoordinates(street, center)
			if first != again {
				t.Fatalf("%s: pseudo-coordinate changed between calls: %v vs %v", street, first, again)
			}
		}
	}
}

// TestStreetCoordinates_HashOffsets pins the exact offset arithmetic:
// sum of character codes, ±0.05 degrees scaled by hash%100.
func TestStreetCoordinates_HashOffsets(t *testing.T) {
	center := Point{Latitude: 37.8667, Longitude: 23.7667}
	street := "Metaxa"

	hash := 0
	for _, r := range street {
		hash += int(r)
	}
	wantLat := center.Latitude + float64((hash%100)-50)*0.001
	wantLon := center.Longitude + float64(((hash*7)%100)-50)*0.001

	got := StreetCoordinates(street, center)
	if math.Abs(got.Latitude-wantLat) > epsilon || math.Abs(got.Longitude-wantLon) > epsilon {
		t.Errorf("expected (%v, %v), got (%v, %v)", wantLat, wantLon, got.Latitude, got.Longitude)
	}
	if math.Abs(got.Latitude-center.Latitude) > 0.05+epsilon {
		t.Errorf("latitude offset out of the ±0.05 range: %v", got.Latitude-center.Latitude)
	}
	if math.Abs(got.Longitude-center.Longitude) > 0.05+epsilon {
		t.Errorf("longitude offset out of the ±0.05 range: %v", got.Longitude-center.Longitude)
	}
}

// TestNearby_RadiusAndCap verifies nearby mode never returns a street
// farther than 2 km, never more than 15 results, sorted nearest first.
func TestNearby_RadiusAndCap(t *testing.T) {
	m := gazetteer.Default()
	fix := Point{Latitude: m.Latitude, Longitude: m.Longitude}

	result := Nearby(m, fix)
	if len(result) == 0 {
		t.Fatal("expected some streets near the municipal center")
	}
	if len(result) > NearbyLimit {
		t.Errorf("expected at most %d results, got %d", NearbyLimit, len(result))
	}
	for i, sd := range result {
		if sd.DistanceKm > NearbyRadiusKm {
			t.Errorf("%s is %v km away, beyond the %v km radius", sd.Street, sd.DistanceKm, NearbyRadiusKm)
		}
		if i > 0 && sd.DistanceKm < result[i-1].DistanceKm {
			t.Errorf("results not sorted ascending at %d", i)
		}
	}
}

// TestNearby_FarFix verifies a fix far outside the municipality yields
// nothing within the radius.
func TestNearby_FarFix(t *testing.T) {
	m := gazetteer.Default()
	fix := Point{Latitude: 40.6401, Longitude: 22.9444} // Thessaloniki

	if result := Nearby(m, fix); len(result) != 0 {
		t.Errorf("expected no nearby streets 300 km away, got %d", len(result))
	}
}

// TestSearch verifies the substring filter, its case-insensitivity, and
// both caps.
func TestSearch(t *testing.T) {
	m := gazetteer.Default()

	empty := Search(m, "")
	if len(empty) != SearchLimit {
		t.Errorf("empty query: expected the first %d streets, got %d", SearchLimit, len(empty))
	}
	for i, street := range m.Streets[:SearchLimit] {
		if empty[i] != street {
			t.Errorf("empty query result %d: expected %q, got %q", i, street, empty[i])
		}
	}

	matches := Search(m, "metaxa")
	if len(matches) == 0 {
		t.Fatal("expected matches for 'metaxa'")
	}
	for _, street := range matches {
		if !strings.Contains(strings.ToLower(street), "metaxa") {
			t.Errorf("%q does not contain the query", street)
		}
	}

	agiou := Search(m, "a")
	if len(agiou) > SearchLimit {
		t.Errorf("expected at most %d matches, got %d", SearchLimit, len(agiou))
	}

	if none := Search(m, "zzzzzz"); len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

// TestAll verifies the unranked leading slice.
func TestAll(t *testing.T) {
	m := gazetteer.Default()
	all := All(m)
	if len(all) != AllLimit {
		t.Fatalf("expected %d streets, got %d", AllLimit, len(all))
	}
	for i, street := range m.Streets[:AllLimit] {
		if all[i] != street {
			t.Errorf("all result %d: expected gazetteer order %q, got %q", i, street, all[i])
		}
	}
}
