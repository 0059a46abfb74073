package geo

import (
	"math"
	"regexp"
	"strconv"
)

// Shop location (Pathum Thani). Distances on the job board are measured
// from here.
const (
	ShopLat = 13.9647757
	ShopLon = 100.6203268
)

type Coordinates struct {
	Lat float64
	Lon float64
}

var coordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(-?[0-9.]+),(-?[0-9.]+)`),
	regexp.MustCompile(`[?&]q=(-?[0-9.]+),(-?[0-9.]+)`),
	regexp.MustCompile(`/search/(-?[0-9.]+),(-?[0-9.]+)`),
	regexp.MustCompile(`/dir/.*/(-?[0-9.]+),(-?[0-9.]+)`),
	regexp.MustCompile(`!3d(-?[0-9.]+)!4d(-?[0-9.]+)`),
}

// ExtractCoordinates pulls a lat/lon pair out of a Google Maps style link.
// Returns false when no known URL shape matches.
func ExtractCoordinates(url string) (Coordinates, bool) {
	if url == "" {
		return Coordinates{}, false
	}
	for _, re := range coordPatterns {
		m := re.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		return Coordinates{Lat: lat, Lon: lon}, true
	}
	return Coordinates{}, false
}

// Distance returns the great-circle distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceFromShop resolves a map link to kilometers from the shop,
// rounded to whole km. ok is false when the link has no coordinates.
func DistanceFromShop(mapLink string) (int, bool) {
	coords, ok := ExtractCoordinates(mapLink)
	if !ok {
		return 0, false
	}
	return int(math.Round(Distance(ShopLat, ShopLon, coords.Lat, coords.Lon))), true
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
