package domain

// locations is the static gazetteer used for location suggestions:
// major US cities in population order, plus a few sample street addresses.
// The list is read-only; Gazetteer hands out a copy.
var locations = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Phoenix, AZ",
	"Philadelphia, PA",
	"San Antonio, TX",
	"San Diego, CA",
	"Dallas, TX",
	"San Jose, CA",
	"Austin, TX",
	"Jacksonville, FL",
	"Fort Worth, TX",
	"Columbus, OH",
	"Charlotte, NC",
	"San Francisco, CA",
	"Indianapolis, IN",
	"Seattle, WA",
	"Denver, CO",
	"Washington, DC",
	"Boston, MA",
	"Nashville, TN",
	"Portland, OR",
	"Las Vegas, NV",
	"Detroit, MI",
	"Brooklyn, NY",
	"Manhattan, NY",
	"Queens, NY",
	"Bronx, NY",
	"Staten Island, NY",
	"123 Main Street, Brooklyn, NY",
	"456 Park Avenue, Manhattan, NY",
	"789 Ocean Drive, San Diego, CA",
}

// Gazetteer returns the static place-name list in canonical order.
func Gazetteer() []string {
	out := make([]string, len(locations))
	copy(out, locations)
	return out
}
