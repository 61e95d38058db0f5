package helper

import "time"

var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// WIB has no DST
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// Now returns the current time in Asia/Jakarta. Birth years are decoded
// against the Indonesian calendar year, not the server's.
func Now() time.Time {
	return time.Now().In(jakarta)
}
