package timezone

import "time"

// O relógio de agenda do salão opera num único fuso fixo de negócio.
const BusinessTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, Location())
}
