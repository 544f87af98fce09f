package appointments

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	combinedLayout = "2006-01-02T15:04"
)

var ErrBadDateTime = errors.New("invalid date or time")

// CombineDateTime compone fecha (YYYY-MM-DD) y hora (HH:MM) en un único
// instante dentro de loc. Es la inversa exacta de SplitDateTime: el mismo
// wall-clock entra y sale, independiente del offset de la zona.
func CombineDateTime(date, tm string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(combinedLayout, date+"T"+tm, loc)
	if err != nil {
		return time.Time{}, ErrBadDateTime
	}
	return t, nil
}

// SplitDateTime descompone un instante en fecha y hora de pared en loc.
func SplitDateTime(t time.Time, loc *time.Location) (date, tm string) {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return local.Format(DateLayout), local.Format(TimeLayout)
}

// stepDay corre una fecha de calendario N días. El cálculo se ancla al
// mediodía: un instante de medianoche local cerca de un cambio de huso
// (DST) puede caer en el día equivocado, el mediodía no.
func stepDay(date string, days int) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrBadDateTime
	}
	anchored := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
	return anchored.AddDate(0, 0, days).Format(DateLayout), nil
}

func NextDay(date string) (string, error) { return stepDay(date, 1) }
func PrevDay(date string) (string, error) { return stepDay(date, -1) }
