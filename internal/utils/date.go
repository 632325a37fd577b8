package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type LocalDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (ld *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	ld.Time = t
	return nil
}

func (ld LocalDate) MarshalJSON() ([]byte, error) {
	if ld.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ld.Format(dateLayout) + `"`), nil
}

func (ld LocalDate) Equal(other LocalDate) bool {
	return ld.Time.Equal(other.Time)
}

func (ld LocalDate) Before(other LocalDate) bool {
	return ld.Time.Before(other.Time)
}

func (ld LocalDate) Value() (driver.Value, error) {
	if ld.IsZero() {
		return nil, nil
	}
	return ld.Time, nil
}

func (LocalDate) GormDataType() string {
	return "date"
}

func (ld *LocalDate) Scan(value interface{}) error {
	if value == nil {
		ld.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ld.Time = v
		return nil
	case []byte:
		parsed, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		ld.Time = parsed
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		ld.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDate", value)
	}
}
