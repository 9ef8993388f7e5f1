// models/date.go
package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Date 只表示“本地日历上的某一天”，时分秒和时区偏移在构造时就丢掉
// JSON 和 SQL（date 列）统一用 YYYY-MM-DD
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func ParseDate(s string) (Date, error) {
	// 兼容带时间部分的 ISO 字符串，只取日期前缀
	if len(s) > len(dayLayout) {
		s = s[:len(dayLayout)]
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dayLayout) }

func (d Date) AddDays(n int) Date { return DateOf(d.AddDate(0, 0, n)) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// driver.Valuer / sql.Scanner：gorm 的 type:date 列直接用

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(x)
		return nil
	case string:
		parsed, err := ParseDate(x)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(x))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", v)
}
