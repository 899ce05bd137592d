package domain

import (
	"strconv"
	"time"

	"github.com/vfg2006/client-dashboard-api/pkg/utils"
)

// Date representa uma data de calendário (sem horário) serializada como "2006-01-02"
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(value string) (Date, error) {
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: *parsed}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(utils.DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	value, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	// Datas gravadas pelo painel antigo podem vir com horário
	if len(value) > len(utils.DateLayout) {
		value = value[:len(utils.DateLayout)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// DaysUntil retorna quantos dias faltam de ref até a data (negativo se já passou)
func (d Date) DaysUntil(ref Date) int {
	return int(d.Sub(ref.Time).Hours() / 24)
}
