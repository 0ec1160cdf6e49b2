package utils

import "time"

// ISODateLayout é o formato das datas do filtro custom
const ISODateLayout = "2006-01-02"

// ParseDate converte YYYY-MM-DD. String vazia retorna a data zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(ISODateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
