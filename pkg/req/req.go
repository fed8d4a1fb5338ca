package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode читает JSON тело запроса в T. Неизвестные поля - ошибка
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request: %w", err)
	}

	return payload, nil
}
