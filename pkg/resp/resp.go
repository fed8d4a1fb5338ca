package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	// Заголовок уже отправлен, ошибку записи вернуть клиенту некуда
	_ = json.NewEncoder(w).Encode(data)
}
