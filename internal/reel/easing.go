package reel

// backIn кубическая back-кривая с небольшим откатом назад в начале
func backIn(p, bounce float64) float64 {
	return p * p * p * ((bounce+1)*p - bounce)
}

// backOut зеркальная к backIn, перелёт перед остановкой
func backOut(p, bounce float64) float64 {
	return 1 - backIn(1-p, bounce)
}
