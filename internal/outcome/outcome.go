package outcome

// Result итог остановки барабана
type Result struct {
	Symbol    int   // Символ с наибольшим числом совпадений
	Count     int   // Сколько раз он выпал
	Payout    int   // Выплата, 0 если совпадений нет
	Positions []int // Позиции символа для подсветки (только при выигрыше)
}

// Win есть ли выигрыш
func (r Result) Win() bool {
	return r.Payout > 0
}

// Evaluate считает совпадения и выплату.
// При равенстве побеждает символ, первым набравший максимум при проходе слева направо
func Evaluate(symbols []int, bet int) Result {
	if len(symbols) == 0 {
		return Result{Symbol: -1}
	}

	counts := make(map[int]int, len(symbols))
	for _, s := range symbols {
		counts[s]++
	}

	res := Result{Symbol: symbols[0]}
	for _, s := range symbols {
		if counts[s] > res.Count {
			res.Symbol = s
			res.Count = counts[s]
		}
	}

	if res.Count > 1 {
		res.Payout = bet * res.Count
		for i, s := range symbols {
			if s == res.Symbol {
				res.Positions = append(res.Positions, i)
			}
		}
	}

	return res
}
