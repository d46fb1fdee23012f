package get_available_slots

// timeSpan полуинтервал [start, end) в минутах с начала суток
type timeSpan struct {
	start int
	end   int
}

// sweepSlots вычисляет доступные слоты одним проходом слева направо.
//
// Алгоритм: курсор начинает с windowStart; перед каждым препятствием
// эмитятся слоты, пока слот целиком помещается до начала препятствия,
// с шагом granularity; затем курсор сдвигается на max(cursor, конец
// препятствия). Курсор никогда не движется назад, поэтому препятствия
// могут пересекаться между собой - достаточно сортировки по началу.
// После последнего препятствия слоты эмитятся до конца окна.
//
// duration больше длины окна даёт пустой результат - это ожидаемый
// исход, а не ошибка.
func sweepSlots(windowStart, windowEnd int, obstacles []timeSpan, duration, granularity int) []timeSpan {
	if duration <= 0 || granularity <= 0 {
		return nil
	}

	slots := make([]timeSpan, 0)
	cursor := windowStart

	emitUntil := func(limit int) {
		for cursor+duration <= limit {
			slots = append(slots, timeSpan{start: cursor, end: cursor + duration})
			cursor += granularity
		}
	}

	for _, o := range obstacles {
		emitUntil(o.start)
		if o.end > cursor {
			cursor = o.end
		}
	}

	emitUntil(windowEnd)

	return slots
}

// roundUpToGranularity округляет minutes вверх до ближайшего кратного granularity.
// Значение, уже лежащее на границе, не меняется (09:30 с шагом 30 остаётся 09:30).
func roundUpToGranularity(minutes, granularity int) int {
	if granularity <= 0 {
		return minutes
	}
	remainder := minutes % granularity
	if remainder == 0 {
		return minutes
	}
	return minutes + granularity - remainder
}
