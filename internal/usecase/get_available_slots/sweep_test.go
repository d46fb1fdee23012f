package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepSlots_NoObstacles(t *testing.T) {
	// Окно 09:00-17:00, длительность 60, шаг 30
	slots := sweepSlots(540, 1020, nil, 60, 30)

	require.NotEmpty(t, slots)
	assert.Equal(t, timeSpan{start: 540, end: 600}, slots[0])
	// Последний слот заканчивается ровно в конце окна: 16:00-17:00
	assert.Equal(t, timeSpan{start: 960, end: 1020}, slots[len(slots)-1])
	assert.Len(t, slots, 15)
}

func TestSweepSlots_BookingAndException(t *testing.T) {
	// Стилист работает 09:00-17:00, запись 10:00-11:00,
	// исключение 13:00-13:30, длительность 30, шаг 30
	obstacles := []timeSpan{
		{start: 600, end: 660},
		{start: 780, end: 810},
	}

	slots := sweepSlots(540, 1020, obstacles, 30, 30)

	expected := []timeSpan{
		{start: 540, end: 570},  // 09:00
		{start: 570, end: 600},  // 09:30
		{start: 660, end: 690},  // 11:00 - курсор перепрыгнул запись
		{start: 690, end: 720},  // 11:30
		{start: 720, end: 750},  // 12:00
		{start: 750, end: 780},  // 12:30
		{start: 810, end: 840},  // 13:30 - курсор перепрыгнул исключение
		{start: 840, end: 870},  // 14:00
		{start: 870, end: 900},  // 14:30
		{start: 900, end: 930},  // 15:00
		{start: 930, end: 960},  // 15:30
		{start: 960, end: 990},  // 16:00
		{start: 990, end: 1020}, // 16:30
	}
	assert.Equal(t, expected, slots)

	// Ни один слот не начинается внутри 10:00-10:59 или 13:00-13:29
	for _, s := range slots {
		assert.False(t, s.start >= 600 && s.start < 660, "slot starts inside booking: %v", s)
		assert.False(t, s.start >= 780 && s.start < 810, "slot starts inside exception: %v", s)
	}
}

func TestSweepSlots_FullDayExactFit(t *testing.T) {
	// 8-часовое окно, длительность 480 минут, препятствий нет - ровно один слот
	slots := sweepSlots(540, 1020, nil, 480, 30)

	require.Len(t, slots, 1)
	assert.Equal(t, timeSpan{start: 540, end: 1020}, slots[0])
}

func TestSweepSlots_DurationLongerThanWindow(t *testing.T) {
	slots := sweepSlots(540, 1020, nil, 481, 30)
	assert.Empty(t, slots)
}

func TestSweepSlots_OverlappingObstacles(t *testing.T) {
	// Пересекающиеся препятствия: курсор не движется назад
	obstacles := []timeSpan{
		{start: 600, end: 720},
		{start: 660, end: 690}, // Целиком внутри предыдущего
		{start: 700, end: 780}, // Пересекается с первым
	}

	slots := sweepSlots(540, 1020, obstacles, 60, 30)

	// Свободны только [540, 600) и [780, 1020)
	require.NotEmpty(t, slots)
	assert.Equal(t, timeSpan{start: 540, end: 600}, slots[0])
	for _, s := range slots[1:] {
		assert.GreaterOrEqual(t, s.start, 780)
	}
}

func TestSweepSlots_ObstacleAtWindowEdges(t *testing.T) {
	// Препятствие в начале окна
	slots := sweepSlots(540, 720, []timeSpan{{start: 540, end: 600}}, 60, 30)
	assert.Equal(t, []timeSpan{{start: 600, end: 660}, {start: 630, end: 690}, {start: 660, end: 720}}, slots)

	// Препятствие закрывает всё окно
	slots = sweepSlots(540, 720, []timeSpan{{start: 540, end: 720}}, 60, 30)
	assert.Empty(t, slots)
}

func TestSweepSlots_Properties(t *testing.T) {
	obstacles := []timeSpan{
		{start: 585, end: 635}, // Конец не на границе шага
		{start: 800, end: 815},
	}
	duration := 45
	granularity := 30

	slots := sweepSlots(540, 1020, obstacles, duration, granularity)
	require.NotEmpty(t, slots)

	prev := -1
	for _, s := range slots {
		// Точная длительность
		assert.Equal(t, duration, s.end-s.start)

		// Слот внутри окна
		assert.GreaterOrEqual(t, s.start, 540)
		assert.LessOrEqual(t, s.end, 1020)

		// Строгое возрастание
		assert.Greater(t, s.start, prev)
		prev = s.start

		// Нет пересечений с препятствиями
		for _, o := range obstacles {
			assert.False(t, o.start < s.end && o.end > s.start,
				"slot %v overlaps obstacle %v", s, o)
		}
	}
}

func TestRoundUpToGranularity(t *testing.T) {
	// 09:37 при шаге 30 -> 10:00
	assert.Equal(t, 600, roundUpToGranularity(577, 30))

	// Значение на границе не меняется
	assert.Equal(t, 570, roundUpToGranularity(570, 30))
	assert.Equal(t, 0, roundUpToGranularity(0, 30))

	assert.Equal(t, 580, roundUpToGranularity(577, 10))

	// Нулевой шаг - значение не меняется
	assert.Equal(t, 577, roundUpToGranularity(577, 0))
}
