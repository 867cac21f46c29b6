package jobsearch

// SalaryRangeControl: состояние слайдера зарплаты. Флаг touched явно
// фиксирует, что пользователь двигал слайдер, поэтому пересчёт границ
// больше не перезаписывает его выбор.
type SalaryRangeControl struct {
	Min float64
	Max float64

	initialized bool
	touched     bool
}

// NewSalaryRangeControl создаёт слайдер с границами по умолчанию.
func NewSalaryRangeControl() SalaryRangeControl {
	b := DefaultSalaryBounds()
	return SalaryRangeControl{Min: b.Min, Max: b.Max}
}

// Sync переносит вычисленные границы в слайдер ровно один раз: при первой
// непустой загрузке коллекции и только если пользователь ещё не трогал слайдер.
// Возвращает true, если значения изменились.
func (c *SalaryRangeControl) Sync(bounds SalaryBounds, collectionSize int) bool {
	if c.touched || c.initialized || collectionSize == 0 {
		return false
	}
	c.Min, c.Max = bounds.Min, bounds.Max
	c.initialized = true
	return true
}

// Set применяет выбор пользователя. Перевёрнутый диапазон разворачивается.
func (c *SalaryRangeControl) Set(min, max float64) {
	if min > max {
		min, max = max, min
	}
	c.Min, c.Max = min, max
	c.touched = true
}

// Touched сообщает, выбирал ли пользователь диапазон.
func (c SalaryRangeControl) Touched() bool { return c.touched }

// Initialized сообщает, были ли границы уже перенесены из коллекции.
func (c SalaryRangeControl) Initialized() bool { return c.initialized }

// Range возвращает текущий выбранный диапазон.
func (c SalaryRangeControl) Range() SalaryBounds { return SalaryBounds{Min: c.Min, Max: c.Max} }

// overlaps: вакансия без данных о зарплате не проходит активный фильтр.
func (c SalaryRangeControl) overlaps(r SalaryRange) bool {
	lo, hi := r.Min, r.Max
	if !usable(lo) {
		lo = hi
	}
	if !usable(hi) {
		hi = lo
	}
	if !usable(lo) || !usable(hi) {
		return false
	}
	return *hi >= c.Min && *lo <= c.Max
}

// salaryScore возвращает ключ сортировки по зарплате (max, иначе min, иначе 0).
func salaryScore(r SalaryRange) float64 {
	if usable(r.Max) {
		return *r.Max
	}
	if usable(r.Min) {
		return *r.Min
	}
	return 0
}
