package game

import "strings"

// RoundStatus Статус текущего раунда
type RoundStatus string

const (
	StatusNotStarted RoundStatus = "not_started"
	StatusPlaying    RoundStatus = "playing"
	StatusWon        RoundStatus = "won"
	StatusLost       RoundStatus = "lost"
)

const defaultAttemptLimit = 4

// Engine Движок одного раунда: загаданное слово, счётчик попыток,
// лимит попыток и статус. Деньги движок не трогает.
type Engine struct {
	target       string
	attempts     int
	attemptLimit int
	status       RoundStatus
}

// NewEngine Создаёт движок без активного раунда
func NewEngine() *Engine {
	return &Engine{
		attemptLimit: defaultAttemptLimit,
		status:       StatusNotStarted,
	}
}

// normalizeWord Приводит слово к верхнему регистру и проверяет формат:
// ровно 5 букв A-Z. Невалидное слово отклоняется, а не обрезается.
func normalizeWord(word string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if len(w) != WordLength {
		return "", ErrInvalidWord
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", ErrInvalidWord
		}
	}
	return w, nil
}

// Start Начинает новый раунд с загаданным словом.
// Сбрасывает счётчик попыток и переводит раунд в статус playing
func (e *Engine) Start(word string) error {
	w, err := normalizeWord(word)
	if err != nil {
		return err
	}

	e.target = w
	e.attempts = 0
	e.status = StatusPlaying
	return nil
}

// SetAttemptLimit Задаёт лимит попыток. Вызывается один раз при старте раунда
func (e *Engine) SetAttemptLimit(n int) error {
	if n <= 0 {
		return ErrInvalidConfig
	}
	e.attemptLimit = n
	return nil
}

// GrantExtraAttempt Увеличивает лимит попыток на 1.
// Ограничение "не чаще одного раза за раунд" контролирует оркестратор
func (e *Engine) GrantExtraAttempt() {
	e.attemptLimit++
}

// SubmitGuess Принимает догадку: валидирует слово, тратит попытку,
// оценивает буквы и обновляет статус раунда
func (e *Engine) SubmitGuess(word string) ([]LetterResult, error) {
	if e.status == StatusNotStarted {
		return nil, ErrNotStarted
	}
	if e.status != StatusPlaying {
		return nil, ErrRoundFinished
	}

	w, err := normalizeWord(word)
	if err != nil {
		return nil, err
	}

	e.attempts++
	res := Evaluate(w, e.target)

	if AllCorrect(res) {
		e.status = StatusWon
	} else if e.attempts >= e.attemptLimit {
		e.status = StatusLost
	}

	return res, nil
}

// Attempts Сколько попыток уже потрачено
func (e *Engine) Attempts() int {
	return e.attempts
}

// AttemptLimit Текущий лимит попыток
func (e *Engine) AttemptLimit() int {
	return e.attemptLimit
}

// Status Текущий статус раунда
func (e *Engine) Status() RoundStatus {
	return e.status
}

// IsActive Есть ли незавершённый раунд
func (e *Engine) IsActive() bool {
	return e.status == StatusPlaying && e.target != ""
}

// Target Загаданное слово. Использовать только для раскрытия после раунда
func (e *Engine) Target() string {
	return e.target
}

// LetterAt Буква загаданного слова на позиции i (0-4).
// Возвращает false, если раунд не активен или позиция вне слова
func (e *Engine) LetterAt(i int) (string, bool) {
	if !e.IsActive() || i < 0 || i >= len(e.target) {
		return "", false
	}
	return string(e.target[i]), true
}

// HasLetter Есть ли буква в загаданном слове
func (e *Engine) HasLetter(letter string) bool {
	if !e.IsActive() {
		return false
	}
	return strings.Contains(e.target, strings.ToUpper(letter))
}
