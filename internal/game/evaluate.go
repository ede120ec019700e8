package game

// Число букв в загаданном слове
const WordLength = 5

// LetterStatus Статус одной буквы в догадке
type LetterStatus string

const (
	// Буква на своём месте
	StatusCorrect LetterStatus = "correct"
	// Буква есть в слове, но на другом месте
	StatusPresent LetterStatus = "present"
	// Буквы в слове нет
	StatusAbsent LetterStatus = "absent"
)

// LetterResult Результат оценки одной буквы догадки
type LetterResult struct {
	Letter string
	Status LetterStatus
}

// Evaluate Сравнивает догадку с загаданным словом по классическому
// двухпроходному алгоритму Wordle.
// Оба слова должны быть уже нормализованы (5 букв A-Z в верхнем регистре).
//
// Первый проход: отмечаем точные совпадения и считаем оставшиеся буквы цели.
// Второй проход: для несовпавших позиций раздаём "present" пока есть
// неиспользованные вхождения буквы, иначе "absent".
// Так буква не может быть отмечена чаще, чем встречается в загаданном слове.
func Evaluate(guess, target string) []LetterResult {
	res := make([]LetterResult, WordLength)

	// Счётчик оставшихся букв цели (A-Z)
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		res[i] = LetterResult{Letter: string(guess[i]), Status: StatusAbsent}
		if guess[i] == target[i] {
			res[i].Status = StatusCorrect
		} else {
			counts[target[i]-'A']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i].Status == StatusCorrect {
			continue
		}
		j := int(guess[i] - 'A')
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i].Status = StatusPresent
			counts[j]--
		}
	}

	return res
}

// AllCorrect Возвращает true, если все буквы догадки на своих местах
func AllCorrect(res []LetterResult) bool {
	for _, lr := range res {
		if lr.Status != StatusCorrect {
			return false
		}
	}
	return true
}
