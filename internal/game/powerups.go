package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// PowerUpType Тип пауэрапа. Набор закрытый: эффекты диспатчатся
// через таблицу Effects, без открытой иерархии типов
type PowerUpType string

const (
	// Сканер: проверяет наличие гласной в слове
	PowerUpScanner PowerUpType = "scanner"
	// Счастливый выстрел: раскрывает букву на случайной позиции
	PowerUpLuckyShot PowerUpType = "lucky_shot"
	// Дополнительная жизнь: +1 к лимиту попыток
	PowerUpExtraLife PowerUpType = "extra_life"
	// Снайпер: раскрывает первую букву слова
	PowerUpSniper PowerUpType = "sniper"
)

// EffectFunc Эффект пауэрапа. Читает движок (и необязательный ввод игрока)
// и возвращает информационное сообщение. Денег эффекты не касаются:
// списание стоимости — отдельный, предшествующий шаг в оркестраторе
type EffectFunc func(e *Engine, input string) string

// Effects Таблица эффектов по типу пауэрапа
func Effects() map[PowerUpType]EffectFunc {
	return map[PowerUpType]EffectFunc{
		PowerUpScanner:   scannerEffect,
		PowerUpLuckyShot: luckyShotEffect,
		PowerUpExtraLife: extraLifeEffect,
		PowerUpSniper:    sniperEffect,
	}
}

var scannerVowels = []string{"A", "E", "I", "O", "U", "Y"}

// scannerEffect Сообщает, есть ли указанная гласная в загаданном слове.
// Без валидной гласной возвращает подсказку, не трогая состояние движка
func scannerEffect(e *Engine, input string) string {
	if input == "" {
		return "Provide a vowel to scan for."
	}

	vowel := strings.ToUpper(strings.TrimSpace(input))
	ok := false
	for _, v := range scannerVowels {
		if v == vowel {
			ok = true
			break
		}
	}
	if !ok {
		return "Scanner accepts a single vowel (A, E, I, O, U, Y)."
	}

	if e.HasLetter(vowel) {
		return fmt.Sprintf("%s is present.", vowel)
	}
	return fmt.Sprintf("%s is not present.", vowel)
}

// luckyShotEffect Раскрывает букву на случайной позиции.
// В сообщении позиция нумеруется с 1
func luckyShotEffect(e *Engine, _ string) string {
	i := rand.Intn(WordLength)
	letter, ok := e.LetterAt(i)
	if !ok {
		return "Lucky Shot failed (round not active)."
	}
	return fmt.Sprintf("Lucky Shot reveals position %d: %s", i+1, letter)
}

// extraLifeEffect Даёт одну дополнительную попытку.
// Единственный эффект с долговременным побочным действием
func extraLifeEffect(e *Engine, _ string) string {
	e.GrantExtraAttempt()
	return fmt.Sprintf("Extra attempt granted. Max attempts: %d.", e.AttemptLimit())
}

// sniperEffect Раскрывает первую букву загаданного слова
func sniperEffect(e *Engine, _ string) string {
	letter, ok := e.LetterAt(0)
	if !ok {
		return "First letter unavailable."
	}
	return fmt.Sprintf("First letter: %s.", letter)
}
