package words

import "math/rand"

// Словарь пятибуквенных слов для раундов
var words = []string{
	"apple",
	"brave",
	"candy",
	"daisy",
	"eagle",
	"flame",
	"grape",
	"house",
	"ivory",
	"joker",
	"knack",
	"lemon",
	"mango",
	"noble",
	"ocean",
	"pearl",
	"quilt",
	"river",
	"stone",
	"tiger",
	"ultra",
	"vivid",
	"wheat",
	"xenon",
	"yacht",
	"zebra",
}

// RandomWord Возвращает случайное слово словаря
func RandomWord() string {
	return words[rand.Intn(len(words))]
}

// Count Размер словаря
func Count() int {
	return len(words)
}
