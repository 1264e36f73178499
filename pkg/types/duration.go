package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedDuration возвращается, когда строка длительности не подходит ни под один из форматов
var ErrMalformedDuration = errors.New("malformed duration")

var (
	hourUnits = map[string]struct{}{
		"h": {}, "hr": {}, "hrs": {}, "hora": {}, "horas": {},
	}
	minuteUnits = map[string]struct{}{
		"m": {}, "min": {}, "mins": {}, "minuto": {}, "minutos": {},
	}
	connectors = map[string]struct{}{
		"y": {}, "and": {},
	}
)

type durationToken struct {
	number int
	word   string
	isNum  bool
}

// ParseDuration переводит длительность услуги из каталога в минуты.
//
// Поддерживаемые формы (пробелы и регистр не важны):
//   - "45 min", "45min", "45 minutos"  -> 45
//   - "1hr", "2hrs", "1 hora"          -> 60, 120, 60
//   - "1hr y 30 min", "1h 30m"         -> 90
//   - "45"                             -> 45 (голое число трактуется как минуты)
func ParseDuration(text string) (int, error) {
	tokens, err := tokenizeDuration(text)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 || !tokens[0].isNum {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
	}

	first := tokens[0]
	if len(tokens) == 1 {
		return first.number, nil
	}

	unit := tokens[1]
	if unit.isNum {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
	}

	if _, ok := minuteUnits[unit.word]; ok {
		if len(tokens) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
		}
		return first.number, nil
	}

	if _, ok := hourUnits[unit.word]; !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrMalformedDuration, unit.word)
	}

	total := first.number * minutesPerHour
	rest := tokens[2:]
	if len(rest) == 0 {
		return total, nil
	}

	if !rest[0].isNum {
		if _, ok := connectors[rest[0].word]; !ok {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
		}
		rest = rest[1:]
	}

	// После часов допустимо только "<M> min"
	if len(rest) != 2 || !rest[0].isNum || rest[1].isNum {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
	}
	if _, ok := minuteUnits[rest[1].word]; !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrMalformedDuration, rest[1].word)
	}

	return total + rest[0].number, nil
}

// DurationOrZero возвращает длительность в минутах или 0, если строка некорректна.
// Используется при построении календаря, где некорректная длительность не должна прерывать отрисовку.
func DurationOrZero(text string) int {
	minutes, err := ParseDuration(text)
	if err != nil {
		return 0
	}
	return minutes
}

func tokenizeDuration(text string) ([]durationToken, error) {
	tokens := make([]durationToken, 0, 4)
	runes := []rune(strings.ToLower(text))

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
			}
			tokens = append(tokens, durationToken{number: n, isNum: true})

		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			tokens = append(tokens, durationToken{word: string(runes[start:i])})

		default:
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrMalformedDuration, r, text)
		}
	}

	return tokens, nil
}
