// Package settingvalue реализует типизированное представление значения
// настройки привилегий. Значения хранятся в базе строками и превращаются
// при каждом чтении в вариант Bool | Number | String.
//
// Порядок разбора фиксирован: литералы "true"/"false" становятся булевыми,
// затем строка, проходящая числовой разбор и непустая после обрезки пробелов,
// становится числом, всё остальное остаётся строкой. Именно поэтому "0" — это
// число, а "no" — строка.
package settingvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind определяет тип распарсенного значения.
type Kind int

const (
	// KindString — значение осталось строкой.
	KindString Kind = iota
	// KindBool — значение распарсено из литерала "true"/"false".
	KindBool
	// KindNumber — значение распарсено как число.
	KindNumber
)

// Value — вариант Bool | Number | String. Нулевое значение — пустая строка.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
}

// Parse превращает сырую строку из хранилища в Value.
// Функция чистая: одинаковый вход всегда даёт одинаковый результат.
func Parse(raw string) Value {
	switch raw {
	case "true":
		return Value{Kind: KindBool, Bool: true}
	case "false":
		return Value{Kind: KindBool, Bool: false}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Value{Kind: KindNumber, Number: n}
		}
	}
	return Value{Kind: KindString, Str: raw}
}

// String возвращает строковую форму значения, пригодную для записи в хранилище.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return v.Str
	}
}

// AsBool возвращает булево значение. Для небулевых вариантов — false:
// отсутствующий или нечитаемый флаг трактуется как выключенный.
func (v Value) AsBool() bool {
	return v.Kind == KindBool && v.Bool
}

// AsFloat возвращает числовое значение и признак того, что вариант числовой.
func (v Value) AsFloat() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// AsInt возвращает целую часть числового значения.
func (v Value) AsInt() (int, bool) {
	n, ok := v.AsFloat()
	if !ok {
		return 0, false
	}
	return int(n), true
}

// MarshalJSON сериализует значение в родной JSON-тип, а не в строку,
// чтобы клиенты получали флаги булевыми, а пороги числами.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNumber:
		return json.Marshal(v.Number)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON восстанавливает вариант из родного JSON-типа.
// Используется при чтении карты привилегий из кеша.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Value{Kind: KindBool, Bool: b}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Value{Kind: KindNumber, Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Kind: KindString, Str: s}
		return nil
	}
	return fmt.Errorf("settingvalue: unsupported json value %s", string(data))
}
