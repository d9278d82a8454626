package query

import (
	"slices"
	"strings"

	"github.com/spf13/cast"
)

type Param struct {
	Key   string
	Value any
}

// Params хранит параметры в порядке добавления: от порядка зависит
// итоговая строка запроса, а значит и подпись.
type Params []Param

// New принимает пары ключ/значение. Для нечётного числа аргументов
// последний ключ получает пустое значение.
func New(kv ...any) Params {
	p := make(Params, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var value any = ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		p = p.Set(cast.ToString(kv[i]), value)
	}
	return p
}

// FromMap раскладывает map в Params с сортировкой ключей.
func FromMap(m map[string]any) Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	p := make(Params, 0, len(m))
	for _, k := range keys {
		p = p.Set(k, m[k])
	}
	return p
}

func (p Params) Set(key string, value any) Params {
	for i := range p {
		if strings.EqualFold(p[i].Key, key) {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) (string, bool) {
	for _, item := range p {
		if strings.EqualFold(item.Key, key) {
			return cast.ToString(item.Value), true
		}
	}
	return "", false
}

func (p Params) Len() int {
	return len(p)
}

func (p Params) Clone() Params {
	return slices.Clone(p)
}

func (p Param) String() string {
	return cast.ToString(p.Value)
}
