package query

import (
	"fmt"
	"net/url"
	"strings"
)

// SetParameter заменяет key=value на месте (ключ сравнивается без учёта
// регистра) или дописывает пару в конец запроса. Остальные пары сохраняют
// исходный текст и порядок.
func SetParameter(rawURL, key, value string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("Не удалось разобрать URL %q: %w", rawURL, err)
	}

	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)

	pairs := splitQuery(u.RawQuery)
	out := make([]string, 0, len(pairs)+1)
	replaced := false

	for _, item := range pairs {
		if !strings.EqualFold(pairKey(item), key) {
			out = append(out, item)
			continue
		}
		if !replaced {
			out = append(out, pair)
			replaced = true
		}
	}

	if !replaced {
		out = append(out, pair)
	}

	u.RawQuery = strings.Join(out, "&")
	u.ForceQuery = false

	return u.String(), nil
}

func Apply(rawURL string, params Params) (string, error) {
	result := rawURL
	for _, p := range params {
		var err error
		result, err = SetParameter(result, p.Key, p.String())
		if err != nil {
			return "", err
		}
	}
	return result, nil
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}

	var pairs []string
	for _, item := range strings.Split(raw, "&") {
		if item != "" {
			pairs = append(pairs, item)
		}
	}
	return pairs
}

func pairKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}
