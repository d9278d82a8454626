package bittrex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"bittrexapi/pkg/nonce"
	"bittrexapi/pkg/query"
)

// Sign считает HMAC-SHA512 от итогового URL. Подписывать нужно строку после
// добавления всех параметров, включая apikey и nonce.
func Sign(canonicalURL, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(canonicalURL))
	return hex.EncodeToString(mac.Sum(nil))
}

type Signer struct {
	settings Settings
	nonces   *nonce.Generator
}

func NewSigner(settings Settings, nonces *nonce.Generator) *Signer {
	if nonces == nil {
		nonces = nonce.New(nonce.WithWindow(settings.NonceWindow))
	}
	return &Signer{
		settings: settings,
		nonces:   nonces,
	}
}

func (s *Signer) Credentials(baseURL string) (string, error) {
	return query.Apply(baseURL, query.New(
		"apikey", s.settings.APIKey,
		"nonce", s.nonces.Next(),
	))
}

// Apply дописывает параметры в URL шаблона и подписывает результат.
// Шаблон не меняется.
func (s *Signer) Apply(tmpl *Request, params query.Params) (*Request, error) {
	req := tmpl.Clone()

	target, err := query.Apply(req.URL, params)
	if err != nil {
		return nil, err
	}

	req.URL = target
	req.Header.Set(SignatureHeader, Sign(target, s.settings.APISecret))
	req.Timeout = s.settings.RequestTimeout

	return req, nil
}

func (s *Signer) Authenticated(baseURL string, params query.Params) (*Request, error) {
	credentialed, err := s.Credentials(baseURL)
	if err != nil {
		return nil, err
	}
	return s.Apply(NewRequest(credentialed, s.settings), params)
}
