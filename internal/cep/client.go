package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrNotFound means the service answered but knows no such postal code.
	ErrNotFound = errors.New("CEP não encontrado")
	// ErrInvalidCEP means the input does not have exactly 8 digits.
	ErrInvalidCEP = errors.New("CEP deve ter 8 dígitos (XXXXX-XXX)")
	// ErrLookupFailed covers transport, non-2xx and decode failures.
	ErrLookupFailed = errors.New("Erro ao buscar CEP. Verifique sua conexão.")
)

// Address is the subset of the ViaCEP response the pages display.
type Address struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Client queries a ViaCEP-compatible postal code service. Lookups are
// read-only and unauthenticated; failures are terminal per attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Digits strips everything but digits, capped at 8.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == 8 {
				break
			}
		}
	}
	return b.String()
}

// Format applies the NNNNN-NNN display mask to whatever digits are present.
func Format(raw string) string {
	digits := Digits(raw)
	if len(digits) > 5 {
		return digits[:5] + "-" + digits[5:]
	}
	return digits
}

// Valid reports whether the input carries exactly 8 digits.
func Valid(raw string) bool {
	return len(Digits(raw)) == 8
}

// Lookup resolves a postal code to an address. The context bounds the
// request; there are no retries.
func (c *Client) Lookup(ctx context.Context, rawCEP string) (*Address, error) {
	if !Valid(rawCEP) {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, Digits(rawCEP))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrLookupFailed
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrLookupFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrLookupFailed
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, ErrLookupFailed
	}

	if addr.Erro {
		return nil, ErrNotFound
	}

	return &addr, nil
}
