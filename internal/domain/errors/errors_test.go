package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("wrapped: %w", ErrInvalidEra)) {
		t.Error("esperava erro de validação")
	}
	if IsValidation(ErrTagNotFound) {
		t.Error("not found não é erro de validação")
	}
}

func TestMessageID(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"sentinela de negócio", ErrAdminRequired, "error.admin_required"},
		{"sentinela de validação", ErrInvalidVoteValue, "error.invalid_vote_value"},
		{"erro encapsulado", fmt.Errorf("exchange: %w", ErrOAuthExchangeFailed), "error.oauth_exchange_failed"},
		{"marca duplicada", &BrandExistsError{Name: "Lee", Status: "verified"}, "error.brand_already_exists"},
		{"erro desconhecido", errors.New("connection reset"), "error.generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageID(tt.err); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}
}

func TestBrandExistsError(t *testing.T) {
	err := &BrandExistsError{Name: "Levi's", Status: "pending"}

	if !errors.Is(err, ErrBrandAlreadyExists) {
		t.Error("esperava que BrandExistsError encapsulasse ErrBrandAlreadyExists")
	}

	params := err.Params()
	if params["Name"] != "Levi's" || params["Status"] != "pending" {
		t.Errorf("parâmetros inesperados: %v", params)
	}
}
