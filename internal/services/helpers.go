package services

import (
	"strings"
	"time"
)

// MaxTextLength limita descrições e notas livres
const MaxTextLength = 2000

func currentYear() int {
	return time.Now().UTC().Year()
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
