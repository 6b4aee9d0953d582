package validation

import (
	"fmt"
	"regexp"
)

// ProductRefPattern определяет допустимый формат идентификатора товара
// Латинские буквы, цифры, дефис и нижнее подчеркивание, 1-64 символа
var ProductRefPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// MaxQuantity верхняя граница количества в одной позиции
// Защита от опечаток и переполнений, реальные стоки проверяет сервер
const MaxQuantity = 10000

// ValidateProductRef проверяет, что идентификатор товара соответствует формату
func ValidateProductRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("product ref cannot be empty")
	}

	if !ProductRefPattern.MatchString(ref) {
		return fmt.Errorf("product ref can only contain letters, numbers, hyphens and underscores (max 64 chars)")
	}

	return nil
}

// ValidateQuantity проверяет, что количество положительное и разумное
func ValidateQuantity(qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}

	if qty > MaxQuantity {
		return fmt.Errorf("quantity must not exceed %d", MaxQuantity)
	}

	return nil
}
