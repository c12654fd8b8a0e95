package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCode возвращает равномерно распределенный 6-значный код
// из диапазона [100000, 999999] - без ведущих нулей и усечения
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
