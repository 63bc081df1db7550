package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func GetPassword() (string, error) {
	fmt.Println("-Enter password")
	p, err := readPassword()
	if err != nil {
		return "", err
	}
	fmt.Println()
	return string(p), nil
}

// GetAmount reads a positive decimal amount.
func GetAmount(reader *bufio.Reader, prompt string) (float64, error) {
	s, err := GetSimpleText(reader, prompt)
	if err != nil {
		return 0, err
	}
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}

// GetDate reads a calendar date; empty input means today.
func GetDate(reader *bufio.Reader, prompt string) (models.Date, error) {
	s, err := GetSimpleText(reader, prompt)
	if err != nil {
		return models.Date{}, err
	}
	if s == "" {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}
