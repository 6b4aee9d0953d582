package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх стандартных потоков процесса
type Stdio struct{}

func NewStdio() IO {
	return &Stdio{}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (s *Stdio) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

// ReadInput читает одну строку ответа на prompt, обрезая
// перевод строки и окружающие пробелы
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword читает пароль без эха терминала
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
