// Package iocli абстрагирует терминальный ввод-вывод клиента,
// чтобы команды CLI можно было тестировать без реального терминала.
package iocli

//go:generate moq -out io_mock.go . IO

// IO - терминал команды: вывод, интерактивные prompt-ы и скрытый
// ввод пароля
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
