package mocks

import "fmt"

// MockLogger は出力したメッセージを記録するLoggerです
type MockLogger struct {
	Messages []string
}

// Printf はメッセージを記録します
func (l *MockLogger) Printf(format string, a ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, a...))
}
