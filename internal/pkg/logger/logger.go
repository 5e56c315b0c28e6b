package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger define a interface para logging estruturado.
// Handlers, serviços e repositórios dependem apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry define a estrutura de uma linha de log em JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// SimpleLogger escreve uma entrada JSON por linha no writer configurado.
type SimpleLogger struct {
	mu       sync.Mutex
	out      *log.Logger
	minLevel int
	exit     func(code int)
}

// NewLogger cria um Logger que escreve em stdout.
func NewLogger(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter cria um Logger que escreve no writer informado (útil em testes).
func NewWithWriter(level string, w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		out:      log.New(w, "", 0),
		minLevel: parseLevel(level),
		exit:     os.Exit,
	}
}

// Nop retorna um Logger que descarta tudo.
func Nop() Logger {
	return NewWithWriter("fatal", io.Discard)
}

func parseLevel(level string) int {
	if v, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return v
	}
	return levels["info"]
}

func (l *SimpleLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[level] < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     strings.ToUpper(level),
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// campos não serializáveis: registra sem eles
		entry.Fields = nil
		jsonBytes, _ = json.Marshal(entry)
	}

	l.mu.Lock()
	l.out.Println(string(jsonBytes))
	l.mu.Unlock()

	if level == "fatal" {
		l.exit(1)
	}
}

func (l *SimpleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *SimpleLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *SimpleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *SimpleLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

func (l *SimpleLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
}
