package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula o logrus com o ID de correlação da requisição
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField = "correlation_id"
	// CorrelationHeader é aceito de proxies e devolvido na resposta
	CorrelationHeader = "X-Request-ID"
)

type logger struct {
	entry *logrus.Entry
}

// L é a instância global usada pelos handlers e middlewares
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment indica ambiente local, onde o log sai em texto colorido
func IsDevelopment() bool {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	return env == "" || env == "development" || env == "dev"
}

// Setup configura formato e nível do logrus global
func Setup(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adiciona o ID de correlação do contexto, quando existir
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...any) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...any) {
	l.entry.Info(args...)
}

func (l *logger) Warn(args ...any) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...any) {
	l.entry.Error(args...)
}

// WithCorrelationID coloca o ID no contexto; sem ID recebido, gera um UUID
func WithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	correlationID = strings.TrimSpace(correlationID)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
