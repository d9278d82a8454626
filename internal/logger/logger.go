package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	Format     string
	Output     string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type Logger struct {
	log *logrus.Logger
}

func New(cfg Config) *Logger {
	log := logrus.New()

	toFile := cfg.Output != "" && cfg.Output != "stdout" && cfg.Output != "stderr"

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     !toFile,
			DisableColors:   toFile,
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	var writer io.Writer
	switch {
	case toFile:
		writer = &lumberjack.Logger{
			Filename:   cfg.Output,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
	case cfg.Output == "stderr":
		writer = os.Stderr
	default:
		writer = os.Stdout
	}

	log.SetOutput(writer)

	return &Logger{log: log}
}

// FieldLogger отдаётся в клиент биржи.
func (l *Logger) FieldLogger() logrus.FieldLogger {
	return l.log
}

func (l *Logger) Close() error {
	if closer, ok := l.log.Out.(io.Closer); ok && l.log.Out != os.Stdout && l.log.Out != os.Stderr {
		return closer.Close()
	}
	return nil
}

func (l *Logger) Debug(msg string) {
	l.log.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

func (l *Logger) Warn(msg string) {
	l.log.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

func (l *Logger) Fatal(msg string) {
	l.log.Fatal(msg)
}

func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

func (l *Logger) WithError(err error) *logrus.Entry {
	return l.log.WithError(err)
}

func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.log.WithField("component", component)
}

func (l *Logger) WithEndpoint(endpoint string) *logrus.Entry {
	return l.log.WithField("endpoint", endpoint)
}

func (l *Logger) WithMarket(market string) *logrus.Entry {
	return l.log.WithField("market", market)
}
