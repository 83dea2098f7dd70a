// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger defines the nameops log functions
type Logger interface {
	Debugf(f string, v ...interface{})
	Debug(v ...interface{})
	Infof(f string, v ...interface{})
	Info(v ...interface{})
	Warnf(f string, v ...interface{})
	Warn(v ...interface{})
	Errorf(f string, v ...interface{})
	Error(v ...interface{})
	Fatalf(f string, v ...interface{})
	Fatal(v ...interface{})
	Panicf(f string, v ...interface{})
	Panic(v ...interface{})
}

// Config is the logger configuration read from the config file.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text|json
}

var defaultLogrusLogger = logrus.New()

func init() {
	defaultLogrusLogger.Out = os.Stderr
	defaultLogrusLogger.Level = logrus.InfoLevel
}

// Setup configures all loggers globally.
func Setup(cfg *Config) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		defaultLogrusLogger.Level = level
	}
	if cfg.Format == "json" {
		defaultLogrusLogger.Formatter = new(logrus.JSONFormatter)
	}
}

// SetLogLevel sets all loggers' level, returning false on an unknown name.
func SetLogLevel(newLevel string) bool {
	level, err := logrus.ParseLevel(newLevel)
	if err != nil {
		return false
	}
	defaultLogrusLogger.Level = level
	return true
}

// NewLogger creates a new logger tagged with the owning package.
func NewLogger(tag string) Logger {
	return &logrusLogger{
		logger: defaultLogrusLogger,
		tag:    tag,
	}
}

type logrusLogger struct {
	logger *logrus.Logger
	tag    string
}

var _ Logger = (*logrusLogger)(nil)

func (log *logrusLogger) entry() *logrus.Entry {
	return log.logger.WithFields(logrus.Fields{
		"tag": log.tag,
	})
}

// Debugf prints Debug level log
func (log *logrusLogger) Debugf(f string, v ...interface{}) {
	log.entry().Debugf(f, v...)
}

// Debug prints Debug level log
func (log *logrusLogger) Debug(v ...interface{}) {
	log.entry().Debug(v...)
}

// Infof prints Info level log
func (log *logrusLogger) Infof(f string, v ...interface{}) {
	log.entry().Infof(f, v...)
}

// Info prints Info level log
func (log *logrusLogger) Info(v ...interface{}) {
	log.entry().Info(v...)
}

// Warnf prints Warn level log
func (log *logrusLogger) Warnf(f string, v ...interface{}) {
	log.entry().Warnf(f, v...)
}

// Warn prints Warn level log
func (log *logrusLogger) Warn(v ...interface{}) {
	log.entry().Warn(v...)
}

// Errorf prints Error level log
func (log *logrusLogger) Errorf(f string, v ...interface{}) {
	log.entry().Errorf(f, v...)
}

// Error prints Error level log
func (log *logrusLogger) Error(v ...interface{}) {
	log.entry().Error(v...)
}

// Fatalf prints Fatal level log
func (log *logrusLogger) Fatalf(f string, v ...interface{}) {
	log.entry().Fatalf(f, v...)
}

// Fatal prints Fatal level log
func (log *logrusLogger) Fatal(v ...interface{}) {
	log.entry().Fatal(v...)
}

// Panicf prints Panic level log
func (log *logrusLogger) Panicf(f string, v ...interface{}) {
	log.entry().Panicf(f, v...)
}

// Panic prints Panic level log
func (log *logrusLogger) Panic(v ...interface{}) {
	log.entry().Panic(v...)
}
