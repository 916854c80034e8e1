// Package logging builds the logrus logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, format and destination.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // text, json
	File       string // rotate into this file instead of stderr
	MaxSize    int    // MB
	MaxBackups int
}

// New returns a configured logger and a func that releases its output.
// Without a File the logger writes to stderr, keeping stdout for results.
func New(cfg Config) (*logrus.Logger, func() error, error) {
	return newWithStderr(cfg, os.Stderr)
}

func newWithStderr(cfg Config, stderr io.Writer) (*logrus.Logger, func() error, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	log := logrus.New()
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	closer := func() error { return nil }
	if cfg.File == "" {
		log.SetOutput(stderr)

		return log, closer, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
	}
	log.SetOutput(file)

	return log, file.Close, nil
}
