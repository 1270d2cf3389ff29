// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package logging builds the zap logger used by the nios command and
// bridges it to the nios.Logger interface.
package logging

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/netascode/go-nios"
)

// Rotation limits of the log file
const (
	MaxFileSizeMB  = 1
	MaxFileBackups = 1
)

// Options configures New
type Options struct {
	// Debug lowers the level of both outputs to debug
	Debug bool

	// File is the rotating log file; empty disables file logging
	File string

	// Console receives human readable output, os.Stderr when nil
	Console io.Writer
}

// New returns a logger writing to the console and a rotating file
//
// The console output is human readable. The file output is JSON and
// rotates once it exceeds MaxFileSizeMB.
func New(opts Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxFileSizeMB,
			MaxBackups: MaxFileBackups,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// Adapter exposes a zap logger as a nios.Logger
type Adapter struct {
	log *zap.SugaredLogger
}

var _ nios.Logger = (*Adapter)(nil)

// NewAdapter wraps l for use with nios.WithLogger
func NewAdapter(l *zap.Logger) *Adapter {
	return &Adapter{log: l.Sugar()}
}

func (a *Adapter) Debug(_ context.Context, msg string, keysAndValues ...any) {
	a.log.Debugw(msg, keysAndValues...)
}

func (a *Adapter) Info(_ context.Context, msg string, keysAndValues ...any) {
	a.log.Infow(msg, keysAndValues...)
}

func (a *Adapter) Warn(_ context.Context, msg string, keysAndValues ...any) {
	a.log.Warnw(msg, keysAndValues...)
}

func (a *Adapter) Error(_ context.Context, msg string, keysAndValues ...any) {
	a.log.Errorw(msg, keysAndValues...)
}
