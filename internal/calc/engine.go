// File: engine.go
// Title: Evaluation Engine
// Description: Parses command lines, resolves them against the registry and
//              evaluates them with the session settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-16 v0.2.0: In-process evaluation of numeric commands

package calc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
	"github.com/msto63/numcore/foundation/core/i18n"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
)

// EngineOptions configures the engine
type EngineOptions struct {
	Logger   *mdwlog.Logger
	Registry *Registry // defaults to NewDefaultRegistry
	Settings *Settings // defaults to DefaultSettings
}

// Result is the outcome of evaluating one command line
type Result struct {
	Command  *Command
	Value    interface{}
	Text     string
	Duration time.Duration
}

// Engine evaluates command lines. It is safe for concurrent use.
type Engine struct {
	registry *Registry
	logger   *mdwlog.Logger

	mu       sync.RWMutex
	settings Settings
	numbers  *i18n.NumberFormat
}

// New creates an engine
func New(opts EngineOptions) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "calc-engine")

	if opts.Registry == nil {
		reg, err := NewDefaultRegistry(logger)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to initialize command registry").
				WithCode(mdwerror.CodeInternal).
				WithOperation("calc.New")
		}
		opts.Registry = reg
	}

	settings := DefaultSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}

	e := &Engine{registry: opts.Registry, logger: logger}
	if err := e.SetSettings(settings); err != nil {
		return nil, err
	}

	logger.Debug("calc engine initialized", mdwlog.Fields{
		"objects":   len(opts.Registry.ObjectNames()),
		"locale":    settings.Locale,
		"precision": settings.Precision,
		"unit":      settings.Unit.String(),
	})
	return e, nil
}

// Registry returns the command registry
func (e *Engine) Registry() *Registry { return e.registry }

// Settings returns the current session settings
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// SetSettings replaces the session settings
func (e *Engine) SetSettings(s Settings) error {
	if s.Precision != 32 && s.Precision != 64 {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "SetSettings", s.Precision, "32 or 64")
	}
	if s.MaxFractionDigits < 0 {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "SetSettings", s.MaxFractionDigits, "non-negative digit count")
	}
	nf, err := i18n.NewNumberFormat(s.Locale)
	if err != nil {
		return err
	}
	s.Locale = nf.Locale()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
	e.numbers = nf
	return nil
}

// NumberFormat returns the number format of the session locale
func (e *Engine) NumberFormat() *i18n.NumberFormat {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.numbers
}

// Eval evaluates one command line
func (e *Engine) Eval(ctx context.Context, line string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "evaluation cancelled").
			WithCode(mdwerror.CodeCancelled).
			WithOperation("calc.Eval")
	}

	line = e.expandAlias(strings.TrimSpace(line))
	if line == "" {
		return nil, mdwerrors.InputError(mdwerrors.ModuleCalc, "Eval", line, "OBJECT.METHOD [args] [key=value]")
	}

	cmd, err := Parse(line)
	if err != nil {
		return nil, err
	}

	_, method, err := e.registry.Lookup(cmd.Object, cmd.Method)
	if err != nil {
		return nil, err
	}
	cmd.Object, cmd.Method, _ = strings.Cut(e.registry.ExpandAbbreviation(cmd.Name()), ".")

	if err := checkCall(cmd, method); err != nil {
		return nil, err
	}

	e.mu.RLock()
	call := &Call{Command: cmd, Method: method, Settings: e.settings, Numbers: e.numbers, Engine: e}
	e.mu.RUnlock()

	timer := e.logger.StartTimer("eval").WithField("command", cmd.Name())
	value, err := method.Handler(ctx, call)
	if err != nil {
		timer.Cancel()
		e.logger.Debug("eval failed", mdwlog.Fields{"command": cmd.Name(), "error": err.Error()})
		return nil, err
	}
	elapsed := timer.Stop()

	return &Result{
		Command:  cmd,
		Value:    value,
		Text:     FormatValue(value, call.Numbers, call.Settings.MaxFractionDigits),
		Duration: elapsed,
	}, nil
}

// expandAlias replaces a leading alias with its expansion
func (e *Engine) expandAlias(line string) string {
	head, rest, _ := strings.Cut(line, " ")
	if head == "" || strings.Contains(head, ".") {
		return line
	}
	expanded := e.registry.ResolveAlias(head)
	if expanded == head {
		return line
	}
	return strings.TrimSpace(expanded + " " + rest)
}

// checkCall validates argument count and option names
func checkCall(cmd *Command, m *Method) error {
	n := len(cmd.Args)
	if n < m.MinArgs || (m.MaxArgs >= 0 && n > m.MaxArgs) {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, cmd.Name(), cmd.Args, usage(cmd, m)).
			WithCode(mdwerror.CodeInvalidArgument).
			WithDetail("argument_count", n)
	}
	for key := range cmd.Options {
		if !containsFold(m.Options, key) {
			return mdwerrors.InputError(mdwerrors.ModuleCalc, cmd.Name(), key, fmt.Sprintf("one of %v", m.Options)).
				WithCode(mdwerror.CodeInvalidArgument).
				WithDetail("option", key)
		}
	}
	return nil
}

func usage(cmd *Command, m *Method) string {
	parts := []string{cmd.Name()}
	if m.Usage != "" {
		parts = append(parts, m.Usage)
	}
	for _, o := range m.Options {
		parts = append(parts, "["+o+"=...]")
	}
	return strings.Join(parts, " ")
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
