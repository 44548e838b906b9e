// File: registry.go
// Title: Command Registry
// Description: Holds the objects and methods the engine can evaluate, plus
//              aliases and generated abbreviations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Simplified registry using standard errors
// - 2026-10-16 v0.2.0: Methods carry handlers; structured errors; lo helpers

package calc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
)

// HandlerFunc evaluates a resolved call
type HandlerFunc func(ctx context.Context, call *Call) (interface{}, error)

// Object groups related methods, e.g. TRIG
type Object struct {
	Name        string
	Description string
	Methods     map[string]*Method
}

// Method describes one OBJECT.METHOD command
type Method struct {
	Name        string
	Description string
	Usage       string   // argument synopsis, e.g. "n r"
	MinArgs     int
	MaxArgs     int      // -1 for no limit
	Options     []string // accepted option keys
	Handler     HandlerFunc
}

// Options configures registry behavior
type Options struct {
	Logger              *mdwlog.Logger
	EnableAbbreviations bool
	EnableAliases       bool
}

// Registry maps command names to methods. It is safe for concurrent use.
type Registry struct {
	objects       map[string]*Object
	abbreviations map[string]string
	aliases       map[string]string
	logger        *mdwlog.Logger
	mutex         sync.RWMutex
	options       Options
}

// NewRegistry creates an empty registry
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Registry{
		objects:       make(map[string]*Object),
		abbreviations: make(map[string]string),
		aliases:       make(map[string]string),
		logger:        opts.Logger.WithField("component", "calc-registry"),
		options:       opts,
	}
}

// RegisterObject adds an object. Object and method names are stored upper case.
func (r *Registry) RegisterObject(obj *Object) error {
	if obj == nil {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "RegisterObject", nil, "object definition")
	}
	if !IsValidIdentifier(obj.Name) {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "RegisterObject", obj.Name, "identifier")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := strings.ToUpper(obj.Name)
	if _, exists := r.objects[name]; exists {
		return mdwerror.New(fmt.Sprintf("object %s already registered", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calc.RegisterObject")
	}

	methods := make(map[string]*Method, len(obj.Methods))
	for key, m := range obj.Methods {
		if m == nil || m.Handler == nil {
			return mdwerrors.InputError(mdwerrors.ModuleCalc, "RegisterObject", name+"."+key, "method with handler")
		}
		m.Name = strings.ToUpper(key)
		methods[m.Name] = m
	}
	obj.Name = name
	obj.Methods = methods
	r.objects[name] = obj

	r.logger.Debug("object registered", mdwlog.Fields{
		"object":      name,
		"methodCount": len(methods),
	})

	if r.options.EnableAbbreviations {
		r.updateAbbreviations()
	}
	return nil
}

// RegisterAlias makes alias a shorthand for the command prefix it expands to.
// Arguments following the alias are appended to the expansion.
func (r *Registry) RegisterAlias(alias, command string) error {
	if !r.options.EnableAliases {
		return mdwerror.New("aliases are disabled in this registry").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calc.RegisterAlias")
	}
	if !IsValidIdentifier(alias) {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "RegisterAlias", alias, "identifier")
	}
	if strings.TrimSpace(command) == "" {
		return mdwerrors.InputError(mdwerrors.ModuleCalc, "RegisterAlias", command, "non-empty command")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.aliases[strings.ToUpper(alias)] = strings.TrimSpace(command)
	return nil
}

// ResolveAlias returns the expansion of alias, or alias itself
func (r *Registry) ResolveAlias(alias string) string {
	if !r.options.EnableAliases {
		return alias
	}
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if command, exists := r.aliases[strings.ToUpper(alias)]; exists {
		return command
	}
	return alias
}

// ExpandAbbreviation expands OBJ.MTH to its full command name, or returns
// the input unchanged
func (r *Registry) ExpandAbbreviation(abbrev string) string {
	if !r.options.EnableAbbreviations {
		return abbrev
	}
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if expanded, exists := r.abbreviations[strings.ToUpper(abbrev)]; exists {
		return expanded
	}
	return abbrev
}

// Lookup resolves object and method, expanding abbreviations. Unknown names
// yield an UNKNOWN_COMMAND error.
func (r *Registry) Lookup(object, method string) (*Object, *Method, error) {
	object, method = strings.ToUpper(object), strings.ToUpper(method)
	if full := r.ExpandAbbreviation(object + "." + method); full != object+"."+method {
		object, method, _ = strings.Cut(full, ".")
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	obj, exists := r.objects[object]
	if !exists {
		return nil, nil, mdwerror.New(fmt.Sprintf("unknown object: %s", object)).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation("calc.Lookup").
			WithDetail("object", object)
	}
	m, exists := obj.Methods[method]
	if !exists {
		return nil, nil, mdwerror.New(fmt.Sprintf("unknown method %s for object %s", method, object)).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation("calc.Lookup").
			WithDetails(map[string]interface{}{"object": object, "method": method})
	}
	return obj, m, nil
}

// ObjectNames returns the sorted object names
func (r *Registry) ObjectNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := lo.Keys(r.objects)
	sort.Strings(names)
	return names
}

// MethodNames returns the sorted method names of object
func (r *Registry) MethodNames(object string) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	obj, exists := r.objects[strings.ToUpper(object)]
	if !exists {
		return []string{}
	}
	names := lo.Keys(obj.Methods)
	sort.Strings(names)
	return names
}

// Object returns the definition of object
func (r *Registry) Object(object string) (*Object, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	obj, ok := r.objects[strings.ToUpper(object)]
	return obj, ok
}

// Commands returns every OBJECT.METHOD name, sorted
func (r *Registry) Commands() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	commands := lo.FlatMap(lo.Values(r.objects), func(obj *Object, _ int) []string {
		return lo.Map(lo.Keys(obj.Methods), func(m string, _ int) string {
			return obj.Name + "." + m
		})
	})
	sort.Strings(commands)
	return commands
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return lo.Assign(r.aliases)
}

// Abbreviations returns a copy of the abbreviation table
func (r *Registry) Abbreviations() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return lo.Assign(r.abbreviations)
}

// updateAbbreviations regenerates the table. Abbreviations that collide with
// each other or with a real command name are left out. Caller holds the lock.
func (r *Registry) updateAbbreviations() {
	candidates := make(map[string][]string)
	taken := make(map[string]bool)
	for objName, obj := range r.objects {
		for methodName := range obj.Methods {
			full := objName + "." + methodName
			taken[full] = true
			abbrev := generateAbbreviation(objName) + "." + generateAbbreviation(methodName)
			if abbrev != full {
				candidates[abbrev] = append(candidates[abbrev], full)
			}
		}
	}

	r.abbreviations = make(map[string]string)
	for abbrev, fulls := range candidates {
		if len(fulls) == 1 && !taken[abbrev] {
			r.abbreviations[abbrev] = fulls[0]
		}
	}
}

// generateAbbreviation keeps the first letter and the following consonants
// up to three characters
func generateAbbreviation(name string) string {
	if len(name) <= 3 {
		return name
	}

	var abbrev strings.Builder
	for i, ch := range name {
		if i == 0 || !strings.ContainsRune("AEIOU", ch) {
			abbrev.WriteRune(ch)
			if abbrev.Len() >= 3 {
				break
			}
		}
	}
	if abbrev.Len() >= 3 {
		return abbrev.String()
	}
	return name[:3]
}
