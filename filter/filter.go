// Package filter selects notifications with expr-lang boolean expressions.
//
// Expressions see the notification fields ID, UserID, Type, Title, Text,
// Link, Read, Created and Actions, plus helpers:
//
//	not Read and Type == "team_invite"
//	daysSince(Created) > 30
//	containsText(Title, "sodium") or hasAction("Accept")
//	Created > daysAgo(7)
package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/modrinth-go/modrinth"
)

// DefaultCacheSize is the number of compiled expressions a compiler keeps
const DefaultCacheSize = 100

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	now        func() time.Time
	funcs      map[string]any
}

// Option configures a Compiler
type Option func(*Compiler)

// WithCache sets the size of the compile cache; zero disables it
func WithCache(size int) Option {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[string, *Filter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithFunctions adds helper functions available to expressions
func WithFunctions(funcs map[string]any) Option {
	return func(c *Compiler) {
		maps.Copy(c.funcs, funcs)
	}
}

// WithClock sets the time source used by date helpers
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

// Compiler compiles expressions into filters
type Compiler struct {
	funcs map[string]any
	now   func() time.Time
	cache *lruCache[string, *Filter]
}

// NewCompiler creates a compiler with a DefaultCacheSize cache
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		funcs: make(map[string]any),
		now:   time.Now,
		cache: newLRUCache[string, *Filter](DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile type-checks an expression against the notification environment.
// Unknown identifiers and non-boolean results are compilation errors.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(modrinth.Notification{}, time.Time{}, c.funcs)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		now:        c.now,
		funcs:      c.funcs,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Clear empties the compile cache
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// CacheSize returns the number of cached filters
func (c *Compiler) CacheSize() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Expression returns the source of the filter
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one notification
func (f *Filter) Match(n modrinth.Notification) (bool, error) {
	result, err := expr.Run(f.program, newEnv(n, f.now(), f.funcs))
	if err != nil {
		return false, &EvaluationError{
			Expression:     f.expression,
			NotificationID: n.ID,
			Err:            err,
		}
	}

	return result.(bool), nil
}

// Apply returns the notifications matching f, in their original order. A nil
// filter matches everything.
func Apply(f *Filter, notifications []modrinth.Notification) ([]modrinth.Notification, error) {
	if f == nil {
		return notifications, nil
	}

	matches := make([]modrinth.Notification, 0, len(notifications))
	for _, n := range notifications {
		ok, err := f.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, n)
		}
	}

	return matches, nil
}
