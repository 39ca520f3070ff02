package jmespath

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// JMESPath is the representation of a compiled JMES path query. A JMESPath is
// safe for concurrent use by multiple goroutines.
//
// As of version 1.10, the treeInterpreter object is no longer
// safe for concurrent use by multiple goroutines/ as it holds
// extra state that is mutated during expression evaluation.
//
// Therefore, the intr member is no longer part of the structure.
type JMESPath struct {
	ast ASTNode
}

// Compile parses a JMESPath expression and returns, if successful, a JMESPath
// object that can be used to match against data.
func Compile(expression string) (*JMESPath, error) {
	parser := NewParser()
	ast, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	return &JMESPath{ast: ast}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables holding compiled
// JMESPaths.
func MustCompile(expression string) *JMESPath {
	jmespath, err := Compile(expression)
	if err != nil {
		panic(`jmespath: Compile(` + strconv.Quote(expression) + `): ` + err.Error())
	}
	return jmespath
}

// Search evaluates a JMESPath expression against input data and returns the result.
func (jp *JMESPath) Search(data interface{}) (interface{}, error) {
	intr := newInterpreter(data)
	return intr.Execute(jp.ast, data)
}

// Search evaluates a JMESPath expression against input data using a
// package-level Runtime with default configuration (parse caching enabled,
// disable_visit_errors off). Most callers that don't need to tune those
// options should just call this.
func Search(expression string, data interface{}) (interface{}, error) {
	return defaultRuntime.Search(expression, data)
}

var defaultRuntime = NewRuntime()

// Runtime is a configurable, concurrency-safe JMESPath evaluator. Unlike the
// bare Compile/Search pair, it keeps a bounded LRU parse cache across calls
// and can be told to swallow evaluation-time errors instead of surfacing
// them.
type Runtime struct {
	cache              *parseCache
	disableVisitErrors bool
}

// RuntimeOption configures a Runtime at construction time.
type RuntimeOption func(*Runtime)

// WithParseCacheSize bounds the number of distinct expressions the Runtime
// keeps parsed ASTs for. Defaults to 64 when unset or given a value below 1.
func WithParseCacheSize(size int) RuntimeOption {
	return func(r *Runtime) {
		r.cache = newParseCache(size)
	}
}

// WithDisableVisitErrors makes Search swallow InvalidArityError,
// InvalidTypeError, InvalidValueError, and UnknownFunctionError, returning a
// nil Value instead. SyntaxError from a malformed expression is never
// swallowed.
func WithDisableVisitErrors(disable bool) RuntimeOption {
	return func(r *Runtime) {
		r.disableVisitErrors = disable
	}
}

// NewRuntime builds a Runtime with the given options applied over the
// defaults (parse cache size 64, disable_visit_errors off).
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{cache: newParseCache(defaultParseCacheSize)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Search parses expression (reusing the parse cache on a repeat call) and
// evaluates it against data.
func (r *Runtime) Search(expression string, data interface{}) (interface{}, error) {
	ast, ok := r.cache.get(expression)
	if !ok {
		parser := NewParser()
		var err error
		ast, err = parser.Parse(expression)
		if err != nil {
			return nil, err
		}
		r.cache.put(expression, ast)
	}
	intr := newInterpreter(data)
	result, err := intr.Execute(ast, data)
	if err != nil {
		if r.disableVisitErrors && isVisitError(err) {
			log.Debug().Err(err).Str("expression", expression).Msg("visit error suppressed by disable_visit_errors")
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
