// Package jsruntime executes the browser bootstrap snippet against a minimal
// fake DOM so the generated JavaScript can be checked without a browser.
package jsruntime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/grafana/sobek"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 2 * time.Second

// ErrTimeout is returned when the script does not finish within the timeout.
var ErrTimeout = errors.New("script evaluation timed out")

// Environment describes the simulated browser state.
type Environment struct {
	// Storage seeds window.localStorage.
	Storage map[string]string
	// StorageThrows makes every localStorage access throw, as in sandboxed
	// iframes or with storage disabled.
	StorageThrows bool
	// NoStorage leaves window.localStorage undefined.
	NoStorage bool
	// Classes seeds documentElement.classList.
	Classes []string
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Result is the document root after the script ran.
type Result struct {
	Classes     []string `json:"classes"`
	ColorScheme string   `json:"colorScheme"`
	// ClassMutations counts classList.add/remove calls.
	ClassMutations int `json:"classMutations"`
	// StyleMutations counts writes to style.colorScheme.
	StyleMutations int `json:"styleMutations"`
}

const prelude = `
var __dom = { classes: [], scheme: "", classMutations: 0, styleMutations: 0 };
var __style = {};
Object.defineProperty(__style, "colorScheme", {
  get: function () { return __dom.scheme; },
  set: function (v) { __dom.scheme = String(v); __dom.styleMutations++; }
});
var document = {
  documentElement: {
    classList: {
      add: function (c) { __dom.classMutations++; c = String(c); if (__dom.classes.indexOf(c) < 0) { __dom.classes.push(c); } },
      remove: function (c) { __dom.classMutations++; c = String(c); __dom.classes = __dom.classes.filter(function (x) { return x !== c; }); },
      contains: function (c) { return __dom.classes.indexOf(String(c)) >= 0; }
    },
    style: __style
  }
};
var window = { document: document };
`

const snapshot = `JSON.stringify({
  classes: __dom.classes,
  colorScheme: __dom.scheme,
  classMutations: __dom.classMutations,
  styleMutations: __dom.styleMutations
})`

// Evaluate runs script in a fresh runtime seeded from env and returns the
// resulting root state. A script that throws out of its top level is an error.
func Evaluate(script string, env Environment) (Result, error) {
	vm := sobek.New()

	if _, err := vm.RunString(prelude); err != nil {
		return Result{}, fmt.Errorf("failed to install prelude: %w", err)
	}
	if err := seedClasses(vm, env.Classes); err != nil {
		return Result{}, err
	}
	if !env.NoStorage {
		if err := installStorage(vm, env); err != nil {
			return Result{}, err
		}
	}

	timeout := env.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timer := time.AfterFunc(timeout, func() {
		vm.Interrupt(ErrTimeout)
	})
	defer timer.Stop()

	if _, err := vm.RunScript("bootstrap.js", script); err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return Result{}, ErrTimeout
		}
		return Result{}, fmt.Errorf("script failed: %w", err)
	}

	out, err := vm.RunString(snapshot)
	if err != nil {
		return Result{}, fmt.Errorf("failed to snapshot document: %w", err)
	}

	var res Result
	if err := json.Unmarshal([]byte(out.String()), &res); err != nil {
		return Result{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	// Seeding is not a mutation made by the script.
	res.ClassMutations -= len(env.Classes)
	return res, nil
}

func seedClasses(vm *sobek.Runtime, classes []string) error {
	add, ok := sobek.AssertFunction(vm.Get("document").ToObject(vm).
		Get("documentElement").ToObject(vm).
		Get("classList").ToObject(vm).
		Get("add"))
	if !ok {
		return errors.New("prelude classList.add is not callable")
	}
	for _, c := range classes {
		if _, err := add(sobek.Undefined(), vm.ToValue(c)); err != nil {
			return fmt.Errorf("failed to seed class %q: %w", c, err)
		}
	}
	return nil
}

func installStorage(vm *sobek.Runtime, env Environment) error {
	data := make(map[string]string, len(env.Storage))
	for k, v := range env.Storage {
		data[k] = v
	}

	guard := func() {
		if env.StorageThrows {
			panic(vm.NewGoError(errors.New("SecurityError: access to localStorage is denied")))
		}
	}

	storage := vm.NewObject()
	if err := storage.Set("getItem", func(call sobek.FunctionCall) sobek.Value {
		guard()
		v, ok := data[call.Argument(0).String()]
		if !ok {
			return sobek.Null()
		}
		return vm.ToValue(v)
	}); err != nil {
		return err
	}
	if err := storage.Set("setItem", func(call sobek.FunctionCall) sobek.Value {
		guard()
		data[call.Argument(0).String()] = call.Argument(1).String()
		return sobek.Undefined()
	}); err != nil {
		return err
	}
	if err := storage.Set("removeItem", func(call sobek.FunctionCall) sobek.Value {
		guard()
		delete(data, call.Argument(0).String())
		return sobek.Undefined()
	}); err != nil {
		return err
	}

	if err := vm.Set("localStorage", storage); err != nil {
		return err
	}
	return vm.Get("window").ToObject(vm).Set("localStorage", storage)
}
