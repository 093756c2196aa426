package dtype

import (
	"sort"
	"sync"
)

// registry maps sample type names to descriptors. Built-ins are registered
// at init; applications can add their own types under fresh names.
var registry = struct {
	mu    sync.RWMutex
	types map[string]Info
}{
	types: make(map[string]Info),
}

func init() {
	for _, t := range []Info{
		Bit, Int8, Uint8, Uint12, Int16, Uint16, Int32, Uint32,
		Int64, Uint64, Float16, Float32, Float64,
		Complex64, Complex128, BigComplex,
	} {
		if err := Register(t); err != nil {
			panic(err)
		}
	}
}

// Register adds a sample type descriptor under its name. Names must be
// unique; registering a taken name returns *ErrDuplicateType.
func Register(t Info) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	name := t.Name()
	if _, ok := registry.types[name]; ok {
		return &ErrDuplicateType{TypeName: name}
	}

	registry.types[name] = t

	return nil
}

// Lookup returns the descriptor registered under name. Callers that need
// the conversion primitives assert the result to the concrete Type[T].
func Lookup(name string) (Info, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	t, ok := registry.types[name]
	return t, ok
}

// Names returns the names of all registered sample types, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.types))
	for name := range registry.types {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
