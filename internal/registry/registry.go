package registry

import (
	"fmt"
	"sync"

	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/formula"
)

var (
	// formulas is a thread-safe map of all registered capacity formulas,
	// keyed by component type.
	formulas = make(map[catalog.ComponentType]formula.Formula)
	// lock protects access to the formulas map.
	lock = &sync.RWMutex{}
)

// Register adds a formula to the registry. It panics if a formula for the
// same component type is already registered, ensuring uniqueness at startup.
func Register(f formula.Formula) {
	lock.Lock()
	defer lock.Unlock()

	ct := f.ComponentType()
	if _, exists := formulas[ct]; exists {
		panic(fmt.Sprintf("formula for component type '%s' is already registered", ct))
	}
	formulas[ct] = f
}

// Get retrieves the formula for a component type.
// It returns the formula and a boolean indicating if one was found.
func Get(componentType catalog.ComponentType) (formula.Formula, bool) {
	lock.RLock()
	defer lock.RUnlock()

	f, ok := formulas[componentType]
	return f, ok
}

// SupportedTypes returns the component types that have a registered formula.
func SupportedTypes() []catalog.ComponentType {
	lock.RLock()
	defer lock.RUnlock()

	list := make([]catalog.ComponentType, 0, len(formulas))
	for ct := range formulas {
		list = append(list, ct)
	}
	return list
}
