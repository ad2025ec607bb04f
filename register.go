package tessera

// Importing this package wires in every built-in provider adapter. Programs
// that want only a subset can import the core and providers packages
// directly and blank-import the adapters they need.
import (
	_ "github.com/tessera-ai/tessera/providers/cerebras"
	_ "github.com/tessera-ai/tessera/providers/groq"
	_ "github.com/tessera-ai/tessera/providers/hyperbolic"
	_ "github.com/tessera-ai/tessera/providers/together"
)
