// Package all imports all available sources for side-effect registration.
//
// Import this package from your main to ensure all sources are registered:
//   import _ "github.com/Vodeneev/livescores/internal/source/all"
package all

import (
	_ "github.com/Vodeneev/livescores/internal/source/apifootball"
	_ "github.com/Vodeneev/livescores/internal/source/espn"
	_ "github.com/Vodeneev/livescores/internal/source/sample"
)
