// Package providers registers all known generation providers.
// Import this package to make every provider available via provider.New():
//
//	import _ "github.com/randalmurphal/promptpager/providers"
package providers

import (
	_ "github.com/randalmurphal/promptpager/gemini"
)
