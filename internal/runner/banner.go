package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
   ____  ____  ___ ___ __      _____ ___  __
  / __ \/ __ \/ -_) _ `+"`"+`/ | /| / / _ `+"`"+`/ // /
  \____/_/ /_/\__/\_,_/|__,__/\_,_/\_, /
                                  /___/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates oneaway
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("oneaway", version)()
	}
}
