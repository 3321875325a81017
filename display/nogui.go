//go:build nogui

package display

import (
	"fmt"
	"os"

	"github.com/PrincetonUniversity/gassim/driver"
)

// Run returns an error explaining that window support is disabled.
func Run(d *driver.Driver, conf *Config) error {
	return fmt.Errorf("%s was built without window support", os.Args[0])
}
