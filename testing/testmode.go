// Package testing flips the runtime into test mode when blank-imported
// from package tests, so accidental main execution stays inert.
package testing

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		_ = os.Setenv("TASKDECK_TEST_MODE", "1")
	})
}
