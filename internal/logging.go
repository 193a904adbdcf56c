package internal

import (
	"flag"

	"github.com/golang/glog"
)

// InitLogging sends glog output to stderr unless -log_dir was given. Call it
// after flag.Parse.
func InitLogging() {
	if f := flag.Lookup("log_dir"); f != nil && f.Value.String() != "" {
		return
	}
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("cannot route logs to stderr: %v", err)
	}
}
