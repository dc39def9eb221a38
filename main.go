package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/antitb/internal/antitb/cmd"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	// ANTITB_LOG picks the starting log level; --trace still overrides it.
	level, err := logrus.ParseLevel(os.Getenv("ANTITB_LOG"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	root := cmd.Root()
	root.Version = version
	root.SetVersionTemplate(version + "\n")
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
