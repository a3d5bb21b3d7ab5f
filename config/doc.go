// Package config is the host side of enum configuration: directive handler
// registration, a line-oriented config reader, a store for generated lines,
// and file/env options.
//
// Config files are plain text, one directive per line:
//
//	# interface states
//	enum 2:1 1:up 2:down 3:testing
//	enum ifType 6:ethernetCsmacd 24:softwareLoopback
//
// A Reader splits each line into keyword and rest and calls the handler
// registered for that keyword under the reader's application type. Unknown
// keywords are logged and skipped.
//
// Loader is the usual entry point. It builds an enum.Registry from Options,
// registers the "enum" handler, and can write the registry back out:
//
//	opts, err := config.LoadOptions("enumreg.yaml")
//	...
//	l, err := config.NewLoader(*opts, logger)
//	...
//	defer l.Close()
//	if _, err := l.LoadFiles(ctx, "snmp.conf"); err != nil {
//	    return err
//	}
//	lines := l.Save()
//
// Options come from YAML (see Options) and are then overridden by ENUMREG_*
// environment variables such as ENUMREG_MAX_MAJOR or ENUMREG_LOG_LEVEL.
package config
