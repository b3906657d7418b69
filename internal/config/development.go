package config

import "os"

// Development reports whether MINES_DEVELOPMENT is set to anything but "0".
// It is read before flags are parsed so that early logging is set up right.
func Development() bool {
	development, ok := os.LookupEnv(EnvPrefix + "_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
