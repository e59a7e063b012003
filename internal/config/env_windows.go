//go:build windows

package config

// mapEnvKey translates Unix variable names used in shared config files.
func mapEnvKey(key string) string {
	switch key {
	case "HOSTNAME":
		return "COMPUTERNAME"
	case "HOME":
		return "USERPROFILE"
	case "TMPDIR":
		return "TEMP"
	}
	return key
}
