package config

// Flags says if a command line flag was given. *pflag.FlagSet from
// cobra satisfies it.
type Flags interface {
	Changed(name string) bool
}

// String copies a file value to dst unless the flag was set or the
// file value is empty.
func String(fl Flags, name string, dst *string, v string) {
	if v != "" && !fl.Changed(name) {
		*dst = v
	}
}

// Bool is String for booleans. Only values present in the file count.
func Bool(fl Flags, name string, dst *bool, v *bool) {
	if v != nil && !fl.Changed(name) {
		*dst = *v
	}
}

// Int is String for integers.
func Int(fl Flags, name string, dst *int, v *int) {
	if v != nil && !fl.Changed(name) {
		*dst = *v
	}
}
