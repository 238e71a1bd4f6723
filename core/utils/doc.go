// Package utils provides loose type conversion for values read out of user meta,
// where legacy rows store numbers, flags and lists as free-form strings.
package utils
