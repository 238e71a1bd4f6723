// Package validation wraps go-playground/validator with the dashboard's rules and
// error format.
//
// Payload structs declare their rules in validate tags. Struct returns an Errors
// map keyed by JSON field path, which handlers pass straight into the data.params
// member of a WordPress rest_invalid_param error.
package validation
