// Package overview implements the default dashboard feature: a per-user summary
// of profile completeness, latest measurements, the last seven days of training
// and the equipment count.
//
// Summaries are cached and dropped whenever the bus reports a profile, physical,
// workout or equipment change for that user.
package overview
