// Package event defines the common record every listing source produces,
// plus the date parsing and ordering helpers shared by the CLI.
//
// A Record is an immutable value object: it has no identity beyond its
// field values, and two sources listing the same real-world night simply
// produce two records.
package event
