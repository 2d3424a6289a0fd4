// Package residentadvisor scrapes a DJ's public listings page as an
// optional third event source. It needs no credential and is disabled
// unless explicitly requested on the command line.
package residentadvisor
