// Package ticketmaster fetches an artist's upcoming events from the
// Ticketmaster Discovery API.
//
// The client paginates the events search endpoint (page-based, up to 100
// results per page) restricted to the Electronic classification, and
// stops at the reported total page count or the configured per-artist
// page cap, whichever comes first. Each upstream event is decoded into
// typed response structs and mapped onto the common event.Record, with
// every missing field substituted by an empty string at decode time.
package ticketmaster
