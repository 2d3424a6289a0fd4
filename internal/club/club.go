// Package club implements the venue-name heuristic that decides whether
// an event looks like a club night.
//
// The heuristic is a fixed alternation of keyword hints matched as whole
// words, case-insensitively. It is deliberately loose: "Warehouse
// Project - Room 1" matches on both "warehouse" and "room", while
// "Grand Arena Hall" and "Ballroom Theatre" match nothing.
package club

import "regexp"

// clubHints matches venue names containing any club-style keyword as a
// whole word. Whole-word matching keeps substrings like the "bar" in
// "Barcelona" or the "room" in "Ballroom" from matching.
var clubHints = regexp.MustCompile(`(?i)\b(club|nightclub|discotheque|warehouse|lounge|basement|room|terrace|bar)\b`)

// LooksLikeClub reports whether a venue name looks like a club-style
// venue. An empty name never matches.
func LooksLikeClub(venueName string) bool {
	return clubHints.MatchString(venueName)
}
