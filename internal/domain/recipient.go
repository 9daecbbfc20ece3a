package domain

import "strings"

// Recipient is one parsed invitee from the admin's free-text input.
type Recipient struct {
	Name   string
	Email  string
	Gender string // "M" or "F", defaults to "M"
}

// ParseRecipients turns free-text admin input into recipients, one per
// line. A line may start with a gender marker ("M" or "F" plus a
// separator), then one of:
//
//	Name <email>
//	Name, email
//	Name; email
//	email
//
// For a bare email the name defaults to the local part. Lines without an
// @-containing email are dropped silently; the same email on several
// lines yields several recipients (dedup happens at the send stage).
func ParseRecipients(raw string) []Recipient {
	var recipients []Recipient
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "@") {
			continue
		}

		gender := "M"
		if marker, rest, ok := splitGenderMarker(line); ok {
			gender = marker
			line = rest
		}

		name, email := splitNameEmail(line)
		if email == "" || !strings.Contains(email, "@") {
			continue
		}
		if name == "" {
			name = email[:strings.Index(email, "@")]
		}
		recipients = append(recipients, Recipient{
			Name:   name,
			Email:  email,
			Gender: gender,
		})
	}
	return recipients
}

// splitGenderMarker detects a leading "M" or "F" followed by a comma or
// semicolon and returns the marker and the remainder of the line.
func splitGenderMarker(line string) (marker, rest string, ok bool) {
	if len(line) < 2 {
		return "", "", false
	}
	first := strings.ToUpper(line[:1])
	if first != "M" && first != "F" {
		return "", "", false
	}
	sep := line[1]
	if sep != ',' && sep != ';' {
		return "", "", false
	}
	return first, strings.TrimSpace(line[2:]), true
}

// splitNameEmail splits "Name <email>", "Name, email", "Name; email" or a
// bare email into its parts.
func splitNameEmail(line string) (name, email string) {
	if open := strings.Index(line, "<"); open >= 0 {
		if close := strings.Index(line[open:], ">"); close > 0 {
			return strings.TrimSpace(line[:open]), strings.TrimSpace(line[open+1 : open+close])
		}
	}
	if idx := strings.LastIndexAny(line, ",;"); idx >= 0 {
		tail := strings.TrimSpace(line[idx+1:])
		if strings.Contains(tail, "@") {
			return strings.TrimSpace(line[:idx]), tail
		}
	}
	return "", strings.TrimSpace(line)
}

// commonTitles are honorifics stripped from names when building the
// salutation.
var commonTitles = []string{"dr", "pr", "prof", "mme", "mlle", "mr", "m"}

// StripTitle removes a leading honorific (Dr, Pr, Mme, ...) from a
// display name. The stored name keeps the title; only the salutation
// drops it.
func StripTitle(name string) string {
	trimmed := strings.TrimSpace(name)
	first, rest, found := strings.Cut(trimmed, " ")
	if !found {
		return trimmed
	}
	candidate := strings.ToLower(strings.TrimSuffix(first, "."))
	for _, t := range commonTitles {
		if candidate == t {
			return strings.TrimSpace(rest)
		}
	}
	return trimmed
}

// Salutation returns the French greeting for a recipient: "Chère" for
// gender "F", "Cher" otherwise, followed by the title-stripped name.
func Salutation(name, gender string) string {
	greeting := "Cher"
	if strings.EqualFold(gender, "F") {
		greeting = "Chère"
	}
	stripped := StripTitle(name)
	if stripped == "" {
		return greeting
	}
	return greeting + " " + stripped
}

// NormalizeEmail lower-cases and trims an address. All store lookups and
// writes go through this so duplicate detection is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
