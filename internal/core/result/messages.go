package result

import "strings"

// Noun names an entity in client-facing messages.
// The wording built here is part of the HTTP contract and is asserted on by clients.
type Noun struct {
	Singular string // "Post reaction"
	Plural   string // "Post reactions"
}

func (n Noun) NotFound() string { return n.Singular + " not found" }

func (n Noun) Found() string { return n.Singular + " found successfully" }

func (n Noun) FoundMany() string { return n.Plural + " found successfully" }

func (n Noun) Created() string { return n.Singular + " created successfully" }

func (n Noun) Updated() string { return n.Singular + " updated successfully" }

func (n Noun) Deleted() string { return n.Singular + " deleted successfully" }

// Failed is the message for an unexpected storage failure, e.g. "Failed to create post reaction"
func (n Noun) Failed(verb string) string {
	return "Failed to " + verb + " " + strings.ToLower(n.Singular)
}

// FailedMany is Failed for plural reads, e.g. "Failed to list post reactions"
func (n Noun) FailedMany(verb string) string {
	return "Failed to " + verb + " " + strings.ToLower(n.Plural)
}

// InvalidPagination is returned when take or skip is negative
const InvalidPagination = "Invalid pagination parameters"
