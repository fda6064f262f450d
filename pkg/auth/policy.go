package auth

import (
	"regexp"

	"github.com/radrium/polylibrary/pkg/models"
	"github.com/samber/lo"
)

// Rule maps a method-qualified path pattern to the roles allowed to call it.
// Patterns are anchored regular expressions compiled once at startup.
type Rule struct {
	Method  string
	Pattern *regexp.Regexp
	Roles   []string
}

// NewRule compiles a rule. The pattern is anchored so "/books" doesn't also
// match "/books/1". Panics on an invalid pattern, which is a programming
// error in the policy table.
func NewRule(method, pattern string, roles ...string) Rule {
	return Rule{
		Method:  method,
		Pattern: regexp.MustCompile("^" + pattern + "$"),
		Roles:   roles,
	}
}

// Policy is an ordered table of rules. Matching scans the table in declared
// order and authorizes on the first rule that matches the request's method and
// path AND lists the caller's role. A pattern match without the role doesn't
// short-circuit the scan; a later rule may still authorize. If the scan
// exhausts the table, the request is forbidden.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules, preserving their order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Allows reports whether a caller with the given role may perform method on
// path. It's a pure function of its arguments against the static table.
func (p *Policy) Allows(method, path, role string) bool {
	for _, rule := range p.rules {
		if rule.Method != method {
			continue
		}
		if !rule.Pattern.MatchString(path) {
			continue
		}
		if lo.Contains(rule.Roles, role) {
			return true
		}
	}
	return false
}

// DefaultPolicy is the catalog access table: members and librarians can read
// books, only librarians can change them.
func DefaultPolicy() *Policy {
	return NewPolicy(
		NewRule("GET", "/books", models.RoleMember, models.RoleLibrarian),
		NewRule("GET", "/books/[0-9]+", models.RoleMember, models.RoleLibrarian),
		NewRule("POST", "/books", models.RoleLibrarian),
		NewRule("PUT", "/books/[0-9]+/availability", models.RoleLibrarian),
		NewRule("PUT", "/books/[0-9]+", models.RoleLibrarian),
		NewRule("DELETE", "/books/[0-9]+", models.RoleLibrarian),
	)
}
