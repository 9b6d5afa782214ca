package domain

import "strings"

// User is a person whose workouts are tracked.
type User struct {
	ID   string `json:"id" yaml:"id" bson:"id"`
	Name string `json:"name" yaml:"name" bson:"name"`
}

// MatchesName reports whether the user's name contains term, ignoring case.
// An empty term matches every user.
func (u *User) MatchesName(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), strings.ToLower(term))
}
