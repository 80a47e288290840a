package service

import "invitely/internal/domains"

// Decision is the outcome of the personalization access gate. RequiresLogin
// and RequiresUpgrade are expected control-flow outcomes, not failures.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionRequiresLogin
	DecisionRequiresUpgrade
)

// Decide gates a (user, template) pair before personalization. It depends
// only on its two inputs and keeps no state; payment itself happens at an
// external checkout the handler redirects to.
func Decide(user *domains.User, template domains.Template) Decision {
	if user == nil {
		return DecisionRequiresLogin
	}
	if template.IsPremium() && !user.Premium {
		return DecisionRequiresUpgrade
	}
	return DecisionAllowed
}
