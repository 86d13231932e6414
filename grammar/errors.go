package grammar

import qerr "github.com/ava12/quickparse/errors"

// NoRuleForAxiomError reports that no rule produces the requested axiom
// construct.
type NoRuleForAxiomError struct {
	Err  *qerr.Error
	Name string
}

func (e *NoRuleForAxiomError) Error() string { return e.Err.Error() }

func (e *NoRuleForAxiomError) Unwrap() error { return e.Err }

func noRuleForAxiomError(name string) *NoRuleForAxiomError {
	return &NoRuleForAxiomError{
		Err:  qerr.New(qerr.NoRuleForAxiom, "no rule produces axiom construct %q", name),
		Name: name,
	}
}

// DuplicateTokenNameError reports two rules declaring the same token
// name with different patterns.
type DuplicateTokenNameError struct {
	Err          *qerr.Error
	Name         string
	RuleA, RuleB *Rule
}

func (e *DuplicateTokenNameError) Error() string { return e.Err.Error() }

func (e *DuplicateTokenNameError) Unwrap() error { return e.Err }

func duplicateTokenNameError(name string, ruleA, ruleB *Rule) *DuplicateTokenNameError {
	return &DuplicateTokenNameError{
		Err: qerr.New(qerr.DuplicateTokenName,
			"token %q declared with different patterns in rules %q and %q",
			name, ruleA.String(), ruleB.String()),
		Name:  name,
		RuleA: ruleA,
		RuleB: ruleB,
	}
}
