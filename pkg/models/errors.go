package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReferenceMissing = errors.New("a referenced resource does not exist")
	ErrNoProfile        = errors.New("no profile is selected, create a profile or pass the profile parameter")

	ErrProfileNameEmpty      = errors.New("the profile name must not be empty")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrGoalTargetNotPositive = errors.New("goal target must be positive")
	ErrTransactionDateEmpty  = errors.New("the transaction date must be set")
	ErrMatchRuleEmpty        = errors.New("the match rule must have a match and a category")

	ErrRecurringFrequencyInvalid = errors.New("the recurrence type must be 'monthly' or 'biweekly'")
	ErrRecurringDayOfMonth       = errors.New("monthly recurring transactions need a day of month between 1 and 31")
	ErrRecurringDayOfWeek        = errors.New("biweekly recurring transactions need a day of week between 0 (Sunday) and 6")
	ErrRecurringStartEmpty       = errors.New("the recurring transaction needs a start date")
	ErrRecurringEndBeforeStart   = errors.New("the end date must not be before the start date")

	ErrBudgetMonthMissing   = errors.New("a budget that ends in a month must also start in one")
	ErrBudgetEndBeforeStart = errors.New("the end month of a budget must not be before its start month")
)
