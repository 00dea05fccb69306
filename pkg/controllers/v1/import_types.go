package v1

type ImportQuery struct {
	Profile     string `form:"profile"`     // ID of the profile to import into. Defaults to the active profile.
	ProfileName string `form:"profileName"` // Name for a new profile to import into. Takes precedence over profile.
}

type ImportResponse struct {
	Data  *ImportResult `json:"data"`                                                    // The imported data
	Error *string       `json:"error" example:"this endpoint only supports .json files"` // The error, if any occurred
}

// ImportResult is the state of the profile after an import.
type ImportResult struct {
	Profile Profile `json:"profile"` // The profile the data was imported into
	Counts  struct {
		Transactions int `json:"transactions" example:"120"` // Number of one-off transactions
		Recurrings   int `json:"recurrings" example:"4"`     // Number of recurring transactions
		Categories   int `json:"categories" example:"8"`     // Number of categories
		Budgets      int `json:"budgets" example:"6"`        // Number of budgets
	} `json:"counts"` // Number of stored records per collection
}
