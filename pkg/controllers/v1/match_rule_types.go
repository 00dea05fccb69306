package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchRuleEditable struct {
	ProfileID uuid.UUID `json:"profileId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the profile. Only used on creation, defaults to the requested profile.
	Priority  uint      `json:"priority" example:"3"`                                     // The priority of the match rule. Rules with lower numbers are tried first.
	Match     string    `json:"match" example:"Bank*"`                                    // The glob matched against transaction descriptions
	Category  string    `json:"category" example:"Fees"`                                  // The category transactions with a matching description get
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		ProfileID: editable.ProfileID,
		Priority:  editable.Priority,
		Match:     editable.Match,
		Category:  editable.Category,
	}
}

func matchRuleEditable(model models.MatchRule) MatchRuleEditable {
	return MatchRuleEditable{
		ProfileID: model.ProfileID,
		Priority:  model.Priority,
		Match:     model.Match,
		Category:  model.Category,
	}
}

type MatchRuleLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/65392deb-5e92-4268-b114-297faad6cdce"` // The profile the match rule belongs to
}

// MatchRule is the API representation of a MatchRule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel:      model.DefaultModel,
		MatchRuleEditable: matchRuleEditable(model),
		Links: MatchRuleLinks{
			Self:    fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created match rules
}

func (r *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MatchRuleResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this match rule
	Data  *MatchRule `json:"data"`                                                          // The match rule data, if creation was successful
}

type MatchRuleQueryFilter struct {
	Profile  string `form:"profile" filterField:"false"` // ID of the profile
	Priority uint   `form:"priority"`                    // Exact priority
	Match    string `form:"match" filterField:"false"`   // Match contains this string
	Category string `form:"category"`                    // Exact category
	Offset   uint   `form:"offset" filterField:"false"`  // The offset of the first match rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`   // Maximum number of match rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		Priority: f.Priority,
		Category: f.Category,
	}
}
