package types

// Request bodies use the camelCase keys sent by the frontend wizards.

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	UserType  string `json:"userType" binding:"required,oneof=buyer seller"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileRequest carries the full attribute set; absent fields overwrite the
// stored value with the zero value (full-replace semantics, no partial patch).
type ProfileRequest struct {
	InvestmentRange     string   `json:"investmentRange"`
	ExperienceLevel     string   `json:"experienceLevel"`
	PreferredIndustries []string `json:"preferredIndustries"`
	Timeline            string   `json:"timeline"`
	BusinessSize        string   `json:"businessSize"`
	LocationPreference  string   `json:"locationPreference"`
	LiquidCapital       string   `json:"liquidCapital"`
	RiskTolerance       string   `json:"riskTolerance"`
	Bio                 string   `json:"bio"`
}

type DecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}
