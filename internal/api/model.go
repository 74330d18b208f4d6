package api

type passwordRequest struct {
	Password string `json:"password" binding:"required"`
}

type passwordResponse struct {
	Pwned    bool              `json:"pwned"`
	Count    uint64            `json:"count"`
	Strength *passwordStrength `json:"strength,omitempty"`
}

type passwordStrength struct {
	CrackTime        float64 `json:"crackTime"`
	CrackTimeDisplay string  `json:"crackTimeDisplay"`
	Score            int     `json:"score"`
}

type accountRequest struct {
	Account string `json:"account" binding:"required"`
}

type accountResponse struct {
	Breached bool `json:"breached"`
}
