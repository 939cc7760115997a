// file: dto/application.go
package dto

// ========== Request DTOs ==========

type TeamMemberReq struct {
	Fid         uint64 `json:"fid"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
}

type CreateApplicationReq struct {
	ProjectName       string          `json:"project_name"`
	Description       string          `json:"description"`
	Motivation        string          `json:"motivation"`
	PriorWork         string          `json:"prior_work"`
	RepoURL           string          `json:"repo_url"`
	ResidencyEligible bool            `json:"residency_eligible"`
	Members           []TeamMemberReq `json:"members"`
}

// ========== Response DTOs ==========

type PageResp struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}
