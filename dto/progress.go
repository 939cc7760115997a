// file: dto/progress.go
package dto

type CreateProgressUpdateReq struct {
	DemoLink            string `json:"demo_link"`
	KeyFeatures         string `json:"key_features"`
	UserEngagement      string `json:"user_engagement"`
	Challenges          string `json:"challenges"`
	NextSteps           string `json:"next_steps"`
	TechnicalMilestones string `json:"technical_milestones"`
	AdditionalNotes     string `json:"additional_notes"`
	AuthorDisplayName   string `json:"author_display_name"`
	AuthorUsername      string `json:"author_username"`
}

// UpdateProgressUpdateReq uses pointers so callers can replace individual
// narrative fields; omitted fields keep their stored values. Last write wins,
// there is no merge protection between concurrent editors.
type UpdateProgressUpdateReq struct {
	DemoLink            *string `json:"demo_link"`
	KeyFeatures         *string `json:"key_features"`
	UserEngagement      *string `json:"user_engagement"`
	Challenges          *string `json:"challenges"`
	NextSteps           *string `json:"next_steps"`
	TechnicalMilestones *string `json:"technical_milestones"`
	AdditionalNotes     *string `json:"additional_notes"`
}
