package dto

type ToggleResponse struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

type EngagementResponse struct {
	Liked     bool `json:"liked"`
	Saved     bool `json:"saved"`
	LikeCount int  `json:"like_count"`
	SaveCount int  `json:"save_count"`
}

// ToggleEvent is the payload published after every successful toggle.
type ToggleEvent struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Kind     string `json:"kind"`
	Active   bool   `json:"active"`
	Count    int    `json:"count"`
	OccurUTC int64  `json:"occur_utc"`
}
