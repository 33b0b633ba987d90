package model

// Follower is a directed edge: FollowerID follows FollowingID.
type Follower struct {
	FollowerID  string `gorm:"type:varchar(36);primaryKey"`
	FollowingID string `gorm:"type:varchar(36);primaryKey;index:idx_follower_following"`
}

func (Follower) TableName() string { return "follower" }
