package admin

// DashboardStats is the read-only aggregate view for the admin dashboard.
type DashboardStats struct {
	UsersCount       int64 `json:"users_count"`
	SponsorsCount    int64 `json:"sponsors_count"`
	InfluencersCount int64 `json:"influencers_count"`
	CampaignsCount   int64 `json:"campaigns_count"`
	AdRequestsCount  int64 `json:"ad_requests_count"`
	FlaggedUsers     int64 `json:"flagged_users_count"`
}
