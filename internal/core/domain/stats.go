package domain

// ViewPoint is one bucket of a views time series.
type ViewPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EarningPoint is one bucket of an earnings time series.
type EarningPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ResearcherStats struct {
	TotalUploads   int            `json:"totalUploads"`
	TotalViews     int            `json:"totalViews"`
	TotalDownloads int            `json:"totalDownloads"`
	TotalEarnings  float64        `json:"totalEarnings"`
	RecentViews    []ViewPoint    `json:"recentViews"`
	RecentEarnings []EarningPoint `json:"recentEarnings"`
}

// Activity is an interaction a company had with a paper.
type Activity struct {
	Date  string `json:"date"`
	Type  string `json:"type"`
	Paper string `json:"paper"`
}

type CompanyStats struct {
	Subscribed        int        `json:"subscribed"`
	Accessed          int        `json:"accessed"`
	Favorites         int        `json:"favorites"`
	RecommendedTopics []string   `json:"recommendedTopics"`
	RecentActivity    []Activity `json:"recentActivity"`
}

// Metric is a headline number with its change over the previous period.
type Metric struct {
	Value      float64 `json:"value"`
	Change     float64 `json:"change"`
	IsPositive bool    `json:"isPositive"`
}

// Submission is research waiting for admin approval.
type Submission struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type AdminStats struct {
	TotalUsers       Metric       `json:"totalUsers"`
	ResearchPapers   Metric       `json:"researchPapers"`
	PendingApprovals Metric       `json:"pendingApprovals"`
	PlatformRevenue  Metric       `json:"platformRevenue"`
	AwaitingApproval []Submission `json:"awaitingApproval"`
}

// Dashboard is the role-specific landing data. Exactly one of the stats
// fields is set, matching Role.
type Dashboard struct {
	Role       Role             `json:"role"`
	Researcher *ResearcherStats `json:"researcher,omitempty"`
	Company    *CompanyStats    `json:"company,omitempty"`
	Admin      *AdminStats      `json:"admin,omitempty"`
}
