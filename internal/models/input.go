package models

import "time"

// CitizenReport - сырой отчет гражданина до нормализации
type CitizenReport struct {
	Title       string
	Description string
	HazardType  HazardType
	Severity    Severity
	Latitude    float64
	Longitude   float64
	ReporterID  string
	MediaURLs   []string
	ReportedAt  time.Time
}

// SocialPost - сырой пост из социальной сети до нормализации
type SocialPost struct {
	Platform string
	PostID   string
	Content  string
	Author   string
	Location *Location
	PostedAt time.Time
}

// Identity - пользователь, подтвержденный сервисом аутентификации
type Identity struct {
	UserID string
	Role   Role
}

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
	RoleAnalyst  Role = "analyst"
)

// CanVerify - только официальные лица и аналитики подтверждают отчеты
func (r Role) CanVerify() bool {
	return r == RoleOfficial || r == RoleAnalyst
}
