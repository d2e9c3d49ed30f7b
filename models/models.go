package models

// ProfileQuery identifies one remote profile lookup. Immutable once
// built; constructed per invocation.
type ProfileQuery struct {
	UID     string `json:"uid" yaml:"uid"`
	Region  string `json:"region" yaml:"region"`
	UserUID string `json:"user_uid" yaml:"-"`
	APIKey  string `json:"-" yaml:"-"`
}

// RawProfile is the untyped nested response body as returned by the
// remote service. Transient: consumed entirely by extraction.
type RawProfile map[string]any

// ProfileView is the flat, fully defaulted view of a profile payload.
// Every field is resolved during extraction; rendering never has to
// handle absence.
type ProfileView struct {
	// Account basic
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Experience string `json:"experience"`
	Likes      string `json:"likes"`
	HonorScore string `json:"honor_score"`
	Signature  string `json:"signature"`

	// Account activity
	ReleaseVersion string `json:"release_version"`
	BadgeCount     string `json:"badge_count"`
	BRRankPoints   string `json:"br_rank_points"`
	CSRankPoints   string `json:"cs_rank_points"`
	CreatedAt      string `json:"created_at"`
	LastLogin      string `json:"last_login"`

	// Account overview
	AvatarID       string `json:"avatar_id"`
	BannerID       string `json:"banner_id"`
	PinID          string `json:"pin_id"`
	EquippedSkills string `json:"equipped_skills"`

	// Pet
	PetEquipped   string `json:"pet_equipped"`
	PetName       string `json:"pet_name"`
	PetExperience string `json:"pet_experience"`
	PetLevel      string `json:"pet_level"`

	// Guild
	GuildName     string `json:"guild_name"`
	GuildID       string `json:"guild_id"`
	GuildLevel    string `json:"guild_level"`
	GuildMembers  string `json:"guild_members"`
	GuildCapacity string `json:"guild_capacity"`

	// Guild leader
	LeaderName       string `json:"leader_name"`
	LeaderUID        string `json:"leader_uid"`
	LeaderLevel      string `json:"leader_level"`
	LeaderExperience string `json:"leader_experience"`
	LeaderLastLogin  string `json:"leader_last_login"`
	LeaderTitle      string `json:"leader_title"`
	LeaderBadgeCount string `json:"leader_badge_count"`
	LeaderBRPoints   string `json:"leader_br_points"`
	LeaderCSPoints   string `json:"leader_cs_points"`
}

// Report is the finished, delivery-ready rendering of a profile.
type Report struct {
	Text   string `json:"text"`
	Color  int    `json:"color"`
	Footer string `json:"footer"`
}
