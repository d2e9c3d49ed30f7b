package freefire

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/uniquetopup/ff_info_bot/models"
	"github.com/uniquetopup/ff_info_bot/timeutil"
)

// Documented defaults for absent fields. Which default applies is part
// of each field's contract, not a rendering decision.
const (
	defaultNotFound  = "Not found"
	defaultUnknown   = "?"
	defaultNone      = "None"
	defaultEmptyList = "[]"
	defaultNo        = "No"
)

// Extract maps the raw account payload onto a fully defaulted
// ProfileView. Total: any key, or any ancestor key, may be absent or of
// an unexpected type and the corresponding field resolves to its
// default. The requested UID is echoed verbatim rather than re-read
// from the response, which may omit it.
func Extract(raw models.RawProfile, requestedUID string) models.ProfileView {
	result := section(raw, "result")
	account := section(result, "AccountInfo")
	profile := section(result, "AccountProfileInfo")
	guild := section(result, "GuildInfo")
	pet := section(result, "petInfo")
	credit := section(result, "creditScoreInfo")
	social := section(result, "socialinfo")
	leader := section(result, "captainBasicInfo")

	return models.ProfileView{
		UID:        requestedUID,
		Name:       field(account, "AccountName", defaultNotFound),
		Level:      field(account, "AccountLevel", defaultUnknown),
		Experience: field(account, "AccountEXP", defaultUnknown),
		Likes:      field(account, "AccountLikes", defaultUnknown),
		HonorScore: field(credit, "creditScore", defaultUnknown),
		Signature:  field(social, "AccountSignature", defaultNone),

		ReleaseVersion: field(account, "ReleaseVersion", defaultUnknown),
		BadgeCount:     field(account, "AccountBPBadges", defaultUnknown),
		BRRankPoints:   field(account, "BrRankPoint", defaultUnknown),
		CSRankPoints:   field(account, "CsRankPoint", defaultUnknown),
		CreatedAt:      timeutil.FormatEpoch(lookup(account, "AccountCreateTime")),
		LastLogin:      timeutil.FormatEpoch(lookup(account, "AccountLastLogin")),

		AvatarID:       field(profile, "AvatarId", defaultNotFound),
		BannerID:       field(profile, "BannerId", defaultNotFound),
		PinID:          field(profile, "PinId", defaultNotFound),
		EquippedSkills: list(profile, "EquippedSkills"),

		PetEquipped:   yesNo(pet, "isSelected"),
		PetName:       field(pet, "name", defaultNotFound),
		PetExperience: field(pet, "exp", defaultNotFound),
		PetLevel:      field(pet, "level", defaultNotFound),

		GuildName:     field(guild, "GuildName", defaultNotFound),
		GuildID:       field(guild, "GuildID", defaultNotFound),
		GuildLevel:    field(guild, "GuildLevel", defaultNotFound),
		GuildMembers:  field(guild, "GuildMember", defaultUnknown),
		GuildCapacity: field(guild, "GuildCapacity", defaultUnknown),

		LeaderName:       field(leader, "nickname", defaultNotFound),
		LeaderUID:        field(leader, "accountId", defaultNotFound),
		LeaderLevel:      field(leader, "level", defaultUnknown),
		LeaderExperience: field(leader, "exp", defaultUnknown),
		LeaderLastLogin:  timeutil.FormatEpoch(lookup(leader, "lastLoginAt")),
		LeaderTitle:      field(leader, "title", defaultNotFound),
		LeaderBadgeCount: field(leader, "badgeCnt", defaultUnknown),
		LeaderBRPoints:   field(leader, "rankingPoints", defaultUnknown),
		LeaderCSPoints:   field(leader, "csRankingPoints", defaultUnknown),
	}
}

// section descends one level, yielding an empty map when the key is
// absent or not an object so deeper lookups keep working.
func section(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

func lookup(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// field renders a scalar value as display text, substituting def for
// absent, empty, or non-scalar values.
func field(m map[string]any, key, def string) string {
	s, ok := scalar(lookup(m, key))
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// yesNo renders a boolean flag; anything but true reads as "No".
func yesNo(m map[string]any, key string) string {
	if b, ok := lookup(m, key).(bool); ok && b {
		return "Yes"
	}
	return defaultNo
}

// list renders an array value as "[a, b, c]"; absent or non-array
// values read as the empty collection.
func list(m map[string]any, key string) string {
	items, ok := lookup(m, key).([]any)
	if !ok || len(items) == 0 {
		return defaultEmptyList
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := scalar(item); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return defaultEmptyList
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
