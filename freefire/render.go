package freefire

import (
	"fmt"
	"strings"

	"github.com/uniquetopup/ff_info_bot/models"
)

const (
	// AccentColor is the fixed embed accent (discord gold).
	AccentColor = 0xF1C40F

	// FooterLabel is the fixed report footer.
	FooterLabel = "UniqueTopup"
)

const promoBlock = "━━━━━━━━━━━━━━━━━━\n" +
	"💎 **Buy Instant FF Likes**\n" +
	"🔗 https://uniquetopup.com/\n" +
	"📞 +880 1716-720487\n" +
	"━━━━━━━━━━━━━━━━━━"

type row struct {
	label string
	value string
}

// Render arranges a ProfileView into the fixed report layout. Pure and
// deterministic: identical views produce byte-identical reports. The
// line layout is load-bearing for deployments that parse it; change
// with care.
func Render(view models.ProfileView) models.Report {
	var sb strings.Builder

	sb.WriteString("**Player Information**\n\n")

	writeSection(&sb, "ACCOUNT BASIC INFO", []row{
		{"Name", view.Name},
		{"UID", view.UID},
		{"Level", view.Level},
		{"Experience", view.Experience},
		{"Likes", view.Likes},
		{"Honor Score", view.HonorScore},
		{"Signature", view.Signature},
	})

	writeSection(&sb, "ACCOUNT ACTIVITY", []row{
		{"Release Version", view.ReleaseVersion},
		{"Badges", view.BadgeCount},
		{"BR Rank Points", view.BRRankPoints},
		{"CS Rank Points", view.CSRankPoints},
		{"Created At", view.CreatedAt},
		{"Last Login", view.LastLogin},
	})

	writeSection(&sb, "ACCOUNT OVERVIEW", []row{
		{"Avatar ID", view.AvatarID},
		{"Banner ID", view.BannerID},
		{"Pin ID", view.PinID},
		{"Equipped Skills", view.EquippedSkills},
	})

	writeSection(&sb, "PET DETAILS", []row{
		{"Equipped", view.PetEquipped},
		{"Name", view.PetName},
		{"Level", view.PetLevel},
		{"Experience", view.PetExperience},
	})

	writeSection(&sb, "GUILD INFO", []row{
		{"Name", view.GuildName},
		{"ID", view.GuildID},
		{"Level", view.GuildLevel},
		{"Members", view.GuildMembers + "/" + view.GuildCapacity},
	})

	writeSection(&sb, "LEADER INFO", []row{
		{"Name", view.LeaderName},
		{"UID", view.LeaderUID},
		{"Level", view.LeaderLevel},
		{"Experience", view.LeaderExperience},
		{"Title", view.LeaderTitle},
		{"Badges", view.LeaderBadgeCount},
		{"BR Rank Points", view.LeaderBRPoints},
		{"CS Rank Points", view.LeaderCSPoints},
		{"Last Login", view.LeaderLastLogin},
	})

	sb.WriteString(promoBlock)

	return models.Report{
		Text:   sb.String(),
		Color:  AccentColor,
		Footer: FooterLabel,
	}
}

func writeSection(sb *strings.Builder, title string, rows []row) {
	fmt.Fprintf(sb, "**┌ %s**\n", title)
	for i, r := range rows {
		branch := "├─"
		if i == len(rows)-1 {
			branch = "└─"
		}
		fmt.Fprintf(sb, "%s %s: %s\n", branch, r.label, r.value)
	}
	sb.WriteString("\n")
}
